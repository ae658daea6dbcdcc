package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/confsweep/confsweep/pkg/config"
	"github.com/confsweep/confsweep/pkg/output"
	"github.com/confsweep/confsweep/pkg/scanner"
	"github.com/confsweep/confsweep/pkg/types"
)

var (
	scanFormat     string
	scanFile       string
	scanNoColor    bool
	failOnConflict bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Scan an analysis root for duplicate and conflicting settings",
	Long: `Scan walks the analysis root (default: current directory), extracts
leaf settings from every recognized artifact and reports settings declared
by more than one file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fs := types.NewOSFS()
		if err := config.ApplyRootOverlay(cfg, fs, root); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pipeline := scanner.NewPipeline(fs, cfg)
		result, err := pipeline.Run(ctx, root)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		noColor := scanNoColor || os.Getenv("NO_COLOR") != ""
		if scanFile != "" {
			f, err := os.Create(scanFile)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
			noColor = true
		}

		if err := output.Render(w, output.Format(scanFormat), result.Duplicates, output.Options{NoColor: noColor}); err != nil {
			return err
		}

		if failOnConflict {
			for _, e := range result.Duplicates {
				if e.HasConflict {
					return fmt.Errorf("found conflicting values for %s", e.SettingID)
				}
			}
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanFormat, "output", "o", "console", "Output format: console, csv or json")
	scanCmd.Flags().StringVarP(&scanFile, "file", "f", "", "Write the report to a file instead of stdout")
	scanCmd.Flags().BoolVar(&scanNoColor, "no-color", false, "Disable console styling")
	scanCmd.Flags().BoolVar(&failOnConflict, "fail-on-conflict", false, "Exit non-zero when conflicting values are found")
}
