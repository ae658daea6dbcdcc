package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confsweep/confsweep/pkg/manifest"
	"github.com/confsweep/confsweep/pkg/types"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest [root]",
	Short: "Print the artifact inventory declared under an analysis root",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		m, err := manifest.Load(types.NewOSFS(), root)
		if err != nil {
			return err
		}

		if m.Name != "" {
			fmt.Fprintf(os.Stdout, "%s\n\n", formatBold(m.Name))
		}
		for _, e := range m.Entries {
			fmt.Fprintf(os.Stdout, "%-40s %-24s %s\n", e.File, e.Type, e.Name)
		}
		fmt.Fprintf(os.Stdout, "\n%d artifact(s) declared\n", len(m.Entries))
		return nil
	},
}
