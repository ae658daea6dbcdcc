package main

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Show documentation topics",
	Long:  `Without arguments, lists the available topics. With a topic name, renders it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listTopics()
		}
		return showTopic(args[0])
	},
}

func listTopics() error {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)

	fmt.Println(formatBold("Available topics:"))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func showTopic(name string) error {
	content, err := docsFS.ReadFile(path.Join("docs", name+".md"))
	if err != nil {
		return fmt.Errorf("unknown topic %q", name)
	}

	// Plain text when piped; glamour when on a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(string(content))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(string(content))
		return nil
	}
	rendered, err := renderer.Render(string(content))
	if err != nil {
		fmt.Print(string(content))
		return nil
	}
	fmt.Print(rendered)
	return nil
}
