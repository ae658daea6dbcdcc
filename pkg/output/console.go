package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/confsweep/confsweep/pkg/types"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	conflictStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	redundantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

func renderConsole(w io.Writer, entries []types.DuplicateEntry, noColor bool) error {
	style := func(s lipgloss.Style, text string) string {
		if noColor {
			return text
		}
		return s.Render(text)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No duplicate settings found.")
		return err
	}

	conflicts := 0
	for _, e := range entries {
		if e.HasConflict {
			conflicts++
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n\n",
		style(headerStyle, fmt.Sprintf("%d duplicated setting(s), %d with conflicting values", len(entries), conflicts))); err != nil {
		return err
	}

	for _, e := range entries {
		tag := style(redundantStyle, "redundant")
		if e.HasConflict {
			tag = style(conflictStyle, "CONFLICT")
		}
		if _, err := fmt.Fprintf(w, "%s  %s  (%d files)\n",
			style(headerStyle, e.SettingID), tag, e.OccurrenceCount); err != nil {
			return err
		}
		for i := range e.SourceFiles {
			line := fmt.Sprintf("    %s = %s  [%s, %s]",
				e.SourceFiles[i], e.Values[i], e.ConfigNames[i], e.ReferenceIDs[i])
			if _, err := fmt.Fprintln(w, style(dimStyle, line)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
