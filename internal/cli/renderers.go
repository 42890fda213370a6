package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockrender/pkg/pipeline"
	"github.com/matzehuels/blockrender/pkg/render/renderer"
	"github.com/matzehuels/blockrender/pkg/theme"
)

// renderersCommand lists the registered renderers and built-in themes.
func (c *CLI) renderersCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "renderers",
		Aliases: []string{"ls"},
		Short:   "List available renderers and themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), StyleTitle.Render("Renderers"))
			fmt.Fprintln(cmd.OutOrStdout(), renderersTable(c.Registry))
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), StyleTitle.Render("Themes"))
			for _, name := range theme.Names() {
				marker := " "
				if name == pipeline.DefaultTheme {
					marker = StyleHighlight.Render("*")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", marker, StyleValue.Render(name))
			}
			return nil
		},
	}
}

// renderersTable renders a bordered table of names and descriptions. The
// default renderer is highlighted.
func renderersTable(reg *renderer.Registry) string {
	names := reg.Names()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		desc, _ := reg.Describe(name)
		def := ""
		if name == pipeline.DefaultRenderer {
			def = "default"
		}
		rows = append(rows, []string{name, desc, def})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("Renderer", "Description", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case names[row] == pipeline.DefaultRenderer && col == 0:
				return base.Foreground(colorOK).Bold(true)
			case col == 0:
				return base.Foreground(colorText)
			default:
				return base.Foreground(colorMuted)
			}
		})
	return t.Render()
}
