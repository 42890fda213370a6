package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockrender/pkg/pipeline"
	"github.com/matzehuels/blockrender/pkg/render/measurable"
	"github.com/matzehuels/blockrender/pkg/theme"
	"github.com/matzehuels/blockrender/pkg/workspace"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorText)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorFaint)
)

// inspectCommand opens an interactive browser over the measured rows of
// every block.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		inputFormat string
		rendererArg string
		themeArg    string
		rtl         bool
		static      bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse the measured rows and elements of each block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := c.measure(cmd.Context(), args[0], inputFormat, rendererArg, themeArg, rtl)
			if err != nil {
				return err
			}
			if len(scene.Items) == 0 {
				c.ui.note("Document has no blocks")
				return nil
			}

			m := NewInspectModel(scene)
			if static {
				m.Height = len(scene.Items)
				m.Elements = true
				for i := range scene.Items {
					m.Cursor = i
					fmt.Fprintln(cmd.OutOrStdout(), m.detail())
				}
				return nil
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "document format: yaml, toml, json (default: from file extension)")
	cmd.Flags().StringVarP(&rendererArg, "renderer", "r", pipeline.DefaultRenderer, "renderer name")
	cmd.Flags().StringVarP(&themeArg, "theme", "t", pipeline.DefaultTheme, "built-in theme name or theme file")
	cmd.Flags().BoolVar(&rtl, "rtl", false, "measure right-to-left")
	cmd.Flags().BoolVar(&static, "print", false, "print every block instead of opening the browser")
	return cmd
}

// measure runs parse and layout without touching the cache.
func (c *CLI) measure(ctx context.Context, input, inputFormat, rendererName, themeName string, rtl bool) (*workspace.Scene, error) {
	data, format, err := readDocument(input, inputFormat)
	if err != nil {
		return nil, err
	}
	opts := pipeline.Options{
		Document:       data,
		DocumentFormat: format,
		Renderer:       rendererName,
		Theme:          themeName,
		RTL:            rtl,
		Logger:         c.Logger,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	t, err := theme.Resolve(opts.Theme)
	if err != nil {
		return nil, err
	}
	roots, err := pipeline.Parse(opts)
	if err != nil {
		return nil, err
	}
	r, err := c.Registry.Init(opts.Renderer, t, nil)
	if err != nil {
		return nil, err
	}
	return pipeline.Layout(r, roots, opts), nil
}

// =============================================================================
// InspectModel - Interactive block browser
// =============================================================================

// InspectModel is the bubbletea model for browsing a measured scene. The
// upper table lists blocks in render order; the lower one shows the rows of
// the selected block.
type InspectModel struct {
	Scene    *workspace.Scene
	Cursor   int
	Offset   int
	Height   int
	Elements bool
}

// NewInspectModel creates a model positioned on the first block.
func NewInspectModel(s *workspace.Scene) InspectModel {
	return InspectModel{Scene: s, Height: 10}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Scene.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "e":
			m.Elements = !m.Elements
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height/3, 3)
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect " + m.Scene.Renderer))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%.0f×%.0f", m.Scene.Width, m.Scene.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  e elements  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.blockTable())
	b.WriteString("\n\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Scene.Items))))
	return b.String()
}

func (m InspectModel) blockTable() string {
	end := min(m.Offset+m.Height, len(m.Scene.Items))
	var rows [][]string
	for i := m.Offset; i < end; i++ {
		it := m.Scene.Items[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strings.Repeat("  ", it.Depth) + it.Block.Type(),
			it.Block.ID(),
			fmt.Sprintf("%.1f, %.1f", it.X, it.Y),
			fmt.Sprintf("%.1f × %.1f", it.Info.Width, it.Info.Height),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("", "Block", "ID", "Position", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col >= 3 {
				return listDimStyle
			}
			return listNormalStyle
		}).
		Render()
}

// detail renders the measured rows of the selected block.
func (m InspectModel) detail() string {
	it := m.Scene.Items[m.Cursor]
	var b strings.Builder
	b.WriteString(StyleHighlight.Render(it.Block.ID()))
	b.WriteString(" ")
	b.WriteString(listDimStyle.Render(it.Block.Type()))
	if shape := it.Path.OutputShape(); shape != 0 {
		b.WriteString(listDimStyle.Render(" · " + shape.String()))
	}
	if it.Info.RTL {
		b.WriteString(listDimStyle.Render(" · rtl"))
	}
	b.WriteString("\n")

	for _, row := range describeRows(it, m.Elements) {
		b.WriteString("  ")
		b.WriteString(StyleNumber.Render(fmt.Sprintf("%6.1f", row.y)))
		b.WriteString(" ")
		b.WriteString(listNormalStyle.Render(fmt.Sprintf("%-7s", row.kind)))
		b.WriteString(listDimStyle.Render(fmt.Sprintf(" %.1f × %.1f", row.width, row.height)))
		if row.elements != "" {
			b.WriteString("  ")
			b.WriteString(row.elements)
		}
		b.WriteString("\n")
	}
	return b.String()
}

type rowSummary struct {
	kind          string
	y             float64
	width, height float64
	elements      string
}

// describeRows summarizes the rows of a measured block. Spacers are left
// out of the element lists.
func describeRows(it *workspace.Item, withElements bool) []rowSummary {
	out := make([]rowSummary, 0, len(it.Info.Rows))
	for _, row := range it.Info.Rows {
		base := row.RowBase()
		rs := rowSummary{kind: rowKind(row), y: base.YPos, width: base.Width, height: base.Height}
		if withElements {
			elems := lo.Filter(base.Elements, func(e measurable.Measurable, _ int) bool {
				return !measurable.IsSpacer(e)
			})
			rs.elements = strings.Join(lo.Map(elems, func(e measurable.Measurable, _ int) string {
				return fmt.Sprintf("%s(%.0f)", e.Elem().Type, e.Elem().Width)
			}), ", ")
		}
		out = append(out, rs)
	}
	return out
}

func rowKind(row measurable.Rower) string {
	switch {
	case measurable.IsTopRow(row):
		return "top"
	case measurable.IsBottomRow(row):
		return "bottom"
	case measurable.IsSpacerRow(row):
		return "spacer"
	default:
		return "input"
	}
}
