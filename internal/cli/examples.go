package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/syntree-dev/syntree/pkg/pipeline"
)

// List styles.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// example is one bundled sample sentence.
type example struct {
	Name   string
	Source string
}

// builtinExamples covers the notation features: plain constituents,
// triangles, multiword terminals, subscripts, and movement lines.
var builtinExamples = []example{
	{
		Name:   "simple clause",
		Source: "[S [NP [D the] [N dog]] [VP [V barked]]]",
	},
	{
		Name:   "triangle abbreviation",
		Source: "[S [NP^ the angry dog] [VP [V chased] [NP^ the cat]]]",
	},
	{
		Name:   "multiword terminals",
		Source: "[S [NP the quick brown fox] [VP jumps over the lazy dog]]",
	},
	{
		Name:   "wh-movement",
		Source: "[CP [NP_1 what] [C' [C did] [S [NP you] [VP [V see] [NP <1>]]]]]",
	},
	{
		Name:   "subject raising",
		Source: "[S [NP_2 John] [VP [V seems] [S [NP <2>] [VP to sleep]]]]",
	},
	{
		Name:   "double movement",
		Source: "[CP [NP_1 who] [C' [C_2 did] [S [NP you] [VP <2> [V ask] [NP <1>]]]]]",
	},
}

// examplesCommand creates the examples command for browsing bundled trees.
// Interactive selection prints the bracket source; --render also writes a
// PNG next to the working directory.
func (c *CLI) examplesCommand() *cobra.Command {
	var render bool
	var list bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Browse bundled example sentences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, ex := range builtinExamples {
					fmt.Printf("%-22s %s\n", ex.Name, StyleDim.Render(ex.Source))
				}
				return nil
			}

			model := newExampleListModel(builtinExamples)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			m := final.(exampleListModel)
			if m.Selected == nil {
				return nil
			}

			printInfo("%s", m.Selected.Name)
			printDetail("%s", m.Selected.Source)

			if !render {
				return nil
			}
			return c.renderExample(cmd, *m.Selected)
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "render the selected example to a PNG")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print all examples without the interactive picker")
	return cmd
}

// renderExample renders one example to <slug>.png in the working directory.
func (c *CLI) renderExample(cmd *cobra.Command, ex example) error {
	runner, err := c.newRunner(false)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Source:  ex.Source,
		Formats: []string{pipeline.FormatPNG},
		Logger:  c.Logger,
	})
	if err != nil {
		return err
	}

	path := strings.ReplaceAll(ex.Name, " ", "_") + ".png"
	paths, err := writeArtifacts(result.Artifacts, []string{pipeline.FormatPNG}, path, "")
	if err != nil {
		return err
	}
	printSuccess("Rendered example")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.NodeCount, result.Stats.LinkCount, result.CacheInfo.RenderHit)
	return nil
}

// exampleListModel is the bubbletea model for interactive example selection.
type exampleListModel struct {
	Examples []example
	Cursor   int
	Selected *example
}

func newExampleListModel(examples []example) exampleListModel {
	return exampleListModel{Examples: examples}
}

func (m exampleListModel) Init() tea.Cmd {
	return nil
}

func (m exampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Examples)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Examples[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m exampleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Example"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, ex := range m.Examples {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-22s  %s", cursor, ex.Name, listDimStyle.Render(ex.Source))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Examples))))

	return b.String()
}
