package settings

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"devup/internal/tools"
)

// RunForm launches an interactive form to choose which tools the bootstrap
// run manages and where the Claude workspace lives, then saves settings.yaml.
func RunForm() error {
	cur, _ := Load()

	// Selection bound to the MultiSelect: enabled tool IDs
	selected := make([]string, 0, len(tools.Tools))
	for _, t := range tools.Tools {
		if cur.Enabled(t.ID) {
			selected = append(selected, string(t.ID))
		}
	}
	workspace := cur.Workspace

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)

	opts := make([]huh.Option[string], 0, len(tools.Tools))
	for _, t := range tools.Tools {
		opts = append(opts, huh.NewOption(t.DisplayName, string(t.ID)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("devup settings").Description("Pick the tools the bootstrap run should manage."),
			huh.NewMultiSelect[string]().
				Title("Tools").
				Options(opts...).
				Height(len(opts)).
				Value(&selected),
			huh.NewInput().
				Title("Workspace").
				Description("Directory the Claude launcher and MCP server target.").
				Value(&workspace),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	enabled := map[string]bool{}
	for _, id := range selected {
		enabled[id] = true
	}
	next := cur
	next.Workspace = workspace
	next.Disabled = next.Disabled[:0]
	for _, t := range tools.Tools {
		if !enabled[string(t.ID)] {
			next.Disabled = append(next.Disabled, string(t.ID))
		}
	}
	if err := Save(next); err != nil {
		return err
	}
	fmt.Printf("\n✓ saved settings.yaml (%d of %d tools enabled)\n\n", len(selected), len(tools.Tools))
	return nil
}
