package report

import "github.com/charmbracelet/lipgloss"

// theme centralizes the report color palette.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type theme struct {
	Primary lipgloss.Color // #4d9375
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676

	Text      lipgloss.Color // #dbd7caee
	Secondary lipgloss.Color // #bfbaaa
	Muted     lipgloss.Color // #dedcd590
}

var vitesse = theme{
	Primary: lipgloss.Color("#4d9375"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),
}

var (
	okStyle    = lipgloss.NewStyle().Foreground(vitesse.Primary)
	warnStyle  = lipgloss.NewStyle().Foreground(vitesse.Yellow)
	errStyle   = lipgloss.NewStyle().Foreground(vitesse.Red)
	mutedStyle = lipgloss.NewStyle().Foreground(vitesse.Muted)
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(vitesse.Text)
)
