package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string
	Text       string
	Muted      string
	Faint      string
	Accent     string
	Success    string
	Warning    string
	Danger     string

	SelectionBg   string
	SelectionText string
	Border        string

	// StatusColors keys are lowercased workload statuses and event types.
	StatusColors map[string]string
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#343746",
		Text:          "#f8f8f2",
		Muted:         "#9ea8c7",
		Faint:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
		Border:        "#6272a4",
		StatusColors: map[string]string{
			"healthy":     "#50fa7b",
			"progressing": "#8be9fd",
			"degraded":    "#ffb86c",
			"failed":      "#ff5555",
			"normal":      "#50fa7b",
			"warning":     "#f1fa8c",
		},
	},
	{
		Name:          "Slate",
		Background:    "#1c1f26",
		Surface:       "#272b33",
		Text:          "#d8dee9",
		Muted:         "#9aa5b5",
		Faint:         "#616e7f",
		Accent:        "#88c0d0",
		Success:       "#a3be8c",
		Warning:       "#ebcb8b",
		Danger:        "#bf616a",
		SelectionBg:   "#3b4252",
		SelectionText: "#eceff4",
		Border:        "#4c566a",
		StatusColors: map[string]string{
			"healthy":     "#a3be8c",
			"progressing": "#81a1c1",
			"degraded":    "#d08770",
			"failed":      "#bf616a",
			"normal":      "#a3be8c",
			"warning":     "#ebcb8b",
		},
	},
}

// ThemeByName returns the named theme, falling back to the first theme
// when unknown.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return themes[0]
}

// StatusColor returns the color for a status string.
func (t Theme) StatusColor(status string) string {
	if c, ok := t.StatusColors[strings.ToLower(strings.TrimSpace(status))]; ok {
		return c
	}
	return t.Muted
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header     lipgloss.Style
	Footer     lipgloss.Style
	Logo       lipgloss.Style
	Selected   lipgloss.Style
	TableHead  lipgloss.Style
	Overlay    lipgloss.Style
	OverlayKey lipgloss.Style
}

// Styles builds the style set for the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		TableHead: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Bold(true),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		OverlayKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}
