package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/soaringjerry/ipss-selfcheck/internal/services"
)

// Styles groups the lipgloss styles of the form.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Card     lipgloss.Style
	Score    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
}

const (
	colorSky     = lipgloss.Color("#0ea5e9")
	colorSlate   = lipgloss.Color("#64748b")
	colorEmerald = lipgloss.Color("#10b981")
	colorAmber   = lipgloss.Color("#f59e0b")
	colorRose    = lipgloss.Color("#f43f5e")
)

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e293b")),
		Subtle:   lipgloss.NewStyle().Foreground(colorSlate),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#334155")),
		Focused:  lipgloss.NewStyle().Foreground(colorSky).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(colorSky).Bold(true).Underline(true),
		Option:   lipgloss.NewStyle().Foreground(colorSlate),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#cbd5e1")).Padding(0, 1),
		Score:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e293b")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e11d48")),
		Button:   lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#0284c7")),
		Disabled: lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#cbd5e1")),
	}
}

// Badge renders the tier label on its tier colour.
func (s Styles) Badge(t services.Tier, locale string) string {
	bg := colorEmerald
	switch t {
	case services.TierModerate:
		bg = colorAmber
	case services.TierSevere:
		bg = colorRose
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(bg).
		Render(t.Label(locale))
}
