package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/skin"
)

// Styles are the lipgloss styles derived from a skin. Chart marks keep their
// catalog colors; only chrome is skinned.
type Styles struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Overlay    lipgloss.Color

	Section        lipgloss.Style
	ActiveSection  lipgloss.Style
	DeckTitle      lipgloss.Style
	Heading        lipgloss.Style
	Help           lipgloss.Style
	Header         lipgloss.Style
	Status         lipgloss.Style
	Sidebar        lipgloss.Style
	SidebarTitle   lipgloss.Style
	SidebarHeading lipgloss.Style
	Link           lipgloss.Style
	Button         lipgloss.Style
	Input          lipgloss.Style
	Dimmed         lipgloss.Style
	TooltipHeader  lipgloss.Style
	TooltipBorder  lipgloss.Style
	Grid           lipgloss.Style
}

// NewStyles builds the style set for a skin.
func NewStyles(s skin.Skin) Styles {
	st := Styles{
		Background: lipgloss.Color(s.Background),
		Surface:    lipgloss.Color(s.Surface),
		Border:     lipgloss.Color(s.Border),
		Text:       lipgloss.Color(s.Text),
		Muted:      lipgloss.Color(s.Muted),
		Accent:     lipgloss.Color(s.Accent),
		Overlay:    lipgloss.Color(s.Overlay),
	}

	st.Section = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Border).
		Padding(0, 1)
	st.ActiveSection = st.Section.BorderForeground(st.Accent)
	st.DeckTitle = lipgloss.NewStyle().Foreground(st.Text).Bold(true)
	st.Heading = lipgloss.NewStyle().Foreground(st.Text).Bold(true).Padding(0, 1)
	st.Help = lipgloss.NewStyle().Foreground(st.Muted)
	st.Header = lipgloss.NewStyle().Background(st.Surface).Foreground(st.Text)
	st.Status = lipgloss.NewStyle().Background(st.Surface).Foreground(st.Muted)
	st.Sidebar = lipgloss.NewStyle().
		Background(st.Surface).
		Foreground(st.Text).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(st.Border).
		BorderBackground(st.Surface).
		Padding(0, 1)
	st.SidebarTitle = lipgloss.NewStyle().Background(st.Surface).Foreground(st.Text).Bold(true)
	st.SidebarHeading = lipgloss.NewStyle().Background(st.Surface).Foreground(st.Muted).Bold(true)
	st.Link = lipgloss.NewStyle().Background(st.Surface).Foreground(st.Text)
	st.Button = lipgloss.NewStyle().Background(st.Surface).Foreground(st.Accent).Bold(true)
	st.Input = lipgloss.NewStyle().
		Background(st.Background).
		Foreground(st.Muted).
		Padding(0, 1)
	st.Dimmed = lipgloss.NewStyle().Foreground(st.Overlay).Faint(true)
	st.TooltipHeader = lipgloss.NewStyle().Foreground(st.Text).Bold(true)
	st.TooltipBorder = lipgloss.NewStyle().Foreground(st.Border)
	st.Grid = lipgloss.NewStyle().Foreground(st.Border)
	return st
}

// swatch renders a colored block used by legends.
func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}
