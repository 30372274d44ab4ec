package formatter

import (
	"fmt"
	"strings"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RatingColor returns the lipgloss style for a traffic-light rating.
func RatingColor(r domain.Rating) lipgloss.Style {
	switch r {
	case domain.RatingGreen:
		return StyleGreen
	case domain.RatingAmber:
		return StyleYellow
	case domain.RatingRed:
		return StyleRed
	default:
		return StyleDim
	}
}

// RatingIndicator returns a colored rating marker such as "● GREEN".
func RatingIndicator(r domain.Rating) string {
	switch r {
	case domain.RatingGreen:
		return StyleGreen.Render("● GREEN")
	case domain.RatingAmber:
		return StyleYellow.Render("● AMBER")
	case domain.RatingRed:
		return StyleRed.Render("● RED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ScoreBadge renders "87/100" colored by the score's rating.
func ScoreBadge(score int) string {
	return RatingColor(domain.RatingForScore(score)).Render(fmt.Sprintf("%d/100", score))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
