package components

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink
	dimColor     = lipgloss.Color("235") // Dark gray
)

// Theme holds every style the overlay and its widgets draw with.
type Theme struct {
	Backdrop  lipgloss.Style
	Title     lipgloss.Style
	Frame     lipgloss.Style
	ImageName lipgloss.Style
	ImageSrc  lipgloss.Style
	Caption   lipgloss.Style
	Control   lipgloss.Style
	Counter   lipgloss.Style
	Selected  lipgloss.Style
	Item      lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
	Muted     lipgloss.Style
	Styled    bool
}

// StyledTheme is the default look.
func StyledTheme() Theme {
	return Theme{
		Backdrop: lipgloss.NewStyle().
			Background(dimColor).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3).
			Align(lipgloss.Center),
		ImageName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		ImageSrc:  lipgloss.NewStyle().Foreground(mutedColor),
		Caption: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("252")).
			MarginTop(1),
		Control: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Padding(0, 1),
		Counter:  lipgloss.NewStyle().Foreground(mutedColor),
		Selected: lipgloss.NewStyle().Foreground(accentColor).Bold(true),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Success:  lipgloss.NewStyle().Foreground(successColor),
		Failure:  lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(mutedColor),
		Styled:   true,
	}
}

// PlainTheme renders without colors, borders or padding.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Backdrop:  plain,
		Title:     plain,
		Frame:     plain,
		ImageName: plain,
		ImageSrc:  plain,
		Caption:   plain,
		Control:   plain,
		Counter:   plain,
		Selected:  plain,
		Item:      plain.PaddingLeft(2),
		Success:   plain,
		Failure:   plain,
		Muted:     plain,
	}
}

// ThemeFor picks the theme for a rendered view.
func ThemeFor(styled bool) Theme {
	if styled {
		return StyledTheme()
	}
	return PlainTheme()
}
