package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/tui/components"
)

const filmstripSize = 7

// View renders the overlay when open, otherwise the gallery listing.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.component.View()
	theme := components.ThemeFor(v.Styled)

	var sections []string
	if v.Visible {
		mark := func(role lightbox.Role, s string) string {
			return m.zones.Mark(role.String(), s)
		}
		sections = append(sections, components.NewOverlay(theme, mark, m.width).View(v))
	} else {
		title := m.props.Options.Title
		if title == "" {
			title = "Gallery"
		}
		header := title
		if v.Styled {
			header = headerStyle.Render(title)
		}
		sections = append(sections, header, components.NewFilmstrip(m.props.Images, m.props.CurrentIndex, filmstripSize).View(theme))
	}

	if log := components.NewDownloads(m.downloads, 3).View(theme); log != "" {
		sections = append(sections, footerStyle.Render(log))
	}
	if line := m.statusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) statusLine() string {
	switch {
	case m.downloading > 0:
		return statusStyle.Render(m.spinner.View() + " " + m.status)
	case m.status == "":
		return ""
	case m.statusErr:
		return errorStatusStyle.Render(m.status)
	default:
		return statusStyle.Render(m.status)
	}
}
