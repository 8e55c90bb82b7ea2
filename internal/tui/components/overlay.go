package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
)

// Marker tags a rendered region so the host can map clicks back to roles.
type Marker func(role lightbox.Role, rendered string) string

// Overlay draws a lightbox.View. It decides nothing: every region it draws
// is one the view says is present.
type Overlay struct {
	theme Theme
	mark  Marker
	width int
}

// NewOverlay creates a renderer. A nil marker leaves regions untagged.
func NewOverlay(theme Theme, mark Marker, width int) Overlay {
	if mark == nil {
		mark = func(_ lightbox.Role, s string) string { return s }
	}
	if width < 40 {
		width = 40
	}
	return Overlay{theme: theme, mark: mark, width: width}
}

// View renders v, or "" when the overlay is hidden.
func (o Overlay) View(v lightbox.View) string {
	if !v.Visible {
		return ""
	}

	var rows []string
	rows = append(rows, o.header(v))
	rows = append(rows, o.body(v))
	if v.ShowCaption {
		rows = append(rows, o.mark(lightbox.RoleCaption, o.theme.Caption.Render(o.truncate(v.Caption))))
	}
	rows = append(rows, o.footer(v))

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return o.mark(lightbox.RoleBackdrop, o.theme.Backdrop.Render(content))
}

func (o Overlay) header(v lightbox.View) string {
	var parts []string
	if v.Title != "" {
		parts = append(parts, o.mark(lightbox.RoleTitle, o.theme.Title.Render(o.truncate(v.Title))))
	}
	if v.ShowClose {
		if len(parts) > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, o.mark(lightbox.RoleClose, o.theme.Control.Render("[x]")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (o Overlay) body(v lightbox.View) string {
	var frame string
	if v.HasImage {
		name := o.theme.ImageName.Render(o.truncate(ImageLabel(v.Image)))
		src := o.theme.ImageSrc.Render(o.truncate(v.Image.Src))
		frame = o.mark(lightbox.RoleImage, o.theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Center, name, src)))
	} else {
		frame = o.theme.Muted.Render("No images")
	}

	if !v.ShowNav {
		return frame
	}
	prev := o.mark(lightbox.RolePrev, o.theme.Control.Render("‹"))
	next := o.mark(lightbox.RoleNext, o.theme.Control.Render("›"))
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", frame, " ", next)
}

func (o Overlay) footer(v lightbox.View) string {
	var parts []string
	if v.HasImage {
		parts = append(parts, NewPosition(v.Total, o.theme.Styled).View(v.Index))
	}
	if v.ShowDownload {
		if len(parts) > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, o.mark(lightbox.RoleDownload, o.theme.Control.Render("[download]")))
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Center, parts...), " ")
}

func (o Overlay) truncate(s string) string {
	return ansi.Truncate(s, o.width-12, "…")
}
