package components

import (
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
)

// FilmstripEntry is one image in the closed-overlay listing.
type FilmstripEntry struct {
	Index   int
	Label   string
	Current bool
}

// Filmstrip lists a window of images around the current index.
type Filmstrip struct {
	entries []FilmstripEntry
}

// NewFilmstrip builds at most size entries centred on current.
func NewFilmstrip(images []lightbox.Image, current, size int) Filmstrip {
	if size <= 0 || len(images) == 0 {
		return Filmstrip{}
	}

	start := current - size/2
	if start > len(images)-size {
		start = len(images) - size
	}
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > len(images) {
		end = len(images)
	}

	entries := make([]FilmstripEntry, 0, end-start)
	for i := start; i < end; i++ {
		entries = append(entries, FilmstripEntry{
			Index:   i,
			Label:   ImageLabel(images[i]),
			Current: i == current,
		})
	}
	return Filmstrip{entries: entries}
}

// Entries returns the ordered entries.
func (f Filmstrip) Entries() []FilmstripEntry {
	clone := make([]FilmstripEntry, len(f.entries))
	copy(clone, f.entries)
	return clone
}

// View renders one line per entry.
func (f Filmstrip) View(theme Theme) string {
	lines := make([]string, 0, len(f.entries))
	for _, entry := range f.entries {
		if entry.Current {
			lines = append(lines, theme.Selected.Render("> "+entry.Label))
			continue
		}
		lines = append(lines, theme.Item.Render(entry.Label))
	}
	return strings.Join(lines, "\n")
}

// ImageLabel names an image by caption, then id, then file name.
func ImageLabel(img lightbox.Image) string {
	switch {
	case strings.TrimSpace(img.Caption) != "":
		return img.Caption
	case strings.TrimSpace(img.ID) != "":
		return img.ID
	default:
		return filepath.Base(img.Src)
	}
}
