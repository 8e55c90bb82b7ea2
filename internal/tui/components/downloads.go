package components

import (
	"fmt"
	"strings"
)

// DownloadStatus is one finished download.
type DownloadStatus struct {
	Index int
	Path  string
	Err   error
}

// Downloads renders the most recent download outcomes.
type Downloads struct {
	entries []DownloadStatus
	limit   int
}

// NewDownloads keeps the last limit entries.
func NewDownloads(entries []DownloadStatus, limit int) Downloads {
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return Downloads{entries: entries, limit: limit}
}

// View renders the outcomes, or "" when there are none.
func (d Downloads) View(theme Theme) string {
	if len(d.entries) == 0 {
		return ""
	}
	lines := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		if e.Err != nil {
			lines = append(lines, theme.Failure.Render("✗")+fmt.Sprintf(" #%d %v", e.Index+1, e.Err))
			continue
		}
		lines = append(lines, theme.Success.Render("✓")+fmt.Sprintf(" #%d saved to %s", e.Index+1, e.Path))
	}
	return strings.Join(lines, "\n")
}
