package tui

import "github.com/alexisbeaulieu97/vlightbox/internal/lightbox"

// ClickMsg is a click on a tagged region, already resolved from mouse coordinates.
type ClickMsg struct {
	Role lightbox.Role
}

// DownloadDoneMsg reports the outcome of a download started by the component.
type DownloadDoneMsg struct {
	Index int
	URL   string
	Path  string
	Err   error
}
