package lightbox

import "strings"

// IsDownloadAvailable reports whether img may be downloaded. A per-image
// Downloadable value wins over the global flag in both directions.
func IsDownloadAvailable(img Image, global bool) bool {
	if img.Downloadable != nil {
		return *img.Downloadable
	}
	return global
}

// ResolveDownloadURL returns DownloadURL when set, otherwise Src.
func ResolveDownloadURL(img Image) string {
	if strings.TrimSpace(img.DownloadURL) != "" {
		return img.DownloadURL
	}
	return img.Src
}

// IsCaptionVisible reports whether the caption paragraph is rendered.
func IsCaptionVisible(img Image, enabled bool) bool {
	return enabled && img.Caption != ""
}

// DownloadRequest is what a Saver receives after DownloadRequested was emitted.
type DownloadRequest struct {
	Index int
	Image Image
	URL   string
}

// Saver performs the environment-level download. Implementations must not
// block the caller for long; the component calls Save once per request and
// only logs a returned error.
type Saver interface {
	Save(req DownloadRequest) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(DownloadRequest) error

// Save implements Saver.
func (f SaverFunc) Save(req DownloadRequest) error {
	return f(req)
}

// Download requests a download of the current image when one is available.
func Download(props Props) []Event {
	img, ok := props.Current()
	if !ok || !IsDownloadAvailable(img, props.Options.Download) {
		return nil
	}
	return []Event{DownloadRequested{Index: props.CurrentIndex, Image: img}}
}
