package lightbox

// Image is a single gallery entry. Hosts own the slice; the component never mutates it.
type Image struct {
	ID           string `json:"id,omitempty"`
	Src          string `json:"src"`
	Caption      string `json:"caption,omitempty"`
	Downloadable *bool  `json:"downloadable,omitempty"`
	DownloadURL  string `json:"download_url,omitempty"`
}

// Options holds the host-supplied display configuration.
type Options struct {
	Loop        bool   `json:"loop"`
	Nav         bool   `json:"nav"`
	Caption     bool   `json:"caption"`
	ResetStyles bool   `json:"reset_styles"`
	Download    bool   `json:"download"`
	Title       string `json:"title,omitempty"`
}

// DefaultOptions returns the documented option defaults.
func DefaultOptions() Options {
	return Options{
		Loop:    true,
		Nav:     true,
		Caption: true,
	}
}

// Props is the full input of a render pass.
type Props struct {
	Images        []Image
	CurrentIndex  int
	OverlayActive bool
	Options       Options
}

// Len returns the number of images.
func (p Props) Len() int {
	return len(p.Images)
}

// Current returns the displayed image, or false when the index is out of range.
func (p Props) Current() (Image, bool) {
	if p.CurrentIndex < 0 || p.CurrentIndex >= len(p.Images) {
		return Image{}, false
	}
	return p.Images[p.CurrentIndex], true
}

// Bool returns a pointer to v, for populating Image.Downloadable.
func Bool(v bool) *bool {
	return &v
}
