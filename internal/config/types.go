package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
)

// Manifest is a gallery document: display options plus an ordered image list.
type Manifest struct {
	Version string         `yaml:"version" validate:"required,semver"`
	Title   string         `yaml:"title,omitempty" validate:"max=200"`
	Options DisplayOptions `yaml:"options,omitempty"`
	Images  []ImageEntry   `yaml:"images" validate:"omitempty,dive"`
}

// DisplayOptions mirrors lightbox.Options with optional fields so omitted
// values fall back to the documented defaults.
type DisplayOptions struct {
	Loop        *bool `yaml:"loop,omitempty" toml:"loop,omitempty"`
	Nav         *bool `yaml:"nav,omitempty" toml:"nav,omitempty"`
	Caption     *bool `yaml:"caption,omitempty" toml:"caption,omitempty"`
	ResetStyles *bool `yaml:"reset_styles,omitempty" toml:"reset_styles,omitempty"`
	Download    *bool `yaml:"download,omitempty" toml:"download,omitempty"`
}

// ImageID accepts numbers as well as strings and keeps them as text.
type ImageID string

// UnmarshalYAML keeps the scalar text whatever its YAML type.
func (id *ImageID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: image id must be a number or a string", value.Line)
	}
	*id = ImageID(value.Value)
	return nil
}

// ImageEntry is one image of a manifest.
type ImageEntry struct {
	ID           ImageID `yaml:"id,omitempty" validate:"max=128"`
	Src          string  `yaml:"src" validate:"required,image_src"`
	Caption      string  `yaml:"caption,omitempty"`
	Downloadable *bool   `yaml:"downloadable,omitempty"`
	DownloadURL  string  `yaml:"download_url,omitempty" validate:"omitempty,image_src"`
}

// Image converts the entry to the component's image type.
func (e ImageEntry) Image() lightbox.Image {
	img := lightbox.Image{
		ID:          strings.TrimSpace(string(e.ID)),
		Src:         strings.TrimSpace(e.Src),
		Caption:     e.Caption,
		DownloadURL: strings.TrimSpace(e.DownloadURL),
	}
	if e.Downloadable != nil {
		img.Downloadable = lightbox.Bool(*e.Downloadable)
	}
	return img
}

// Resolve applies o on top of the component defaults.
func (o DisplayOptions) Resolve(title string) lightbox.Options {
	opts := lightbox.DefaultOptions()
	opts.Title = title
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&opts.Loop, o.Loop)
	apply(&opts.Nav, o.Nav)
	apply(&opts.Caption, o.Caption)
	apply(&opts.ResetStyles, o.ResetStyles)
	apply(&opts.Download, o.Download)
	return opts
}

// LightboxImages converts every entry in order.
func (m *Manifest) LightboxImages() []lightbox.Image {
	images := make([]lightbox.Image, 0, len(m.Images))
	for _, entry := range m.Images {
		images = append(images, entry.Image())
	}
	return images
}

// LightboxOptions resolves the manifest options, including the title.
func (m *Manifest) LightboxOptions() lightbox.Options {
	return m.Options.Resolve(m.Title)
}
