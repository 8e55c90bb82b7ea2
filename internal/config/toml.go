package config

import (
	"fmt"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// tomlManifest is the TOML shape of Manifest. TOML keeps integer and string
// values distinct, so ids are decoded loosely and converted to text.
type tomlManifest struct {
	Version string         `toml:"version"`
	Title   string         `toml:"title"`
	Options DisplayOptions `toml:"options"`
	Images  []tomlImage    `toml:"images"`
}

type tomlImage struct {
	ID           interface{} `toml:"id"`
	Src          string      `toml:"src"`
	Caption      string      `toml:"caption"`
	Downloadable *bool       `toml:"downloadable"`
	DownloadURL  string      `toml:"download_url"`
}

func decodeTOML(data []byte, manifest *Manifest) error {
	var doc tomlManifest
	if err := toml.Unmarshal(data, &doc); err != nil {
		return err
	}

	manifest.Version = doc.Version
	manifest.Title = doc.Title
	manifest.Options = doc.Options
	manifest.Images = make([]ImageEntry, 0, len(doc.Images))
	for i, img := range doc.Images {
		id, err := tomlImageID(img.ID)
		if err != nil {
			return fmt.Errorf("images[%d].id: %w", i, err)
		}
		manifest.Images = append(manifest.Images, ImageEntry{
			ID:           id,
			Src:          img.Src,
			Caption:      img.Caption,
			Downloadable: img.Downloadable,
			DownloadURL:  img.DownloadURL,
		})
	}
	return nil
}

func tomlImageID(value interface{}) (ImageID, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return ImageID(v), nil
	case int64:
		return ImageID(strconv.FormatInt(v, 10)), nil
	case float64:
		return ImageID(strconv.FormatFloat(v, 'f', -1, 64)), nil
	default:
		return "", fmt.Errorf("image id must be a number or a string, got %T", value)
	}
}
