package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	vlerrors "github.com/alexisbeaulieu97/vlightbox/pkg/errors"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
title: "Demo Gallery"
options:
  loop: false
  download: true
images:
  - id: 1
    src: https://unsplash.it/500
    caption: Image 1
  - id: two
    src: ./photos/501.jpg
    downloadable: false
    download_url: https://unsplash.it/1501
`

	validTOML := `version = "1.0"

[[images]]
id = "1"
src = "https://unsplash.it/500"
caption = "Image 1"
`

	numericTOML := `version = "1.0"

[options]
download = true

[[images]]
id = 3
src = "a.jpg"

[[images]]
src = "b.jpg"
downloadable = false
`

	badTOMLID := `version = "1.0"

[[images]]
id = true
src = "a.jpg"
`

	invalidYAML := `version: [1, 0]
images:
  - src: a.jpg
`

	missingSrc := `version: "1.0"
images:
  - caption: "orphan"
`

	badVersion := `version: "beta"
images: []
`

	duplicateIDs := `version: "1.0"
images:
  - id: 1
    src: a.jpg
  - id: 1
    src: b.jpg
`

	badURL := `version: "1.0"
images:
  - src: "ftp://example.com/a.jpg"
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, m *Manifest, err error)
	}{
		{
			name:     "yaml manifest resolves defaults",
			file:     "gallery.yaml",
			contents: validYAML,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.NoError(t, err)
				require.Len(t, m.Images, 2)
				require.Equal(t, ImageID("1"), m.Images[0].ID)

				opts := m.LightboxOptions()
				require.False(t, opts.Loop)
				require.True(t, opts.Nav)
				require.True(t, opts.Caption)
				require.False(t, opts.ResetStyles)
				require.True(t, opts.Download)
				require.Equal(t, "Demo Gallery", opts.Title)

				images := m.LightboxImages()
				require.Equal(t, "two", images[1].ID)
				require.NotNil(t, images[1].Downloadable)
				require.False(t, *images[1].Downloadable)
				require.Equal(t, "https://unsplash.it/1501", lightbox.ResolveDownloadURL(images[1]))
				require.Nil(t, images[0].Downloadable)
			},
		},
		{
			name:     "toml manifest is parsed",
			file:     "gallery.toml",
			contents: validTOML,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.NoError(t, err)
				require.Len(t, m.Images, 1)
				require.Equal(t, lightbox.DefaultOptions(), m.LightboxOptions())
			},
		},
		{
			name:     "toml numeric id is kept as text",
			file:     "gallery.toml",
			contents: numericTOML,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.NoError(t, err)
				require.Len(t, m.Images, 2)
				require.Equal(t, ImageID("3"), m.Images[0].ID)

				images := m.LightboxImages()
				require.Equal(t, "3", images[0].ID)
				require.Empty(t, images[1].ID)
				require.NotNil(t, images[1].Downloadable)
				require.False(t, *images[1].Downloadable)
				require.True(t, m.LightboxOptions().Download)
			},
		},
		{
			name:     "toml id of another type is a parse error",
			file:     "gallery.toml",
			contents: badTOMLID,
			assert: func(t *testing.T, m *Manifest, err error) {
				var parseErr *vlerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "images[0].id")
			},
		},
		{
			name:     "invalid yaml returns parse error",
			file:     "gallery.yml",
			contents: invalidYAML,
			assert: func(t *testing.T, m *Manifest, err error) {
				var parseErr *vlerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "missing src is a validation error",
			file:     "gallery.yaml",
			contents: missingSrc,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *vlerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "images[0].src", validationErr.Field)
			},
		},
		{
			name:     "version must be major.minor",
			file:     "gallery.yaml",
			contents: badVersion,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *vlerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "version")
			},
		},
		{
			name:     "duplicate ids are rejected",
			file:     "gallery.yaml",
			contents: duplicateIDs,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *vlerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "images[1].id", validationErr.Field)
			},
		},
		{
			name:     "unsupported url scheme is rejected",
			file:     "gallery.yaml",
			contents: badURL,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *vlerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "image_src")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempManifest(t, tc.file, tc.contents)
			m, err := ParseManifest(path)
			tc.assert(t, m, err)
		})
	}
}

func TestParseManifestRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	path := writeTempManifest(t, "gallery.json", `{}`)
	_, err := ParseManifest(path)

	var parseErr *vlerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.False(t, IsManifestPath(path))
	require.True(t, IsManifestPath("photos/Gallery.YML"))
}

func TestEmptyImageListIsValid(t *testing.T) {
	t.Parallel()

	m, err := ParseManifestBytes("inline", FormatYAML, []byte("version: \"1.0\"\nimages: []\n"))
	require.NoError(t, err)
	require.Empty(t, m.LightboxImages())
}

func writeTempManifest(t *testing.T, name, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseShippedExamples(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"gallery.yaml", "gallery.toml"} {
		manifest, err := ParseManifest(filepath.Join("..", "..", "examples", name))
		require.NoError(t, err, name)
		require.Equal(t, "Sample gallery", manifest.Title, name)
		require.NotEmpty(t, manifest.Images, name)
	}
}
