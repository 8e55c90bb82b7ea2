// Package gallery turns a location on disk or a remote repository into the
// ordered image list the lightbox displays.
package gallery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/vlightbox/internal/config"
	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
	vlerrors "github.com/alexisbeaulieu97/vlightbox/pkg/errors"
)

// Kind names the source a gallery was loaded from.
type Kind string

const (
	KindDir      Kind = "dir"
	KindArchive  Kind = "archive"
	KindManifest Kind = "manifest"
	KindGit      Kind = "git"
)

// ManifestNames are looked up, in order, at the root of a directory or checkout.
var ManifestNames = []string{"gallery.yaml", "gallery.yml", "gallery.toml"}

// Gallery is a loaded image collection plus the display options its source asked for.
type Gallery struct {
	Title   string
	Images  []lightbox.Image
	Options lightbox.Options
	Origin  string
	Kind    Kind
}

// Props returns host props for the gallery, overlay open at index.
func (g *Gallery) Props(index int) lightbox.Props {
	return lightbox.Props{
		Images:        g.Images,
		CurrentIndex:  index,
		OverlayActive: true,
		Options:       g.Options,
	}
}

// Options controls how sources are read.
type Options struct {
	Sort     SortStrategy
	CloneDir string
	Logger   ports.Logger
}

// Load resolves location to a gallery. Directories prefer a manifest at their
// root and otherwise are scanned for images.
func Load(ctx context.Context, location string, opts Options) (*Gallery, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	if opts.Sort == nil {
		opts.Sort = NaturalSort{}
	}
	logger := opts.Logger.With("component", "gallery")

	if src, ok := ParseGitSource(location); ok {
		if opts.CloneDir == "" {
			return nil, vlerrors.NewSourceError(string(KindGit), location, fmt.Errorf("no clone directory configured"))
		}
		dest, err := Checkout(ctx, src, opts.CloneDir, logger)
		if err != nil {
			return nil, vlerrors.NewSourceError(string(KindGit), location, err)
		}
		g, err := loadDir(ctx, dest, opts, logger)
		if err != nil {
			return nil, vlerrors.NewSourceError(string(KindGit), location, err)
		}
		g.Origin = location
		g.Kind = KindGit
		return g, nil
	}

	path := location
	if strings.HasPrefix(path, "file://") {
		path = strings.TrimPrefix(path, "file://")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, vlerrors.NewSourceError("path", location, err)
	}

	switch {
	case info.IsDir():
		g, err := loadDir(ctx, path, opts, logger)
		if err != nil {
			return nil, vlerrors.NewSourceError(string(KindDir), location, err)
		}
		return g, nil
	case IsArchivePath(path):
		return loadArchive(ctx, path, opts, logger)
	case config.IsManifestPath(path):
		return loadManifest(ctx, path, logger)
	default:
		return nil, vlerrors.NewSourceError("path", location, fmt.Errorf("not a directory, archive or manifest"))
	}
}

func loadDir(ctx context.Context, dir string, opts Options, logger ports.Logger) (*Gallery, error) {
	for _, name := range ManifestNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return loadManifest(ctx, candidate, logger)
		}
	}

	paths, err := ScanDir(dir, opts.Sort)
	if err != nil {
		return nil, err
	}

	images := make([]lightbox.Image, 0, len(paths))
	for _, rel := range paths {
		images = append(images, lightbox.Image{
			ID:      rel,
			Src:     filepath.Join(dir, filepath.FromSlash(rel)),
			Caption: captionFromName(rel),
		})
	}

	logger.Debug(ctx, "gallery directory scanned", "path", dir, "images", len(images), "sort", opts.Sort.Name())
	return &Gallery{
		Title:   filepath.Base(dir),
		Images:  images,
		Options: lightbox.DefaultOptions(),
		Origin:  dir,
		Kind:    KindDir,
	}, nil
}

func loadArchive(ctx context.Context, path string, opts Options, logger ports.Logger) (*Gallery, error) {
	entries, err := ListArchive(path)
	if err != nil {
		return nil, vlerrors.NewSourceError(string(KindArchive), path, err)
	}
	entries = opts.Sort.Sort(entries)

	images := make([]lightbox.Image, 0, len(entries))
	for _, entry := range entries {
		images = append(images, lightbox.Image{
			ID:      entry,
			Src:     ArchiveSource(path, entry),
			Caption: captionFromName(entry),
		})
	}

	logger.Debug(ctx, "gallery archive listed", "path", path, "images", len(images))
	return &Gallery{
		Title:   captionFromName(path),
		Images:  images,
		Options: lightbox.DefaultOptions(),
		Origin:  path,
		Kind:    KindArchive,
	}, nil
}

func loadManifest(ctx context.Context, path string, logger ports.Logger) (*Gallery, error) {
	manifest, err := config.ParseManifest(path)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	images := manifest.LightboxImages()
	for i := range images {
		images[i].Src = resolveRelative(base, images[i].Src)
		images[i].DownloadURL = resolveRelative(base, images[i].DownloadURL)
	}

	logger.Debug(ctx, "gallery manifest loaded", "path", path, "images", len(images))
	return &Gallery{
		Title:   manifest.Title,
		Images:  images,
		Options: manifest.LightboxOptions(),
		Origin:  path,
		Kind:    KindManifest,
	}, nil
}

// resolveRelative anchors plain relative paths (including archive srcs) at base.
// URLs and absolute paths are returned unchanged.
func resolveRelative(base, src string) string {
	if src == "" || strings.Contains(src, "://") || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(base, src)
}
