// Package download saves the image a lightbox download request points at.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/vlightbox/internal/gallery"
	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
	vlerrors "github.com/alexisbeaulieu97/vlightbox/pkg/errors"
)

// DefaultTimeout bounds a single Save.
const DefaultTimeout = 2 * time.Minute

// Options configures a Saver.
type Options struct {
	Dir     string
	Client  *http.Client
	Timeout time.Duration
	Logger  ports.Logger
}

// Saver writes downloads into Dir. It implements lightbox.Saver.
type Saver struct {
	dir     string
	client  *http.Client
	timeout time.Duration
	logger  ports.Logger
}

var _ lightbox.Saver = (*Saver)(nil)

// New creates a Saver.
func New(opts Options) *Saver {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	return &Saver{
		dir:     opts.Dir,
		client:  opts.Client,
		timeout: opts.Timeout,
		logger:  opts.Logger.With("component", "downloader"),
	}
}

// Save implements lightbox.Saver.
func (s *Saver) Save(req lightbox.DownloadRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	_, err := s.Fetch(ctx, req)
	return err
}

// Fetch downloads req.URL and returns the path written. http(s) URLs are
// fetched, archive entries extracted and anything else copied as a local file.
func (s *Saver) Fetch(ctx context.Context, req lightbox.DownloadRequest) (string, error) {
	if strings.TrimSpace(req.URL) == "" {
		return "", vlerrors.NewDownloadError(req.Index, req.URL, errors.New("empty url"))
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", vlerrors.NewDownloadError(req.Index, req.URL, err)
	}

	var (
		dest string
		err  error
	)
	switch {
	case strings.HasPrefix(req.URL, "http://") || strings.HasPrefix(req.URL, "https://"):
		dest, err = s.fetchHTTP(ctx, req.URL)
	default:
		dest, err = s.copyLocal(req.URL)
	}
	if err != nil {
		return "", vlerrors.NewDownloadError(req.Index, req.URL, err)
	}

	s.logger.Info(ctx, "image saved", "index", req.Index, "url", req.URL, "path", dest)
	return dest, nil
}

func (s *Saver) fetchHTTP(ctx context.Context, rawURL string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	name := nameFromResponse(resp, rawURL)
	return writeUnique(s.dir, name, resp.Body)
}

func (s *Saver) copyLocal(src string) (string, error) {
	src = strings.TrimPrefix(src, "file://")

	if archive, entry, ok := gallery.SplitArchiveSource(src); ok {
		rc, err := gallery.OpenArchiveEntry(archive, entry)
		if err != nil {
			return "", err
		}
		defer rc.Close()
		return writeUnique(s.dir, path.Base(entry), rc)
	}

	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return writeUnique(s.dir, filepath.Base(src), f)
}

func nameFromResponse(resp *http.Response, rawURL string) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			return params["filename"]
		}
	}

	name := ""
	if u, err := url.Parse(rawURL); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "/" || name == "." {
		name = "image"
	}
	if filepath.Ext(name) == "" {
		if exts, err := mime.ExtensionsByType(resp.Header.Get("Content-Type")); err == nil && len(exts) > 0 {
			name += exts[0]
		}
	}
	return name
}

// writeUnique copies r into dir/name, appending " (n)" before the extension
// until the name is free.
func writeUnique(dir, name string, r io.Reader) (string, error) {
	name = sanitize(name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for n := 0; ; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		dest := filepath.Join(dir, candidate)

		f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}

		if _, err := io.Copy(f, r); err != nil {
			f.Close()
			os.Remove(dest)
			return "", err
		}
		if err := f.Close(); err != nil {
			os.Remove(dest)
			return "", err
		}
		return dest, nil
	}
}

func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '/' || r == ':' {
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "image"
	}
	return name
}
