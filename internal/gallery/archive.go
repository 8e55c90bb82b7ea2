package gallery

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
)

// ArchiveSeparator joins an archive path and an entry name in an image src.
const ArchiveSeparator = "!"

// ArchiveSource builds the src of an archive entry.
func ArchiveSource(archive, entry string) string {
	return archive + ArchiveSeparator + entry
}

// SplitArchiveSource splits an archive src. ok is false for any other src.
func SplitArchiveSource(src string) (archive, entry string, ok bool) {
	idx := strings.LastIndex(src, ArchiveSeparator)
	if idx <= 0 || idx == len(src)-1 {
		return "", "", false
	}
	archive, entry = src[:idx], src[idx+1:]
	if !IsArchivePath(archive) {
		return "", "", false
	}
	return archive, entry, true
}

// ListArchive returns the image entries of a zip, 7z or rar archive in stored order.
func ListArchive(path string) ([]string, error) {
	switch archiveKind(path) {
	case "zip":
		return listZip(path)
	case "7z":
		return list7z(path)
	case "rar":
		return listRar(path)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", path)
	}
}

// OpenArchiveEntry opens one entry for reading. The caller closes the reader.
func OpenArchiveEntry(path, entry string) (io.ReadCloser, error) {
	switch archiveKind(path) {
	case "zip":
		r, err := zip.OpenReader(path)
		if err != nil {
			return nil, err
		}
		for _, f := range r.File {
			if f.Name == entry {
				rc, err := f.Open()
				if err != nil {
					r.Close()
					return nil, err
				}
				return &multiCloser{Reader: rc, closers: []io.Closer{rc, r}}, nil
			}
		}
		r.Close()
	case "7z":
		r, err := sevenzip.OpenReader(path)
		if err != nil {
			return nil, err
		}
		for _, f := range r.File {
			if f.Name == entry {
				rc, err := f.Open()
				if err != nil {
					r.Close()
					return nil, err
				}
				return &multiCloser{Reader: rc, closers: []io.Closer{rc, r}}, nil
			}
		}
		r.Close()
	case "rar":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		r, err := rardecode.NewReader(f, "")
		if err != nil {
			f.Close()
			return nil, err
		}
		for {
			header, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				f.Close()
				return nil, err
			}
			if header.Name == entry {
				return &multiCloser{Reader: r, closers: []io.Closer{f}}, nil
			}
		}
		f.Close()
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", path)
	}
	return nil, fmt.Errorf("entry %s not found in %s", entry, path)
}

func listZip(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && IsImagePath(f.Name) {
			entries = append(entries, f.Name)
		}
	}
	return entries, nil
}

func list7z(path string) ([]string, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var entries []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && IsImagePath(f.Name) {
			entries = append(entries, f.Name)
		}
	}
	return entries, nil
}

func listRar(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var entries []string
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !header.IsDir && IsImagePath(header.Name) {
			entries = append(entries, header.Name)
		}
	}
	return entries, nil
}

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
