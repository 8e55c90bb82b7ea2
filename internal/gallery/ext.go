package gallery

import (
	"path/filepath"
	"strings"
)

var imageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".bmp": {}, ".svg": {}, ".avif": {},
}

var archiveExts = map[string]struct{}{
	".zip": {}, ".cbz": {}, ".7z": {}, ".rar": {}, ".cbr": {},
}

// IsImagePath reports whether path has a supported image extension.
func IsImagePath(path string) bool {
	_, ok := imageExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// IsArchivePath reports whether path has a supported archive extension.
func IsArchivePath(path string) bool {
	_, ok := archiveExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

func archiveKind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".cbz":
		return "zip"
	case ".7z":
		return "7z"
	case ".rar", ".cbr":
		return "rar"
	default:
		return ""
	}
}

// captionFromName turns "IMG_0001-sunset.jpg" into "IMG_0001-sunset".
func captionFromName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
