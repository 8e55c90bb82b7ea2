package gallery

import (
	"io/fs"
	"path/filepath"
)

// ScanDir collects the image files under root, recursively, skipping hidden
// directories. Paths are returned relative to root, ordered by strategy.
func ScanDir(root string, strategy SortStrategy) ([]string, error) {
	if strategy == nil {
		strategy = NaturalSort{}
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isHidden(d.Name()) || !IsImagePath(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return strategy.Sort(paths), nil
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
