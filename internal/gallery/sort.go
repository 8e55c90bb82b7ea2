package gallery

import (
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// SortStrategy orders the images collected from a directory or archive.
type SortStrategy interface {
	// Sort returns a sorted copy of paths.
	Sort(paths []string) []string
	Name() string
}

// NaturalSort orders "img2" before "img10".
type NaturalSort struct{}

// Sort implements SortStrategy.
func (NaturalSort) Sort(paths []string) []string {
	out := append([]string(nil), paths...)
	sort.SliceStable(out, func(i, j int) bool {
		return natural.Less(out[i], out[j])
	})
	return out
}

// Name implements SortStrategy.
func (NaturalSort) Name() string { return "natural" }

// SimpleSort is plain byte-wise ordering.
type SimpleSort struct{}

// Sort implements SortStrategy.
func (SimpleSort) Sort(paths []string) []string {
	out := append([]string(nil), paths...)
	sort.Strings(out)
	return out
}

// Name implements SortStrategy.
func (SimpleSort) Name() string { return "simple" }

// SortByName returns the strategy for a settings value, natural by default.
func SortByName(name string) SortStrategy {
	if strings.EqualFold(strings.TrimSpace(name), "simple") {
		return SimpleSort{}
	}
	return NaturalSort{}
}
