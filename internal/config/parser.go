package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	vlerrors "github.com/alexisbeaulieu97/vlightbox/pkg/errors"
)

// Format identifies a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// IsManifestPath reports whether path has a manifest extension.
func IsManifestPath(path string) bool {
	_, ok := formatFor(path)
	return ok
}

// ParseManifest reads, decodes and validates the manifest at path.
func ParseManifest(path string) (*Manifest, error) {
	format, ok := formatFor(path)
	if !ok {
		return nil, vlerrors.NewParseError(path, 0, fmt.Errorf("unsupported manifest extension %q", filepath.Ext(path)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vlerrors.NewParseError(path, 0, err)
	}

	return ParseManifestBytes(path, format, data)
}

// ParseManifestBytes decodes and validates data. path is only used for error reporting.
func ParseManifestBytes(path string, format Format, data []byte) (*Manifest, error) {
	var manifest Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, vlerrors.NewParseError(path, yamlLine(err), err)
		}
	case FormatTOML:
		if err := decodeTOML(data, &manifest); err != nil {
			return nil, vlerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, vlerrors.NewParseError(path, 0, fmt.Errorf("unknown manifest format %q", format))
	}

	if err := ValidateManifest(&manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func formatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
