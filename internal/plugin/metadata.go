package plugin

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	apiverPattern = regexp.MustCompile(`^\d+\.x$`)
)

// ComponentMetadata describes a registered component.
type ComponentMetadata struct {
	Tag         string
	Version     string
	APIVersion  string
	Description string
}

// Validate ensures metadata is well-formed.
func (m ComponentMetadata) Validate() error {
	if strings.TrimSpace(m.Tag) == "" {
		return fmt.Errorf("component metadata requires a non-empty Tag")
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("component '%s' has invalid Version '%s' (expected format: X.Y.Z)", m.Tag, m.Version)
	}
	if !apiverPattern.MatchString(m.APIVersion) {
		return fmt.Errorf("component '%s' has invalid APIVersion '%s' (expected format: N.x)", m.Tag, m.APIVersion)
	}
	return nil
}
