package plugin

import (
	"fmt"
	"strconv"
	"strings"
)

// APIConstraint pins the component API major version a host can mount.
// Components declare "N.x" and are accepted when N matches.
type APIConstraint struct {
	Major int
}

// ParseAPIConstraint reads an "N.x" constraint such as HostAPIVersion.
func ParseAPIConstraint(s string) (APIConstraint, error) {
	major, rest, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok || rest != "x" {
		return APIConstraint{}, fmt.Errorf("invalid component API constraint %q (expected N.x)", s)
	}
	n, err := strconv.Atoi(major)
	if err != nil || n < 0 {
		return APIConstraint{}, fmt.Errorf("invalid component API major %q in %q", major, s)
	}
	return APIConstraint{Major: n}, nil
}

// Check returns ErrIncompatibleAPI when meta targets another major version.
func (c APIConstraint) Check(meta ComponentMetadata) error {
	major, _, _ := strings.Cut(strings.TrimSpace(meta.APIVersion), ".")
	if n, err := strconv.Atoi(major); err == nil && n == c.Major {
		return nil
	}
	return ErrIncompatibleAPI{Tag: meta.Tag, APIVersion: meta.APIVersion, Required: c.String()}
}

func (c APIConstraint) String() string {
	return strconv.Itoa(c.Major) + ".x"
}
