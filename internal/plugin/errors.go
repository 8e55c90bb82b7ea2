package plugin

import "fmt"

// ErrComponentNotFound is returned when no component is registered under a tag.
type ErrComponentNotFound struct {
	Tag string
}

func (e ErrComponentNotFound) Error() string {
	return fmt.Sprintf("component '%s' not found in registry\nHint: install the component before mounting it", e.Tag)
}

// ErrDuplicateComponent is returned when a tag is registered twice.
type ErrDuplicateComponent struct {
	Tag string
}

func (e ErrDuplicateComponent) Error() string {
	return fmt.Sprintf("component '%s' already registered\nHint: each tag can only be installed once per registry", e.Tag)
}

// ErrIncompatibleAPI is returned when a component targets another API major version.
type ErrIncompatibleAPI struct {
	Tag        string
	APIVersion string
	Required   string
}

func (e ErrIncompatibleAPI) Error() string {
	return fmt.Sprintf("component '%s' targets API %s but the host requires %s\nHint: upgrade the component or the host", e.Tag, e.APIVersion, e.Required)
}
