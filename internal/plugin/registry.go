// Package plugin is the host-side registry components install themselves into.
package plugin

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

// HostAPIVersion is the component API the registry accepts by default.
const HostAPIVersion = "1.x"

// RegistryConfig configures a ComponentRegistry.
type RegistryConfig struct {
	// APIVersion is the "N.x" constraint component metadata must satisfy.
	APIVersion string
	// DefaultVersion fills ComponentMetadata.Version for RegisterComponent.
	DefaultVersion string
}

// DefaultConfig returns the registry configuration hosts use.
func DefaultConfig() *RegistryConfig {
	return &RegistryConfig{
		APIVersion:     HostAPIVersion,
		DefaultVersion: "1.0.0",
	}
}

// ComponentRegistry maps tags to component factories. It implements lightbox.Registrar.
type ComponentRegistry struct {
	mu         sync.RWMutex
	factories  map[string]lightbox.Factory
	metadata   map[string]ComponentMetadata
	constraint APIConstraint
	config     *RegistryConfig
	logger     ports.Logger
}

var _ lightbox.Registrar = (*ComponentRegistry)(nil)

// NewComponentRegistry returns an empty registry.
func NewComponentRegistry(config *RegistryConfig, log ports.Logger) (*ComponentRegistry, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if log == nil {
		log = logging.Discard
	}

	constraint, err := ParseAPIConstraint(config.APIVersion)
	if err != nil {
		return nil, err
	}

	return &ComponentRegistry{
		factories:  make(map[string]lightbox.Factory),
		metadata:   make(map[string]ComponentMetadata),
		constraint: constraint,
		config:     config,
		logger:     log.With("component", "registry"),
	}, nil
}

// RegisterComponent implements lightbox.Registrar with default metadata.
func (r *ComponentRegistry) RegisterComponent(tag string, factory lightbox.Factory) error {
	return r.Register(ComponentMetadata{
		Tag:        tag,
		Version:    r.config.DefaultVersion,
		APIVersion: r.config.APIVersion,
	}, factory)
}

// Register adds factory under meta.Tag.
func (r *ComponentRegistry) Register(meta ComponentMetadata, factory lightbox.Factory) error {
	if factory == nil {
		return fmt.Errorf("component '%s' factory is nil", meta.Tag)
	}
	if err := meta.Validate(); err != nil {
		return err
	}
	if err := r.constraint.Check(meta); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[meta.Tag]; exists {
		return ErrDuplicateComponent{Tag: meta.Tag}
	}

	r.factories[meta.Tag] = factory
	r.metadata[meta.Tag] = meta
	r.logger.Debug(context.Background(), "component registered", "tag", meta.Tag, "version", meta.Version)
	return nil
}

// Build creates a component instance from the factory registered under tag.
func (r *ComponentRegistry) Build(tag string, opts lightbox.ComponentOptions) (*lightbox.Component, error) {
	r.mu.RLock()
	factory, ok := r.factories[tag]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrComponentNotFound{Tag: tag}
	}
	return factory(opts), nil
}

// Metadata returns the metadata stored for tag.
func (r *ComponentRegistry) Metadata(tag string) (ComponentMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.metadata[tag]
	return meta, ok
}

// List returns registered tags in sorted order.
func (r *ComponentRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
