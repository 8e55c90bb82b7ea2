// Package tui is the terminal host for the lightbox component. It owns the
// props, feeds keys and clicks to the component and commits what it emits.
package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
	"github.com/alexisbeaulieu97/vlightbox/internal/tui/components"
)

// ComponentBuilder resolves a component by tag.
type ComponentBuilder interface {
	Build(tag string, opts lightbox.ComponentOptions) (*lightbox.Component, error)
}

// Fetcher performs downloads off the update loop.
type Fetcher interface {
	Fetch(ctx context.Context, req lightbox.DownloadRequest) (string, error)
}

// Options configures a Model.
type Options struct {
	Context   context.Context
	Props     lightbox.Props
	Registry  ComponentBuilder
	Fetcher   Fetcher
	Publisher ports.EventPublisher
	Logger    ports.Logger
}

// pending collects what the component emitted during one dispatch.
type pending struct {
	events    []lightbox.Event
	downloads []lightbox.DownloadRequest
}

func (p *pending) drain() ([]lightbox.Event, []lightbox.DownloadRequest) {
	events, downloads := p.events, p.downloads
	p.events, p.downloads = nil, nil
	return events, downloads
}

// Model is the bubbletea model hosting one mounted lightbox component.
type Model struct {
	ctx       context.Context
	props     lightbox.Props
	bus       *lightbox.KeyBus
	component *lightbox.Component
	queue     *pending
	fetcher   Fetcher
	publisher ports.EventPublisher
	logger    ports.Logger
	zones     *zone.Manager
	closeOnce *sync.Once

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	downloading int
	downloads   []components.DownloadStatus
	status      string
	statusErr   bool

	width    int
	height   int
	quitting bool
}

// NewModel builds the component through the registry and mounts it.
func NewModel(opts Options) (Model, error) {
	if opts.Registry == nil {
		return Model{}, fmt.Errorf("component registry is required")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	logger := opts.Logger.With("layer", "host", "component", "tui")

	queue := &pending{}
	component, err := opts.Registry.Build(lightbox.TagName, lightbox.ComponentOptions{
		Emit: func(e lightbox.Event) {
			queue.events = append(queue.events, e)
		},
		Saver: lightbox.SaverFunc(func(req lightbox.DownloadRequest) error {
			queue.downloads = append(queue.downloads, req)
			return nil
		}),
		Logger: opts.Logger.With("layer", "component", "component", "lightbox"),
	})
	if err != nil {
		return Model{}, err
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = headerStyle.UnsetMarginBottom()

	m := Model{
		ctx:       opts.Context,
		props:     opts.Props,
		bus:       lightbox.NewKeyBus(),
		component: component,
		queue:     queue,
		fetcher:   opts.Fetcher,
		publisher: opts.Publisher,
		logger:    logger,
		zones:     zone.New(),
		closeOnce: &sync.Once{},
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   s,
		width:     80,
		height:    24,
	}
	m.component.Mount(m.bus, m.props)
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Props returns the host-owned props as last committed.
func (m Model) Props() lightbox.Props {
	return m.props
}

// Mounted reports whether the component still holds its keyboard listener.
func (m Model) Mounted() bool {
	return m.component.Mounted()
}

// Listeners is the number of listeners on the host key bus.
func (m Model) Listeners() int {
	return m.bus.Len()
}

// Close unmounts the component and stops zone tracking. Safe to call after quit.
func (m Model) Close() {
	m.component.Unmount()
	m.closeOnce.Do(m.zones.Close)
}
