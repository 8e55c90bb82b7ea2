package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/plugin"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event.EventType())
	return nil
}

func (p *recordingPublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, errors.New("not supported")
}

type fakeFetcher struct {
	path string
	err  error
	reqs []lightbox.DownloadRequest
}

func (f *fakeFetcher) Fetch(_ context.Context, req lightbox.DownloadRequest) (string, error) {
	f.reqs = append(f.reqs, req)
	return f.path, f.err
}

func galleryProps() lightbox.Props {
	return lightbox.Props{
		Images: []lightbox.Image{
			{ID: "1", Src: "https://unsplash.it/500", Caption: "Image 1"},
			{ID: "2", Src: "https://unsplash.it/501", DownloadURL: "https://unsplash.it/1501"},
			{ID: "3", Src: "https://unsplash.it/502", Caption: "Image 3"},
		},
		CurrentIndex:  0,
		OverlayActive: true,
		Options:       lightbox.DefaultOptions(),
	}
}

func newTestModel(t *testing.T, props lightbox.Props, fetcher Fetcher) (Model, *recordingPublisher) {
	t.Helper()

	registry, err := plugin.NewComponentRegistry(nil, nil)
	require.NoError(t, err)
	require.NoError(t, lightbox.Install(registry))

	publisher := &recordingPublisher{}
	m, err := NewModel(Options{
		Props:     props,
		Registry:  registry,
		Fetcher:   fetcher,
		Publisher: publisher,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, publisher
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and any batched commands, returning every produced message.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewModelRequiresRegistry(t *testing.T) {
	t.Parallel()

	_, err := NewModel(Options{Props: galleryProps()})
	require.Error(t, err)
}

func TestNewModelMountsOneListener(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, galleryProps(), nil)
	assert.True(t, m.Mounted())
	assert.Equal(t, 1, m.Listeners())
}

func TestArrowKeysCommitNavigation(t *testing.T) {
	t.Parallel()

	m, publisher := newTestModel(t, galleryProps(), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Props().CurrentIndex)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Props().CurrentIndex, "loop wraps to the first image")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.Props().CurrentIndex)

	assert.Equal(t, []string{
		lightbox.EventNavigationRequested,
		lightbox.EventNavigationRequested,
		lightbox.EventNavigationRequested,
		lightbox.EventNavigationRequested,
	}, publisher.events)
}

func TestNoLoopStopsAtBoundary(t *testing.T) {
	t.Parallel()

	props := galleryProps()
	props.Options.Loop = false
	props.CurrentIndex = 2
	m, publisher := newTestModel(t, props, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.Props().CurrentIndex)
	assert.Empty(t, publisher.events)
}

func TestEscapeClosesAndEnterReopens(t *testing.T) {
	t.Parallel()

	m, publisher := newTestModel(t, galleryProps(), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Props().OverlayActive)
	assert.Equal(t, []string{lightbox.EventOverlayActiveChanged, lightbox.EventClosed}, publisher.events)
	assert.Contains(t, m.View(), "Press enter to reopen")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Props().CurrentIndex, "input is inert while closed")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Props().OverlayActive)
	assert.True(t, m.Mounted())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Props().CurrentIndex)
}

func TestClicksDiscriminateRegions(t *testing.T) {
	t.Parallel()

	m, publisher := newTestModel(t, galleryProps(), nil)

	for _, role := range []lightbox.Role{lightbox.RoleImage, lightbox.RoleCaption, lightbox.RoleTitle} {
		m, _ = update(t, m, ClickMsg{Role: role})
		assert.True(t, m.Props().OverlayActive, role.String())
	}
	assert.Empty(t, publisher.events)

	m, _ = update(t, m, ClickMsg{Role: lightbox.RoleNext})
	assert.Equal(t, 1, m.Props().CurrentIndex)

	m, _ = update(t, m, ClickMsg{Role: lightbox.RoleBackdrop})
	assert.False(t, m.Props().OverlayActive)
}

// renderedZone renders m and waits until the region for role has been measured.
func renderedZone(t *testing.T, m Model, role lightbox.Role) (x, y, endX, endY int) {
	t.Helper()

	m.View()
	require.Eventually(t, func() bool {
		z := m.zones.Get(role.String())
		return z != nil && !z.IsZero()
	}, time.Second, 5*time.Millisecond, role.String())
	z := m.zones.Get(role.String())
	return z.StartX, z.StartY, z.EndX, z.EndY
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestMouseClicksResolveTaggedRegions(t *testing.T) {
	t.Parallel()

	m, publisher := newTestModel(t, galleryProps(), nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	x, y, endX, endY := renderedZone(t, m, lightbox.RoleImage)
	m, _ = update(t, m, leftClick((x+endX)/2, (y+endY)/2))
	assert.Equal(t, 0, m.Props().CurrentIndex)
	assert.True(t, m.Props().OverlayActive, "image clicks keep the overlay open")
	assert.Empty(t, publisher.events)

	x, y, _, _ = renderedZone(t, m, lightbox.RoleNext)
	m, _ = update(t, m, leftClick(x, y))
	assert.Equal(t, 1, m.Props().CurrentIndex)
	assert.True(t, m.Props().OverlayActive)

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, m.Props().CurrentIndex, "only releases count as clicks")

	x, y, _, _ = renderedZone(t, m, lightbox.RoleBackdrop)
	m, _ = update(t, m, leftClick(x, y))
	assert.False(t, m.Props().OverlayActive, "padding around the controls is backdrop")
	assert.Equal(t, []string{
		lightbox.EventNavigationRequested,
		lightbox.EventOverlayActiveChanged,
		lightbox.EventClosed,
	}, publisher.events)
}

func TestMouseClickOutsideOverlayIsIgnored(t *testing.T) {
	t.Parallel()

	m, publisher := newTestModel(t, galleryProps(), nil)

	_, _, endX, endY := renderedZone(t, m, lightbox.RoleBackdrop)
	m, _ = update(t, m, leftClick(endX+5, endY+5))
	assert.True(t, m.Props().OverlayActive)
	assert.Empty(t, publisher.events)
}

func TestCloseControlClosesOverlay(t *testing.T) {
	t.Parallel()

	m, publisher := newTestModel(t, galleryProps(), nil)

	m, _ = update(t, m, ClickMsg{Role: lightbox.RoleClose})
	assert.False(t, m.Props().OverlayActive)
	assert.Equal(t, []string{lightbox.EventOverlayActiveChanged, lightbox.EventClosed}, publisher.events)
}

func TestDownloadRunsFetcherAfterEvent(t *testing.T) {
	t.Parallel()

	props := galleryProps()
	props.Options.Download = true
	props.CurrentIndex = 1
	fetcher := &fakeFetcher{path: "/tmp/1501.jpg"}
	m, publisher := newTestModel(t, props, fetcher)

	m, cmd := update(t, m, runes("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, []string{lightbox.EventDownloadRequested}, publisher.events)
	assert.Contains(t, m.View(), "Downloading #2")

	var done *DownloadDoneMsg
	for _, msg := range collect(cmd) {
		if d, ok := msg.(DownloadDoneMsg); ok {
			done = &d
		}
	}
	require.NotNil(t, done)
	require.Len(t, fetcher.reqs, 1)
	assert.Equal(t, "https://unsplash.it/1501", fetcher.reqs[0].URL)

	m, _ = update(t, m, *done)
	assert.Equal(t, []string{lightbox.EventDownloadRequested, ports.EventDownloadCompleted}, publisher.events)
	assert.Contains(t, m.View(), "/tmp/1501.jpg")
}

func TestDownloadFailureIsReported(t *testing.T) {
	t.Parallel()

	props := galleryProps()
	props.Options.Download = true
	fetcher := &fakeFetcher{err: errors.New("blocked")}
	m, publisher := newTestModel(t, props, fetcher)

	m, cmd := update(t, m, ClickMsg{Role: lightbox.RoleDownload})
	for _, msg := range collect(cmd) {
		if done, ok := msg.(DownloadDoneMsg); ok {
			m, _ = update(t, m, done)
		}
	}

	assert.Equal(t, []string{lightbox.EventDownloadRequested, ports.EventDownloadFailed}, publisher.events)
	assert.Contains(t, m.View(), "blocked")
	assert.True(t, m.Props().OverlayActive)
}

func TestDownloadIgnoredWhenUnavailable(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	m, publisher := newTestModel(t, galleryProps(), fetcher)

	_, cmd := update(t, m, ClickMsg{Role: lightbox.RoleDownload})
	assert.Nil(t, collect(cmd))
	assert.Empty(t, publisher.events)
	assert.Empty(t, fetcher.reqs)
}

func TestQuitUnmounts(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, galleryProps(), nil)

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.False(t, m.Mounted())
	assert.Equal(t, 0, m.Listeners())
	assert.Empty(t, m.View())

	m.Close()
	assert.Equal(t, 0, m.Listeners())
}

func TestWindowResize(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, galleryProps(), nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestViewPlainTheme(t *testing.T) {
	t.Parallel()

	props := galleryProps()
	props.Options.ResetStyles = true
	props.Options.Title = "Demo"
	m, _ := newTestModel(t, props, nil)

	out := m.View()
	assert.Contains(t, out, "Demo")
	assert.Contains(t, out, "Image 1")
	assert.Contains(t, out, "1 / 3")
	assert.Contains(t, out, "[x]")
	assert.NotContains(t, out, "[download]")
}
