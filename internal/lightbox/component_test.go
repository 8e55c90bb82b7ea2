package lightbox

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/logging"
)

type recorder struct {
	events []Event
	saves  []DownloadRequest
	order  []string
}

func (r *recorder) emit(e Event) {
	r.events = append(r.events, e)
	r.order = append(r.order, e.EventType())
}

func (r *recorder) Save(req DownloadRequest) error {
	r.saves = append(r.saves, req)
	r.order = append(r.order, "save")
	return nil
}

func TestComponentMountInstallsSingleListener(t *testing.T) {
	t.Parallel()

	bus := NewKeyBus()
	rec := &recorder{}
	c := New(ComponentOptions{Emit: rec.emit})

	c.Mount(bus, activeProps())
	c.Mount(bus, activeProps())
	c.SetProps(activeProps())
	require.Equal(t, 1, bus.Len())
	require.True(t, c.Mounted())

	c.Unmount()
	require.Equal(t, 0, bus.Len())
	require.False(t, c.Mounted())

	require.NotPanics(t, c.Unmount)
	require.Equal(t, 0, bus.Len())
}

func TestListenerRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	bus := NewKeyBus()
	first := bus.Listen(func(Key) {})
	second := bus.Listen(func(Key) {})

	first.Remove()
	first.Remove()
	require.Equal(t, 1, bus.Len())

	second.Remove()
	require.Equal(t, 0, bus.Len())

	var nilListener *Listener
	require.NotPanics(t, nilListener.Remove)
}

func TestComponentRoutesKeysWithLatestProps(t *testing.T) {
	t.Parallel()

	bus := NewKeyBus()
	rec := &recorder{}
	c := New(ComponentOptions{Emit: rec.emit})

	inactive := activeProps()
	inactive.OverlayActive = false
	c.Mount(bus, inactive)

	bus.Dispatch(KeyRight)
	require.Empty(t, rec.events, "listener is present but inert while inactive")

	props := activeProps()
	props.CurrentIndex = 2
	c.SetProps(props)
	bus.Dispatch(KeyRight)
	require.Equal(t, []Event{NavigationRequested{Index: 0}}, rec.events)

	c.Unmount()
	bus.Dispatch(KeyRight)
	require.Len(t, rec.events, 1)
}

func TestComponentsOnSharedBusAreIndependent(t *testing.T) {
	t.Parallel()

	bus := NewKeyBus()
	left, right := &recorder{}, &recorder{}
	a := New(ComponentOptions{Emit: left.emit})
	b := New(ComponentOptions{Emit: right.emit})

	a.Mount(bus, activeProps())
	b.Mount(bus, activeProps())
	require.Equal(t, 2, bus.Len())

	a.Unmount()
	bus.Dispatch(KeyEscape)
	require.Empty(t, left.events)
	require.Equal(t, []Event{OverlayActiveChanged{Active: false}, Closed{}}, right.events)
}

func TestComponentBackdropClickCloses(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := New(ComponentOptions{Emit: rec.emit})
	c.SetProps(activeProps())

	c.Click(RoleImage)
	require.Empty(t, rec.events)

	c.Click(RoleBackdrop)
	require.Equal(t, []string{EventOverlayActiveChanged, EventClosed}, rec.order)
}

func TestComponentEmitsDownloadBeforeSaving(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := New(ComponentOptions{Emit: rec.emit, Saver: rec})

	props := activeProps()
	props.Options.Download = true
	props.Images[1].DownloadURL = "https://unsplash.it/1501"
	c.SetProps(props)

	c.Click(RoleDownload)
	require.Equal(t, []string{EventDownloadRequested, "save"}, rec.order)
	require.Equal(t, []DownloadRequest{{Index: 1, Image: props.Images[1], URL: "https://unsplash.it/1501"}}, rec.saves)
}

func TestComponentLogsSaverFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, Formatter: cblog.JSONFormatter, Component: "lightbox"})
	require.NoError(t, err)

	rec := &recorder{}
	attempts := 0
	c := New(ComponentOptions{
		Emit: rec.emit,
		Saver: SaverFunc(func(DownloadRequest) error {
			attempts++
			return errors.New("blocked")
		}),
		Logger: logger,
	})

	props := activeProps()
	props.Options.Download = true
	c.SetProps(props)
	c.Click(RoleDownload)

	require.Equal(t, 1, attempts)
	require.Len(t, rec.events, 1, "event fires even though the save failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	require.Equal(t, "download failed", entry["msg"])
	require.Equal(t, "blocked", entry["error"])
}
