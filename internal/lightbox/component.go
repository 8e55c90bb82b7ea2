package lightbox

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

// ComponentOptions wires a Component to its host.
type ComponentOptions struct {
	// Emit receives every event in order. Required for the component to be useful.
	Emit func(Event)
	// Saver performs downloads; nil disables the side effect but not the event.
	Saver  Saver
	Logger ports.Logger
}

// Component is the mountable shell around Route. It holds only the latest
// props and its own listener handle.
type Component struct {
	mu       sync.Mutex
	props    Props
	listener *Listener

	emit   func(Event)
	saver  Saver
	logger ports.Logger
}

// New creates an unmounted component.
func New(opts ComponentOptions) *Component {
	return &Component{
		emit:   opts.Emit,
		saver:  opts.Saver,
		logger: opts.Logger,
	}
}

// Mount installs the keyboard listener on bus. A second Mount before Unmount
// only updates props.
func (c *Component) Mount(bus *KeyBus, props Props) {
	c.mu.Lock()
	c.props = props
	if c.listener != nil || bus == nil {
		c.mu.Unlock()
		return
	}
	c.listener = bus.Listen(c.handleKey)
	c.mu.Unlock()

	c.debug("component mounted", "images", props.Len())
}

// SetProps replaces the props for subsequent events without touching the listener.
func (c *Component) SetProps(props Props) {
	c.mu.Lock()
	c.props = props
	c.mu.Unlock()
}

// Props returns the props of the latest render pass.
func (c *Component) Props() Props {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props
}

// Mounted reports whether the component holds a listener.
func (c *Component) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listener != nil
}

// Unmount releases the listener. It is safe to call repeatedly.
func (c *Component) Unmount() {
	c.mu.Lock()
	listener := c.listener
	c.listener = nil
	c.mu.Unlock()

	if listener == nil {
		return
	}
	listener.Remove()
	c.debug("component unmounted")
}

// View renders the current props.
func (c *Component) View() View {
	return Render(c.Props())
}

// Click routes a click on a tagged region.
func (c *Component) Click(target Role) {
	c.dispatch(ClickInput(target))
}

func (c *Component) handleKey(k Key) {
	c.dispatch(KeyInput(k))
}

func (c *Component) dispatch(in Input) {
	props := c.Props()
	events := Route(props, in)

	var pending []DownloadRequest
	for _, event := range events {
		if c.emit != nil {
			c.emit(event)
		}
		if req, ok := event.(DownloadRequested); ok {
			pending = append(pending, DownloadRequest{
				Index: req.Index,
				Image: req.Image,
				URL:   ResolveDownloadURL(req.Image),
			})
		}
	}

	for _, req := range pending {
		if c.saver == nil {
			continue
		}
		if err := c.saver.Save(req); err != nil && c.logger != nil {
			c.logger.Warn(context.Background(), "download failed", "index", req.Index, "url", req.URL, "error", err)
		}
	}
}

func (c *Component) debug(msg string, fields ...interface{}) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(context.Background(), msg, fields...)
}
