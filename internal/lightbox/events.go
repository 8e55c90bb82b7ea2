package lightbox

const (
	// EventNavigationRequested asks the host to display another index.
	EventNavigationRequested = "navigation.requested"
	// EventOverlayActiveChanged asks the host to flip the overlay flag.
	EventOverlayActiveChanged = "overlay.active_changed"
	// EventClosed notifies the host that the overlay was dismissed.
	EventClosed = "overlay.closed"
	// EventDownloadRequested notifies the host that a download was triggered.
	EventDownloadRequested = "download.requested"
)

// Event is a change request or notification sent to the host. The method set
// matches ports.DomainEvent so events can be published directly.
type Event interface {
	EventType() string
	Payload() interface{}
}

// NavigationRequested carries the index the host should commit.
type NavigationRequested struct {
	Index int
}

// EventType implements Event.
func (NavigationRequested) EventType() string { return EventNavigationRequested }

// Payload implements Event.
func (e NavigationRequested) Payload() interface{} {
	return map[string]interface{}{"index": e.Index}
}

// OverlayActiveChanged carries the requested overlay state.
type OverlayActiveChanged struct {
	Active bool
}

// EventType implements Event.
func (OverlayActiveChanged) EventType() string { return EventOverlayActiveChanged }

// Payload implements Event.
func (e OverlayActiveChanged) Payload() interface{} {
	return map[string]interface{}{"active": e.Active}
}

// Closed is the generic close notification.
type Closed struct{}

// EventType implements Event.
func (Closed) EventType() string { return EventClosed }

// Payload implements Event.
func (Closed) Payload() interface{} { return nil }

// DownloadRequested identifies the image being downloaded.
type DownloadRequested struct {
	Index int
	Image Image
}

// EventType implements Event.
func (DownloadRequested) EventType() string { return EventDownloadRequested }

// Payload implements Event.
func (e DownloadRequested) Payload() interface{} {
	return map[string]interface{}{
		"index": e.Index,
		"src":   e.Image.Src,
		"url":   ResolveDownloadURL(e.Image),
	}
}
