package lightbox

// RequestClose emits the overlay deactivation request followed by the closed notification.
func RequestClose() []Event {
	return []Event{OverlayActiveChanged{Active: false}, Closed{}}
}

// HandleOverlayClick closes the overlay only when the backdrop itself was hit.
// Clicks on the image, caption, title or any control never close it.
func HandleOverlayClick(target Role) []Event {
	if target != RoleBackdrop {
		return nil
	}
	return RequestClose()
}
