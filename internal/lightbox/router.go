package lightbox

import "strings"

// Key is a keyboard input the router understands.
type Key int

const (
	KeyUnknown Key = iota
	KeyRight
	KeyLeft
	KeyEscape
)

// ParseKey maps host key names to a Key. Unrecognised names map to KeyUnknown.
func ParseKey(name string) Key {
	switch strings.ToLower(name) {
	case "right", "arrowright":
		return KeyRight
	case "left", "arrowleft":
		return KeyLeft
	case "esc", "escape":
		return KeyEscape
	default:
		return KeyUnknown
	}
}

// Role tags a rendered region so clicks can be dispatched by identity.
type Role int

const (
	RoleNone Role = iota
	RoleBackdrop
	RoleImage
	RoleCaption
	RoleTitle
	RoleNext
	RolePrev
	RoleClose
	RoleDownload
)

var roleNames = map[Role]string{
	RoleBackdrop: "lightbox",
	RoleImage:    "lightbox__image",
	RoleCaption:  "lightbox__caption",
	RoleTitle:    "lightbox__title",
	RoleNext:     "lightbox__next",
	RolePrev:     "lightbox__prev",
	RoleClose:    "lightbox__close",
	RoleDownload: "lightbox__download",
}

// String returns the region tag used by renderers.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "none"
}

// ParseRole maps a region tag back to its Role.
func ParseRole(tag string) Role {
	for role, name := range roleNames {
		if name == tag {
			return role
		}
	}
	return RoleNone
}

// Input is a single keyboard or click event delivered to Route.
type Input struct {
	Key    Key
	Target Role
}

// KeyInput wraps a key press.
func KeyInput(k Key) Input {
	return Input{Key: k}
}

// ClickInput wraps a click on a tagged region.
func ClickInput(target Role) Input {
	return Input{Target: target}
}

// Route dispatches one input against props and returns the resulting events.
// Nothing is emitted while the overlay is inactive.
func Route(props Props, in Input) []Event {
	if !props.OverlayActive {
		return nil
	}
	if in.Target != RoleNone {
		return routeClick(props, in.Target)
	}
	return routeKey(props, in.Key)
}

func routeKey(props Props, k Key) []Event {
	switch k {
	case KeyRight:
		return Next(props)
	case KeyLeft:
		return Prev(props)
	case KeyEscape:
		return RequestClose()
	default:
		return nil
	}
}

func routeClick(props Props, target Role) []Event {
	switch target {
	case RoleNext:
		if !props.Options.Nav {
			return nil
		}
		return Next(props)
	case RolePrev:
		if !props.Options.Nav {
			return nil
		}
		return Prev(props)
	case RoleClose:
		return RequestClose()
	case RoleDownload:
		if !Render(props).ShowDownload {
			return nil
		}
		return Download(props)
	default:
		return HandleOverlayClick(target)
	}
}
