package lightbox

// TagName is the fixed name the component registers under.
const TagName = "Lightbox"

// Factory builds a component for a host.
type Factory func(opts ComponentOptions) *Component

// Registrar is the host-side registration surface.
type Registrar interface {
	RegisterComponent(tag string, factory Factory) error
}

// Install registers the component under TagName.
func Install(r Registrar) error {
	return r.RegisterComponent(TagName, New)
}
