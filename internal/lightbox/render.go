package lightbox

import "fmt"

// View is the rendered-region contract a renderer draws from. Every field is
// derived from Props; renderers make no decisions of their own.
type View struct {
	Visible      bool
	Styled       bool
	Title        string
	HasImage     bool
	Image        Image
	Index        int
	Total        int
	Caption      string
	ShowCaption  bool
	ShowNav      bool
	ShowClose    bool
	ShowDownload bool
	DownloadURL  string
}

// Render computes the view for props.
func Render(props Props) View {
	v := View{
		Visible: props.OverlayActive,
		Styled:  !props.Options.ResetStyles,
		Title:   props.Options.Title,
		Total:   props.Len(),
	}
	if !v.Visible {
		return v
	}

	v.ShowClose = true
	v.ShowNav = props.Options.Nav && props.Len() > 0

	img, ok := props.Current()
	if !ok {
		return v
	}

	v.HasImage = true
	v.Image = img
	v.Index = props.CurrentIndex
	if IsCaptionVisible(img, props.Options.Caption) {
		v.ShowCaption = true
		v.Caption = img.Caption
	}
	if IsDownloadAvailable(img, props.Options.Download) {
		v.ShowDownload = true
		v.DownloadURL = ResolveDownloadURL(img)
	}
	return v
}

// Counter returns the "n / total" label, or an empty string without an image.
func (v View) Counter() string {
	if !v.HasImage {
		return ""
	}
	return fmt.Sprintf("%d / %d", v.Index+1, v.Total)
}

// Regions lists the tagged regions present in the view, backdrop first.
func (v View) Regions() []Role {
	if !v.Visible {
		return nil
	}
	regions := []Role{RoleBackdrop}
	if v.Title != "" {
		regions = append(regions, RoleTitle)
	}
	if v.HasImage {
		regions = append(regions, RoleImage)
	}
	if v.ShowCaption {
		regions = append(regions, RoleCaption)
	}
	if v.ShowNav {
		regions = append(regions, RolePrev, RoleNext)
	}
	if v.ShowDownload {
		regions = append(regions, RoleDownload)
	}
	if v.ShowClose {
		regions = append(regions, RoleClose)
	}
	return regions
}
