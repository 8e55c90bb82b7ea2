package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vlightbox/internal/download"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
	"github.com/alexisbeaulieu97/vlightbox/internal/tui/components"
)

// Update handles Bubbletea messages and commits whatever the component emits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if role, ok := m.roleAt(msg); ok {
			m.component.Click(role)
			return m.flush()
		}
		return m, nil

	case ClickMsg:
		m.component.Click(msg.Role)
		return m.flush()

	case spinner.TickMsg:
		if m.downloading == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DownloadDoneMsg:
		if m.downloading > 0 {
			m.downloading--
		}
		m.downloads = append(m.downloads, components.DownloadStatus{Index: msg.Index, Path: msg.Path, Err: msg.Err})
		if msg.Err != nil {
			m.setError(fmt.Sprintf("Download failed: %v", msg.Err))
			m.logger.Warn(m.ctx, "download failed", "index", msg.Index, "url", msg.URL, "error", msg.Err)
		} else {
			m.setStatus(fmt.Sprintf("Saved %s", msg.Path))
		}
		m.publish(download.Outcome(msg.Index, msg.URL, msg.Path, msg.Err))
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.component.Unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if !m.props.OverlayActive {
			m.props.OverlayActive = true
			m.component.SetProps(m.props)
			m.setStatus("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Download):
		m.component.Click(lightbox.RoleDownload)
		return m.flush()
	}

	if k := lightbox.ParseKey(msg.String()); k != lightbox.KeyUnknown {
		m.bus.Dispatch(k)
		return m.flush()
	}
	return m, nil
}

// flush commits queued events in emission order, then starts queued downloads.
func (m Model) flush() (tea.Model, tea.Cmd) {
	events, requests := m.queue.drain()
	for _, event := range events {
		m.commit(event)
		m.publish(event)
	}
	m.component.SetProps(m.props)

	var cmds []tea.Cmd
	for _, req := range requests {
		if m.fetcher == nil {
			m.setError("Downloads are not configured")
			continue
		}
		if m.downloading == 0 {
			cmds = append(cmds, m.spinner.Tick)
		}
		m.downloading++
		cmds = append(cmds, downloadCmd(m.ctx, m.fetcher, req))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) commit(event lightbox.Event) {
	switch e := event.(type) {
	case lightbox.NavigationRequested:
		m.props.CurrentIndex = e.Index
	case lightbox.OverlayActiveChanged:
		m.props.OverlayActive = e.Active
	case lightbox.Closed:
		m.setStatus("Closed. Press enter to reopen.")
	case lightbox.DownloadRequested:
		m.setStatus(fmt.Sprintf("Downloading #%d", e.Index+1))
	}
}

func (m *Model) publish(event ports.DomainEvent) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(m.ctx, event); err != nil {
		m.logger.Warn(m.ctx, "publish failed", "event_type", event.EventType(), "error", err)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// roleAt maps a click to the innermost tagged region. Clicks inside the
// overlay that hit no control resolve to the backdrop.
func (m Model) roleAt(msg tea.MouseMsg) (lightbox.Role, bool) {
	regions := m.component.View().Regions()
	for i := len(regions) - 1; i >= 0; i-- {
		role := regions[i]
		if role == lightbox.RoleBackdrop {
			continue
		}
		if z := m.zones.Get(role.String()); z != nil && z.InBounds(msg) {
			return role, true
		}
	}
	if z := m.zones.Get(lightbox.RoleBackdrop.String()); z != nil && z.InBounds(msg) {
		return lightbox.RoleBackdrop, true
	}
	return lightbox.RoleNone, false
}

func downloadCmd(ctx context.Context, fetcher Fetcher, req lightbox.DownloadRequest) tea.Cmd {
	return func() tea.Msg {
		path, err := fetcher.Fetch(ctx, req)
		return DownloadDoneMsg{Index: req.Index, URL: req.URL, Path: path, Err: err}
	}
}
