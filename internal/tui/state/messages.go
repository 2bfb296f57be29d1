package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/showcase/internal/carousel"
	"github.com/cristianoliveira/showcase/internal/content"
)

// CarouselEventMsg carries a controller transition into the update loop.
type CarouselEventMsg struct {
	Event carousel.Event
}

// ContentReloadedMsg is sent when content was reloaded by the watcher or by hand.
type ContentReloadedMsg struct {
	Reload content.Reload
	// FromWatcher marks reloads that came through the watcher subscription.
	FromWatcher bool
}

// statusClearMsg clears the status line if no newer message replaced it.
type statusClearMsg struct {
	seq int
}

// waitForEvent blocks until a controller emits or the model shuts down.
func waitForEvent(events <-chan carousel.Event, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-events:
			return CarouselEventMsg{Event: ev}
		case <-done:
			return nil
		}
	}
}

// waitForReload blocks until the watcher delivers a catalog.
func waitForReload(reloads <-chan content.Reload, done <-chan struct{}) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case r, ok := <-reloads:
			if !ok {
				return nil
			}
			return ContentReloadedMsg{Reload: r, FromWatcher: true}
		case <-done:
			return nil
		}
	}
}

// reloadCmd runs loader off the update loop.
func reloadCmd(loader func() (*content.Catalog, error)) tea.Cmd {
	return func() tea.Msg {
		cat, err := loader()
		return ContentReloadedMsg{Reload: content.Reload{Catalog: cat, Err: err}}
	}
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
