// Package state implements the showcase bubbletea model: two carousels, a
// detail overlay and a status line.
package state

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/showcase/internal/carousel"
	"github.com/cristianoliveira/showcase/internal/content"
	"github.com/cristianoliveira/showcase/internal/errors"
	"github.com/cristianoliveira/showcase/internal/logging"
)

const (
	defaultWidth       = 100
	defaultHeight      = 30
	overlayMargin      = 4
	chromeLines        = 8
	eventBuffer        = 64
	statusClearTimeout = 5 * time.Second

	PaneProjects = 0
	PaneGallery  = 1
)

// Options configures NewModel.
type Options struct {
	Catalog  *content.Catalog
	Projects carousel.Config
	Gallery  carousel.Config
	// Loader reloads content for the reload key. Nil disables manual reload.
	Loader func() (*content.Catalog, error)
	// Reloads delivers catalogs from a content watcher. May be nil.
	Reloads  <-chan content.Reload
	Clock    carousel.Clock
	Logger   logging.Logger
	Markdown MarkdownRenderer
	Keys     *KeyMap
}

// Model represents the TUI model for bubbletea.
type Model struct {
	uiState      *UIState
	keys         KeyMap
	panes        []*pane
	focus        int
	profile      *content.Profile
	errorHandler *errors.TUIHandler
	markdown     MarkdownRenderer
	logger       logging.Logger

	status       errors.Message
	hasStatus    bool
	statusSeq    int
	pendingClear bool

	events   chan carousel.Event
	done     chan struct{}
	doneOnce sync.Once
	reloads  <-chan content.Reload
	loader   func() (*content.Catalog, error)
	quitting bool
}

// NewModel builds the projects and gallery carousels from opts.Catalog.
func NewModel(opts Options) *Model {
	cat := opts.Catalog
	if cat == nil {
		cat = &content.Catalog{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetGlobal()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	md := opts.Markdown
	if md == nil {
		md = NewGlamourRenderer("")
	}

	m := &Model{
		uiState:  NewUIState(),
		keys:     keys,
		profile:  cat.Profile,
		markdown: md,
		logger:   logger.With("component", "tui"),
		events:   make(chan carousel.Event, eventBuffer),
		done:     make(chan struct{}),
		reloads:  opts.Reloads,
		loader:   opts.Loader,
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = msg
		m.hasStatus = msg.Text != ""
		m.statusSeq++
		m.pendingClear = true
	})

	ctrlOpts := func(name string) []carousel.Option {
		o := []carousel.Option{
			carousel.WithName(name),
			carousel.WithLogger(logger),
			carousel.WithOnChange(m.forward),
		}
		if opts.Clock != nil {
			o = append(o, carousel.WithClock(opts.Clock))
		}
		return o
	}
	projects := carousel.New(cat.Projects, opts.Projects, ctrlOpts("projects")...)
	gallery := carousel.New(cat.Artworks, opts.Gallery, ctrlOpts("gallery")...)

	m.panes = []*pane{
		newPane("Projects", projects, projectCard, projectMarkdown, projectsOf),
		newPane("Gallery", gallery, artworkCard, artworkMarkdown, artworksOf),
	}
	return m
}

// forward hands a controller event to the update loop. It never blocks: a full
// buffer drops the event, since every message triggers a redraw anyway.
func (m *Model) forward(ev carousel.Event) {
	select {
	case <-m.done:
	case m.events <- ev:
	default:
	}
}

// Init starts the controller event and watcher subscriptions.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events, m.done), waitForReload(m.reloads, m.done))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	if m.pendingClear && !m.quitting {
		m.pendingClear = false
		cmd = tea.Batch(cmd, clearStatusAfter(statusClearTimeout, m.statusSeq))
	}
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.refreshOverlay()
		return m, nil
	case CarouselEventMsg:
		return m, m.handleCarouselEvent(msg.Event)
	case ContentReloadedMsg:
		m.applyReload(msg.Reload)
		if msg.FromWatcher {
			return m, waitForReload(m.reloads, m.done)
		}
		return m, nil
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.hasStatus = false
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCarouselEvent(ev carousel.Event) tea.Cmd {
	switch ev.Kind {
	case carousel.EventOverlayOpened, carousel.EventItemsChanged, carousel.EventNavigated:
		m.refreshOverlay()
	}
	if m.quitting {
		return nil
	}
	return waitForEvent(m.events, m.done)
}

// applyReload swaps the catalog into both carousels, or reports why it could not.
func (m *Model) applyReload(r content.Reload) {
	if r.Err != nil {
		m.logger.Warn("content reload rejected", "error", r.Err)
		errors.Report(m.errorHandler, fmt.Errorf("reload failed: %w", r.Err))
		return
	}
	if r.Catalog == nil {
		return
	}
	for _, p := range m.panes {
		p.apply(r.Catalog)
	}
	m.profile = r.Catalog.Profile
	m.logger.Info("content applied", "projects", len(r.Catalog.Projects), "artworks", len(r.Catalog.Artworks))
	m.errorHandler.Success(fmt.Sprintf("content reloaded: %d projects, %d artworks",
		len(r.Catalog.Projects), len(r.Catalog.Artworks)))
}

// refreshOverlay re-renders the focused pane's detail into the viewport.
func (m *Model) refreshOverlay() {
	p := m.focused()
	if !p.ctrl.IsOverlayOpen() {
		return
	}
	md, ok := p.detail()
	if !ok {
		return
	}
	out, err := m.markdown.Render(md, m.uiState.overlayWidth())
	if err != nil {
		m.logger.Warn("markdown render failed", "error", err)
		out = md
	}
	vp := m.uiState.Viewport()
	vp.SetContent(out)
	vp.GotoTop()
}

func (m *Model) focused() *pane {
	return m.panes[m.focus]
}

// Focus returns the index of the focused carousel.
func (m *Model) Focus() int {
	return m.focus
}

// ErrorHandler returns the handler feeding the status line.
func (m *Model) ErrorHandler() *errors.TUIHandler {
	return m.errorHandler
}

// Shutdown disposes both controllers and stops the subscriptions. Safe to call twice.
func (m *Model) Shutdown() {
	m.doneOnce.Do(func() {
		m.quitting = true
		for _, p := range m.panes {
			p.ctrl.Dispose()
		}
		close(m.done)
	})
}
