package carousel

import (
	"sync"
	"time"

	"github.com/cristianoliveira/showcase/internal/logging"
)

const (
	// DefaultAutoPlayInterval is the autoplay period used when none is configured.
	DefaultAutoPlayInterval = 5 * time.Second
	// DefaultResumeDelay is the quiet period after a manual navigation.
	DefaultResumeDelay = 10 * time.Second
)

// Item is anything a carousel can hold. The controller only relies on a stable ID.
type Item interface {
	ItemID() string
}

// State is the controller's position in its state machine.
type State int

const (
	// StateIdle means autoplay is armed (or disabled) but has not advanced yet.
	StateIdle State = iota
	// StateAutoPlaying means the autoplay tick is driving the active index.
	StateAutoPlaying
	// StateUserInteracting means autoplay is suspended by a navigation or a hold.
	StateUserInteracting
	// StateOverlayOpen means the detail view of the active item is open.
	StateOverlayOpen
)

func (s State) String() string {
	switch s {
	case StateAutoPlaying:
		return "autoplaying"
	case StateUserInteracting:
		return "interacting"
	case StateOverlayOpen:
		return "overlay"
	default:
		return "idle"
	}
}

// Config configures one carousel instance.
type Config struct {
	AutoPlayInterval time.Duration
	ResumeDelay      time.Duration
	AutoPlayEnabled  bool
	Visual           VisualConfig
}

// DefaultConfig returns a configuration with autoplay enabled and default timings.
func DefaultConfig() Config {
	return Config{
		AutoPlayInterval: DefaultAutoPlayInterval,
		ResumeDelay:      DefaultResumeDelay,
		AutoPlayEnabled:  true,
		Visual:           DefaultVisualConfig(),
	}
}

func (c Config) withDefaults() Config {
	if c.AutoPlayInterval <= 0 {
		c.AutoPlayInterval = DefaultAutoPlayInterval
	}
	if c.ResumeDelay <= 0 {
		c.ResumeDelay = DefaultResumeDelay
	}
	if c.Visual == (VisualConfig{}) {
		c.Visual = DefaultVisualConfig()
	}
	if c.Visual.MaxVisibleDistance < 0 {
		c.Visual.MaxVisibleDistance = 0
	}
	return c
}

// EventKind identifies what changed in a controller.
type EventKind int

const (
	EventAdvanced EventKind = iota
	EventNavigated
	EventOverlayOpened
	EventOverlayClosed
	EventAutoPlayResumed
	EventAutoPlaySuspended
	EventItemsChanged
)

func (k EventKind) String() string {
	switch k {
	case EventAdvanced:
		return "advanced"
	case EventNavigated:
		return "navigated"
	case EventOverlayOpened:
		return "overlay_opened"
	case EventOverlayClosed:
		return "overlay_closed"
	case EventAutoPlayResumed:
		return "autoplay_resumed"
	case EventAutoPlaySuspended:
		return "autoplay_suspended"
	case EventItemsChanged:
		return "items_changed"
	default:
		return "unknown"
	}
}

// Event is delivered to the change callback after every state change.
type Event struct {
	Carousel    string
	Kind        EventKind
	ActiveIndex int
	State       State
}

// SelectOutcome is the result of selecting a card.
type SelectOutcome int

const (
	SelectIgnored SelectOutcome = iota
	SelectOpened
	SelectRecentered
)

// Option customises a controller.
type Option func(*options)

type options struct {
	name     string
	clock    Clock
	logger   logging.Logger
	onChange func(Event)
}

// WithName labels the controller in events and logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithClock replaces the wall clock, typically with a ManualClock in tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger used for transition traces.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnChange registers a callback invoked after each state change. It runs outside
// the controller's lock, on the goroutine that caused the change (a timer goroutine
// for autoplay and resume).
func WithOnChange(fn func(Event)) Option {
	return func(o *options) { o.onChange = fn }
}

// Snapshot is a consistent view of a controller for rendering.
type Snapshot[T Item] struct {
	Items       []T
	ActiveIndex int
	State       State
	AutoPlaying bool
	OverlayOpen bool
	Held        bool
	Descriptors []Descriptor
}

// Controller owns the active index, the autoplay and resume timers, and the overlay
// flag of one carousel. It is safe for concurrent use; timer callbacks and caller
// operations are serialised.
type Controller[T Item] struct {
	mu   sync.Mutex
	opts options
	cfg  Config

	items  []T
	active int

	autoPlaying bool
	idle        bool
	overlayOpen bool
	interacting bool
	held        bool
	disposed    bool

	tick      Timer
	tickGen   uint64
	resume    Timer
	resumeGen uint64
}

// New creates a controller positioned on the first item with autoplay armed.
func New[T Item](items []T, cfg Config, opts ...Option) *Controller[T] {
	o := options{clock: SystemClock{}, logger: logging.GetGlobal()}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller[T]{
		opts:  o,
		cfg:   cfg.withDefaults(),
		items: append([]T(nil), items...),
	}
	c.mu.Lock()
	c.startAutoPlayLocked(true)
	c.mu.Unlock()
	return c
}

// Name returns the label given with WithName.
func (c *Controller[T]) Name() string {
	return c.opts.name
}

// Config returns the effective configuration.
func (c *Controller[T]) Config() Config {
	return c.cfg
}

// Len returns the number of items.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Items returns a copy of the items.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// ActiveIndex returns the centred index, or NoIndex when there are no items.
func (c *Controller[T]) ActiveIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeLocked()
}

// Active returns the centred item.
func (c *Controller[T]) Active() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[c.active], true
}

// IndexOf returns the index of the item with the given ID, or NoIndex.
func (c *Controller[T]) IndexOf(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.ItemID() == id {
			return i
		}
	}
	return NoIndex
}

// State returns the current state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// IsAutoPlaying reports whether the autoplay tick is armed.
func (c *Controller[T]) IsAutoPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoPlaying
}

// IsOverlayOpen reports whether the detail view is open.
func (c *Controller[T]) IsOverlayOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overlayOpen
}

// IsHeld reports whether autoplay is held by Hold.
func (c *Controller[T]) IsHeld() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.held
}

// Disposed reports whether Dispose has been called.
func (c *Controller[T]) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// VisualStateFor resolves the descriptor of the item at index. Any query against an
// empty carousel returns the hidden descriptor.
func (c *Controller[T]) VisualStateFor(index int) Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visualLocked(index)
}

// Snapshot returns the items, state and every descriptor under one lock.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot[T]{
		Items:       append([]T(nil), c.items...),
		ActiveIndex: c.activeLocked(),
		State:       c.stateLocked(),
		AutoPlaying: c.autoPlaying,
		OverlayOpen: c.overlayOpen,
		Held:        c.held,
		Descriptors: make([]Descriptor, len(c.items)),
	}
	for i := range c.items {
		s.Descriptors[i] = c.visualLocked(i)
	}
	return s
}

// Next moves one item forward, wrapping at the end.
func (c *Controller[T]) Next() {
	c.mu.Lock()
	ev, ok := c.navigateLocked(c.active + 1)
	c.mu.Unlock()
	c.emit(ev, ok)
}

// Prev moves one item backward, wrapping at the start.
func (c *Controller[T]) Prev() {
	c.mu.Lock()
	ev, ok := c.navigateLocked(c.active - 1)
	c.mu.Unlock()
	c.emit(ev, ok)
}

// NavigateTo centres index modulo the item count. Autoplay is suspended at once and
// resumes after the resume delay unless another interaction happens first.
func (c *Controller[T]) NavigateTo(index int) {
	c.mu.Lock()
	ev, ok := c.navigateLocked(index)
	c.mu.Unlock()
	c.emit(ev, ok)
}

// Select applies the click policy to the card at index.
func (c *Controller[T]) Select(index int) SelectOutcome {
	c.mu.Lock()
	if c.disposed || len(c.items) == 0 {
		c.mu.Unlock()
		return SelectIgnored
	}
	idx := Wrap(index, len(c.items))
	if idx == c.active {
		ev, ok := c.openOverlayLocked(idx)
		c.mu.Unlock()
		c.emit(ev, ok)
		if !ok {
			return SelectIgnored
		}
		return SelectOpened
	}
	if !c.visualLocked(idx).Interactive {
		c.mu.Unlock()
		return SelectIgnored
	}
	ev, ok := c.navigateLocked(idx)
	c.mu.Unlock()
	c.emit(ev, ok)
	return SelectRecentered
}

// OpenOverlay opens the detail view for the active item.
func (c *Controller[T]) OpenOverlay() bool {
	c.mu.Lock()
	ev, ok := c.openOverlayLocked(c.active)
	c.mu.Unlock()
	c.emit(ev, ok)
	return ok
}

// OpenOverlayAt opens the detail view for index, which must be the active index.
func (c *Controller[T]) OpenOverlayAt(index int) bool {
	c.mu.Lock()
	ev, ok := c.openOverlayLocked(index)
	c.mu.Unlock()
	c.emit(ev, ok)
	return ok
}

// CloseOverlay closes the detail view and resumes autoplay immediately.
func (c *Controller[T]) CloseOverlay() {
	c.mu.Lock()
	if c.disposed || !c.overlayOpen {
		c.mu.Unlock()
		return
	}
	c.overlayOpen = false
	c.held = false
	c.startAutoPlayLocked(false)
	ev := c.eventLocked(EventOverlayClosed)
	c.mu.Unlock()
	c.emit(ev, true)
}

// Hold suspends autoplay until Release, like a pointer resting on the carousel.
func (c *Controller[T]) Hold() {
	c.mu.Lock()
	if c.disposed || c.held {
		c.mu.Unlock()
		return
	}
	c.held = true
	c.suspendLocked()
	ev := c.eventLocked(EventAutoPlaySuspended)
	c.mu.Unlock()
	c.emit(ev, true)
}

// Release ends a hold. Autoplay restarts at once unless the overlay is open or a
// resume timer is still pending.
func (c *Controller[T]) Release() {
	c.mu.Lock()
	if c.disposed || !c.held {
		c.mu.Unlock()
		return
	}
	c.held = false
	if !c.overlayOpen && !c.interacting {
		c.startAutoPlayLocked(false)
	}
	ev := c.eventLocked(EventAutoPlayResumed)
	c.mu.Unlock()
	c.emit(ev, true)
}

// SetItems replaces the items, clamps the active index into the new range, closes
// the overlay and re-arms autoplay for the new length.
func (c *Controller[T]) SetItems(items []T) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.items = append([]T(nil), items...)
	switch {
	case len(c.items) == 0:
		c.active = 0
	case c.active >= len(c.items):
		c.active = len(c.items) - 1
	case c.active < 0:
		c.active = 0
	}
	c.overlayOpen = false
	c.interacting = false
	c.stopResumeLocked()
	c.startAutoPlayLocked(true)
	ev := c.eventLocked(EventItemsChanged)
	c.mu.Unlock()
	c.emit(ev, true)
}

// Dispose cancels every timer. It is safe to call more than once, and every
// operation after it is a no-op.
func (c *Controller[T]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.disposed = true
	c.overlayOpen = false
	c.interacting = false
	c.suspendLocked()
	c.stopResumeLocked()
	c.opts.logger.Debug("carousel disposed", "carousel", c.opts.name)
}

func (c *Controller[T]) activeLocked() int {
	if len(c.items) == 0 {
		return NoIndex
	}
	return c.active
}

func (c *Controller[T]) stateLocked() State {
	switch {
	case c.overlayOpen:
		return StateOverlayOpen
	case c.interacting || c.held:
		return StateUserInteracting
	case c.autoPlaying && !c.idle:
		return StateAutoPlaying
	default:
		return StateIdle
	}
}

func (c *Controller[T]) visualLocked(index int) Descriptor {
	n := len(c.items)
	if n == 0 {
		return Hidden(c.cfg.Visual)
	}
	return ResolveVisualState(CircularOffset(Wrap(index, n), c.active, n), c.cfg.Visual)
}

func (c *Controller[T]) navigateLocked(index int) (Event, bool) {
	if c.disposed || len(c.items) == 0 {
		return Event{}, false
	}
	c.overlayOpen = false
	c.active = Wrap(index, len(c.items))
	c.suspendLocked()
	c.stopResumeLocked()
	c.interacting = true
	gen := c.resumeGen
	c.resume = c.opts.clock.AfterFunc(c.cfg.ResumeDelay, func() { c.onResume(gen) })
	return c.eventLocked(EventNavigated), true
}

func (c *Controller[T]) openOverlayLocked(index int) (Event, bool) {
	if c.disposed || len(c.items) == 0 || index != c.active {
		return Event{}, false
	}
	if c.overlayOpen {
		return Event{}, false
	}
	c.overlayOpen = true
	c.interacting = false
	c.suspendLocked()
	c.stopResumeLocked()
	return c.eventLocked(EventOverlayOpened), true
}

// startAutoPlayLocked arms the tick timer when nothing suspends autoplay. idle marks
// the Idle state (armed, not yet advanced) as opposed to AutoPlaying.
func (c *Controller[T]) startAutoPlayLocked(idle bool) {
	c.stopTickLocked()
	c.idle = idle
	if c.disposed || !c.cfg.AutoPlayEnabled || len(c.items) == 0 || c.overlayOpen || c.held || c.interacting {
		c.autoPlaying = false
		return
	}
	c.autoPlaying = true
	c.scheduleTickLocked()
}

func (c *Controller[T]) scheduleTickLocked() {
	gen := c.tickGen
	c.tick = c.opts.clock.AfterFunc(c.cfg.AutoPlayInterval, func() { c.onTick(gen) })
}

func (c *Controller[T]) suspendLocked() {
	c.autoPlaying = false
	c.stopTickLocked()
}

func (c *Controller[T]) stopTickLocked() {
	if c.tick != nil {
		c.tick.Stop()
		c.tick = nil
	}
	c.tickGen++
}

func (c *Controller[T]) stopResumeLocked() {
	if c.resume != nil {
		c.resume.Stop()
		c.resume = nil
	}
	c.resumeGen++
}

func (c *Controller[T]) onTick(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.tickGen || !c.autoPlaying || len(c.items) == 0 {
		c.mu.Unlock()
		return
	}
	c.active = (c.active + 1) % len(c.items)
	c.idle = false
	c.scheduleTickLocked()
	ev := c.eventLocked(EventAdvanced)
	c.mu.Unlock()
	c.emit(ev, true)
}

func (c *Controller[T]) onResume(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.resumeGen {
		c.mu.Unlock()
		return
	}
	c.resume = nil
	c.interacting = false
	c.startAutoPlayLocked(false)
	ev := c.eventLocked(EventAutoPlayResumed)
	c.mu.Unlock()
	c.emit(ev, true)
}

func (c *Controller[T]) eventLocked(kind EventKind) Event {
	return Event{
		Carousel:    c.opts.name,
		Kind:        kind,
		ActiveIndex: c.activeLocked(),
		State:       c.stateLocked(),
	}
}

func (c *Controller[T]) emit(ev Event, ok bool) {
	if !ok {
		return
	}
	c.opts.logger.Debug("carousel transition",
		"carousel", ev.Carousel,
		"event", ev.Kind.String(),
		"active", ev.ActiveIndex,
		"state", ev.State.String())
	if c.opts.onChange != nil {
		c.opts.onChange(ev)
	}
}
