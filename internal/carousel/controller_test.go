package carousel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type card string

func (c card) ItemID() string { return string(c) }

func cards(ids ...string) []card {
	out := make([]card, len(ids))
	for i, id := range ids {
		out[i] = card(id)
	}
	return out
}

type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func testConfig() Config {
	return Config{
		AutoPlayInterval: 5 * time.Second,
		ResumeDelay:      10 * time.Second,
		AutoPlayEnabled:  true,
		Visual:           DefaultVisualConfig(),
	}
}

func newTestController(t *testing.T, items []card, cfg Config) (*Controller[card], *ManualClock, *eventRecorder) {
	t.Helper()
	clock := NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &eventRecorder{}
	c := New(items, cfg, WithName("test"), WithClock(clock), WithOnChange(rec.record))
	t.Cleanup(c.Dispose)
	return c, clock, rec
}

func TestNewStartsIdleWithAutoplayArmed(t *testing.T) {
	c, clock, _ := newTestController(t, cards("A", "B", "C"), testConfig())

	assert.Equal(t, 0, c.ActiveIndex())
	assert.Equal(t, StateIdle, c.State())
	assert.True(t, c.IsAutoPlaying())
	assert.Equal(t, 1, clock.Pending())
}

func TestAutoplayAdvancesAndWraps(t *testing.T) {
	c, clock, rec := newTestController(t, cards("A", "B", "C"), testConfig())

	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, StateAutoPlaying, c.State())

	clock.Advance(10 * time.Second)
	assert.Equal(t, 0, c.ActiveIndex(), "third tick wraps back to the start")
	assert.Equal(t, []EventKind{EventAdvanced, EventAdvanced, EventAdvanced}, rec.kinds())
	assert.Equal(t, 1, clock.Pending(), "exactly one tick timer stays armed")
}

func TestScenarioFiveItems(t *testing.T) {
	c, _, _ := newTestController(t, cards("A", "B", "C", "D", "E"), testConfig())

	c.Next()
	require.Equal(t, 1, c.ActiveIndex())

	c.Prev()
	c.Prev()
	require.Equal(t, 4, c.ActiveIndex())
	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, card("E"), active)

	assert.Equal(t, -2, CircularOffset(4, 1, 5))
}

func TestNavigateToIsModuloInvariant(t *testing.T) {
	const n = 5
	for i := -7; i <= 7; i++ {
		for k := -3; k <= 3; k++ {
			a, _, _ := newTestController(t, cards("A", "B", "C", "D", "E"), testConfig())
			b, _, _ := newTestController(t, cards("A", "B", "C", "D", "E"), testConfig())
			a.NavigateTo(i)
			b.NavigateTo(i + k*n)
			require.Equal(t, a.ActiveIndex(), b.ActiveIndex(), "i=%d k=%d", i, k)
			require.GreaterOrEqual(t, a.ActiveIndex(), 0)
			require.Less(t, a.ActiveIndex(), n)
		}
	}
}

func TestNavigationSuspendsAndResumesAfterDelay(t *testing.T) {
	c, clock, rec := newTestController(t, cards("A", "B", "C", "D"), testConfig())

	c.NavigateTo(2)
	assert.False(t, c.IsAutoPlaying())
	assert.Equal(t, StateUserInteracting, c.State())

	clock.Advance(9 * time.Second)
	assert.False(t, c.IsAutoPlaying(), "no resume before the delay")
	assert.Equal(t, 2, c.ActiveIndex(), "no tick while suspended")

	clock.Advance(time.Second)
	assert.True(t, c.IsAutoPlaying())
	assert.Equal(t, StateAutoPlaying, c.State())

	clock.Advance(5 * time.Second)
	assert.Equal(t, 3, c.ActiveIndex())
	assert.Equal(t, []EventKind{EventNavigated, EventAutoPlayResumed, EventAdvanced}, rec.kinds())
}

func TestResumeTimerIsDebounced(t *testing.T) {
	c, clock, _ := newTestController(t, cards("A", "B", "C", "D"), testConfig())

	c.Next()
	clock.Advance(8 * time.Second)
	c.Next()
	clock.Advance(8 * time.Second)
	assert.False(t, c.IsAutoPlaying(), "first interaction's timer must not fire")
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(2 * time.Second)
	assert.True(t, c.IsAutoPlaying())
	assert.Equal(t, 2, c.ActiveIndex())
}

func TestOverlayResumesImmediatelyOnClose(t *testing.T) {
	c, clock, _ := newTestController(t, cards("A", "B", "C"), testConfig())

	c.NavigateTo(1)
	require.True(t, c.OpenOverlay())
	assert.Equal(t, StateOverlayOpen, c.State())
	assert.False(t, c.IsAutoPlaying())
	assert.Zero(t, clock.Pending(), "overlay cancels both tick and resume timers")

	clock.Advance(time.Minute)
	assert.Equal(t, 1, c.ActiveIndex(), "nothing moves while the overlay is open")

	c.CloseOverlay()
	assert.True(t, c.IsAutoPlaying(), "closing resumes without waiting for the resume delay")
	assert.Equal(t, StateAutoPlaying, c.State())

	clock.Advance(5 * time.Second)
	assert.Equal(t, 2, c.ActiveIndex())
}

func TestOpenOverlayOnlyForActiveIndex(t *testing.T) {
	c, _, _ := newTestController(t, cards("A", "B", "C"), testConfig())

	assert.False(t, c.OpenOverlayAt(1))
	assert.False(t, c.IsOverlayOpen())
	assert.True(t, c.OpenOverlayAt(0))
	assert.True(t, c.IsOverlayOpen())
	assert.False(t, c.OpenOverlay(), "already open")
}

func TestNavigateClosesOverlay(t *testing.T) {
	c, _, _ := newTestController(t, cards("A", "B", "C"), testConfig())

	require.True(t, c.OpenOverlay())
	c.Next()
	assert.False(t, c.IsOverlayOpen())
	assert.Equal(t, StateUserInteracting, c.State())
}

func TestSelectActiveOnlyPolicy(t *testing.T) {
	c, _, _ := newTestController(t, cards("A", "B", "C", "D", "E"), testConfig())

	assert.Equal(t, SelectIgnored, c.Select(1))
	assert.Equal(t, 0, c.ActiveIndex())
	assert.True(t, c.IsAutoPlaying(), "ignored selection does not count as interaction")

	assert.Equal(t, SelectOpened, c.Select(0))
	assert.True(t, c.IsOverlayOpen())
}

func TestSelectRecenterPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Visual.ClickPolicy = ClickRecenter
	c, _, _ := newTestController(t, cards("A", "B", "C", "D", "E", "F", "G"), cfg)

	assert.Equal(t, SelectRecentered, c.Select(6))
	assert.Equal(t, 6, c.ActiveIndex())
	assert.False(t, c.IsAutoPlaying())

	assert.Equal(t, SelectIgnored, c.Select(2), "three steps away is hidden")
	assert.Equal(t, SelectOpened, c.Select(6))
}

func TestHoldAndRelease(t *testing.T) {
	c, clock, _ := newTestController(t, cards("A", "B", "C"), testConfig())

	c.Hold()
	c.Hold()
	assert.True(t, c.IsHeld())
	assert.False(t, c.IsAutoPlaying())
	assert.Equal(t, StateUserInteracting, c.State())
	clock.Advance(30 * time.Second)
	assert.Equal(t, 0, c.ActiveIndex())

	c.Release()
	assert.True(t, c.IsAutoPlaying())
	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, c.ActiveIndex())
}

func TestReleaseWaitsForPendingResume(t *testing.T) {
	c, clock, _ := newTestController(t, cards("A", "B", "C"), testConfig())

	c.Hold()
	c.Next()
	c.Release()
	assert.False(t, c.IsAutoPlaying(), "resume timer still owns the restart")

	clock.Advance(10 * time.Second)
	assert.True(t, c.IsAutoPlaying())
}

func TestResumeTimerRespectsHold(t *testing.T) {
	c, clock, _ := newTestController(t, cards("A", "B", "C"), testConfig())

	c.Next()
	c.Hold()
	clock.Advance(10 * time.Second)
	assert.False(t, c.IsAutoPlaying())
	assert.Equal(t, StateUserInteracting, c.State())
}

func TestSetItemsClampsAndRearms(t *testing.T) {
	c, clock, rec := newTestController(t, cards("A", "B", "C", "D", "E"), testConfig())

	c.NavigateTo(4)
	require.True(t, c.OpenOverlay())
	c.SetItems(cards("A", "B"))

	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.IsOverlayOpen())
	assert.Equal(t, StateIdle, c.State())
	assert.True(t, c.IsAutoPlaying())
	assert.Equal(t, 1, clock.Pending(), "only the fresh tick timer is armed")

	clock.Advance(5 * time.Second)
	assert.Equal(t, 0, c.ActiveIndex(), "ticks use the new length")
	assert.Contains(t, rec.kinds(), EventItemsChanged)
}

func TestEmptyCarouselIsGuarded(t *testing.T) {
	c, clock, rec := newTestController(t, nil, testConfig())

	assert.Equal(t, NoIndex, c.ActiveIndex())
	assert.False(t, c.IsAutoPlaying())
	assert.Zero(t, clock.Pending())

	_, ok := c.Active()
	assert.False(t, ok)
	for _, i := range []int{-1, 0, 1, 42} {
		assert.Equal(t, Hidden(c.Config().Visual), c.VisualStateFor(i))
	}

	c.Next()
	c.Prev()
	c.NavigateTo(3)
	assert.False(t, c.OpenOverlay())
	assert.Equal(t, SelectIgnored, c.Select(0))
	clock.Advance(time.Minute)
	assert.Equal(t, NoIndex, c.ActiveIndex())
	assert.Empty(t, rec.kinds())

	c.SetItems(cards("A", "B"))
	assert.Equal(t, 0, c.ActiveIndex())
	assert.True(t, c.IsAutoPlaying())

	c.SetItems(nil)
	assert.Equal(t, NoIndex, c.ActiveIndex())
	assert.False(t, c.IsAutoPlaying())
	assert.Zero(t, clock.Pending())
}

func TestAutoplayDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.AutoPlayEnabled = false
	c, clock, _ := newTestController(t, cards("A", "B", "C"), cfg)

	assert.False(t, c.IsAutoPlaying())
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.ActiveIndex())

	c.Next()
	clock.Advance(10 * time.Second)
	assert.False(t, c.IsAutoPlaying())
	assert.Equal(t, StateIdle, c.State())
}

func TestDisposeIsIdempotentAndFinal(t *testing.T) {
	c, clock, rec := newTestController(t, cards("A", "B", "C"), testConfig())

	c.Next()
	c.Dispose()
	c.Dispose()
	assert.True(t, c.Disposed())
	assert.Zero(t, clock.Pending())

	before := len(rec.kinds())
	c.Next()
	c.Prev()
	c.NavigateTo(2)
	c.Hold()
	c.Release()
	assert.False(t, c.OpenOverlay())
	c.CloseOverlay()
	c.SetItems(cards("X"))
	clock.Advance(time.Minute)

	assert.Equal(t, 1, c.ActiveIndex())
	assert.False(t, c.IsAutoPlaying())
	assert.Zero(t, clock.Pending(), "no timer is restarted after dispose")
	assert.Len(t, rec.kinds(), before)
}

func TestVisualStateForUsesActiveIndex(t *testing.T) {
	c, _, _ := newTestController(t, cards("A", "B", "C", "D", "E"), testConfig())

	c.NavigateTo(1)
	assert.True(t, c.VisualStateFor(1).Active())
	assert.Equal(t, -2, c.VisualStateFor(4).Offset)
	assert.Equal(t, 1, c.VisualStateFor(2).Offset)

	snap := c.Snapshot()
	require.Len(t, snap.Descriptors, 5)
	assert.Equal(t, 1, snap.ActiveIndex)
	assert.Equal(t, StateUserInteracting, snap.State)
	assert.Equal(t, c.VisualStateFor(3), snap.Descriptors[3])
}

func TestIndexOf(t *testing.T) {
	c, _, _ := newTestController(t, cards("A", "B", "C"), testConfig())

	assert.Equal(t, 2, c.IndexOf("C"))
	assert.Equal(t, NoIndex, c.IndexOf("Z"))
}

func TestSystemClockDisposeLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig()
	cfg.AutoPlayInterval = 5 * time.Millisecond
	cfg.ResumeDelay = 5 * time.Millisecond

	advanced := make(chan struct{}, 16)
	c := New(cards("A", "B", "C"), cfg, WithOnChange(func(ev Event) {
		if ev.Kind == EventAdvanced {
			select {
			case advanced <- struct{}{}:
			default:
			}
		}
	}))

	select {
	case <-advanced:
	case <-time.After(2 * time.Second):
		t.Fatal("autoplay never advanced on the system clock")
	}
	c.Next()
	c.Dispose()

	idx := c.ActiveIndex()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, idx, c.ActiveIndex(), "no timer mutates state after dispose")
}
