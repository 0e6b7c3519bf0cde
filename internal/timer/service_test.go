package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/sandtimer/internal/model"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() { f.once.Do(func() { close(f.stopped) }) }

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	ticker *fakeTicker
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTicker(time.Duration) Ticker { return c.ticker }

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:    time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
		ticker: newFakeTicker(),
	}
}

func TestNewService(t *testing.T) {
	svc := NewService(30, nil)

	snap := svc.Snapshot()
	assert.Equal(t, model.Stopped, snap.State)
	assert.Equal(t, 30*time.Minute, snap.Remaining)
	assert.Equal(t, uint64(30), snap.ConfiguredMinutes)
	assert.True(t, snap.SoundEnabled)
}

func TestService_ExpiryHandlerCalledOncePerExpiry(t *testing.T) {
	svc := NewService(25, nil)
	clock := newFakeClock()
	svc.SetClock(clock)

	var events []model.Expiry
	svc.SetExpiryHandler(func(ev model.Expiry) {
		events = append(events, ev)
	})

	svc.Toggle()
	for i := 0; i < 1500; i++ {
		svc.Tick()
	}

	require.Len(t, events, 1)
	assert.Equal(t, model.ReasonElapsed, events[0].Reason)
	assert.Equal(t, uint64(25), events[0].ConfiguredMinutes)
	assert.True(t, events[0].SoundEnabled)
	assert.Equal(t, clock.Now(), events[0].At)
	assert.NotEmpty(t, events[0].ID)

	snap := svc.Snapshot()
	assert.Equal(t, model.Stopped, snap.State)
	assert.Equal(t, 1500*time.Second, snap.Remaining)

	// Further ticks while stopped must not notify again
	svc.Tick()
	svc.Tick()
	assert.Len(t, events, 1)
}

func TestService_StopNotifiesAndRearms(t *testing.T) {
	svc := NewService(10, nil)

	var events []model.Expiry
	svc.SetExpiryHandler(func(ev model.Expiry) { events = append(events, ev) })

	svc.Toggle()
	svc.Tick()
	svc.SetSoundEnabled(false)
	svc.Stop()

	require.Len(t, events, 1)
	assert.Equal(t, model.ReasonStopped, events[0].Reason)
	assert.False(t, events[0].SoundEnabled)

	snap := svc.Snapshot()
	assert.Equal(t, model.Stopped, snap.State)
	assert.Equal(t, 10*time.Minute, snap.Remaining)
}

func TestService_ExpiryIDsAreUnique(t *testing.T) {
	svc := NewService(1, nil)

	ids := map[string]bool{}
	svc.SetExpiryHandler(func(ev model.Expiry) { ids[ev.ID] = true })

	for i := 0; i < 5; i++ {
		svc.Stop()
	}
	assert.Len(t, ids, 5)
}

func TestService_HandlerRunsWithoutLock(t *testing.T) {
	svc := NewService(0, nil)

	observed := make(chan model.Snapshot, 1)
	svc.SetExpiryHandler(func(model.Expiry) {
		// Re-entering the service would deadlock if the lock were still held
		observed <- svc.Snapshot()
	})

	svc.Toggle()
	go svc.Tick()

	select {
	case snap := <-observed:
		assert.Equal(t, model.Stopped, snap.State)
	case <-time.After(2 * time.Second):
		t.Fatal("expiry handler was invoked while the timer lock was held")
	}
}

func TestService_PausedScenario(t *testing.T) {
	svc := NewService(10, nil)

	svc.Toggle()
	svc.Toggle()
	svc.Tick()

	snap := svc.Snapshot()
	assert.Equal(t, model.Paused, snap.State)
	assert.Equal(t, 600*time.Second, snap.Remaining)
}

func TestService_AddOneMinuteScenario(t *testing.T) {
	svc := NewService(5, nil)

	svc.AddOneMinute()
	snap := svc.Snapshot()
	assert.Equal(t, 360*time.Second, snap.Remaining)
	assert.Equal(t, uint64(6), snap.ConfiguredMinutes)

	svc.Toggle()
	svc.AddOneMinute()
	snap = svc.Snapshot()
	assert.Equal(t, 420*time.Second, snap.Remaining)
	assert.Equal(t, uint64(6), snap.ConfiguredMinutes)
}

func TestService_ResetAndReconfigure(t *testing.T) {
	svc := NewService(30, nil)

	svc.Toggle()
	svc.Tick()
	svc.Reset(20)

	snap := svc.Snapshot()
	assert.Equal(t, model.Stopped, snap.State)
	assert.Equal(t, 20*time.Minute, snap.Remaining)

	svc.SetConfiguredMinutes(45)
	snap = svc.Snapshot()
	assert.Equal(t, uint64(45), snap.ConfiguredMinutes)
	assert.Equal(t, 45*time.Minute, snap.Remaining)
}

func TestService_ConcurrentReadersSeeConsistentSnapshots(t *testing.T) {
	svc := NewService(1, nil)
	svc.Toggle()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := svc.Snapshot()
				// Stopped always carries the full configured duration
				if snap.State == model.Stopped {
					assert.Equal(t, time.Duration(snap.ConfiguredMinutes)*time.Minute, snap.Remaining)
				}
				assert.GreaterOrEqual(t, snap.Remaining, time.Duration(0))
			}
		}()
	}

	for i := 0; i < 200; i++ {
		svc.Tick()
		if i%60 == 0 {
			svc.Toggle()
			svc.Toggle()
		}
	}

	close(stop)
	wg.Wait()
}

func TestService_RunTicksOncePerSecondWithoutBackfill(t *testing.T) {
	svc := NewService(1, nil)
	clock := newFakeClock()
	svc.SetClock(clock)
	svc.Toggle()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, 100*time.Millisecond)
		close(done)
	}()

	start := clock.Now()
	polls := []time.Duration{
		500 * time.Millisecond, // too early
		time.Second,            // tick
		1500 * time.Millisecond,
		5 * time.Second, // late poll, single tick
		5500 * time.Millisecond,
		6 * time.Second, // tick
	}
	for _, offset := range polls {
		clock.ticker.ch <- start.Add(offset)
	}

	cancel()
	<-done

	snap := svc.Snapshot()
	assert.Equal(t, 57*time.Second, snap.Remaining)
	assert.Equal(t, model.Running, snap.State)

	select {
	case <-clock.ticker.stopped:
	default:
		t.Error("Run should stop its ticker on return")
	}
}

func TestService_RunIgnoresPollsWhileStopped(t *testing.T) {
	svc := NewService(1, nil)
	clock := newFakeClock()
	svc.SetClock(clock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, 0)
		close(done)
	}()

	start := clock.Now()
	for i := 1; i <= 3; i++ {
		clock.ticker.ch <- start.Add(time.Duration(i) * time.Second)
	}

	cancel()
	<-done

	assert.Equal(t, time.Minute, svc.Snapshot().Remaining)
}

func TestPacer_Due(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	pacer := NewPacer(start, time.Second)

	tests := []struct {
		offset   time.Duration
		expected bool
	}{
		{200 * time.Millisecond, false},
		{999 * time.Millisecond, false},
		{time.Second, true},
		{1900 * time.Millisecond, false},
		{2 * time.Second, true},
		{10 * time.Second, true},
		{10500 * time.Millisecond, false},
		{11 * time.Second, true},
	}

	for _, test := range tests {
		result := pacer.Due(start.Add(test.offset))
		if result != test.expected {
			t.Errorf("Due(+%v) = %v, expected %v", test.offset, result, test.expected)
		}
	}
}
