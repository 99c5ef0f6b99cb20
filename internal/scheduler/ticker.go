package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is the wall-clock period between ticks.
const DefaultInterval = time.Second

// errClosed is returned by Start after Close.
var errClosed = errors.New("ticker is closed")

// Tick is one firing of the ticker.
type Tick struct {
	// Generation identifies the Start call the tick belongs to.
	Generation uint64
	// At is the wall-clock time of the firing.
	At time.Time
}

// Ticker runs a fixed-interval loop in its own goroutine while started and
// delivers ticks on C. Delivery never blocks: a tick is dropped when the
// previous one has not been received yet, so missed ticks are not caught up.
type Ticker struct {
	// interval is the period between ticks.
	interval time.Duration
	// ticks is the delivery channel returned by C.
	ticks chan Tick

	// mu protects the fields below.
	mu sync.Mutex
	// generation is incremented on every Start and Stop.
	generation uint64
	// cancel stops the running loop, nil when stopped.
	cancel context.CancelFunc
	// done is closed when the running loop exits.
	done chan struct{}
	// closed is set by Close.
	closed bool
}

// New creates a stopped ticker. A non-positive interval falls back to DefaultInterval.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Ticker{
		interval: interval,
		ticks:    make(chan Tick, 1),
	}
}

// C returns the channel ticks are delivered on. It is closed by Close.
func (t *Ticker) C() <-chan Tick {
	return t.ticks
}

// Start launches the loop if it is not running and returns the current generation.
// The loop also stops when ctx is canceled.
func (t *Ticker) Start(ctx context.Context) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, errClosed
	}

	if t.cancel != nil {
		return t.generation, nil
	}

	t.generation++

	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})

	go t.loop(loopCtx, t.generation, t.done)

	return t.generation, nil
}

// Stop halts the loop and waits for it to exit. Nothing is sent on C after
// Stop returns; a tick already buffered carries an old generation.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil

	if cancel != nil {
		t.generation++
	}
	t.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Sync starts or stops the ticker so that it runs iff running is true.
func (t *Ticker) Sync(ctx context.Context, running bool) (uint64, error) {
	if running {
		return t.Start(ctx)
	}

	t.Stop()

	return t.Generation(), nil
}

// Running reports whether the loop is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cancel != nil
}

// Generation returns the generation of the current (or last) run.
func (t *Ticker) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.generation
}

// Current reports whether tick belongs to the active run.
func (t *Ticker) Current(tick Tick) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cancel != nil && tick.Generation == t.generation
}

// Close stops the ticker for good and closes C. It is safe to call more than once.
func (t *Ticker) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()

		return nil
	}

	t.closed = true
	t.mu.Unlock()

	t.Stop()
	close(t.ticks)

	return nil
}

func (t *Ticker) loop(ctx context.Context, generation uint64, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case at := <-ticker.C:
			// Stop may have raced the ticker channel.
			if ctx.Err() != nil {
				return
			}

			select {
			case t.ticks <- Tick{Generation: generation, At: at}:
			default:
			}
		}
	}
}
