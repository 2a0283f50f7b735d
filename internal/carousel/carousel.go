// Package carousel owns the rotation state of the featured-projects display:
// the active index, the animation direction and the auto-advance timer.
package carousel

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultInterval is how often the carousel advances on its own.
const DefaultInterval = 10 * time.Second

var (
	// ErrInvalidIndex is returned by GoTo for an index outside [0, count).
	ErrInvalidIndex = errors.New("carousel: invalid index")
	// ErrNoProjects is returned by New when there is nothing to rotate.
	ErrNoProjects = errors.New("carousel: no projects")
	// ErrClosed is returned by GoTo once the controller has been torn down.
	ErrClosed = errors.New("carousel: controller closed")
)

// Snapshot is the state exposed to the view layer.
type Snapshot struct {
	ActiveIndex int       `json:"activeIndex"`
	Direction   Direction `json:"direction"`
}

// Controller rotates through count items. All mutations are serialized by mu,
// so the timer goroutine and request handlers never interleave mid-update.
type Controller struct {
	mu        sync.Mutex
	count     int
	active    int
	direction Direction
	closed    bool

	clock    clock.Clock
	interval time.Duration
	ticker   *clock.Ticker

	subs   map[int]chan Transition
	nextID int

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithInterval overrides DefaultInterval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.interval = d
		}
	}
}

// New creates a controller at index 0 facing Forward and starts its timer.
// Callers must Close it when the owning view goes away.
func New(count int, opts ...Option) (*Controller, error) {
	if count < 1 {
		return nil, ErrNoProjects
	}
	c := &Controller{
		count:     count,
		direction: Forward,
		clock:     clock.New(),
		interval:  DefaultInterval,
		subs:      make(map[int]chan Transition),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	// The ticker exists before New returns so a mock clock advanced right
	// after construction already sees it.
	c.ticker = c.clock.Ticker(c.interval)
	go c.run()
	return c, nil
}

func (c *Controller) run() {
	defer close(c.done)
	for {
		select {
		case <-c.stop:
			return
		case <-c.ticker.C:
			c.advance(CauseAuto)
		}
	}
}

// Count is the number of items being rotated.
func (c *Controller) Count() int { return c.count }

// Interval is the auto-advance period.
func (c *Controller) Interval() time.Duration { return c.interval }

// Advance moves to the next item, wrapping after the last one.
func (c *Controller) Advance() {
	c.advance(CauseManual)
}

func (c *Controller) advance(cause Cause) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	from := c.active
	c.direction = Forward
	c.active = (c.active + 1) % c.count
	c.publish(Transition{From: from, To: c.active, Direction: c.direction, Cause: cause})
}

// GoTo jumps straight to index. The auto-advance schedule is left as is,
// so the next tick may move away from index before a full interval passes.
func (c *Controller) GoTo(index int) error {
	if index < 0 || index >= c.count {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, index, c.count)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	from := c.active
	c.direction = directionBetween(from, index, c.count)
	c.active = index
	c.publish(Transition{From: from, To: index, Direction: c.direction, Cause: CauseManual})
	return nil
}

// Snapshot returns the current index and direction.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{ActiveIndex: c.active, Direction: c.direction}
}

// Subscribe returns a channel of transitions and a func that cancels the
// subscription. Events are dropped for a subscriber whose buffer is full.
func (c *Controller) Subscribe() (<-chan Transition, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Transition, 8)
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
}

// publish must be called with mu held.
func (c *Controller) publish(t Transition) {
	for _, ch := range c.subs {
		select {
		case ch <- t:
		default:
		}
	}
}

// Close stops the timer and waits for it to exit. Subscriber channels are
// closed. It is safe to call more than once.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.ticker.Stop()
		for id, ch := range c.subs {
			delete(c.subs, id)
			close(ch)
		}
		c.mu.Unlock()

		close(c.stop)
		<-c.done
	})
}
