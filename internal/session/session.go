// Package session keeps one theme and one carousel per mounted page.
package session

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/nicodeveloper97/portfolio/internal/carousel"
	"github.com/nicodeveloper97/portfolio/internal/theme"
)

// Session is the state owner of one page view. It is created by
// Manager.Mount and torn down by Manager.Unmount.
type Session struct {
	ID       string
	Theme    *theme.State
	Carousel *carousel.Controller
	Created  time.Time

	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time

	// live counts open live channels. Sessions with one are never idle.
	live atomic.Int32
}

// Allow reports whether one more user action fits the session's rate.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen is the time of the last request that looked the session up.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Live reports whether a live channel is attached.
func (s *Session) Live() bool {
	return s.live.Load() > 0
}

// Snapshot reads carousel and theme together.
func (s *Session) Snapshot() (carousel.Snapshot, theme.Theme) {
	return s.Carousel.Snapshot(), s.Theme.Current()
}
