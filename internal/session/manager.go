package session

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"github.com/nicodeveloper97/portfolio/internal/carousel"
	"github.com/nicodeveloper97/portfolio/internal/theme"
)

var (
	ErrNotFound        = errors.New("session: not found")
	ErrTooManySessions = errors.New("session: too many open sessions")
)

// Config tunes the sessions a Manager mounts.
type Config struct {
	Interval    time.Duration // carousel auto-advance period
	IdleTTL     time.Duration // sessions unseen for longer are reaped
	Rate        float64       // user actions per second
	Burst       int
	MaxSessions int // 0 means unlimited
	Clock       clock.Clock
}

// Manager owns every mounted session.
type Manager struct {
	projects int
	cfg      Config

	mu       sync.Mutex
	sessions map[string]*Session

	cron *cron.Cron
}

// NewManager prepares sessions rotating through projects items.
func NewManager(projects int, cfg Config) *Manager {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = carousel.DefaultInterval
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}
	return &Manager{
		projects: projects,
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

// Mount creates a session with a fresh theme and a running carousel.
func (m *Manager) Mount() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		return nil, ErrTooManySessions
	}

	ctl, err := carousel.New(m.projects,
		carousel.WithClock(m.cfg.Clock),
		carousel.WithInterval(m.cfg.Interval),
	)
	if err != nil {
		return nil, fmt.Errorf("session: mounting carousel: %w", err)
	}

	now := m.cfg.Clock.Now()
	s := &Session{
		ID:       uuid.NewString(),
		Theme:    theme.NewState(),
		Carousel: ctl,
		Created:  now,
		limiter:  rate.NewLimiter(rate.Limit(m.cfg.Rate), m.cfg.Burst),
		lastSeen: now,
	}
	m.sessions[s.ID] = s
	return s, nil
}

// Get looks a session up and marks it as seen.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch(m.cfg.Clock.Now())
	return s, nil
}

// Unmount removes the session and stops its carousel.
func (m *Manager) Unmount(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.Carousel.Close()
	return nil
}

// Attach marks s as watched by a live channel until detach is called.
// Detaching counts as activity, so the idle clock restarts from there.
func (m *Manager) Attach(s *Session) (detach func()) {
	s.live.Add(1)
	s.touch(m.cfg.Clock.Now())
	var once sync.Once
	return func() {
		once.Do(func() {
			s.touch(m.cfg.Clock.Now())
			s.live.Add(-1)
		})
	}
}

// Len is the number of mounted sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Reap unmounts sessions not seen within IdleTTL of now and returns how
// many it removed. Sessions with a live channel attached are kept. A zero
// IdleTTL disables reaping.
func (m *Manager) Reap(now time.Time) int {
	if m.cfg.IdleTTL <= 0 {
		return 0
	}
	var stale []*Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if !s.Live() && now.Sub(s.LastSeen()) > m.cfg.IdleTTL {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Carousel.Close()
	}
	return len(stale)
}

// StartReaper runs Reap on the given cron spec, e.g. "@every 1m".
func (m *Manager) StartReaper(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if n := m.Reap(m.cfg.Clock.Now()); n > 0 {
			log.Printf("session: reaped %d idle sessions", n)
		}
	}); err != nil {
		return fmt.Errorf("session: scheduling reaper: %w", err)
	}
	m.mu.Lock()
	m.cron = c
	m.mu.Unlock()
	c.Start()
	return nil
}

// Close stops the reaper and unmounts every session.
func (m *Manager) Close() {
	m.mu.Lock()
	c := m.cron
	m.cron = nil
	all := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	for _, s := range all {
		s.Carousel.Close()
	}
}
