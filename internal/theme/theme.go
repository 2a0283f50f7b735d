// Package theme holds the dark/light switch every section reads and the two
// palettes it selects between.
package theme

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Theme is one of the two rendering variants.
type Theme int

const (
	Dark Theme = iota
	Light
)

// FromDark maps the isDark flag onto a Theme.
func FromDark(isDark bool) Theme {
	if isDark {
		return Dark
	}
	return Light
}

func (t Theme) IsDark() bool { return t == Dark }

func (t Theme) String() string {
	switch t {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

func (t Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Opposite is the theme a toggle would switch to.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// State is the single source of truth for the active theme of one page.
// The zero value is not ready; use NewState.
type State struct {
	mu     sync.Mutex
	isDark bool
}

// NewState starts in dark mode.
func NewState() *State {
	return &State{isDark: true}
}

// Toggle flips the theme and returns the new one.
func (s *State) Toggle() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isDark = !s.isDark
	return FromDark(s.isDark)
}

func (s *State) IsDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isDark
}

// Current returns the active theme.
func (s *State) Current() Theme {
	return FromDark(s.IsDark())
}
