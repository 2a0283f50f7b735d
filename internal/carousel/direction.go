package carousel

import (
	"encoding/json"
	"fmt"
)

// Direction orients the slide animation of a transition.
type Direction int

const (
	// Forward slides the entering item in from the right.
	Forward Direction = 1
	// Backward slides the entering item in from the left.
	Backward Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalJSON encodes the direction by name.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the names produced by MarshalJSON.
func (d *Direction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "forward":
		*d = Forward
	case "backward":
		*d = Backward
	default:
		return fmt.Errorf("carousel: unknown direction %q", s)
	}
	return nil
}

// EnterOffset is the horizontal start position of the entering item, as a
// percentage of its width.
func (d Direction) EnterOffset() int {
	if d == Backward {
		return -100
	}
	return 100
}

// ExitOffset is where the leaving item ends up; always opposite EnterOffset.
func (d Direction) ExitOffset() int {
	return -d.EnterOffset()
}

// directionBetween picks the orientation of the shorter way round the ring
// from one index to another. Ties, and jumping to the current index, count
// as Forward.
func directionBetween(from, to, count int) Direction {
	ahead := ((to-from)%count + count) % count
	behind := count - ahead
	if ahead == 0 || ahead <= behind {
		return Forward
	}
	return Backward
}

// Cause says what triggered a transition.
type Cause string

const (
	CauseAuto   Cause = "auto"
	CauseManual Cause = "manual"
)

// Transition is emitted for every change of the active index.
type Transition struct {
	From      int       `json:"from"`
	To        int       `json:"to"`
	Direction Direction `json:"direction"`
	Cause     Cause     `json:"cause"`
}
