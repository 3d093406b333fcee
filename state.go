package progress

import (
	"time"

	"github.com/lixenwraith/progress/terminal"
)

// State is the immutable snapshot handed to every widget on a redraw.
// Widgets must treat it as read only.
type State struct {
	MinValue      int64
	MaxValue      int64
	MaxKnown      bool
	Value         int64
	PreviousValue int64
	HasPrevious   bool

	StartTime      time.Time
	LastUpdateTime time.Time
	EndTime        time.Time

	// Updates counts redraws so far, not Update calls.
	Updates int64

	TimeElapsed  time.Duration
	ColorSupport terminal.ColorSupport
	Variables    map[string]any
}

// Percentage returns progress as 0-100. ok is false when the maximum is
// unknown. A zero-width range reports 100 regardless of the value.
func (s *State) Percentage() (pct float64, ok bool) {
	if !s.MaxKnown {
		return 0, false
	}
	total := s.MaxValue - s.MinValue
	if total == 0 {
		return 100, true
	}
	return float64(s.Value-s.MinValue) / float64(total) * 100, true
}

// percentagePtr adapts Percentage for the color applier, which models the
// unknown case as nil.
func (s *State) percentagePtr() *float64 {
	pct, ok := s.Percentage()
	if !ok {
		return nil
	}
	return &pct
}

// Finished reports whether the bar has ended.
func (s *State) Finished() bool {
	return !s.EndTime.IsZero()
}

// TotalSecondsElapsed returns the elapsed wall-clock time in seconds.
func (s *State) TotalSecondsElapsed() float64 {
	return s.TimeElapsed.Seconds()
}

// SecondsElapsed returns the seconds component of the elapsed time.
func (s *State) SecondsElapsed() int {
	return int(s.TimeElapsed.Seconds()) % 60
}

// MinutesElapsed returns the minutes component of the elapsed time.
func (s *State) MinutesElapsed() int {
	return int(s.TimeElapsed.Minutes()) % 60
}

// HoursElapsed returns the hours component of the elapsed time.
func (s *State) HoursElapsed() int {
	return int(s.TimeElapsed.Hours()) % 24
}

// DaysElapsed returns whole days of elapsed time.
func (s *State) DaysElapsed() int {
	return int(s.TimeElapsed.Hours()) / 24
}
