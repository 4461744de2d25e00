package weights

import "time"

// Time windows, in fractional hours of the day. Lower bounds inclusive.
const (
	morningPeakStart = 6.0
	morningPeakEnd   = 9.0
	eveningPeakStart = 18.0
	eveningPeakEnd   = 21.0
	nightStart       = 22.0
	nightEnd         = 6.0
)

// Lines names which lines each time-dependent policy treats specially.
type Lines struct {
	PeakBusy   []string `yaml:"peak_busy"`
	NightStop  []string `yaml:"night_stop"`
	NightFast  []string `yaml:"night_fast"`
	NormalFast []string `yaml:"normal_fast"`
}

// DefaultLines returns the Singapore MRT line sets.
func DefaultLines() Lines {
	return Lines{
		PeakBusy:   []string{"NS", "NE"},
		NightStop:  []string{"DT", "CG", "CE"},
		NightFast:  []string{"TE"},
		NormalFast: []string{"DT", "TE"},
	}
}

// Merge returns l with every empty field filled from fallback.
func (l Lines) Merge(fallback Lines) Lines {
	if len(l.PeakBusy) == 0 {
		l.PeakBusy = fallback.PeakBusy
	}
	if len(l.NightStop) == 0 {
		l.NightStop = fallback.NightStop
	}
	if len(l.NightFast) == 0 {
		l.NightFast = fallback.NightFast
	}
	if len(l.NormalFast) == 0 {
		l.NormalFast = fallback.NormalFast
	}

	return l
}

// Selector chooses a policy for a point in time.
type Selector struct {
	peak   PeakHour
	night  Night
	normal Normal
}

// NewSelector builds a Selector from line sets.
func NewSelector(lines Lines) Selector {
	return Selector{
		peak:   NewPeakHour(NewLineSet(lines.PeakBusy...)),
		night:  NewNight(NewLineSet(lines.NightStop...), NewLineSet(lines.NightFast...)),
		normal: NewNormal(NewLineSet(lines.NormalFast...)),
	}
}

// ForTime returns the policy in effect at t, or Uniform when t is nil.
//
// Peak takes precedence over Night; the windows do not overlap, so the
// order only documents intent. Night has no weekday restriction.
func (s Selector) ForTime(t *time.Time) Weights {
	if t == nil {
		return Uniform{}
	}
	switch h := hourOfDay(*t); {
	case isWeekday(*t) && (inWindow(h, morningPeakStart, morningPeakEnd) || inWindow(h, eveningPeakStart, eveningPeakEnd)):
		return s.peak
	case h >= nightStart || h < nightEnd:
		return s.night
	default:
		return s.normal
	}
}

// Select returns the policy in effect at t using DefaultLines.
func Select(t *time.Time) Weights {
	return NewSelector(DefaultLines()).ForTime(t)
}

// hourOfDay returns the time since midnight in fractional hours.
func hourOfDay(t time.Time) float64 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return t.Sub(midnight).Hours()
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

func inWindow(h, from, to float64) bool { return h >= from && h < to }
