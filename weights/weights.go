package weights

import (
	"errors"

	"github.com/katalvlaran/mrtguide/station"
)

// ErrNotOperating indicates that a policy refuses an edge: the service does
// not run there during the policy's time window.
var ErrNotOperating = errors.New("weights: service not operating on this edge")

// Policy names, as returned by Weights.Name.
const (
	NameUniform = "uniform"
	NamePeak    = "peak"
	NameNight   = "night"
	NameNormal  = "normal"
)

// Weights computes the traversal cost of rail-graph edges.
type Weights interface {
	// Name identifies the variant ("uniform", "peak", "night", "normal").
	Name() string

	// DirectCost is the cost of riding from one station to the next on the same line.
	DirectCost(from, to station.Station) (int64, error)

	// TransferCost is the cost of changing between platforms of one interchange.
	TransferCost(from, to station.Station) (int64, error)
}

// Cost constants, in minutes.
const (
	uniformDirect   = 1
	uniformTransfer = 0

	peakBusyDirect = 12
	peakDirect     = 10
	peakTransfer   = 15

	nightFastDirect = 8
	nightDirect     = 10
	nightTransfer   = 10

	normalFastDirect = 8
	normalDirect     = 10
	normalTransfer   = 10
)

// LineSet is a set of two-letter line codes.
type LineSet map[string]struct{}

// NewLineSet builds a LineSet from line codes.
func NewLineSet(lines ...string) LineSet {
	s := make(LineSet, len(lines))
	for _, l := range lines {
		s[l] = struct{}{}
	}

	return s
}

// Has reports whether line is in the set.
func (s LineSet) Has(line string) bool {
	_, ok := s[line]
	return ok
}

// both reports whether both endpoints ride on lines of s.
func (s LineSet) both(a, b station.Station) bool { return s.Has(a.Line) && s.Has(b.Line) }

// either reports whether at least one endpoint rides on a line of s.
func (s LineSet) either(a, b station.Station) bool { return s.Has(a.Line) || s.Has(b.Line) }

// Uniform counts hops: every ride costs 1 and every transfer is free.
type Uniform struct{}

// Name implements Weights.
func (Uniform) Name() string { return NameUniform }

// DirectCost implements Weights.
func (Uniform) DirectCost(_, _ station.Station) (int64, error) { return uniformDirect, nil }

// TransferCost implements Weights.
func (Uniform) TransferCost(_, _ station.Station) (int64, error) { return uniformTransfer, nil }

// PeakHour applies during weekday rush hours.
type PeakHour struct {
	// Busy lines are slower when both endpoints ride on them.
	Busy LineSet
}

// NewPeakHour returns a PeakHour policy with the given busy lines.
func NewPeakHour(busy LineSet) PeakHour { return PeakHour{Busy: busy} }

// Name implements Weights.
func (PeakHour) Name() string { return NamePeak }

// DirectCost implements Weights.
func (p PeakHour) DirectCost(from, to station.Station) (int64, error) {
	if p.Busy.both(from, to) {
		return peakBusyDirect, nil
	}

	return peakDirect, nil
}

// TransferCost implements Weights.
func (PeakHour) TransferCost(_, _ station.Station) (int64, error) { return peakTransfer, nil }

// Night applies late in the evening and early in the morning, every day.
type Night struct {
	// Stopped lines do not operate at night.
	Stopped LineSet
	// Fast lines are quicker when both endpoints ride on them.
	Fast LineSet
}

// NewNight returns a Night policy.
func NewNight(stopped, fast LineSet) Night { return Night{Stopped: stopped, Fast: fast} }

// Name implements Weights.
func (Night) Name() string { return NameNight }

// DirectCost implements Weights. Edges touching a stopped line are refused.
func (n Night) DirectCost(from, to station.Station) (int64, error) {
	if n.Stopped.either(from, to) {
		return 0, ErrNotOperating
	}
	if n.Fast.both(from, to) {
		return nightFastDirect, nil
	}

	return nightDirect, nil
}

// TransferCost implements Weights. Transfers touching a stopped line are refused.
func (n Night) TransferCost(from, to station.Station) (int64, error) {
	if n.Stopped.either(from, to) {
		return 0, ErrNotOperating
	}

	return nightTransfer, nil
}

// Normal applies outside peak and night windows.
type Normal struct {
	// Fast lines are quicker when both endpoints ride on them.
	Fast LineSet
}

// NewNormal returns a Normal policy.
func NewNormal(fast LineSet) Normal { return Normal{Fast: fast} }

// Name implements Weights.
func (Normal) Name() string { return NameNormal }

// DirectCost implements Weights.
func (n Normal) DirectCost(from, to station.Station) (int64, error) {
	if n.Fast.both(from, to) {
		return normalFastDirect, nil
	}

	return normalDirect, nil
}

// TransferCost implements Weights.
func (Normal) TransferCost(_, _ station.Station) (int64, error) { return normalTransfer, nil }
