package timing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

// Position is an absolute location on the time line, kept in beats from
// the origin. Negative positions are legal pickup territory; every
// derived digit keeps flooring toward minus infinity there.
type Position struct {
	beats rational.Rational
}

func PositionBeats(beats rational.Rational) Position {
	return Position{beats: beats}
}

// PositionOf places a point the given amount of units from the origin.
func PositionOf(amount rational.Rational, k Kind, v staff.View) Position {
	return Position{beats: amount.Mul(beatsPer(k, v))}
}

func (p Position) Beats() rational.Rational { return p.beats }

// In re-expresses the position in another unit, exactly.
func (p Position) In(k Kind, v staff.View) rational.Rational {
	return p.beats.Div(beatsPer(k, v))
}

// Measure is the measure digit: how many whole measures lie before this
// point.
func (p Position) Measure(v staff.View) int64 {
	return p.beats.Div(v.BeatsPerMeasure()).Int()
}

// Beat is the beat digit within the current measure. A point anywhere
// inside a beat reports that beat: digits name where we are, not where
// we are heading.
func (p Position) Beat(v staff.View) int64 {
	return p.beats.Mod(v.BeatsPerMeasure()).Int()
}

// Step is the step digit within the current measure.
func (p Position) Step(v staff.View) int64 {
	steps := p.In(Steps, v)
	return steps.Mod(v.StepsPerMeasure()).Int()
}

// SetMeasure moves the position to the given measure, carrying its
// offset within the measure along.
func (p Position) SetMeasure(m int64, v staff.View) Position {
	within := p.beats.Mod(v.BeatsPerMeasure())
	return Position{beats: rational.FromInt(m).Mul(v.BeatsPerMeasure()).Add(within)}
}

// SetBeat replaces the beat digit, clearing everything below it. The
// measure digit stays; a beat index past the measure's end carries into
// the following measures.
func (p Position) SetBeat(b int64, v staff.View) Position {
	measureStart := rational.FromInt(p.Measure(v)).Mul(v.BeatsPerMeasure())
	return Position{beats: measureStart.Add(rational.FromInt(b))}
}

// SetStep replaces the step digit, clearing any sub-step offset.
func (p Position) SetStep(s int64, v staff.View) Position {
	stepsPerMeasure := v.StepsPerMeasure()
	measureStart := p.In(Steps, v).Div(stepsPerMeasure).Int()
	steps := rational.FromInt(measureStart).Mul(stepsPerMeasure).Add(rational.FromInt(s))
	return PositionOf(steps, Steps, v)
}

// SetValue replaces the position's whole magnitude outright.
func (p Position) SetValue(amount rational.Rational, k Kind, v staff.View) Position {
	return PositionOf(amount, k, v)
}

func (p Position) Add(l Length) Position {
	return Position{beats: p.beats.Add(l.beats)}
}

// Sub is the span from o up to p.
func (p Position) Sub(o Position) Length {
	return Length{beats: p.beats.Sub(o.beats)}
}

func (p Position) Cmp(o Position) int    { return p.beats.Cmp(o.beats) }
func (p Position) Equal(o Position) bool { return p.beats.Equal(o.beats) }
func (p Position) IsZero() bool          { return p.beats.IsZero() }

// Millis is the position's wall-clock offset under the view's tempo.
// The arithmetic stays rational until this very last step.
func (p Position) Millis(v staff.View) float64 {
	return p.beats.Mul(v.BeatMillis()).Float()
}

func (p Position) String() string {
	return p.beats.String() + " beats"
}

// ParsePosition reads either a beat amount ("6", "3/2") or the colon
// form "measure:beat:step" with trailing parts optional.
func ParsePosition(s string, v staff.View) (Position, error) {
	body := strings.TrimSpace(s)
	if body == "" {
		return PositionBeats(rational.Zero), nil
	}
	if !strings.Contains(body, ":") {
		beats, err := rational.Parse(body)
		if err != nil {
			return Position{}, fmt.Errorf("bad position %q: %v", s, err)
		}
		return PositionBeats(beats), nil
	}
	parts := strings.Split(body, ":")
	if len(parts) > 3 {
		return Position{}, fmt.Errorf("bad position %q", s)
	}
	digits := make([]int64, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return Position{}, fmt.Errorf("bad position %q: %v", s, err)
		}
		digits[i] = n
	}
	p := Position{}.SetMeasure(digits[0], v)
	if len(digits) > 1 {
		p = p.SetBeat(digits[1], v)
	}
	if len(digits) > 2 {
		steps := p.In(Steps, v).Add(rational.FromInt(digits[2]))
		p = PositionOf(steps, Steps, v)
	}
	return p, nil
}

// Length is a span of time. Unlike Position it rounds upward: any
// fraction of a unit that has started counts as that whole unit.
type Length struct {
	beats rational.Rational
}

func LengthBeats(beats rational.Rational) Length {
	return Length{beats: beats}
}

func LengthOf(amount rational.Rational, k Kind, v staff.View) Length {
	return Length{beats: amount.Mul(beatsPer(k, v))}
}

func (l Length) Beats() rational.Rational { return l.beats }

func (l Length) In(k Kind, v staff.View) rational.Rational {
	return l.beats.Div(beatsPer(k, v))
}

// Whole counts how many units of k the span reaches into, rounding up.
func (l Length) Whole(k Kind, v staff.View) int64 {
	return l.In(k, v).Ceil()
}

func (l Length) Add(o Length) Length {
	return Length{beats: l.beats.Add(o.beats)}
}

func (l Length) Mul(r rational.Rational) Length {
	return Length{beats: l.beats.Mul(r)}
}

func (l Length) Cmp(o Length) int { return l.beats.Cmp(o.beats) }
func (l Length) IsZero() bool     { return l.beats.IsZero() }

func (l Length) Millis(v staff.View) float64 {
	return l.beats.Mul(v.BeatMillis()).Float()
}

func (l Length) String() string {
	return l.beats.String() + " beats"
}
