package element

import (
	"math"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ruiseixasm/jsonmidikit/constants"
	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/staff"
	"github.com/ruiseixasm/jsonmidikit/timing"
)

// Clock drives external gear: a start message, a steady PPQN pulse
// train across its span, and a stop at the end. It belongs to the
// player alone, hence track zero and no midilist rows.
type Clock struct {
	Base
	Measures int
	PPQN     int
}

func NewClock(v staff.View) *Clock {
	c := &Clock{
		Base:     NewBase(v),
		Measures: 1,
		PPQN:     constants.DefaultPPQN,
	}
	c.Track = 0
	return c
}

func (c *Clock) span(v staff.View) timing.Length {
	return timing.LengthOf(rational.FromInt(int64(c.Measures)), timing.Measures, v)
}

// pulses is the whole number of clock ticks the span carries: PPQN
// ticks per quarter note, scaled by the measure's size.
func (c *Clock) pulses(v staff.View) int {
	perNote := rational.FromInt(int64(4 * c.PPQN)).Mul(v.BeatNoteValue())
	perMeasure := perNote.Mul(v.BeatsPerMeasure())
	total := perMeasure.Mul(rational.FromInt(int64(c.Measures)))
	return int(math.Round(total.Float()))
}

func (c *Clock) Playlist(offset timing.Length, v staff.View) []model.PlayEntry {
	start := c.start(offset)
	span := c.span(v)
	pulses := c.pulses(v)

	entries := []model.PlayEntry{
		entry(start.Millis(v), midi.Start(), 0, c.Devices),
	}
	for pulse := 1; pulse < pulses; pulse++ {
		at := start.Add(span.Mul(rational.New(int64(pulse), int64(pulses))))
		entries = append(entries, entry(at.Millis(v), midi.TimingClock(), 0, c.Devices))
	}
	entries = append(entries, entry(start.Add(span).Millis(v), midi.Stop(), 0, c.Devices))
	return entries
}

func (c *Clock) Midilist(offset timing.Length, v staff.View) []model.MidiRow {
	return nil
}

func (c *Clock) doc() model.ElementDoc {
	d := c.baseDoc("clock")
	d.Measures = c.Measures
	return d
}
