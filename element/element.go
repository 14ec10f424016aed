package element

import (
	"math"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/staff"
	"github.com/ruiseixasm/jsonmidikit/timing"
	"github.com/ruiseixasm/jsonmidikit/util"
)

// Element is anything that renders into player messages. The offset
// shifts the element's own position, which is how clips place their
// content without touching it.
//
// The interface is sealed: elements embed Base, which supplies the
// unexported accessors.
type Element interface {
	Playlist(offset timing.Length, v staff.View) []model.PlayEntry
	Midilist(offset timing.Length, v staff.View) []model.MidiRow
	doc() model.ElementDoc
	base() *Base
}

// Base carries what every element schedules with. Duration is a note
// value: 1/4 is a quarter note regardless of the time signature.
type Base struct {
	Position timing.Position
	Duration rational.Rational
	Channel  int // 1..16
	Track    int
	Devices  []string
}

// NewBase seeds an element from the staff, so the defaults are
// whatever the staff held at the moment the element was made.
func NewBase(v staff.View) Base {
	return Base{
		Duration: v.Duration,
		Channel:  v.Channel,
		Track:    1,
		Devices:  v.Devices,
	}
}

func (b *Base) base() *Base { return b }

func (b Base) start(offset timing.Length) timing.Position {
	return b.Position.Add(offset)
}

// wireChannel is the zero based channel nibble the wire wants.
func (b Base) wireChannel() uint8 {
	return uint8(util.Clamp(b.Channel-1, 0, 15))
}

func (b Base) durationBeats(v staff.View) rational.Rational {
	return timing.Convert(b.Duration, timing.Notes, timing.Beats, v)
}

func (b Base) baseDoc(typ string) model.ElementDoc {
	return model.ElementDoc{
		Type:     typ,
		Position: b.Position.Beats().String(),
		Duration: b.Duration.String(),
		Channel:  b.Channel,
		Track:    b.Track,
		Devices:  b.Devices,
	}
}

// row is the midilist skeleton shared by every event kind.
func (b Base) row(event string, offset timing.Length, v staff.View) model.MidiRow {
	return model.MidiRow{
		Event:       event,
		Track:       b.Track - 1,
		Numerator:   v.TimeSignature.Numerator,
		Denominator: v.TimeSignature.Denominator,
		Channel:     int(b.wireChannel()),
		Time:        b.start(offset).In(timing.Beats, v).Float(),
		Duration:    b.durationBeats(v).Float(),
		Tempo:       v.Tempo.Float(),
	}
}

// round3 keeps playlist times at three decimals, the precision the
// player schedules with.
func round3(ms float64) float64 {
	return math.Round(ms*1000) / 1000
}

// entry wraps a raw message into a playlist entry. Channel voice
// messages carry one or two data bytes, realtime ones none.
func entry(timeMs float64, msg midi.Message, dataBytes int, devices []string) model.PlayEntry {
	m := model.MidiMessage{
		StatusByte: int(msg[0]),
		Device:     devices,
	}
	switch dataBytes {
	case 1:
		b := int(msg[1])
		m.DataByte = &b
	case 2:
		b1, b2 := int(msg[1]), int(msg[2])
		m.DataByte1 = &b1
		m.DataByte2 = &b2
	}
	return model.PlayEntry{TimeMs: round3(timeMs), MidiMessage: m}
}

func midiByte(n int) uint8 {
	return uint8(util.Clamp(n, 0, 127))
}
