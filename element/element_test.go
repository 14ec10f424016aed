package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/scale"
	"github.com/ruiseixasm/jsonmidikit/staff"
	"github.com/ruiseixasm/jsonmidikit/timing"
)

// testView pins every environment sensitive field so fixtures stay
// deterministic: 120 bpm makes a beat exactly 500ms.
func testView() staff.View {
	v := staff.DefaultView()
	v.Tempo = rational.FromInt(120)
	v.Devices = []string{"FLUID"}
	return v
}

func ip(n int) *int { return &n }

func TestNotePlaylist(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	n := NewNote(v)

	entries := n.Playlist(timing.Length{}, v)
	want := []model.PlayEntry{
		{TimeMs: 0, MidiMessage: model.MidiMessage{
			StatusByte: 0x90, DataByte1: ip(60), DataByte2: ip(100), Device: []string{"FLUID"},
		}},
		// off after a quarter note shortened by the 9/10 gate
		{TimeMs: 450, MidiMessage: model.MidiMessage{
			StatusByte: 0x80, DataByte1: ip(60), DataByte2: ip(0), Device: []string{"FLUID"},
		}},
	}
	assert.Equal(want, entries)
}

func TestNotePlaylistOffset(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	n := NewNote(v)

	entries := n.Playlist(timing.LengthBeats(rational.FromInt(2)), v)
	assert.Equal(1000.0, entries[0].TimeMs)
	assert.Equal(1450.0, entries[1].TimeMs)
}

func TestNoteMidilist(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	n := NewNote(v)
	n.Position = timing.PositionBeats(rational.FromInt(2))

	rows := n.Midilist(timing.Length{}, v)
	want := []model.MidiRow{{
		Event:       "Note",
		Track:       0,
		Numerator:   4,
		Denominator: 4,
		Channel:     0,
		Time:        2,
		Duration:    0.9,
		Tempo:       120,
		Pitch:       60,
		Velocity:    100,
	}}
	assert.Equal(want, rows)
}

func TestRest(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	r := NewRest(v)
	r.Channel = 10

	entries := r.Playlist(timing.Length{}, v)
	// marker entries carry only the channel nibble and span the full
	// duration, no gate
	want := []model.PlayEntry{
		{TimeMs: 0, MidiMessage: model.MidiMessage{StatusByte: 9, Device: []string{"FLUID"}}},
		{TimeMs: 500, MidiMessage: model.MidiMessage{StatusByte: 9, Device: []string{"FLUID"}}},
	}
	assert.Equal(want, entries)

	rows := r.Midilist(timing.Length{}, v)
	assert.Equal("Rest", rows[0].Event)
	assert.Equal(9, rows[0].Channel)
	assert.Equal(1.0, rows[0].Duration)
}

func TestChordPitches(t *testing.T) {
	assert := assert.New(t)
	v := testView()

	tests := []struct {
		name  string
		build func(*Chord)
		want  []uint8
	}{
		{"triad", func(c *Chord) {}, []uint8{60, 64, 67}},
		{"dominant seventh", func(c *Chord) { c.Size = 4; c.Dominant = true }, []uint8{60, 64, 67, 70}},
		{"diminished", func(c *Chord) { c.Diminished = true }, []uint8{60, 63, 66}},
		{"augmented", func(c *Chord) { c.Augmented = true }, []uint8{60, 64, 68}},
		{"sus2", func(c *Chord) { c.Sus2 = true }, []uint8{60, 62, 67}},
		{"sus4", func(c *Chord) { c.Sus4 = true }, []uint8{60, 65, 67}},
		{"sus2 and sus4 cancel", func(c *Chord) { c.Sus2 = true; c.Sus4 = true }, []uint8{60, 64, 67}},
		{"first inversion", func(c *Chord) { c.Inversion = 1 }, []uint8{72, 64, 67}},
		{"second inversion", func(c *Chord) { c.Inversion = 2 }, []uint8{72, 76, 67}},
		{"inversion clamps", func(c *Chord) { c.Inversion = 99 }, []uint8{72, 76, 67}},
	}
	for _, tt := range tests {
		c := NewChord(v)
		tt.build(c)
		assert.Equal(tt.want, c.Pitches(v), tt.name)
	}
}

func TestChordOnOtherDegrees(t *testing.T) {
	assert := assert.New(t)
	v := testView()

	c := NewChord(v)
	c.Degree.Number = 5
	assert.Equal([]uint8{67, 71, 74}, c.Pitches(v))

	wide := NewChord(v)
	wide.Size = 9 // seven degrees is all a signature holds
	assert.Len(wide.Pitches(v), 7)
}

func TestChordWithScale(t *testing.T) {
	assert := assert.New(t)
	v := testView()

	minor, _ := scale.Named("minor")
	c := NewChord(v)
	c.Scale = &minor
	assert.Equal([]uint8{60, 63, 67}, c.Pitches(v))

	penta, _ := scale.Named("Pentatonic Major")
	c.Scale = &penta
	assert.Equal([]uint8{60, 64, 69}, c.Pitches(v))

	// even scale lengths halve the usable size
	chromatic, _ := scale.Named("Chromatic")
	c.Scale = &chromatic
	c.Size = 7
	assert.Equal([]uint8{60, 62, 64, 66, 68, 70}, c.Pitches(v))
}

func TestChordPlaylist(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	c := NewChord(v)

	entries := c.Playlist(timing.Length{}, v)
	assert.Len(entries, 6)
	assert.Equal(0x90, entries[0].MidiMessage.StatusByte)
	assert.Equal(60, *entries[0].MidiMessage.DataByte1)
	assert.Equal(450.0, entries[1].TimeMs)
	assert.Equal(64, *entries[2].MidiMessage.DataByte1)
}

func TestControllerTable(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(10, ControllerNumber("Pan"))
	assert.Equal(7, ControllerNumber("volume"))
	assert.Equal(64, ControllerNumber("Sustain"))
	assert.Equal(74, ControllerNumber("bright"))
	assert.Equal(4, ControllerNumber("Pedal")) // table order: foot before damper
	assert.Equal(17, ControllerNumber("17"))
	assert.Equal(0, ControllerNumber("xyzzy"))

	assert.Equal("Brightness", ControllerName(74))
	assert.Equal("Bank Select", ControllerName(999))

	assert.Equal(100, ControllerDefault(7))
	assert.Equal(127, ControllerDefault(122))
	assert.Equal(0, ControllerDefault(999))
}

func TestControlChange(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	cc := NewControlChange(v)

	// pan at center is the default stance
	assert.Equal(10, cc.Number)
	assert.Equal(64, cc.Value)

	entries := cc.Playlist(timing.Length{}, v)
	want := []model.PlayEntry{{TimeMs: 0, MidiMessage: model.MidiMessage{
		StatusByte: 0xB0, DataByte1: ip(10), DataByte2: ip(64), Device: []string{"FLUID"},
	}}}
	assert.Equal(want, entries)

	rows := cc.Midilist(timing.Length{}, v)
	assert.Equal("ControllerEvent", rows[0].Event)
	assert.Equal(10, rows[0].Number)
	assert.Equal(64, rows[0].Value)
}

func TestPitchBend(t *testing.T) {
	assert := assert.New(t)
	v := testView()

	tests := []struct {
		bend   int
		b1, b2 int
	}{
		{0, 0, 64},
		{8191, 127, 127},
		{-8192, 0, 0},
		{99999, 127, 127}, // clamps high
		{-99999, 0, 0},    // clamps low
	}
	for _, tt := range tests {
		pb := NewPitchBend(v)
		pb.Bend = tt.bend
		entries := pb.Playlist(timing.Length{}, v)
		assert.Equal(0xE0, entries[0].MidiMessage.StatusByte, tt.bend)
		assert.Equal(tt.b1, *entries[0].MidiMessage.DataByte1, tt.bend)
		assert.Equal(tt.b2, *entries[0].MidiMessage.DataByte2, tt.bend)
	}

	pb := NewPitchBend(v)
	pb.Bend = 99999
	rows := pb.Midilist(timing.Length{}, v)
	assert.Equal("PitchWheelEvent", rows[0].Event)
	assert.Equal(8191, rows[0].Value)
}

func TestAftertouch(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	at := NewAftertouch(v)
	at.Pressure = 90

	entries := at.Playlist(timing.Length{}, v)
	want := []model.PlayEntry{{TimeMs: 0, MidiMessage: model.MidiMessage{
		StatusByte: 0xD0, DataByte: ip(90), Device: []string{"FLUID"},
	}}}
	assert.Equal(want, entries)

	rows := at.Midilist(timing.Length{}, v)
	assert.Equal("ChannelPressure", rows[0].Event)
	assert.Equal(90, rows[0].Pressure)
}

func TestProgramChange(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	pc := NewProgramChange(v)
	pc.Program = 5

	entries := pc.Playlist(timing.Length{}, v)
	want := []model.PlayEntry{{TimeMs: 0, MidiMessage: model.MidiMessage{
		StatusByte: 0xC0, DataByte: ip(5), Device: []string{"FLUID"},
	}}}
	assert.Equal(want, entries)

	pc.Program = 200
	entries = pc.Playlist(timing.Length{}, v)
	assert.Equal(127, *entries[0].MidiMessage.DataByte)

	rows := pc.Midilist(timing.Length{}, v)
	assert.Equal("ProgramChange", rows[0].Event)
	assert.Equal(200, rows[0].Program)
}

func TestClock(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	c := NewClock(v)

	entries := c.Playlist(timing.Length{}, v)
	// start, 95 ticks, stop: 24 ppqn over one 4/4 measure
	assert.Len(entries, 97)

	first := entries[0]
	assert.Equal(0.0, first.TimeMs)
	assert.Equal(0xFA, first.MidiMessage.StatusByte)
	assert.Nil(first.MidiMessage.DataByte)
	assert.Nil(first.MidiMessage.DataByte1)

	assert.Equal(0xF8, entries[1].MidiMessage.StatusByte)
	assert.Equal(20.833, entries[1].TimeMs)

	last := entries[len(entries)-1]
	assert.Equal(0xFC, last.MidiMessage.StatusByte)
	assert.Equal(2000.0, last.TimeMs)

	assert.Nil(c.Midilist(timing.Length{}, v))
	assert.Equal(0, c.Track)
}

func TestClockSpansSignature(t *testing.T) {
	assert := assert.New(t)
	v := testView()
	v.TimeSignature = staff.TimeSignature{Numerator: 3, Denominator: 4}

	c := NewClock(v)
	c.Measures = 2
	entries := c.Playlist(timing.Length{}, v)
	assert.Len(entries, 145) // 24 ppqn, three beats, two measures
	assert.Equal(3000.0, entries[len(entries)-1].TimeMs)
}
