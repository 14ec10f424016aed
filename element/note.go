package element

import (
	"gitlab.com/gomidi/midi/v2"

	"github.com/ruiseixasm/jsonmidikit/constants"
	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/pitch"
	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/scale"
	"github.com/ruiseixasm/jsonmidikit/staff"
	"github.com/ruiseixasm/jsonmidikit/timing"
	"github.com/ruiseixasm/jsonmidikit/util"
)

// Note plays one resolved degree. The key stays down for Gate times
// the duration, so consecutive notes articulate instead of smearing.
type Note struct {
	Base
	Degree   pitch.Degree
	Octave   int
	Velocity int
	Gate     rational.Rational
}

func NewNote(v staff.View) *Note {
	return &Note{
		Base:     NewBase(v),
		Degree:   pitch.Degree{Number: 1},
		Octave:   v.Octave,
		Velocity: v.Velocity,
		Gate:     rational.New(constants.DefaultGateNum, constants.DefaultGateDenom),
	}
}

func (n *Note) Pitch(v staff.View) uint8 {
	p, _ := pitch.Resolve(n.Degree, n.Octave, v.Key)
	return p
}

func (n *Note) Playlist(offset timing.Length, v staff.View) []model.PlayEntry {
	return n.pitchPlaylist(n.Pitch(v), offset, v)
}

// pitchPlaylist is shared with Chord, which schedules several pitches
// off one set of note parameters.
func (n *Note) pitchPlaylist(p uint8, offset timing.Length, v staff.View) []model.PlayEntry {
	start := n.start(offset)
	stop := start.Add(timing.LengthBeats(n.durationBeats(v).Mul(n.Gate)))
	ch := n.wireChannel()
	return []model.PlayEntry{
		entry(start.Millis(v), midi.NoteOn(ch, p, midiByte(n.Velocity)), 2, n.Devices),
		entry(stop.Millis(v), midi.NoteOff(ch, p), 2, n.Devices),
	}
}

func (n *Note) Midilist(offset timing.Length, v staff.View) []model.MidiRow {
	return n.pitchMidilist(n.Pitch(v), offset, v)
}

func (n *Note) pitchMidilist(p uint8, offset timing.Length, v staff.View) []model.MidiRow {
	row := n.row("Note", offset, v)
	row.Duration = n.durationBeats(v).Mul(n.Gate).Float()
	row.Pitch = int(p)
	row.Velocity = int(midiByte(n.Velocity))
	return []model.MidiRow{row}
}

func (n *Note) doc() model.ElementDoc {
	d := n.baseDoc("note")
	d.Degree = n.Degree.Numeric()
	octave, velocity := n.Octave, n.Velocity
	d.Octave = &octave
	d.Velocity = &velocity
	d.Gate = n.Gate.String()
	return d
}

// Rest holds a silence. It still schedules marker entries so the
// player can trace the gap; their status byte has no message type
// bits, only the channel nibble.
type Rest struct {
	Base
}

func NewRest(v staff.View) *Rest {
	return &Rest{Base: NewBase(v)}
}

func (r *Rest) Playlist(offset timing.Length, v staff.View) []model.PlayEntry {
	start := r.start(offset)
	stop := start.Add(timing.LengthBeats(r.durationBeats(v)))
	status := int(r.wireChannel())
	return []model.PlayEntry{
		{TimeMs: round3(start.Millis(v)), MidiMessage: model.MidiMessage{StatusByte: status, Device: r.Devices}},
		{TimeMs: round3(stop.Millis(v)), MidiMessage: model.MidiMessage{StatusByte: status, Device: r.Devices}},
	}
}

func (r *Rest) Midilist(offset timing.Length, v staff.View) []model.MidiRow {
	return []model.MidiRow{r.row("Rest", offset, v)}
}

func (r *Rest) doc() model.ElementDoc {
	return r.baseDoc("rest")
}

// Chord stacks thirds on a root note: member i sits two scale steps
// above member i-1. Without an explicit scale the members walk the key
// signature's degrees; with one they transpose the root through the
// scale's own intervals.
type Chord struct {
	Note
	Scale      *scale.Scale
	Size       int
	Inversion  int
	Dominant   bool
	Diminished bool
	Augmented  bool
	Sus2       bool
	Sus4       bool
}

func NewChord(v staff.View) *Chord {
	return &Chord{Note: *NewNote(v), Size: 3}
}

// memberStep is the scale step of chord member i, after the sus flags
// slide the third. Both flags together cancel out.
func (c *Chord) memberStep(i int) int {
	step := i * 2
	if step == 2 {
		if c.Sus2 {
			step--
		}
		if c.Sus4 {
			step++
		}
	}
	return step
}

// alteration is the semitone nudge a member takes from the chord
// quality: a dominant flattens the seventh, a diminished the third and
// fifth, an augmented raises the fifth.
func (c *Chord) alteration(step int) int {
	delta := 0
	if step == 6 && c.Dominant {
		delta--
	}
	if (step == 2 || step == 4) && c.Diminished {
		delta--
	}
	if step == 4 && c.Augmented {
		delta++
	}
	return delta
}

// Pitches builds the chord members bottom up, then inverts: every
// member below the pivot gets lifted an octave until none is left
// under it.
func (c *Chord) Pitches(v staff.View) []uint8 {
	size := c.Size
	if size < 1 {
		size = 3
	}

	var pitches []int
	if c.Scale != nil {
		max := c.Scale.Len()
		if max%2 == 0 {
			max /= 2
		}
		size = util.Min(size, max)
		root, _ := pitch.ResolveInScale(c.Degree, c.Octave, v.Key, *c.Scale)
		for i := 0; i < size; i++ {
			step := c.memberStep(i)
			semis, octaves := c.Scale.StepOffset(step)
			pitches = append(pitches, int(root)+12*octaves+semis+c.alteration(step))
		}
	} else {
		size = util.Min(size, 7)
		for i := 0; i < size; i++ {
			step := c.memberStep(i)
			deg := c.Degree
			deg.Number += step
			p, _ := pitch.Resolve(deg, c.Octave, v.Key)
			pitches = append(pitches, int(p)+c.alteration(step))
		}
	}

	inversion := util.Min(c.Inversion, len(pitches)-1)
	if inversion > 0 {
		pivot := pitches[inversion]
		changed := true
		for changed {
			changed = false
			for i := range pitches {
				if pitches[i] < pivot {
					pitches[i] += 12
					if pitches[i] < 128 {
						changed = true
					}
				}
			}
		}
	}

	res := make([]uint8, 0, len(pitches))
	for _, p := range pitches {
		res = append(res, midiByte(p))
	}
	return res
}

func (c *Chord) Playlist(offset timing.Length, v staff.View) []model.PlayEntry {
	var entries []model.PlayEntry
	for _, p := range c.Pitches(v) {
		entries = append(entries, c.pitchPlaylist(p, offset, v)...)
	}
	return entries
}

func (c *Chord) Midilist(offset timing.Length, v staff.View) []model.MidiRow {
	var rows []model.MidiRow
	for _, p := range c.Pitches(v) {
		rows = append(rows, c.pitchMidilist(p, offset, v)...)
	}
	return rows
}

func (c *Chord) doc() model.ElementDoc {
	d := c.Note.doc()
	d.Type = "chord"
	if c.Scale != nil {
		d.Scale = c.Scale.Name()
	}
	d.Size = c.Size
	d.Inversion = c.Inversion
	d.Dominant = c.Dominant
	d.Diminished = c.Diminished
	d.Augmented = c.Augmented
	d.Sus2 = c.Sus2
	d.Sus4 = c.Sus4
	return d
}
