package element

import (
	"strconv"
	"strings"

	"gitlab.com/gomidi/midi/v2"

	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/staff"
	"github.com/ruiseixasm/jsonmidikit/timing"
	"github.com/ruiseixasm/jsonmidikit/util"
)

// Controller pairs a CC number with the neutral value a device assumes
// before any automation touches it.
type Controller struct {
	Number  int
	Default int
	Names   []string
}

// controllers lists the general MIDI controllers by their common
// names. Lookups match by substring in table order, so "Volume" finds
// Main Volume and "Pedal" the Foot Pedal before the Damper Pedal.
var controllers = []Controller{
	{0, 0, []string{"Bank Select"}},
	{1, 0, []string{"Modulation Wheel", "Modulation"}},
	{2, 0, []string{"Breath Controller"}},
	{4, 0, []string{"Foot Controller", "Foot Pedal"}},
	{5, 0, []string{"Portamento Time"}},
	{6, 0, []string{"Data Entry MSB"}},
	{7, 100, []string{"Main Volume"}},
	{8, 64, []string{"Balance"}},
	{10, 64, []string{"Pan"}},
	{11, 0, []string{"Expression"}},
	{12, 0, []string{"Effect Control 1"}},
	{13, 0, []string{"Effect Control 2"}},
	{64, 0, []string{"Sustain", "Damper Pedal"}},
	{65, 0, []string{"Portamento"}},
	{66, 0, []string{"Sostenuto"}},
	{67, 0, []string{"Soft Pedal"}},
	{68, 0, []string{"Legato Footswitch"}},
	{69, 0, []string{"Hold 2"}},
	{70, 0, []string{"Sound Variation"}},
	{71, 0, []string{"Timbre", "Harmonic Content", "Resonance"}},
	{72, 64, []string{"Release Time"}},
	{73, 64, []string{"Attack Time"}},
	{74, 64, []string{"Brightness", "Frequency Cutoff"}},
	{84, 0, []string{"Portamento Control"}},
	{91, 0, []string{"Reverb"}},
	{92, 0, []string{"Tremolo"}},
	{93, 0, []string{"Chorus"}},
	{94, 0, []string{"Detune"}},
	{95, 0, []string{"Phaser"}},
	{96, 0, []string{"Data Increment"}},
	{97, 0, []string{"Data Decrement"}},
	{120, 0, []string{"All Sounds Off"}},
	{121, 0, []string{"Reset All Controllers"}},
	{122, 127, []string{"Local Control", "Local Keyboard"}},
	{123, 0, []string{"All Notes Off"}},
	{124, 0, []string{"Omni Off"}},
	{125, 0, []string{"Omni On"}},
	{126, 0, []string{"Mono On", "Monophonic"}},
	{127, 0, []string{"Poly On", "Polyphonic"}},
}

// ControllerNumber finds a controller by name fragment or by numeric
// string; unknown names fall back to Bank Select, like an unset wire.
func ControllerNumber(name string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		return n
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, c := range controllers {
		for _, candidate := range c.Names {
			if strings.Contains(strings.ToLower(candidate), needle) {
				return c.Number
			}
		}
	}
	return 0
}

// ControllerName is the canonical name of a CC number.
func ControllerName(number int) string {
	for _, c := range controllers {
		if c.Number == number {
			return c.Names[0]
		}
	}
	return "Bank Select"
}

// ControllerDefault is the neutral value of a CC number.
func ControllerDefault(number int) int {
	for _, c := range controllers {
		if c.Number == number {
			return c.Default
		}
	}
	return 0
}

// ControlChange sets a controller to a value at its position.
type ControlChange struct {
	Base
	Number int
	Value  int
}

// NewControlChange starts at the pan controller sitting in the middle,
// the table's neutral stance.
func NewControlChange(v staff.View) *ControlChange {
	number := ControllerNumber("Pan")
	return &ControlChange{
		Base:   NewBase(v),
		Number: number,
		Value:  ControllerDefault(number),
	}
}

func (cc *ControlChange) Playlist(offset timing.Length, v staff.View) []model.PlayEntry {
	msg := midi.ControlChange(cc.wireChannel(), midiByte(cc.Number), midiByte(cc.Value))
	return []model.PlayEntry{entry(cc.start(offset).Millis(v), msg, 2, cc.Devices)}
}

func (cc *ControlChange) Midilist(offset timing.Length, v staff.View) []model.MidiRow {
	row := cc.row("ControllerEvent", offset, v)
	row.Number = int(midiByte(cc.Number))
	row.Value = int(midiByte(cc.Value))
	return []model.MidiRow{row}
}

func (cc *ControlChange) doc() model.ElementDoc {
	d := cc.baseDoc("control_change")
	d.Controller = ControllerName(cc.Number)
	value := cc.Value
	d.Value = &value
	return d
}

// PitchBend bends the channel off its center. Bend is signed,
// -8192..8191, with zero meaning no bend at all.
type PitchBend struct {
	Base
	Bend int
}

func NewPitchBend(v staff.View) *PitchBend {
	return &PitchBend{Base: NewBase(v)}
}

func (pb *PitchBend) Playlist(offset timing.Length, v staff.View) []model.PlayEntry {
	bend := util.Clamp(pb.Bend, -8192, 8191)
	msg := midi.Pitchbend(pb.wireChannel(), int16(bend))
	return []model.PlayEntry{entry(pb.start(offset).Millis(v), msg, 2, pb.Devices)}
}

func (pb *PitchBend) Midilist(offset timing.Length, v staff.View) []model.MidiRow {
	row := pb.row("PitchWheelEvent", offset, v)
	row.Value = util.Clamp(pb.Bend, -8192, 8191)
	return []model.MidiRow{row}
}

func (pb *PitchBend) doc() model.ElementDoc {
	d := pb.baseDoc("pitch_bend")
	d.Bend = pb.Bend
	return d
}

// Aftertouch is channel pressure: one value for every held key.
type Aftertouch struct {
	Base
	Pressure int
}

func NewAftertouch(v staff.View) *Aftertouch {
	return &Aftertouch{Base: NewBase(v)}
}

func (at *Aftertouch) Playlist(offset timing.Length, v staff.View) []model.PlayEntry {
	msg := midi.AfterTouch(at.wireChannel(), midiByte(at.Pressure))
	return []model.PlayEntry{entry(at.start(offset).Millis(v), msg, 1, at.Devices)}
}

func (at *Aftertouch) Midilist(offset timing.Length, v staff.View) []model.MidiRow {
	row := at.row("ChannelPressure", offset, v)
	row.Pressure = int(midiByte(at.Pressure))
	return []model.MidiRow{row}
}

func (at *Aftertouch) doc() model.ElementDoc {
	d := at.baseDoc("aftertouch")
	d.Pressure = at.Pressure
	return d
}

// ProgramChange switches the channel's patch. Programs count from
// zero on the wire and that is what Program holds.
type ProgramChange struct {
	Base
	Program int
}

func NewProgramChange(v staff.View) *ProgramChange {
	return &ProgramChange{Base: NewBase(v)}
}

func (pc *ProgramChange) Playlist(offset timing.Length, v staff.View) []model.PlayEntry {
	msg := midi.ProgramChange(pc.wireChannel(), midiByte(pc.Program))
	return []model.PlayEntry{entry(pc.start(offset).Millis(v), msg, 1, pc.Devices)}
}

func (pc *ProgramChange) Midilist(offset timing.Length, v staff.View) []model.MidiRow {
	row := pc.row("ProgramChange", offset, v)
	row.Program = int(midiByte(pc.Program))
	return []model.MidiRow{row}
}

func (pc *ProgramChange) doc() model.ElementDoc {
	d := pc.baseDoc("program_change")
	d.Program = pc.Program
	return d
}
