package element

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/pitch"
	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/scale"
	"github.com/ruiseixasm/jsonmidikit/staff"
	"github.com/ruiseixasm/jsonmidikit/timing"
	"github.com/ruiseixasm/jsonmidikit/util"
)

// Clip groups elements under one position offset. A clip bound to the
// shared staff follows its later edits; one with a frozen view keeps
// the configuration it was loaded with.
type Clip struct {
	ID       string
	Position timing.Position
	Frozen   *staff.View
	Elements []Element
}

// view picks the staff the clip renders under.
func (cl *Clip) view(shared staff.View) staff.View {
	if cl.Frozen != nil {
		return *cl.Frozen
	}
	return shared
}

// Sort orders the clip's elements by position, keeping the original
// order of elements that share one.
func (cl *Clip) Sort() {
	sort.SliceStable(cl.Elements, func(i, j int) bool {
		return cl.Elements[i].base().Position.Cmp(cl.Elements[j].base().Position) < 0
	})
}

// Stack packs the elements end to start: each element begins where the
// previous one's duration ran out. The first keeps its position.
func (cl *Clip) Stack(v staff.View) {
	var last *Base
	for _, el := range cl.Elements {
		b := el.base()
		if last != nil {
			b.Position = last.Position.Add(timing.LengthOf(last.Duration, timing.Notes, v))
		}
		last = b
	}
}

// Link sorts the elements and stretches each one's duration to reach
// the next. The last element fills out its own measure.
func (cl *Clip) Link(v staff.View) {
	cl.Sort()
	for i, el := range cl.Elements {
		b := el.base()
		if i+1 < len(cl.Elements) {
			gap := cl.Elements[i+1].base().Position.Sub(b.Position)
			b.Duration = gap.In(timing.Notes, v)
		} else {
			next := timing.PositionOf(rational.FromInt(b.Position.Measure(v)+1), timing.Measures, v)
			b.Duration = next.Sub(b.Position).In(timing.Notes, v)
		}
	}
}

// Composition is a staff plus the clips composed on it.
type Composition struct {
	Staff *staff.Staff
	Clips []*Clip
}

func NewComposition(st *staff.Staff) *Composition {
	if st == nil {
		st = staff.Default()
	}
	return &Composition{Staff: st}
}

// Playlist renders every clip under one consistent snapshot of the
// shared staff and merges the entries in time order.
func (c *Composition) Playlist() []model.PlayEntry {
	shared := c.Staff.View()
	var entries []model.PlayEntry
	for _, clip := range c.Clips {
		v := clip.view(shared)
		offset := timing.LengthBeats(clip.Position.Beats())
		for _, el := range clip.Elements {
			entries = append(entries, el.Playlist(offset, v)...)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TimeMs < entries[j].TimeMs
	})
	return entries
}

// Midilist renders the tabular form, tagging each row with the clip it
// came from.
func (c *Composition) Midilist() []model.MidiRow {
	shared := c.Staff.View()
	var rows []model.MidiRow
	for _, clip := range c.Clips {
		v := clip.view(shared)
		offset := timing.LengthBeats(clip.Position.Beats())
		for _, el := range clip.Elements {
			for _, row := range el.Midilist(offset, v) {
				row.TrackName = clip.ID
				rows = append(rows, row)
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Time < rows[j].Time
	})
	return rows
}

// FromDoc builds a composition from its document form. The document's
// staff overlays the context's view; clips without an id get a fresh
// one.
func FromDoc(ctx staff.Context, doc model.CompositionDoc) (*Composition, error) {
	v, err := staff.Apply(ctx.View(), doc.Staff)
	if err != nil {
		return nil, err
	}
	st := staff.New()
	st.SetView(v)
	c := NewComposition(st)

	for i, cd := range doc.Clips {
		clipView := v
		var frozen *staff.View
		if cd.Staff != nil {
			fv, err := staff.Apply(v, cd.Staff)
			if err != nil {
				return nil, fmt.Errorf("clip %d: %v", i, err)
			}
			frozen = &fv
			clipView = fv
		}

		clip := &Clip{ID: cd.ID, Frozen: frozen}
		if clip.ID == "" {
			clip.ID = uuid.New().String()
		}
		clip.Position, err = timing.ParsePosition(cd.Position, clipView)
		if err != nil {
			return nil, fmt.Errorf("clip %d: %v", i, err)
		}
		for j, ed := range cd.Elements {
			el, err := FromElementDoc(ed, clipView)
			if err != nil {
				return nil, fmt.Errorf("clip %d element %d: %v", i, j, err)
			}
			clip.Elements = append(clip.Elements, el)
		}
		if cd.Stack {
			clip.Stack(clipView)
		}
		if cd.Link {
			clip.Link(clipView)
		}
		c.Clips = append(c.Clips, clip)
	}
	return c, nil
}

// Doc captures the composition back into its document form.
func (c *Composition) Doc() model.CompositionDoc {
	v := c.Staff.View()
	sd := staff.Doc(v)
	doc := model.CompositionDoc{Staff: &sd, Clips: []model.ClipDoc{}}
	for _, clip := range c.Clips {
		cd := model.ClipDoc{ID: clip.ID}
		if !clip.Position.IsZero() {
			cd.Position = clip.Position.Beats().String()
		}
		if clip.Frozen != nil {
			fd := staff.Doc(*clip.Frozen)
			cd.Staff = &fd
		}
		for _, el := range clip.Elements {
			cd.Elements = append(cd.Elements, el.doc())
		}
		doc.Clips = append(doc.Clips, cd)
	}
	return doc
}

// chordSizes maps the spoken chord names to their member counts.
var chordSizes = map[string]int{
	"1st": 1, "3rd": 2, "5th": 3, "7th": 4, "9th": 5, "11th": 6, "13th": 7,
}

// FromElementDoc builds one element from its document form under the
// staff it will render with.
func FromElementDoc(d model.ElementDoc, v staff.View) (Element, error) {
	var el Element
	switch strings.ToLower(strings.TrimSpace(d.Type)) {
	case "note":
		n := NewNote(v)
		if err := applyNoteDoc(&d, n, v); err != nil {
			return nil, err
		}
		el = n
	case "rest":
		el = NewRest(v)
	case "chord":
		ch := NewChord(v)
		if err := applyNoteDoc(&d, &ch.Note, v); err != nil {
			return nil, err
		}
		if d.Scale != "" {
			sc, ok := scale.Named(d.Scale)
			if !ok {
				return nil, fmt.Errorf("unknown scale %q", d.Scale)
			}
			ch.Scale = &sc
		}
		if d.Size != 0 {
			ch.Size = d.Size
		}
		ch.Inversion = d.Inversion
		ch.Dominant = d.Dominant
		ch.Diminished = d.Diminished
		ch.Augmented = d.Augmented
		ch.Sus2 = d.Sus2
		ch.Sus4 = d.Sus4
		el = ch
	case "control_change", "controlchange", "cc":
		cc := NewControlChange(v)
		if d.Controller != "" {
			cc.Number = ControllerNumber(d.Controller)
			cc.Value = ControllerDefault(cc.Number)
		}
		if d.Value != nil {
			cc.Value = *d.Value
		}
		el = cc
	case "pitch_bend", "pitchbend":
		pb := NewPitchBend(v)
		pb.Bend = d.Bend
		el = pb
	case "aftertouch":
		at := NewAftertouch(v)
		at.Pressure = d.Pressure
		el = at
	case "program_change", "programchange":
		pc := NewProgramChange(v)
		pc.Program = d.Program
		el = pc
	case "clock":
		ck := NewClock(v)
		if d.Measures != 0 {
			ck.Measures = d.Measures
		}
		el = ck
	default:
		return nil, fmt.Errorf("unknown element type %q", d.Type)
	}

	b := el.base()
	if d.Position != "" {
		p, err := timing.ParsePosition(d.Position, v)
		if err != nil {
			return nil, err
		}
		b.Position = p
	}
	if d.Duration != "" {
		nv, err := timing.ParseNoteValue(d.Duration)
		if err != nil {
			return nil, err
		}
		b.Duration = nv
	}
	if d.Channel != 0 {
		b.Channel = d.Channel
	}
	if d.Track != 0 {
		b.Track = d.Track
	}
	if len(d.Devices) > 0 {
		b.Devices = d.Devices
	}
	return el, nil
}

// ParseChordSize accepts either a member count or the spoken form,
// "7th" being the four note chord.
func ParseChordSize(s string) (int, error) {
	if n, ok := chordSizes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return n, nil
	}
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d", &n); err != nil || n < 1 {
		return 0, fmt.Errorf("bad chord size %q, want a count or one of %s",
			s, strings.Join(util.SortedKeys(chordSizes), " "))
	}
	return n, nil
}

func applyNoteDoc(d *model.ElementDoc, n *Note, v staff.View) error {
	if d.Degree != "" {
		deg, err := pitch.ParseDegree(d.Degree)
		if err != nil {
			return err
		}
		n.Degree = deg
	}
	if d.Octave != nil {
		n.Octave = *d.Octave
	}
	if d.Velocity != nil {
		n.Velocity = *d.Velocity
	}
	if d.Gate != "" {
		g, err := rational.Parse(d.Gate)
		if err != nil {
			return fmt.Errorf("bad gate %q: %v", d.Gate, err)
		}
		n.Gate = g
	}
	return nil
}
