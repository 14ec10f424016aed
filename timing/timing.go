package timing

import (
	"fmt"
	"strings"

	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

// Kind picks the unit a time span is expressed in. All four are
// absolute spans counted from the origin; the cyclic measure/beat/step
// digits live on Position instead.
type Kind int

const (
	Measures Kind = iota
	Beats
	Steps
	Notes
)

var kindNames = []string{"measures", "beats", "steps", "notes"}

func (k Kind) String() string {
	if k < Measures || k > Notes {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the unit names in singular or plural, any case.
func ParseKind(s string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	needle = strings.TrimSuffix(needle, "s")
	switch needle {
	case "measure", "bar":
		return Measures, nil
	case "beat":
		return Beats, nil
	case "step":
		return Steps, nil
	case "note", "notevalue", "note_value":
		return Notes, nil
	}
	return 0, fmt.Errorf("unknown time unit %q", s)
}

// beatsPer is the span of one unit of k, in beats.
func beatsPer(k Kind, v staff.View) rational.Rational {
	switch k {
	case Measures:
		return v.BeatsPerMeasure()
	case Steps:
		return v.Quantization.Div(v.BeatNoteValue())
	case Notes:
		return rational.One.Div(v.BeatNoteValue())
	}
	return rational.One
}

// Convert re-expresses amount from one kind in another under the view.
// The result stays exact: 4.5 measures of 4/4 on a 1/16 grid is
// exactly 72 steps.
func Convert(amount rational.Rational, from, to Kind, v staff.View) rational.Rational {
	if from == to {
		return amount
	}
	return amount.Mul(beatsPer(from, v)).Div(beatsPer(to, v))
}

// Dotted lengthens a note value by half, the way a dot does on paper.
func Dotted(noteValue rational.Rational) rational.Rational {
	return noteValue.Mul(rational.New(3, 2))
}

// Triplet shortens a note value so three of them fill the span of two.
func Triplet(noteValue rational.Rational) rational.Rational {
	return noteValue.Mul(rational.New(2, 3))
}

// ParseNoteValue reads a note value such as "1/4", with an optional
// trailing dot for dotted values or "t" for triplets: "1/8." or "1/4t".
func ParseNoteValue(s string) (rational.Rational, error) {
	body := strings.TrimSpace(s)
	dotted := strings.HasSuffix(body, ".")
	body = strings.TrimSuffix(body, ".")
	triplet := strings.HasSuffix(body, "t")
	body = strings.TrimSuffix(body, "t")
	nv, err := rational.Parse(body)
	if err != nil {
		return rational.Zero, fmt.Errorf("bad note value %q: %v", s, err)
	}
	if nv.Sign() <= 0 {
		return rational.Zero, fmt.Errorf("bad note value %q", s)
	}
	if dotted {
		nv = Dotted(nv)
	}
	if triplet {
		nv = Triplet(nv)
	}
	return nv, nil
}
