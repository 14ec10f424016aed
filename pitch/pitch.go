package pitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ruiseixasm/jsonmidikit/key"
	"github.com/ruiseixasm/jsonmidikit/scale"
)

// Accidental counts sharps upward and flats downward from the key's
// own spelling of a degree.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

func (a Accidental) String() string {
	switch {
	case a > 0:
		return strings.Repeat("#", int(a))
	case a < 0:
		return strings.Repeat("b", int(-a))
	}
	return ""
}

// Degree names a scale step. Number is 1-based: 1 is the tonic, 8 the
// next octave's tonic, and 0 or negatives borrow from the octave below.
type Degree struct {
	Number     int
	Accidental Accidental
}

var romanNames = []string{"I", "ii", "iii", "IV", "V", "vi", "viiº"}

// formal folds Number into the 1..n window plus the octave carry that
// fell out of it.
func formal(number, n int) (int, int) {
	idx := number - 1
	carry := idx / n
	rem := idx % n
	if rem < 0 {
		rem += n
		carry--
	}
	return rem + 1, carry
}

// String is the roman form of the degree, "V" or "ii#".
func (d Degree) String() string {
	f, _ := formal(d.Number, len(romanNames))
	return romanNames[f-1] + d.Accidental.String()
}

// Numeric is the plain numbered form, "5" or "2#" or "7b".
func (d Degree) Numeric() string {
	return strconv.Itoa(d.Number) + d.Accidental.String()
}

// ParseDegree reads either form String and Numeric produce, plus the
// legacy tenths floats ("2.1" is the sharpened second).
func ParseDegree(s string) (Degree, error) {
	body := strings.TrimSpace(s)
	if body == "" {
		return Degree{}, fmt.Errorf("empty degree")
	}

	acc := Natural
	trimming := true
	for trimming {
		switch {
		case strings.HasSuffix(body, "#"):
			acc++
			body = body[:len(body)-1]
		case strings.HasSuffix(body, "b") && len(body) > 1:
			acc--
			body = body[:len(body)-1]
		default:
			trimming = false
		}
	}
	body = strings.TrimSuffix(body, "º")

	for i, name := range romanNames {
		if strings.EqualFold(body, strings.TrimSuffix(name, "º")) {
			return Degree{Number: i + 1, Accidental: acc}, nil
		}
	}
	if n, err := strconv.Atoi(body); err == nil {
		return Degree{Number: n, Accidental: acc}, nil
	}
	if f, err := strconv.ParseFloat(body, 64); err == nil && acc == Natural {
		return FromLegacy(f), nil
	}
	return Degree{}, fmt.Errorf("unparsable degree %q", s)
}

// FromLegacy decodes the tenths encoding older documents carry: the
// fraction .1 means one sharp, .2 one flat, .3 two sharps, .4 two
// flats, and so on alternating.
func FromLegacy(f float64) Degree {
	number := int(math.Trunc(f))
	tenths := int(math.Round(math.Abs(f-math.Trunc(f)) * 10))
	acc := Natural
	if tenths%2 == 1 {
		acc = Accidental((tenths + 1) / 2)
	} else {
		acc = Accidental(-tenths / 2)
	}
	return Degree{Number: number, Accidental: acc}
}

// Legacy re-encodes the degree as a tenths float, losslessly inverting
// FromLegacy.
func (d Degree) Legacy() float64 {
	tenths := 0
	switch {
	case d.Accidental > 0:
		tenths = 2*int(d.Accidental) - 1
	case d.Accidental < 0:
		tenths = -2 * int(d.Accidental)
	}
	frac := float64(tenths) / 10
	if d.Number < 0 {
		frac = -frac
	}
	return float64(d.Number) + frac
}

// Resolve returns the MIDI pitch of a degree at an octave under the
// signature's own seven tone layout. Out of range pitches clamp to
// 0..127 and report it through the second return.
func Resolve(d Degree, octave int, sig key.Signature) (uint8, bool) {
	return resolve(d, octave, sig.TonicKey(), sig.StepOffsets())
}

// ResolveInScale overrides the diatonic layout with an explicit scale;
// the tonic still comes from the signature.
func ResolveInScale(d Degree, octave int, sig key.Signature, sc scale.Scale) (uint8, bool) {
	return resolve(d, octave, sig.TonicKey(), sc.Offsets())
}

func resolve(d Degree, octave, tonic int, offsets []int) (uint8, bool) {
	f, carry := formal(d.Number, len(offsets))
	// The octave is decided by the degree window alone; a sharpened
	// seventh may spell a pitch the next octave owns.
	value := 12*(octave+carry+1) + tonic + offsets[f-1] + int(d.Accidental)
	if value < 0 {
		return 0, true
	}
	if value > 127 {
		return 127, true
	}
	return uint8(value), false
}

// ResolveDegree finds the degree that lands on the given pitch at the
// given octave under the signature. Natural spellings win; remaining
// ties take the accidental matching the signature's sign.
func ResolveDegree(p uint8, octave int, sig key.Signature) Degree {
	tonic := sig.TonicKey()
	offsets := sig.StepOffsets()
	rel := int(p) - 12*(octave+1) - tonic

	order := []Accidental{Natural, Sharp, Flat, DoubleSharp, DoubleFlat}
	if sig.Accidentals() < 0 {
		order = []Accidental{Natural, Flat, Sharp, DoubleFlat, DoubleSharp}
	}
	for _, acc := range order {
		diff := rel - int(acc)
		within := ((diff % 12) + 12) % 12
		for i, off := range offsets {
			if off == within {
				carry := (diff - within) / 12
				return Degree{Number: i + 1 + 7*carry, Accidental: acc}
			}
		}
	}
	// Unreachable for seven tone layouts, whose gaps never exceed a
	// whole step.
	return Degree{Number: 1}
}
