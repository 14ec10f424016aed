// Package key implements circle-of-fifths key signatures: accidental
// count and mode resolve to a tonic pitch class, a 12-entry chromatic
// scale mask and the enharmonic spelling of every key under the
// signature.
package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Diatonic modes, in scale-degree order. Everything past Locrian wraps.
const (
	Major = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Minor
	Locrian
)

var modeNames = []string{"Major", "Dorian", "Phrygian", "Lydian", "Mixolydian", "minor", "Locrian"}

// majorOffsets are the semitone offsets of the major scale degrees. They
// double as the base tonic of each mode: Dorian is built on the 2nd
// degree (D when unsigned), Aeolian on the 6th (A).
var majorOffsets = [7]int{0, 2, 4, 5, 7, 9, 11}

// Spelling rows for the 12 pitch classes. The first row carries the
// common (sharp-side) names, the second the enharmonic alternatives a
// flat-heavy or sharp-heavy signature switches to.
var keyNames = [2][12]string{
	{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"},
	{"B#", "Db", "D", "Eb", "Fb", "E#", "Gb", "G", "Ab", "A", "Bb", "Cb"},
}

// scaleMasks[accidentals+7] is the chromatic mask of the major scale
// carrying that many accidentals. Rows at ±5..±7 are enharmonic
// duplicates of each other, which is what makes the table close.
var scaleMasks = [15][12]int8{
	{0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1}, // -7  Cb
	{0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1}, // -6  Gb
	{1, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0}, // -5  Db
	{1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0}, // -4  Ab
	{1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 0}, // -3  Eb
	{1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0}, // -2  Bb
	{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0}, // -1  F
	{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1}, //  0  C
	{1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1}, // +1  G
	{0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1}, // +2  D
	{0, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1}, // +3  A
	{0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1}, // +4  E
	{0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1}, // +5  B
	{0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1}, // +6  F#
	{1, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0}, // +7  C#
}

// Signature is a key signature: a signed accidental count on the circle
// of fifths plus a mode. The zero value is C Major.
type Signature struct {
	accidentals int
	mode        int
}

// New returns the major signature with the given accidental count
// (positive sharps, negative flats), clamped to [-7, 7].
func New(accidentals int) Signature {
	return NewMode(accidentals, Major)
}

// NewMode builds a signature in any diatonic mode. Out-of-range
// accidental counts fall back to C Major, or A minor when a minor
// mode was asked for; modes past Locrian wrap around.
func NewMode(accidentals, mode int) Signature {
	if mode < 0 {
		mode = Major
	}
	mode = mode % 7
	if accidentals < -7 || accidentals > 7 {
		accidentals = 0
	}
	return Signature{accidentals, mode}
}

// Parse accepts "###", "bb", a signed count like "-3", and an optional
// mode suffix separated by a space ("2 minor", "b Dorian").
func Parse(s string) (Signature, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Signature{}, fmt.Errorf("empty key signature")
	}
	mode := Major
	if len(fields) > 1 {
		m, err := ParseMode(strings.Join(fields[1:], " "))
		if err != nil {
			return Signature{}, err
		}
		mode = m
	}

	acc := 0
	token := fields[0]
	switch {
	case strings.EqualFold(token, "natural"):
		acc = 0
	case strings.Trim(token, "#") == "":
		acc = len(token)
	case strings.Trim(token, "b") == "":
		acc = -len(token)
	default:
		n, err := strconv.Atoi(token)
		if err != nil {
			return Signature{}, fmt.Errorf("unparsable key signature %q", s)
		}
		acc = n
	}
	if acc < -7 || acc > 7 {
		return Signature{}, fmt.Errorf("key signature %q outside -7..7", s)
	}
	return NewMode(acc, mode), nil
}

func ParseMode(s string) (int, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if strings.ToLower(name) == needle {
			return i, nil
		}
	}
	switch needle {
	case "ionian":
		return Major, nil
	case "aeolian":
		return Minor, nil
	}
	if n, err := strconv.Atoi(needle); err == nil && n >= 0 {
		return n % 7, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func (s Signature) Accidentals() int { return s.accidentals }
func (s Signature) Mode() int        { return s.mode }
func (s Signature) IsMinor() bool    { return s.mode == Minor }

// TonicKey is the tonic's pitch class: the mode's base key transposed by
// one fifth per accidental.
func (s Signature) TonicKey() int {
	base := majorOffsets[s.mode]
	return ((base+s.accidentals*7)%12 + 12) % 12
}

// ScaleMask reports which of the 12 pitch classes belong to the
// signature's scale. The mask is mode-independent: C Major and A minor
// share one row.
func (s Signature) ScaleMask() [12]bool {
	var mask [12]bool
	row := scaleMasks[s.accidentals+7]
	for pc, in := range row {
		mask[pc] = in == 1
	}
	return mask
}

// IsEnharmonic reports whether the given pitch class takes its
// alternative spelling under this signature. Flat signatures respell the
// black keys; the extreme signatures at ±6/±7 additionally respell the
// white keys their seventh accidental reaches (Cb, Fb, E#, B#), which is
// how the ±6/±7 sharp-vs-flat ambiguity resolves to the signature's own
// sign.
func (s Signature) IsEnharmonic(key int) bool {
	key = (key%12 + 12) % 12
	black := key == 1 || key == 3 || key == 6 || key == 8 || key == 10
	switch {
	case s.accidentals < 0 && black:
		return true
	case s.accidentals <= -6 && key == 11: // Cb
		return true
	case s.accidentals <= -7 && key == 4: // Fb
		return true
	case s.accidentals >= 6 && key == 5: // E#
		return true
	case s.accidentals >= 7 && key == 0: // B#
		return true
	}
	return false
}

// EnharmonicLine is the spelling row the tonic resolves on: 0 for the
// common (sharp-side) names, 1 for the flat-side alternatives.
func (s Signature) EnharmonicLine() int {
	if s.IsEnharmonic(s.TonicKey()) {
		return 1
	}
	return 0
}

// KeyName spells a pitch class under this signature.
func (s Signature) KeyName(key int) string {
	key = (key%12 + 12) % 12
	if s.IsEnharmonic(key) {
		return keyNames[1][key]
	}
	return keyNames[0][key]
}

// TonicName spells the tonic, e.g. "C#" for +7 and "Cb" for -7.
func (s Signature) TonicName() string {
	return s.KeyName(s.TonicKey())
}

// Keys returns the seven scale member names from the tonic upward.
func (s Signature) Keys() []string {
	keys := make([]string, 0, 7)
	for _, pc := range s.Degrees() {
		keys = append(keys, s.KeyName(pc))
	}
	return keys
}

// Degrees returns the seven scale member pitch classes from the tonic
// upward.
func (s Signature) Degrees() []int {
	mask := s.ScaleMask()
	tonic := s.TonicKey()
	degrees := make([]int, 0, 7)
	for off := 0; off < 12; off++ {
		pc := (tonic + off) % 12
		if mask[pc] {
			degrees = append(degrees, pc)
		}
	}
	return degrees
}

// StepOffsets returns the semitone offset of each scale degree relative
// to the tonic.
func (s Signature) StepOffsets() []int {
	mask := s.ScaleMask()
	tonic := s.TonicKey()
	offsets := make([]int, 0, 7)
	for off := 0; off < 12; off++ {
		if mask[(tonic+off)%12] {
			offsets = append(offsets, off)
		}
	}
	return offsets
}

func (s Signature) String() string {
	var acc string
	switch {
	case s.accidentals > 0:
		acc = strings.Repeat("#", s.accidentals)
	case s.accidentals < 0:
		acc = strings.Repeat("b", -s.accidentals)
	default:
		acc = "natural"
	}
	if s.mode == Major {
		return acc
	}
	return acc + " " + modeNames[s.mode]
}
