package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

func TestParseKind(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in   string
		want Kind
	}{
		{"measures", Measures},
		{"Measure", Measures},
		{"bar", Measures},
		{"BEATS", Beats},
		{"beat", Beats},
		{"steps", Steps},
		{"notes", Notes},
		{"note_value", Notes},
		{"NoteValue", Notes},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		assert.NoError(err, tt.in)
		assert.Equal(tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "parsec", "minutes"} {
		_, err := ParseKind(bad)
		assert.Error(err, bad)
	}
}

func TestKindString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("measures", Measures.String())
	assert.Equal("notes", Notes.String())
	assert.Equal("Kind(9)", Kind(9).String())
}

func TestConvert(t *testing.T) {
	assert := assert.New(t)
	v := staff.DefaultView() // 4/4, 1/16 grid

	amount := rational.New(9, 2) // 4.5 measures
	assert.Equal(rational.FromInt(18), Convert(amount, Measures, Beats, v))
	assert.Equal(rational.FromInt(72), Convert(amount, Measures, Steps, v))
	assert.Equal(rational.New(9, 2), Convert(amount, Measures, Notes, v))

	// and back
	assert.Equal(amount, Convert(rational.FromInt(72), Steps, Measures, v))
	assert.Equal(amount, Convert(rational.FromInt(18), Beats, Measures, v))

	assert.Equal(amount, Convert(amount, Measures, Measures, v))
}

func TestConvertInThreeFour(t *testing.T) {
	assert := assert.New(t)
	v := staff.DefaultView()
	v.TimeSignature = staff.TimeSignature{Numerator: 3, Denominator: 4}

	four := rational.FromInt(4)
	assert.Equal(rational.New(4, 3), Convert(four, Beats, Measures, v))
	assert.Equal(rational.FromInt(16), Convert(four, Beats, Steps, v))
	assert.Equal(rational.FromInt(1), Convert(four, Beats, Notes, v))
}

func TestConvertStaysExact(t *testing.T) {
	assert := assert.New(t)
	v := staff.DefaultView()

	// a third of a beat survives a steps round trip untouched
	third := rational.New(1, 3)
	assert.Equal(third, Convert(Convert(third, Beats, Steps, v), Steps, Beats, v))
}

func TestDottedTriplet(t *testing.T) {
	assert := assert.New(t)
	quarter := rational.New(1, 4)
	assert.Equal(rational.New(3, 8), Dotted(quarter))
	assert.Equal(rational.New(1, 6), Triplet(quarter))
}

func TestParseNoteValue(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in   string
		want rational.Rational
	}{
		{"1/4", rational.New(1, 4)},
		{"1/8.", rational.New(3, 16)},
		{"1/4t", rational.New(1, 6)},
		{"2", rational.FromInt(2)},
	}
	for _, tt := range tests {
		got, err := ParseNoteValue(tt.in)
		assert.NoError(err, tt.in)
		assert.Equal(tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "0", "-1/4", "x"} {
		_, err := ParseNoteValue(bad)
		assert.Error(err, bad)
	}
}
