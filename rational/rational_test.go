package rational

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReduces(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(New(1, 2), New(2, 4))
	assert.Equal(int64(3), New(6, 8).Num())
	assert.Equal(int64(4), New(6, 8).Den())
	assert.Equal(New(-1, 2), New(1, -2))
	assert.Equal(Zero, New(0, 17))
}

func TestFromFloatExact(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(New(9, 2), FromFloat(4.5))
	assert.Equal(New(9, 10), FromFloat(0.9))
	assert.Equal(New(1, 10), FromFloat(0.1))
	assert.Equal(New(3, 8), FromFloat(0.375))
	assert.Equal(New(-3, 2), FromFloat(-1.5))
	assert.Equal(FromInt(120), FromFloat(120.0))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Rational
	}{
		{"3/4", New(3, 4)},
		{" 1 / 16 ", New(1, 16)},
		{"1.5", New(3, 2)},
		{"-2", FromInt(-2)},
		{"120", FromInt(120)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "x", "1/0", "a/b"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestArithmetic(t *testing.T) {
	assert := assert.New(t)
	a := New(1, 4)
	b := New(1, 6)
	assert.Equal(New(5, 12), a.Add(b))
	assert.Equal(New(1, 12), a.Sub(b))
	assert.Equal(New(1, 24), a.Mul(b))
	assert.Equal(New(3, 2), a.Div(b))
	assert.Equal(New(-1, 4), a.Neg())
}

func TestDivByZeroKeepsValue(t *testing.T) {
	assert := assert.New(t)
	a := New(3, 4)
	assert.Equal(a, a.Div(Zero))
	assert.Equal(a, a.Mod(Zero))
}

func TestAddSubRoundTrip(t *testing.T) {
	assert := assert.New(t)
	values := []Rational{New(1, 3), New(7, 16), FromInt(5), New(-9, 8), FromFloat(0.9)}
	for _, a := range values {
		for _, b := range values {
			assert.True(a.Add(b).Sub(b).Equal(a), "%v + %v - %v", a, b, b)
		}
	}
}

func TestFloorAndCeil(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(int64(4), New(9, 2).Int())
	assert.Equal(int64(5), New(9, 2).Ceil())
	assert.Equal(int64(-5), New(-9, 2).Int())
	assert.Equal(int64(-4), New(-9, 2).Ceil())
	assert.Equal(int64(3), FromInt(3).Int())
	assert.Equal(int64(3), FromInt(3).Ceil())
}

func TestMod(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(New(1, 2), New(9, 2).Mod(FromInt(4)))
	assert.Equal(FromInt(2), FromInt(18).Mod(FromInt(4)))
	// negative positions wrap into the cycle, they do not mirror
	assert.Equal(New(7, 2), New(-1, 2).Mod(FromInt(4)))
}

func TestOrdering(t *testing.T) {
	assert := assert.New(t)
	assert.True(New(1, 3).Less(New(1, 2)))
	assert.True(New(2, 4).Equal(New(1, 2)))
	assert.Equal(1, FromInt(1).Cmp(New(99, 100)))
}

func TestDenominatorCap(t *testing.T) {
	assert := assert.New(t)
	third := FromFloat(1.0 / 3.0)
	assert.Equal(New(1, 3), third)

	r := New(1, 3)
	for i := 0; i < 20; i++ {
		r = r.Mul(New(999983, 999979))
	}
	assert.LessOrEqual(r.Den(), int64(1_000_000))
}

func TestZeroValueIsUsable(t *testing.T) {
	assert := assert.New(t)
	var r Rational
	assert.True(r.IsZero())
	assert.Equal(New(1, 2), r.Add(New(1, 2)))
	assert.Equal("0", r.String())
}

func TestString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("3/4", New(3, 4).String())
	assert.Equal("5", FromInt(5).String())
	assert.Equal("-1/2", New(1, -2).String())
}

func TestJSON(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(New(3, 8))
	assert.NoError(err)
	assert.Equal(`"3/8"`, string(data))

	var r Rational
	assert.NoError(json.Unmarshal([]byte(`"1/16"`), &r))
	assert.Equal(New(1, 16), r)
	assert.NoError(json.Unmarshal([]byte(`1.5`), &r))
	assert.Equal(New(3, 2), r)
	assert.Error(json.Unmarshal([]byte(`"nope"`), &r))
}
