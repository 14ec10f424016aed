package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamed(t *testing.T) {
	assert := assert.New(t)

	major, ok := Named("Major")
	assert.True(ok)
	assert.Equal("Major", major.Name())
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11}, major.Offsets())

	// aliases resolve to the canonical entry, any case
	ionian, ok := Named("ionian")
	assert.True(ok)
	assert.Equal(major, ionian)

	aeolian, ok := Named("AEOLIAN")
	assert.True(ok)
	assert.Equal("minor", aeolian.Name())

	_, ok = Named("klingon")
	assert.False(ok)
}

func TestNames(t *testing.T) {
	assert := assert.New(t)
	names := Names()
	assert.Len(names, 17)
	assert.Equal("Chromatic", names[0])
	for _, name := range names {
		_, ok := Named(name)
		assert.True(ok, name)
	}
}

func TestLen(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		name string
		want int
	}{
		{"Chromatic", 12},
		{"Major", 7},
		{"minor", 7},
		{"Pentatonic Major", 5},
		{"Octatonic WH", 8},
		{"Blues", 6},
	}
	for _, tt := range tests {
		sc, ok := Named(tt.name)
		assert.True(ok, tt.name)
		assert.Equal(tt.want, sc.Len(), tt.name)
	}
}

func TestHasWraps(t *testing.T) {
	assert := assert.New(t)
	minor, _ := Named("minor")
	assert.True(minor.Has(0))
	assert.True(minor.Has(3))
	assert.False(minor.Has(4))
	assert.True(minor.Has(12))
	assert.True(minor.Has(-12))
	assert.True(minor.Has(15))
}

func TestStepOffset(t *testing.T) {
	assert := assert.New(t)
	major, _ := Named("Major")

	tests := []struct {
		step      int
		semitones int
		octaves   int
	}{
		{0, 0, 0},
		{2, 4, 0},
		{6, 11, 0},
		{7, 0, 1},
		{9, 4, 1},
		{-1, 11, -1},
		{-7, 0, -1},
	}
	for _, tt := range tests {
		semitones, octaves := major.StepOffset(tt.step)
		assert.Equal(tt.semitones, semitones, "step %d", tt.step)
		assert.Equal(tt.octaves, octaves, "step %d", tt.step)
	}

	penta, _ := Named("Pentatonic")
	semitones, octaves := penta.StepOffset(5)
	assert.Equal(0, semitones)
	assert.Equal(1, octaves)
}

func TestString(t *testing.T) {
	assert := assert.New(t)
	blues, _ := Named("Blues")
	assert.Equal("Blues [0 3 5 6 7 10]", blues.String())
	assert.Equal("none", Scale{}.String())
}
