// Package scale holds the named scale table. A scale is a tonic-relative
// chromatic mask; pitch resolution walks its set bits when a scale
// overrides the key signature's diatonic spelling.
package scale

import (
	"fmt"
	"strings"
)

type Scale struct {
	name string
	mask [12]int8
}

// Each row is a tonic-relative mask: index 0 is the tonic itself.
var table = []struct {
	names []string
	mask  [12]int8
}{
	{[]string{"Chromatic"}, [12]int8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	{[]string{"Major", "Maj", "Ionian"}, [12]int8{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1}},
	{[]string{"Dorian"}, [12]int8{1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0}},
	{[]string{"Phrygian"}, [12]int8{1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0}},
	{[]string{"Lydian"}, [12]int8{1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1}},
	{[]string{"Mixolydian"}, [12]int8{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0}},
	{[]string{"minor", "min", "Aeolian"}, [12]int8{1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 1, 0}},
	{[]string{"Locrian"}, [12]int8{1, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0}},
	{[]string{"Harmonic"}, [12]int8{1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 0, 1}},
	{[]string{"Melodic"}, [12]int8{1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1}},
	{[]string{"Octatonic HW"}, [12]int8{1, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0}},
	{[]string{"Octatonic WH"}, [12]int8{1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1}},
	{[]string{"Pentatonic Major", "Pentatonic"}, [12]int8{1, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0}},
	{[]string{"Pentatonic minor"}, [12]int8{1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 0}},
	{[]string{"Diminished"}, [12]int8{1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 0}},
	{[]string{"Augmented"}, [12]int8{1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1}},
	{[]string{"Blues"}, [12]int8{1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 1, 0}},
}

// Named looks a scale up by any of its aliases, case-insensitively.
func Named(name string) (Scale, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range table {
		for _, alias := range entry.names {
			if strings.ToLower(alias) == needle {
				return Scale{entry.names[0], entry.mask}, true
			}
		}
	}
	return Scale{}, false
}

// Names lists the canonical scale names in table order.
func Names() []string {
	res := make([]string, 0, len(table))
	for _, entry := range table {
		res = append(res, entry.names[0])
	}
	return res
}

func (s Scale) Name() string { return s.name }

// Len is the number of tones in the scale (7 for the diatonic modes,
// 5 for pentatonics, 12 for chromatic).
func (s Scale) Len() int {
	n := 0
	for _, bit := range s.mask {
		n += int(bit)
	}
	return n
}

// Offsets returns the semitone offset of each scale tone from the tonic.
func (s Scale) Offsets() []int {
	res := make([]int, 0, 12)
	for off, bit := range s.mask {
		if bit == 1 {
			res = append(res, off)
		}
	}
	return res
}

// Has reports whether the given tonic-relative offset is a scale tone.
func (s Scale) Has(offset int) bool {
	return s.mask[((offset%12)+12)%12] == 1
}

// StepOffset resolves a 0-based scale step to its semitone offset and
// the octaves carried when the step wraps past the scale's last tone.
// Negative steps borrow downward.
func (s Scale) StepOffset(step int) (semitones, octaves int) {
	offsets := s.Offsets()
	n := len(offsets)
	if n == 0 {
		return 0, 0
	}
	idx := ((step % n) + n) % n
	octaves = (step - idx) / n
	return offsets[idx], octaves
}

func (s Scale) String() string {
	if s.name == "" {
		return "none"
	}
	return fmt.Sprintf("%s %v", s.name, s.Offsets())
}
