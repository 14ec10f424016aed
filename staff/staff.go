package staff

import (
	"fmt"
	"sync"

	"github.com/ruiseixasm/jsonmidikit/constants"
	"github.com/ruiseixasm/jsonmidikit/key"
	"github.com/ruiseixasm/jsonmidikit/rational"
)

// TimeSignature is beats per measure over the note value of one beat,
// so 3/4 means three beats of a quarter note each.
type TimeSignature struct {
	Numerator   int
	Denominator int
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Numerator, ts.Denominator)
}

// ParseTimeSignature reads the "3/4" form.
func ParseTimeSignature(s string) (TimeSignature, error) {
	var num, den int
	if _, err := fmt.Sscanf(s, "%d/%d", &num, &den); err != nil {
		return TimeSignature{}, fmt.Errorf("bad time signature %q: %v", s, err)
	}
	if num < 1 || den < 1 {
		return TimeSignature{}, fmt.Errorf("bad time signature %q", s)
	}
	return TimeSignature{num, den}, nil
}

// View is a frozen snapshot of a staff. Conversions and resolutions
// always take a View, so a single call can never see two different
// configurations.
type View struct {
	TimeSignature TimeSignature
	Tempo         rational.Rational // beats per minute
	Quantization  rational.Rational // step size as a note value
	Key           key.Signature
	Octave        int
	Velocity      int
	Channel       int // 1..16
	Duration      rational.Rational // default note value
	Devices       []string
}

// DefaultView builds a View from the process defaults, honoring the
// JMK_TEMPO and JMK_DEVICES environment overrides.
func DefaultView() View {
	return View{
		TimeSignature: TimeSignature{constants.DefaultBeatsPerMeasure, constants.DefaultBeatNoteDenom},
		Tempo:         rational.FromInt(int64(constants.GetTempo())),
		Quantization:  rational.New(1, constants.DefaultQuantizerDenom),
		Key:           key.New(0),
		Octave:        constants.DefaultOctave,
		Velocity:      constants.DefaultVelocity,
		Channel:       constants.DefaultChannel,
		Duration:      rational.New(1, 4),
		Devices:       constants.GetDevices(),
	}
}

// BeatsPerMeasure is the time signature numerator.
func (v View) BeatsPerMeasure() rational.Rational {
	return rational.FromInt(int64(v.TimeSignature.Numerator))
}

// BeatNoteValue is the note value of one beat, 1/4 in 3/4 time.
func (v View) BeatNoteValue() rational.Rational {
	return rational.New(1, int64(v.TimeSignature.Denominator))
}

// NotesPerMeasure is the measure's span in note value terms: a full
// measure of 4/4 is one whole note, of 3/4 three quarters.
func (v View) NotesPerMeasure() rational.Rational {
	return v.BeatsPerMeasure().Mul(v.BeatNoteValue())
}

// StepsPerNote is the reciprocal of the quantization grid.
func (v View) StepsPerNote() rational.Rational {
	return rational.One.Div(v.Quantization)
}

func (v View) StepsPerMeasure() rational.Rational {
	return v.StepsPerNote().Mul(v.NotesPerMeasure())
}

// BeatMillis is the duration of one beat in milliseconds, kept exact.
func (v View) BeatMillis() rational.Rational {
	return rational.FromInt(60_000).Div(v.Tempo)
}

// View returns the view itself, making a View its own frozen Context.
func (v View) View() View { return v }

// Context yields a View at use time. A *Staff is a live shared context
// whose reads snapshot under a lock; a View is its own frozen context.
type Context interface {
	View() View
}

// Staff is the shared mutable configuration. Commands mutate it once at
// startup; everything below the command layer receives a View.
type Staff struct {
	mu   sync.RWMutex
	view View
}

func New() *Staff {
	return &Staff{view: DefaultView()}
}

var defaultStaff = New()

// Default is the process-wide staff.
func Default() *Staff { return defaultStaff }

func (s *Staff) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := s.view
	v.Devices = append([]string(nil), s.view.Devices...)
	return v
}

func (s *Staff) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}
