package staff

import (
	"fmt"

	"github.com/ruiseixasm/jsonmidikit/key"
	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/rational"
)

// Apply overlays a staff document on a view. Fields the document leaves
// out keep the view's current values.
func Apply(v View, doc *model.StaffDoc) (View, error) {
	if doc == nil {
		return v, nil
	}
	if doc.Tempo != nil {
		if *doc.Tempo <= 0 {
			return v, fmt.Errorf("bad tempo %v", *doc.Tempo)
		}
		tempo := rational.FromFloat(*doc.Tempo)
		// tempo floors at 1 bpm
		if tempo.Cmp(rational.One) < 0 {
			tempo = rational.One
		}
		v.Tempo = tempo
	}
	if doc.TimeSignature != "" {
		ts, err := ParseTimeSignature(doc.TimeSignature)
		if err != nil {
			return v, err
		}
		v.TimeSignature = ts
	}
	if doc.Quantization != "" {
		q, err := rational.Parse(doc.Quantization)
		if err != nil {
			return v, fmt.Errorf("bad quantization %q: %v", doc.Quantization, err)
		}
		if q.Sign() <= 0 {
			return v, fmt.Errorf("bad quantization %q", doc.Quantization)
		}
		v.Quantization = q
	}
	if doc.KeySignature != "" {
		sig, err := key.Parse(doc.KeySignature)
		if err != nil {
			return v, err
		}
		v.Key = sig
	}
	if doc.Octave != nil {
		v.Octave = *doc.Octave
	}
	if doc.Velocity != nil {
		v.Velocity = *doc.Velocity
	}
	if doc.Channel != nil {
		if *doc.Channel < 1 || *doc.Channel > 16 {
			return v, fmt.Errorf("bad channel %d", *doc.Channel)
		}
		v.Channel = *doc.Channel
	}
	if doc.Duration != "" {
		d, err := rational.Parse(doc.Duration)
		if err != nil {
			return v, fmt.Errorf("bad duration %q: %v", doc.Duration, err)
		}
		v.Duration = d
	}
	if len(doc.Devices) > 0 {
		v.Devices = append([]string(nil), doc.Devices...)
	}
	return v, nil
}

// Doc captures the view as a staff document with every field present.
func Doc(v View) model.StaffDoc {
	tempo := v.Tempo.Float()
	octave := v.Octave
	velocity := v.Velocity
	channel := v.Channel
	return model.StaffDoc{
		Tempo:         &tempo,
		TimeSignature: v.TimeSignature.String(),
		Quantization:  v.Quantization.String(),
		KeySignature:  v.Key.String(),
		Octave:        &octave,
		Velocity:      &velocity,
		Channel:       &channel,
		Duration:      v.Duration.String(),
		Devices:       append([]string(nil), v.Devices...),
	}
}
