package model

// StaffDoc configures a staff. Absent fields keep whatever the
// enclosing scope already uses.
type StaffDoc struct {
	Tempo         *float64 `json:"tempo,omitempty"`
	TimeSignature string   `json:"time_signature,omitempty"`
	Quantization  string   `json:"quantization,omitempty"`
	KeySignature  string   `json:"key_signature,omitempty"`
	Octave        *int     `json:"octave,omitempty"`
	Velocity      *int     `json:"velocity,omitempty"`
	Channel       *int     `json:"channel,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Devices       []string `json:"devices,omitempty"`
}

// ElementDoc is the flat on-disk form of any element; Type picks which
// of the remaining fields apply.
type ElementDoc struct {
	Type     string   `json:"type"`
	Position string   `json:"position,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Channel  int      `json:"channel,omitempty"`
	Track    int      `json:"track,omitempty"`
	Devices  []string `json:"devices,omitempty"`

	// note and chord
	Degree   string `json:"degree,omitempty"`
	Octave   *int   `json:"octave,omitempty"`
	Velocity *int   `json:"velocity,omitempty"`
	Gate     string `json:"gate,omitempty"`

	// chord
	Scale      string `json:"scale,omitempty"`
	Size       int    `json:"size,omitempty"`
	Inversion  int    `json:"inversion,omitempty"`
	Dominant   bool   `json:"dominant,omitempty"`
	Diminished bool   `json:"diminished,omitempty"`
	Augmented  bool   `json:"augmented,omitempty"`
	Sus2       bool   `json:"sus2,omitempty"`
	Sus4       bool   `json:"sus4,omitempty"`

	// automation
	Controller string `json:"controller,omitempty"`
	Value      *int   `json:"value,omitempty"`
	Bend       int    `json:"bend,omitempty"`
	Pressure   int    `json:"pressure,omitempty"`
	Program    int    `json:"program,omitempty"`

	// clock
	Measures int `json:"measures,omitempty"`
}

// ClipDoc groups elements under one position offset. A clip with its
// own staff renders under that frozen staff instead of the shared one.
type ClipDoc struct {
	ID       string       `json:"id,omitempty"`
	Position string       `json:"position,omitempty"`
	Stack    bool         `json:"stack,omitempty"`
	Link     bool         `json:"link,omitempty"`
	Staff    *StaffDoc    `json:"staff,omitempty"`
	Elements []ElementDoc `json:"elements"`
}

type CompositionDoc struct {
	Staff *StaffDoc `json:"staff,omitempty"`
	Clips []ClipDoc `json:"clips"`
}

const (
	CompositionFiletype = "Json Midi Kit"
	CompositionURL      = "https://github.com/ruiseixasm/jsonmidikit"
)

// CompositionFile is the envelope compositions are saved under.
type CompositionFile struct {
	Filetype string         `json:"filetype"`
	URL      string         `json:"url"`
	Content  CompositionDoc `json:"content"`
}

func NewCompositionFile(doc CompositionDoc) CompositionFile {
	return CompositionFile{
		Filetype: CompositionFiletype,
		URL:      CompositionURL,
		Content:  doc,
	}
}
