package model

// MidiMessage is one raw message as the player consumes it. Data bytes
// are pointers because a present zero is meaningful on the wire while
// realtime messages carry no data bytes at all.
type MidiMessage struct {
	StatusByte int      `json:"status_byte"`
	DataByte   *int     `json:"data_byte,omitempty"`
	DataByte1  *int     `json:"data_byte_1,omitempty"`
	DataByte2  *int     `json:"data_byte_2,omitempty"`
	Device     []string `json:"device"`
}

// PlayEntry schedules one message at an absolute millisecond offset.
type PlayEntry struct {
	TimeMs      float64     `json:"time_ms"`
	MidiMessage MidiMessage `json:"midi_message"`
}

// PlaylistFiletype marks exported playlists for the player.
const (
	PlaylistFiletype = "Json Midi Player"
	PlaylistURL      = "https://github.com/ruiseixasm/JsonMidiPlayer"
)

// PlaylistFile is the envelope the player loads.
type PlaylistFile struct {
	Filetype string      `json:"filetype"`
	URL      string      `json:"url"`
	Content  []PlayEntry `json:"content"`
}

func NewPlaylistFile(entries []PlayEntry) PlaylistFile {
	if entries == nil {
		entries = []PlayEntry{}
	}
	return PlaylistFile{
		Filetype: PlaylistFiletype,
		URL:      PlaylistURL,
		Content:  entries,
	}
}

// MidiRow is one event of the tabular midilist rendition, with times
// and durations in beats rather than milliseconds.
type MidiRow struct {
	Event       string  `json:"event"`
	Track       int     `json:"track"`
	TrackName   string  `json:"track_name,omitempty"`
	Numerator   int     `json:"numerator"`
	Denominator int     `json:"denominator"`
	Channel     int     `json:"channel"`
	Time        float64 `json:"time"`
	Duration    float64 `json:"duration,omitempty"`
	Tempo       float64 `json:"tempo"`
	Pitch       int     `json:"pitch,omitempty"`
	Velocity    int     `json:"velocity,omitempty"`
	Number      int     `json:"number,omitempty"`
	Value       int     `json:"value,omitempty"`
	Pressure    int     `json:"pressure,omitempty"`
	Program     int     `json:"program,omitempty"`
}
