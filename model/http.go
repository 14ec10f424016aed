package model

// ConvertRequest re-expresses a time value between units under an
// optional staff override.
type ConvertRequest struct {
	Value string    `json:"value"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	Staff *StaffDoc `json:"staff,omitempty"`
}

type ConvertResponse struct {
	Value string  `json:"value"`
	Float float64 `json:"float"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

type PitchRequest struct {
	Degree       string    `json:"degree"`
	Octave       *int      `json:"octave,omitempty"`
	KeySignature string    `json:"key_signature,omitempty"`
	Scale        string    `json:"scale,omitempty"`
	Staff        *StaffDoc `json:"staff,omitempty"`
}

type PitchResponse struct {
	Pitch   int    `json:"pitch"`
	Clamped bool   `json:"clamped,omitempty"`
	Degree  string `json:"degree"`
	Numeric string `json:"numeric"`
	KeyName string `json:"key_name"`
	Tonic   string `json:"tonic"`
	Octave  int    `json:"octave"`
}

type PlaylistResponse struct {
	Entries int         `json:"entries"`
	Content []PlayEntry `json:"content"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
