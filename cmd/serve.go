package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/constants"
	"github.com/ruiseixasm/jsonmidikit/element"
	"github.com/ruiseixasm/jsonmidikit/key"
	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/pitch"
	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/scale"
	"github.com/ruiseixasm/jsonmidikit/staff"
	"github.com/ruiseixasm/jsonmidikit/timing"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions and renditions over HTTP",
	Long:  `Serves the time conversion, pitch resolution and playlist rendition endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// requestView overlays a request's staff document on the process staff,
// so one request can never reconfigure another's.
func requestView(doc *model.StaffDoc) (staff.View, error) {
	return staff.Apply(staff.Default().View(), doc)
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	var req model.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	amount, err := rational.Parse(req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	from, err := timing.ParseKind(req.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := timing.ParseKind(req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := requestView(req.Staff)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := timing.Convert(amount, from, to, v)
	json.NewEncoder(w).Encode(model.ConvertResponse{
		Value: out.String(),
		Float: out.Float(),
		From:  from.String(),
		To:    to.String(),
	})
}

func HandlePitch(w http.ResponseWriter, r *http.Request) {
	var req model.PitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	degree, err := pitch.ParseDegree(req.Degree)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := requestView(req.Staff)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sig := v.Key
	if req.KeySignature != "" {
		sig, err = key.Parse(req.KeySignature)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	octave := v.Octave
	if req.Octave != nil {
		octave = *req.Octave
	}

	var p uint8
	var clamped bool
	if req.Scale != "" {
		sc, ok := scale.Named(req.Scale)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown scale: "+req.Scale)
			return
		}
		p, clamped = pitch.ResolveInScale(degree, octave, sig, sc)
	} else {
		p, clamped = pitch.Resolve(degree, octave, sig)
	}

	json.NewEncoder(w).Encode(model.PitchResponse{
		Pitch:   int(p),
		Clamped: clamped,
		Degree:  degree.String(),
		Numeric: degree.Numeric(),
		KeyName: sig.KeyName(int(p) % 12),
		Tonic:   sig.TonicName(),
		Octave:  int(p)/12 - 1,
	})
}

func HandlePlaylist(w http.ResponseWriter, r *http.Request) {
	var doc model.CompositionDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	comp, err := element.FromDoc(staff.Default(), doc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entries := comp.Playlist()
	if entries == nil {
		entries = []model.PlayEntry{}
	}
	json.NewEncoder(w).Encode(model.PlaylistResponse{
		Entries: len(entries),
		Content: entries,
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/pitch", HandlePitch).Methods("POST")
	router.HandleFunc("/playlist", HandlePlaylist).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
