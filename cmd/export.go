package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/element"
	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

var (
	exportOut      string
	exportMidilist bool
	exportWatch    bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to a file instead of stdout")
	exportCmd.Flags().BoolVar(&exportMidilist, "midilist", false, "render the tabular midilist instead of the playlist")
	exportCmd.Flags().BoolVar(&exportWatch, "watch", false, "re-render whenever the composition file changes")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <composition.json>",
	Short: "Renders a composition into a player playlist",
	Long: `Renders a composition document into the playlist the Json Midi Player
consumes, or with --midilist into the tabular event form.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if exportWatch {
			watch(args[0])
			return
		}
		if err := export(args[0]); err != nil {
			panic(err)
		}
	},
}

// loadComposition accepts either the saved envelope or a bare document.
func loadComposition(path string) (*element.Composition, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var envelope model.CompositionFile
	if err := json.Unmarshal(dat, &envelope); err == nil && envelope.Filetype == model.CompositionFiletype {
		return element.FromDoc(staff.Default(), envelope.Content)
	}
	var doc model.CompositionDoc
	if err := json.Unmarshal(dat, &doc); err != nil {
		return nil, fmt.Errorf("parsing %v: %v", path, err)
	}
	return element.FromDoc(staff.Default(), doc)
}

func export(path string) error {
	comp, err := loadComposition(path)
	if err != nil {
		return err
	}

	var rendered any
	if exportMidilist {
		rendered = comp.Midilist()
	} else {
		rendered = model.NewPlaylistFile(comp.Playlist())
	}
	out, err := json.MarshalIndent(rendered, "", "    ")
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(exportOut, out, 0644)
}

// watch polls the composition file and re-renders on change. Edits come
// in bursts from editors, so the render itself is debounced.
func watch(path string) {
	if exportOut == "" {
		// repeated renders need a stable target, not stdout
		suffix := ".playlist.json"
		if exportMidilist {
			suffix = ".midilist.json"
		}
		exportOut = uuid.New().String() + suffix
		fmt.Println("writing to", exportOut)
	}
	render := func() {
		if err := export(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	render()

	debounced := debounce.New(300 * time.Millisecond)
	var lastMod time.Time
	if fi, err := os.Stat(path); err == nil {
		lastMod = fi.ModTime()
	}
	for {
		time.Sleep(250 * time.Millisecond)
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		if fi.ModTime().After(lastMod) {
			lastMod = fi.ModTime()
			debounced(render)
		}
	}
}
