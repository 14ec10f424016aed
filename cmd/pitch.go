package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/pitch"
	"github.com/ruiseixasm/jsonmidikit/scale"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

var (
	pitchOctave int
	pitchScale  string
)

func init() {
	pitchCmd.Flags().IntVar(&pitchOctave, "octave", 0, "octave override (default staff octave)")
	pitchCmd.Flags().StringVar(&pitchScale, "scale", "", "resolve on a named scale instead of the key's own layout")
	rootCmd.AddCommand(pitchCmd)
}

var pitchCmd = &cobra.Command{
	Use:   "pitch <degree>",
	Short: "Resolves a degree to its MIDI pitch",
	Long: `Resolves a degree such as V or 7b to its MIDI pitch under the current
key signature, like: pitch 5 --key bb --octave 3`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		degree, err := pitch.ParseDegree(args[0])
		if err != nil {
			panic(err)
		}
		v := staff.Default().View()
		octave := v.Octave
		if cmd.Flags().Changed("octave") {
			octave = pitchOctave
		}

		var p uint8
		var clamped bool
		if pitchScale != "" {
			sc, ok := scale.Named(pitchScale)
			if !ok {
				panic("unknown scale: " + pitchScale)
			}
			p, clamped = pitch.ResolveInScale(degree, octave, v.Key, sc)
		} else {
			p, clamped = pitch.Resolve(degree, octave, v.Key)
		}

		fmt.Printf("%v of %v = %d (%s%d)\n", degree, v.Key, p, v.Key.KeyName(int(p)%12), int(p)/12-1)
		if clamped {
			fmt.Println("clamped to the MIDI range")
		}
	},
}
