package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/element"
	"github.com/ruiseixasm/jsonmidikit/pitch"
	"github.com/ruiseixasm/jsonmidikit/scale"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

var (
	chordOctave     int
	chordScale      string
	chordSize       string
	chordInversion  int
	chordDominant   bool
	chordDiminished bool
	chordAugmented  bool
	chordSus2       bool
	chordSus4       bool
)

func init() {
	chordCmd.Flags().IntVar(&chordOctave, "octave", 0, "octave override (default staff octave)")
	chordCmd.Flags().StringVar(&chordScale, "scale", "", "build on a named scale instead of the key's own layout")
	chordCmd.Flags().StringVar(&chordSize, "size", "", "member count or spoken form like 7th")
	chordCmd.Flags().IntVar(&chordInversion, "inversion", 0, "lift the members below this one an octave")
	chordCmd.Flags().BoolVar(&chordDominant, "dominant", false, "flatten the seventh")
	chordCmd.Flags().BoolVar(&chordDiminished, "diminished", false, "flatten the third and fifth")
	chordCmd.Flags().BoolVar(&chordAugmented, "augmented", false, "raise the fifth")
	chordCmd.Flags().BoolVar(&chordSus2, "sus2", false, "slide the third down to the second")
	chordCmd.Flags().BoolVar(&chordSus4, "sus4", false, "slide the third up to the fourth")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <degree>",
	Short: "Resolves a chord's member pitches",
	Long: `Resolves the member pitches of a chord rooted on a degree under the
current key signature, like: chord V --size 7th --dominant`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		degree, err := pitch.ParseDegree(args[0])
		if err != nil {
			panic(err)
		}
		v := staff.Default().View()

		ch := element.NewChord(v)
		ch.Degree = degree
		if cmd.Flags().Changed("octave") {
			ch.Octave = chordOctave
		}
		if chordScale != "" {
			sc, ok := scale.Named(chordScale)
			if !ok {
				panic("unknown scale: " + chordScale)
			}
			ch.Scale = &sc
		}
		if chordSize != "" {
			n, err := element.ParseChordSize(chordSize)
			if err != nil {
				panic(err)
			}
			ch.Size = n
		}
		ch.Inversion = chordInversion
		ch.Dominant = chordDominant
		ch.Diminished = chordDiminished
		ch.Augmented = chordAugmented
		ch.Sus2 = chordSus2
		ch.Sus4 = chordSus4

		fmt.Printf("%v chord on %v:\n", degree, v.Key)
		for _, p := range ch.Pitches(v) {
			fmt.Printf("  %d (%s%d)\n", p, v.Key.KeyName(int(p)%12), int(p)/12-1)
		}
	},
}
