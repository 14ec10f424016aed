package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/pitch"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

var degreeOctave int

func init() {
	degreeCmd.Flags().IntVar(&degreeOctave, "octave", 0, "octave override (default staff octave)")
	rootCmd.AddCommand(degreeCmd)
}

var degreeCmd = &cobra.Command{
	Use:   "degree <pitch>",
	Short: "Finds the degree that lands on a MIDI pitch",
	Long: `Finds the degree that lands on a MIDI pitch under the current key
signature, inverting what pitch does: degree 70 --key b`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := strconv.Atoi(args[0])
		if err != nil {
			panic(err)
		}
		if p < 0 || p > 127 {
			panic("pitch outside 0..127: " + args[0])
		}
		v := staff.Default().View()
		octave := v.Octave
		if cmd.Flags().Changed("octave") {
			octave = degreeOctave
		}
		d := pitch.ResolveDegree(uint8(p), octave, v.Key)
		fmt.Printf("%d under %v = %v (%s)\n", p, v.Key, d, d.Numeric())
	},
}
