package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/model"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

var (
	flagTempo   float64
	flagTimeSig string
	flagKey     string
	flagQuant   string
)

var rootCmd = &cobra.Command{
	Use:   "jsonmidikit",
	Short: "Exact-time composition toolkit for the Json Midi Player",
	Long: `jsonmidikit keeps musical time as exact rationals and resolves pitches
through key signatures, exporting player-ready JSON playlists.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureStaff()
	},
}

func Execute() {
	// A local .env may carry JMK_TEMPO and friends; not having one is fine.
	godotenv.Load()
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&flagTempo, "tempo", 0, "beats per minute override")
	flags.StringVar(&flagTimeSig, "time", "", "time signature override, like 3/4")
	flags.StringVar(&flagKey, "key", "", "key signature override, like 'bb minor'")
	flags.StringVar(&flagQuant, "quantization", "", "step size override, like 1/16")
}

// configureStaff applies the global flags to the process staff once,
// before any command runs. Everything below the command layer works
// off View snapshots of it.
func configureStaff() {
	doc := model.StaffDoc{
		TimeSignature: flagTimeSig,
		KeySignature:  flagKey,
		Quantization:  flagQuant,
	}
	if flagTempo > 0 {
		doc.Tempo = &flagTempo
	}
	v, err := staff.Apply(staff.Default().View(), &doc)
	if err != nil {
		panic(err.Error())
	}
	staff.Default().SetView(v)
}
