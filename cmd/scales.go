package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/scale"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales [name]",
	Short: "Lists the named scales",
	Long:  `Lists the named scales, or shows one scale's semitone layout: scales blues`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, name := range scale.Names() {
				fmt.Println(name)
			}
			return
		}
		sc, ok := scale.Named(args[0])
		if !ok {
			panic("unknown scale: " + args[0])
		}
		fmt.Printf("%v, %d tones\n", sc, sc.Len())
	},
}
