package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/key"
	"github.com/ruiseixasm/jsonmidikit/staff"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key [signature]",
	Short: "Shows a key signature's scale members",
	Long: `Shows the tonic, member keys and semitone layout of a key signature,
defaulting to the current staff's: key '3 minor'`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sig := staff.Default().View().Key
		if len(args) == 1 {
			parsed, err := key.Parse(args[0])
			if err != nil {
				panic(err)
			}
			sig = parsed
		}

		fmt.Printf("signature: %v\n", sig)
		fmt.Printf("tonic:     %s (pitch class %d)\n", sig.TonicName(), sig.TonicKey())
		fmt.Printf("keys:      %s\n", strings.Join(sig.Keys(), " "))
		offsets := make([]string, 0, 7)
		for _, off := range sig.StepOffsets() {
			offsets = append(offsets, fmt.Sprint(off))
		}
		fmt.Printf("offsets:   %s\n", strings.Join(offsets, " "))
	},
}
