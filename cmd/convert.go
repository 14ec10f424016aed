package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruiseixasm/jsonmidikit/rational"
	"github.com/ruiseixasm/jsonmidikit/staff"
	"github.com/ruiseixasm/jsonmidikit/timing"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <amount> <from> <to>",
	Short: "Converts a time amount between units",
	Long: `Converts a time amount between measures, beats, steps and notes under
the current staff, like: convert 4.5 measures steps`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		amount, err := rational.Parse(args[0])
		if err != nil {
			panic(err)
		}
		from, err := timing.ParseKind(args[1])
		if err != nil {
			panic(err)
		}
		to, err := timing.ParseKind(args[2])
		if err != nil {
			panic(err)
		}
		out := timing.Convert(amount, from, to, staff.Default().View())
		fmt.Printf("%v %v = %v %v (%v)\n", amount, from, out, to, out.Float())
	},
}
