package cmd

import (
	"fmt"
	"log"

	"github.com/jteutenberg/poacore/align"
	"github.com/spf13/cobra"
)

var alignCmd = &cobra.Command{
	Use:   "align <target> <query>",
	Short: "Run global pairwise Needleman-Wunsch alignment on two sequences",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := align.Config{Mode: align.Global, Params: align.DefaultParams}
		pa, score, err := align.Align(args[0], args[1], cfg)
		if err != nil {
			log.Fatalf("align: %v", err)
		}
		fmt.Println(pa.AlignedTarget)
		fmt.Println(pa.AlignedQuery)
		fmt.Println(pa.Transcript())
		fmt.Println("score:", score)
	},
}

func init() {
	rootCmd.AddCommand(alignCmd)
}
