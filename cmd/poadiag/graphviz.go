package cmd

import (
	"fmt"
	"log"

	"github.com/jteutenberg/poacore/config"
	"github.com/jteutenberg/poacore/poa"
	"github.com/spf13/cobra"
)

var (
	verboseDot bool
	colorDot   bool
)

var graphvizCmd = &cobra.Command{
	Use:   "graphviz <read> [read...]",
	Short: "Thread reads into a POA graph and dump it as GraphViz dot",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.NewConfig()
		mode, err := parseMode(cfg.Mode)
		if err != nil {
			log.Fatalf("graphviz: %v", err)
		}
		params := poa.ThreadParams{
			Match:    cfg.Thread.Match,
			Mismatch: cfg.Thread.Mismatch,
			Delete:   cfg.Thread.Delete,
			Extra:    cfg.Thread.Extra,
		}
		g, cons, err := poa.FindConsensus(args, mode, minCoverage, params)
		if err != nil {
			log.Fatalf("graphviz: %v", err)
		}
		var flags poa.GraphVizFlag
		if colorDot {
			flags |= poa.ColorNodes
		}
		if verboseDot {
			flags |= poa.VerboseNodes
		}
		fmt.Println(g.ToGraphViz(flags, cons))
	},
}

func init() {
	rootCmd.AddCommand(graphvizCmd)
	graphvizCmd.Flags().BoolVar(&verboseDot, "verbose", false, "include per-vertex score/reaching-score rows")
	graphvizCmd.Flags().BoolVar(&colorDot, "color", false, "fill consensus-path vertices")
}
