package cmd

import (
	"fmt"
	"log"

	"github.com/jteutenberg/poacore/align"
	"github.com/jteutenberg/poacore/config"
	"github.com/jteutenberg/poacore/poa"
	"github.com/spf13/cobra"
)

var minCoverage int

var consensusCmd = &cobra.Command{
	Use:   "consensus <read> [read...]",
	Short: "Build a POA consensus from one or more reads",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.NewConfig()
		mode, err := parseMode(cfg.Mode)
		if err != nil {
			log.Fatalf("consensus: %v", err)
		}
		params := poa.ThreadParams{
			Match:    cfg.Thread.Match,
			Mismatch: cfg.Thread.Mismatch,
			Delete:   cfg.Thread.Delete,
			Extra:    cfg.Thread.Extra,
		}
		_, cons, err := poa.FindConsensus(args, mode, minCoverage, params)
		if err != nil {
			log.Fatalf("consensus: %v", err)
		}
		fmt.Println(cons.Sequence)
		for _, m := range cons.CandidateMutations {
			fmt.Printf("%s at %d (base=%q) score=%.4f\n", m.Kind, m.Position, m.Base, m.Score)
		}
	},
}

func parseMode(s string) (align.Mode, error) {
	switch s {
	case "global":
		return align.Global, nil
	case "semiglobal":
		return align.Semiglobal, nil
	case "local":
		return align.Local, nil
	default:
		return align.Global, fmt.Errorf("unknown mode %q", s)
	}
}

func init() {
	rootCmd.AddCommand(consensusCmd)
	consensusCmd.Flags().IntVar(&minCoverage, "min-coverage", poa.DefaultMinCoverage, "minimum spanning-read coverage for non-global consensus scoring")
}
