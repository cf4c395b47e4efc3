package cmd

import (
	"fmt"
	"log"

	"github.com/jteutenberg/poacore/config"
	"github.com/jteutenberg/poacore/eval"
	"github.com/jteutenberg/poacore/model"
	"github.com/jteutenberg/poacore/polish"
	"github.com/jteutenberg/poacore/sequence"
	"github.com/spf13/cobra"
)

var polishCmd = &cobra.Command{
	Use:   "polish <template> <read> [read...]",
	Short: "Polish a template against one or more full-length reads via the evaluator/integrator",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.NewConfig()
		template, reads := args[0], args[1:]

		snr := model.SNR{A: cfg.Eval.SNR.A, C: cfg.Eval.SNR.C, G: cfg.Eval.SNR.G, T: cfg.Eval.SNR.T}
		ig, err := eval.NewMonoMolecularIntegrator(template, eval.IntegratorConfig{}, snr, cfg.Eval.ModelID)
		if err != nil {
			log.Fatalf("polish: %v", err)
		}
		for i, r := range reads {
			mr := sequence.MappedRead{
				Read:  sequence.Read{Name: fmt.Sprintf("read%d", i), Bases: r, ModelID: cfg.Eval.ModelID},
				Start: 0, End: len(template),
			}
			if err := ig.AddRead(mr); err != nil {
				log.Fatalf("polish: add read %d: %v", i, err)
			}
		}

		res, err := polish.Polish(ig, polish.Options{
			ImprovementThreshold: cfg.Eval.ImprovementThreshold,
			MaxRounds:            cfg.Eval.MaxRounds,
		})
		if err != nil {
			log.Fatalf("polish: %v", err)
		}
		fmt.Println(res.Template)
		for _, m := range res.Applied {
			fmt.Printf("applied %s at %d (base=%q) delta=%.4f\n", m.Kind, m.Position, m.Base, m.Score)
		}
	},
}

func init() {
	rootCmd.AddCommand(polishCmd)
}
