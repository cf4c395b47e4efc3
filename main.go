// Command poadiag is a diagnostic CLI exercising the pairwise aligner, the
// POA consensus engine, and the evaluator/integrator polishing loop.
package main

import "github.com/jteutenberg/poacore/cmd/poadiag"

func main() {
	cmd.Execute()
}
