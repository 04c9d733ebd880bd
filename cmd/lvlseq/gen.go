package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlseq/seqgen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		n        int
		lo, hi   int
		seed     int64
		alphabet string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a deterministic random fixture (integers, or a string with --alphabet)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if alphabet != "" {
				s, err := seqgen.String(n, seqgen.WithSeed(seed), seqgen.WithAlphabet(alphabet))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, s)
				return err
			}
			xs, err := seqgen.Bounded(n, lo, hi, seqgen.WithSeed(seed))
			if err != nil {
				return err
			}
			a.log.WithField("n", n).Debug("generated")
			return a.writeInts(xs)
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 10, "number of values")
	f.IntVar(&lo, "min", 0, "smallest value")
	f.IntVar(&hi, "max", 100, "largest value")
	f.Int64Var(&seed, "seed", 1, "generator seed")
	f.StringVar(&alphabet, "alphabet", "", "emit a string over these symbols instead of integers")

	return cmd
}
