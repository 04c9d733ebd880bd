package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlseq/radixsort"
	"github.com/katalvlaran/lvlseq/verify"
)

func newRadixCmd(a *app) *cobra.Command {
	var digits int
	cmd := &cobra.Command{
		Use:   "radix",
		Short: "Radix-sort non-negative integers; print the index permutation and the sorted values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			xs, err := a.readInts()
			if err != nil {
				return err
			}
			d := digits
			if d == 0 {
				if d, err = radixsort.Digits(xs); err != nil {
					return err
				}
			}

			sa, err := radixsort.Sort(xs, d)
			if err != nil {
				return err
			}
			vals, err := radixsort.Apply(xs, sa)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"n": len(xs), "digits": d}).Info("radix sorted")

			if a.check {
				if err = verify.ValidatePermutationIndex(sa, len(xs)); err != nil {
					return err
				}
				if err = verify.ValidateSorted(vals); err != nil {
					return err
				}
			}
			if err = a.writeInts(sa); err != nil {
				return err
			}
			return a.writeInts(vals)
		},
	}
	cmd.Flags().IntVar(&digits, "digits", 0, "maximum decimal digits per value (0 = detect)")

	return cmd
}
