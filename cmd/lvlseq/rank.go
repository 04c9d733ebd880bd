package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlseq/countsort"
	"github.com/katalvlaran/lvlseq/verify"
)

func newRankCmd(a *app) *cobra.Command {
	var (
		maxValue int
		stable   bool
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Counting-sort values in [1,max]; print sorted values and ranks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			xs, err := a.readInts()
			if err != nil {
				return err
			}
			m := maxValue
			if m == 0 {
				if m, err = countsort.MaxValue(xs); err != nil {
					return err
				}
			}

			policy := countsort.LaterFirst
			if stable {
				policy = countsort.Stable
			}
			res, err := countsort.Sort(xs, m, countsort.WithTiePolicy(policy))
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"n": len(xs), "max": m, "ties": policy}).Info("ranked")

			if a.check {
				if err = verify.ValidateRankBijection(res.Rank); err != nil {
					return err
				}
				if err = verify.ValidateSorted(res.Sorted); err != nil {
					return err
				}
			}
			if err = a.writeInts(res.Sorted); err != nil {
				return err
			}
			return a.writeInts(res.Rank)
		},
	}
	cmd.Flags().IntVar(&maxValue, "max", 0, "largest allowed value m (0 = largest value in input)")
	cmd.Flags().BoolVar(&stable, "stable", false, "rank equal values in input order instead of later-first")

	return cmd
}
