package main

import (
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlseq/kmp"
	"github.com/katalvlaran/lvlseq/verify"
)

func newMatchCmd(a *app) *cobra.Command {
	var (
		pattern string
		starts  bool
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Find every occurrence of --pattern in the input text; print the failure table and positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := kmp.CompileString(pattern)
			if err != nil {
				return err
			}
			text, err := a.readText()
			if err != nil {
				return err
			}
			raw := []byte(text)

			var pos []int
			if starts {
				pos = slices.Collect(m.Starts(raw))
			} else {
				pos = slices.Collect(m.Ends(raw))
			}
			a.log.WithFields(logrus.Fields{"pattern": pattern, "bytes": len(raw), "matches": len(pos)}).Info("matched")

			if a.check {
				begins := slices.Collect(m.Starts(raw))
				if err = verify.ValidateMatches(raw, []byte(pattern), begins); err != nil {
					return err
				}
			}
			if err = a.writeInts(m.Table()); err != nil {
				return err
			}
			return a.writeInts(pos)
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "pattern to search for (required)")
	cmd.Flags().BoolVar(&starts, "starts", false, "print start positions instead of end positions")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}
