package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlseq/mergesort"
	"github.com/katalvlaran/lvlseq/quicksort"
	"github.com/katalvlaran/lvlseq/verify"
)

// Algorithm names accepted by --algo.
const (
	algoQuick         = "quick"
	algoQuickThreeWay = "quick-3way"
	algoQuickIter     = "quick-iter"
	algoMerge         = "merge"
	algoMergeBottomUp = "merge-bottomup"
)

var sortAlgos = []string{algoQuick, algoQuickThreeWay, algoQuickIter, algoMerge, algoMergeBottomUp}

func newSortCmd(a *app) *cobra.Command {
	var (
		algo     string
		seed     int64
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort integers with quicksort or merge sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if parallel != 0 && parallel < 2 {
				return fmt.Errorf("--parallel must be 0 (off) or at least 2, got %d", parallel)
			}
			xs, err := a.readInts()
			if err != nil {
				return err
			}
			orig := slices.Clone(xs)

			start := time.Now()
			if err = runSort(xs, algo, seed, parallel); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"algo":    algo,
				"n":       len(xs),
				"elapsed": time.Since(start),
			}).Info("sorted")

			if a.check {
				if err = verify.ValidateSorted(xs); err != nil {
					return err
				}
				if err = verify.ValidatePermutation(orig, xs); err != nil {
					return err
				}
			}
			return a.writeInts(xs)
		},
	}
	f := cmd.Flags()
	f.StringVar(&algo, "algo", algoQuick, fmt.Sprintf("algorithm %v", sortAlgos))
	f.Int64Var(&seed, "seed", 0, "pivot seed for quicksort (0 = unpredictable)")
	f.IntVar(&parallel, "parallel", 0, "sort halves longer than this concurrently (0 = off)")

	return cmd
}

// runSort maps the CLI flags onto package options.
func runSort(xs []int, algo string, seed int64, parallel int) error {
	hi := len(xs) - 1
	switch algo {
	case algoQuick, algoQuickThreeWay, algoQuickIter:
		var opts []quicksort.Option
		if seed != 0 {
			opts = append(opts, quicksort.WithSeed(seed))
		}
		if algo == algoQuickThreeWay {
			opts = append(opts, quicksort.WithScheme(quicksort.ThreeWay))
		}
		if algo == algoQuickIter {
			opts = append(opts, quicksort.WithIterative())
		}
		if parallel > 0 {
			opts = append(opts, quicksort.WithParallel(parallel))
		}
		return quicksort.Sort(xs, 0, hi, opts...)
	case algoMerge, algoMergeBottomUp:
		var opts []mergesort.Option
		if algo == algoMergeBottomUp {
			opts = append(opts, mergesort.WithBottomUp())
		}
		if parallel > 0 {
			opts = append(opts, mergesort.WithParallel(parallel))
		}
		return mergesort.Sort(xs, 0, hi, opts...)
	default:
		return fmt.Errorf("unknown --algo %q (want one of %v)", algo, sortAlgos)
	}
}
