package main

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/caio/go-segtree/internal/timing"
)

type timingFlags struct {
	size   int
	reps   int
	seed   int64
	dist   string
	output string
}

func registerTimingCommand() *cobra.Command {
	var f timingFlags
	cmd := &cobra.Command{
		Use:     "timing",
		Short:   "compare tree, Fenwick and linear range sums",
		Example: "segtree timing --size 1000000 --dist uniform -o yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTiming(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().IntVarP(&f.size, "size", "n", 100000, "number of elements")
	cmd.Flags().IntVarP(&f.reps, "reps", "r", 5, "repetitions per range")
	cmd.Flags().Int64Var(&f.seed, "seed", 0xDEADBEEF, "seed of the random distributions")
	cmd.Flags().StringVarP(&f.dist, "dist", "d", "sequential", "input distribution: sequential, uniform or gaussian")
	cmd.Flags().StringVarP(&f.output, "output", "o", "table", "output format: table or yaml")
	return cmd
}

func runTiming(w io.Writer, f timingFlags) error {
	dist, err := timing.ParseDistribution(f.dist)
	if err != nil {
		return err
	}

	h, err := timing.New(
		timing.Size(f.size),
		timing.Repetitions(f.reps),
		timing.Seed(f.seed),
		timing.WithDistribution(dist),
	)
	if err != nil {
		return errors.Wrap(err, "timing harness")
	}
	glog.Infof("measuring %d %v elements, %d repetitions", h.Size(), h.Distribution(), f.reps)

	ms := h.Run()
	for _, m := range ms {
		if !m.Agree() {
			glog.Errorf("sums disagree over [%d, %d): linear=%d tree=%d fenwick=%d",
				m.Left, m.Right, m.LinearSum, m.TreeSum, m.FenwickSum)
		}
	}

	switch f.output {
	case "table":
		timing.WriteTable(w, ms)
	case "yaml":
		out, err := yaml.Marshal(ms)
		if err != nil {
			return errors.Wrap(err, "encoding report")
		}
		fmt.Fprint(w, string(out))
	default:
		return errors.Errorf("unknown output format %q", f.output)
	}
	return nil
}
