// Command segtree exercises the segment tree: a walkthrough over a small
// ledger of daily transactions, and a timing harness comparing range
// sums against a Fenwick tree and against a linear scan.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	defer glog.Flush()

	if err := newRootCommand().Execute(); err != nil {
		glog.Exitf("segtree: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "segtree",
		Short:         "segment tree range sum tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// glog registers its flags on the standard flag set.
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Keeps glog from complaining about unparsed flags.
		flag.CommandLine.Parse(nil)
	}

	root.AddCommand(registerDemoCommand())
	root.AddCommand(registerTimingCommand())
	root.SetArgs(os.Args[1:])
	return root
}
