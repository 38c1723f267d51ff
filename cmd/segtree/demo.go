package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	segtree "github.com/caio/go-segtree"
)

var dailyTransactions = []float64{100.0, 250.0, 221.5, 455.0, 110.0, 189, 100.0}

func registerDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "walk through the tree operations on a sample ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), dailyTransactions)
		},
	}
}

func printElements(w io.Writer, t *segtree.Tree[float64]) {
	var b strings.Builder
	for c := t.Begin(); !c.Equal(t.End()); c = c.Next() {
		fmt.Fprintf(&b, "%v\t", c.Value())
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), "\t"))
}

func runDemo(w io.Writer, ledger []float64) error {
	transactions := segtree.New(ledger...)
	glog.V(1).Infof("built %v", transactions)

	fmt.Fprintf(w, "Size of the tree: %d\n", transactions.Size())
	fmt.Fprintf(w, "Tree is empty: %t\n", transactions.Empty())
	fmt.Fprintf(w, "Sum of all the transactions: %v\n", transactions.Sum(0, transactions.Size()))

	fmt.Fprintln(w, "\nElements of the tree")
	printElements(w, transactions)

	if transactions.Size() < 3 {
		return nil
	}

	if err := transactions.Update(0, 150.5); err != nil {
		return err
	}
	if err := transactions.Update(1, 200); err != nil {
		return err
	}
	fmt.Fprintln(w, "Values after updating")
	printElements(w, transactions)

	copied := transactions.Clone()
	fmt.Fprintf(w, "\nSize of the copied tree: %d\n", copied.Size())

	if err := copied.Update(2, 240.5); err != nil {
		return err
	}
	if err := transactions.Update(2, 100); err != nil {
		return err
	}
	fmt.Fprintln(w, "After updating the copy and the original differently")
	fmt.Fprint(w, "Original: ")
	printElements(w, transactions)
	fmt.Fprint(w, "Copy:     ")
	printElements(w, copied)

	fmt.Fprintf(w, "\nTransactions worth 100: %d\n", transactions.Count(100))
	fmt.Fprintf(w, "Sum of the transactions at indices 2 and 3: %v\n", transactions.Sum(2, 4))

	if c := transactions.LowerBound(240); c.Valid() {
		fmt.Fprintf(w, "Lower bound of 240: %v\n", c.Value())
	}
	if c := transactions.UpperBound(240); c.Valid() {
		fmt.Fprintf(w, "Upper bound of 240: %v\n", c.Value())
	}

	fmt.Fprintln(w, "\nSum of all ranges")
	n := transactions.Size()
	for i := 0; i < n; i++ {
		sums := make([]string, 0, n-i)
		for j := i + 1; j <= n; j++ {
			sums = append(sums, fmt.Sprint(transactions.Sum(i, j)))
		}
		fmt.Fprintf(w, "Starting from index %d:\t%s\n", i, strings.Join(sums, "\t"))
	}
	fmt.Fprintf(w, "Sum of the entire ledger: %v\n", transactions.Total())
	return nil
}
