// Command stencilinfo prints the central-difference stencils and their
// evaluation costs.
//
// Usage:
//
//	stencilinfo [flags] [order-name ...]
//
// Without arguments it prints info for all accuracy orders.
//
// Examples:
//
//	stencilinfo second
//	stencilinfo -n 50 fourth eighth
//	stencilinfo -all
//	stencilinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	finitediff "github.com/cwbudde/algo-finitediff"
)

type orderEntry struct {
	name  string
	order finitediff.Accuracy
}

var registry = []orderEntry{
	{"second", finitediff.Second},
	{"fourth", finitediff.Fourth},
	{"sixth", finitediff.Sixth},
	{"eighth", finitediff.Eighth},
}

func main() {
	dim := flag.Int("n", 10, "input dimension for the evaluation-cost columns")
	all := flag.Bool("all", false, "show all accuracy orders")
	list := flag.Bool("list", false, "list available order names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stencilinfo [flags] [order-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints central-difference stencil weights and evaluation costs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all orders.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stencilinfo second eighth\n")
		fmt.Fprintf(os.Stderr, "  stencilinfo -n 100 -all\n")
		fmt.Fprintf(os.Stderr, "  stencilinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching accuracy orders\n")
		os.Exit(1)
	}

	if *dim < 1 {
		fmt.Fprintf(os.Stderr, "error: -n must be at least 1\n")
		os.Exit(1)
	}

	printStencils(entries, *dim)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []orderEntry {
	byName := make(map[string]orderEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []orderEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown order %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printStencils(entries []orderEntry, dim int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Order\tPoints\tOffsets\tWeights\tDivisor\tGrad evals\tJac evals\tHess evals\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----\t------\t-------\t-------\t-------\t----------\t---------\t----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		st, err := finitediff.Coefficients(e.order)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}

		points := len(st.Outer)
		gradEvals := dim * points
		jacEvals := dim*points + 1
		hessEvals := dim * (dim + 1) / 2 * points * points

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%g\t%d\t%d\t%d\n",
			e.name,
			points,
			joinFloats(st.Inner),
			joinFloats(st.Outer),
			st.Denominator,
			gradEvals,
			jacEvals,
			hessEvals,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
