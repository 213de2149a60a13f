// Command petrisim is a thin driver over the loader/fuzzynet/scalarnet/
// dotwriter packages: it loads a net descriptor, runs it for a fixed
// number of ticks printing each output transition's dispatched value,
// or renders its DOT digraph. Standing in for the original's
// GPIO/timer-threaded main.rs, which is out of scope here.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "petrisim",
		Short: "Run or inspect a fuzzy/scalar Petri net descriptor",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newDotCmd())
	return root
}
