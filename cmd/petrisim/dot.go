package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fuzzpetri/fuzzpetri/dotwriter"
	"github.com/fuzzpetri/fuzzpetri/loader"
)

func newDotCmd() *cobra.Command {
	var netPath string

	cmd := &cobra.Command{
		Use:   "dot --net FILE",
		Short: "Print a net's Graphviz DOT rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(netPath)
			if err != nil {
				return fmt.Errorf("petrisim dot: %w", err)
			}
			dialect, err := detectDialect(data)
			if err != nil {
				return err
			}

			switch dialect {
			case "scalar":
				net, _, err := loader.LoadScalar(data)
				if err != nil {
					return fmt.Errorf("petrisim dot: %w", err)
				}
				fmt.Println(dotwriter.WriteScalar(net))
			default:
				net, _, err := loader.LoadFuzzy(data)
				if err != nil {
					return fmt.Errorf("petrisim dot: %w", err)
				}
				fmt.Println(dotwriter.WriteFuzzy(net))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&netPath, "net", "", "path to the net JSON descriptor")
	cmd.MarkFlagRequired("net")
	return cmd
}
