package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/fuzzynet"
	"github.com/fuzzpetri/fuzzpetri/loader"
	"github.com/fuzzpetri/fuzzpetri/scalarnet"
)

func newRunCmd() *cobra.Command {
	var netPath string
	var ticks int
	var rawInputs []string

	cmd := &cobra.Command{
		Use:   "run --net FILE --ticks N [--input place=value ...]",
		Short: "Drive a net for N ticks, printing each output transition's dispatched value",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(netPath)
			if err != nil {
				return fmt.Errorf("petrisim run: %w", err)
			}
			dialect, err := detectDialect(data)
			if err != nil {
				return err
			}

			var bar *progressbar.ProgressBar
			if ticks > 0 {
				bar = progressbar.Default(int64(ticks))
			}

			switch dialect {
			case "scalar":
				return runScalar(data, ticks, rawInputs, bar)
			default:
				return runFuzzy(data, ticks, rawInputs, bar)
			}
		},
	}

	cmd.Flags().StringVar(&netPath, "net", "", "path to the net JSON descriptor")
	cmd.Flags().IntVar(&ticks, "ticks", 1, "number of ticks to run")
	cmd.Flags().StringArrayVar(&rawInputs, "input", nil, "place=value external input, repeatable")
	cmd.MarkFlagRequired("net")
	return cmd
}

// printConsumerFuzzy prints every dispatched value of the output transition
// it subscribes to, prefixed with the transition id.
type printConsumerFuzzy struct{ transition int }

func (p printConsumerFuzzy) Consume(tok fuzzy.Token) {
	if tok.IsPhi() {
		fmt.Printf("t%d -> phi\n", p.transition)
		return
	}
	parts := make([]string, 0, 5)
	for _, v := range fuzzy.Values() {
		if m := tok.Get(v); m != 0 {
			parts = append(parts, fmt.Sprintf("%s:%g", v, m))
		}
	}
	fmt.Printf("t%d -> %s\n", p.transition, strings.Join(parts, ","))
}

type printConsumerScalar struct{ transition int }

func (p printConsumerScalar) Consume(s fuzzy.Scalar) {
	v, ok := s.Value()
	if !ok {
		fmt.Printf("t%d -> phi\n", p.transition)
		return
	}
	fmt.Printf("t%d -> %g\n", p.transition, v)
}

func runFuzzy(data []byte, ticks int, rawInputs []string, bar *progressbar.ProgressBar) error {
	net, events, err := loader.LoadFuzzy(data)
	if err != nil {
		return fmt.Errorf("petrisim run: %w", err)
	}
	for t := 0; t < net.TransitionCount(); t++ {
		if net.IsOutputTransition(t) {
			events.Subscribe(t, printConsumerFuzzy{transition: t})
		}
	}
	inputs, err := parseFuzzyInputs(rawInputs)
	if err != nil {
		return fmt.Errorf("petrisim run: %w", err)
	}

	exec := fuzzynet.NewExecutor(net, events)
	for i := 0; i < ticks; i++ {
		exec.RunTick(inputs)
		if bar != nil {
			bar.Add(1)
		}
	}
	return nil
}

func runScalar(data []byte, ticks int, rawInputs []string, bar *progressbar.ProgressBar) error {
	net, events, err := loader.LoadScalar(data)
	if err != nil {
		return fmt.Errorf("petrisim run: %w", err)
	}
	for t := 0; t < net.TransitionCount(); t++ {
		if net.IsOutputTransition(t) {
			events.Subscribe(t, printConsumerScalar{transition: t})
		}
	}
	inputs, err := parseScalarInputs(rawInputs)
	if err != nil {
		return fmt.Errorf("petrisim run: %w", err)
	}

	exec := scalarnet.NewExecutor(net, events)
	for i := 0; i < ticks; i++ {
		exec.RunTick(inputs)
		if bar != nil {
			bar.Add(1)
		}
	}
	return nil
}

// parseScalarInputs turns "place=value" flags into a per-tick input
// map. Scalar-dialect places carry no raw float restriction beyond
// what fuzzy.NewScalar enforces (non-NaN).
func parseScalarInputs(raw []string) (map[int]fuzzy.Scalar, error) {
	out := make(map[int]fuzzy.Scalar, len(raw))
	for _, r := range raw {
		place, rest, err := splitInput(r)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", r, err)
		}
		s, err := fuzzy.NewScalar(v)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", r, err)
		}
		out[place] = s
	}
	return out, nil
}

// parseFuzzyInputs turns "place=NAME:mass,NAME:mass,..." flags into a
// per-tick input map, one fuzzy.Token per named place.
func parseFuzzyInputs(raw []string) (map[int]fuzzy.Token, error) {
	out := make(map[int]fuzzy.Token, len(raw))
	for _, r := range raw {
		place, rest, err := splitInput(r)
		if err != nil {
			return nil, err
		}
		tok := fuzzy.Phi()
		for _, component := range strings.Split(rest, ",") {
			name, massStr, ok := strings.Cut(component, ":")
			if !ok {
				return nil, fmt.Errorf("input %q: expected NAME:mass component %q", r, component)
			}
			mass, err := strconv.ParseFloat(massStr, 64)
			if err != nil {
				return nil, fmt.Errorf("input %q: %w", r, err)
			}
			value, err := valueForName(name)
			if err != nil {
				return nil, fmt.Errorf("input %q: %w", r, err)
			}
			tok.Add(value, mass)
		}
		out[place] = tok
	}
	return out, nil
}

func splitInput(r string) (int, string, error) {
	placeStr, rest, ok := strings.Cut(r, "=")
	if !ok {
		return 0, "", fmt.Errorf("input %q: expected place=value", r)
	}
	place, err := strconv.Atoi(placeStr)
	if err != nil {
		return 0, "", fmt.Errorf("input %q: %w", r, err)
	}
	return place, rest, nil
}

func valueForName(name string) (fuzzy.Value, error) {
	for _, v := range fuzzy.Values() {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown fuzzy value %q", name)
}
