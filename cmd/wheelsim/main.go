// Command wheelsim prints a preset's slice layout and checks, by simulation,
// that spins land on each option in proportion to its weight.
package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	presetsPath string
	presetID    string
}

func newRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:          "wheelsim",
		Short:        "Inspect and simulate prize wheel presets",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&o.presetsPath, "presets", "presets/wheels.yaml", "presets file (built-in preset when missing)")
	root.PersistentFlags().StringVar(&o.presetID, "preset", "", "preset id (catalog default when empty)")

	root.AddCommand(newSlicesCmd(&o), newSimulateCmd(&o))
	return root
}

func newSlicesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "slices",
		Short: "Print the angular slice of every option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := o.load()
			if err != nil {
				return err
			}
			return printSlices(cmd.OutOrStdout(), p.Options)
		},
	}
}

func newSimulateCmd(o *options) *cobra.Command {
	var (
		spins int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Spin many times and compare observed against expected shares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if spins <= 0 {
				return fmt.Errorf("--spins must be positive, got %d", spins)
			}
			p, err := o.load()
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			counts, err := simulate(p.Options, rng, spins)
			if err != nil {
				return err
			}
			return printShares(cmd.OutOrStdout(), p.Options, counts, spins)
		},
	}
	cmd.Flags().IntVar(&spins, "spins", 100000, "number of spins")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func (o *options) load() (wheel.Preset, error) {
	catalog, err := wheel.LoadCatalog(o.presetsPath)
	if os.IsNotExist(err) {
		catalog, err = wheel.BuiltinCatalog(), nil
	}
	if err != nil {
		return wheel.Preset{}, err
	}
	id := o.presetID
	if id == "" {
		id = catalog.Default
	}
	return catalog.Lookup(id)
}

// simulate runs n spins from rest, each resolved against opts.
func simulate(opts []wheel.Option, rng wheel.RNG, n int) ([]int, error) {
	counts := make([]int, len(opts))
	st := wheel.NewState(opts)
	for i := 0; i < n; i++ {
		idx, err := wheel.Resolve(st.Options, st.Rotation+wheel.SpinTarget(rng))
		if err != nil {
			return nil, err
		}
		counts[idx]++
	}
	return counts, nil
}

func printSlices(w io.Writer, opts []wheel.Option) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tLABEL\tWEIGHT\tSTART\tEND\tWIDTH")
	for _, s := range wheel.ComputeSlices(opts) {
		fmt.Fprintf(tw, "%d\t%s\t%g\t%.2f\t%.2f\t%.2f\n", s.Index, s.Option.Label, s.Option.Weight, s.Start, s.End, s.Width())
	}
	return tw.Flush()
}

func printShares(w io.Writer, opts []wheel.Option, counts []int, n int) error {
	total := wheel.TotalWeight(opts)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tLABEL\tEXPECTED\tOBSERVED\tDIFF")
	for i, o := range opts {
		want := o.Weight / total * 100
		got := float64(counts[i]) / float64(n) * 100
		fmt.Fprintf(tw, "%d\t%s\t%.2f%%\t%.2f%%\t%+.2f\n", i, o.Label, want, got, got-want)
	}
	return tw.Flush()
}
