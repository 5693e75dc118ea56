package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/qubit/internal/experiment"
	"github.com/born-ml/qubit/internal/quantum"
	"github.com/born-ml/qubit/internal/random"
	"github.com/born-ml/qubit/internal/serialization"
)

// preparers build the named states understood by "prepare".
var preparers = map[string]func(qubits int, src random.Source) (*quantum.System, error){
	"bell": func(int, random.Source) (*quantum.System, error) {
		return quantum.NewSystem(1, 0, 0, 1)
	},
	"ghz": func(qubits int, _ random.Source) (*quantum.System, error) {
		if qubits < 1 || qubits > 30 {
			return nil, fmt.Errorf("%w: cannot build a system of %d qubits", quantum.ErrInvalidQubitIndex, qubits)
		}
		amps := make([]float64, 1<<qubits)
		amps[0], amps[len(amps)-1] = 1, 1
		return quantum.NewSystem(amps...)
	},
	"zero": func(qubits int, _ random.Source) (*quantum.System, error) {
		return product(qubits, quantum.Zero())
	},
	"plus": func(qubits int, _ random.Source) (*quantum.System, error) {
		return product(qubits, quantum.Plus())
	},
	"random": func(qubits int, src random.Source) (*quantum.System, error) {
		return quantum.RandomSystem(qubits, src)
	},
}

func product(qubits int, q quantum.Qubit) (*quantum.System, error) {
	if qubits < 1 || qubits > 30 {
		return nil, fmt.Errorf("%w: cannot build a system of %d qubits", quantum.ErrInvalidQubitIndex, qubits)
	}
	s := q.System()
	for i := 1; i < qubits; i++ {
		var err error
		if s, err = s.AddSystem(q.System()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newPrepareCmd(a *app) *cobra.Command {
	var (
		qubits int
		out    string
	)

	cmd := &cobra.Command{
		Use:   "prepare STATE",
		Short: "Prepare a state (bell, ghz, zero, plus, random) and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prepare, ok := preparers[args[0]]
			if !ok {
				return fmt.Errorf("unknown state %q", args[0])
			}
			s, err := prepare(qubits, random.New(random.Config{Seed: a.cfg.Seed}))
			if err != nil {
				return err
			}

			if out != "" {
				meta := map[string]string{"prepared": args[0]}
				if err := serialization.SaveSystem(out, s, meta); err != nil {
					return err
				}
				a.log.Info().Str("path", out).Int("qubits", s.Qubits()).Msg("state saved")
			}
			return printSystem(cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().IntVar(&qubits, "qubits", 2, "Number of qubits (ignored for bell)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the state to this .qbit file")
	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show a saved state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, meta, err := serialization.LoadSystem(args[0])
			if err != nil {
				return err
			}
			a.log.Debug().Str("path", args[0]).Interface("metadata", meta).Msg("state loaded")

			out := cmd.OutOrStdout()
			if prepared, ok := meta["prepared"]; ok {
				fmt.Fprintf(out, "Prepared: %s\n", prepared)
			}
			return printSystem(out, s)
		},
	}
}

func newMeasureCmd(a *app) *cobra.Command {
	var (
		qubit int
		angle float64
		out   string
	)

	cmd := &cobra.Command{
		Use:   "measure FILE",
		Short: "Measure one qubit of a saved state along a polariser angle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, meta, err := serialization.LoadSystem(args[0])
			if err != nil {
				return err
			}

			stage := experiment.StageAt(angle)
			probs, err := s.Probabilities(qubit, stage.Basis)
			if err != nil {
				return err
			}
			rest, outcome, err := s.Measure(qubit, stage.Basis, random.New(random.Config{Seed: a.cfg.Seed}))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Qubit %d at %s: P(off)=%s P(on)=%s, measured %s\n",
				qubit, stage.Name, percent(probs.At(0)), percent(probs.At(1)), onOff(outcome.On))

			if out != "" {
				next := map[string]string{
					"measured": fmt.Sprintf("qubit %d at %s: %s", qubit, stage.Name, onOff(outcome.On)),
				}
				if prepared, ok := meta["prepared"]; ok {
					next["prepared"] = prepared
				}
				if err := serialization.SaveSystem(out, rest, next); err != nil {
					return err
				}
				a.log.Info().Str("path", out).Int("qubits", rest.Qubits()).Msg("remaining state saved")
			}
			return printSystem(w, rest)
		},
	}

	cmd.Flags().IntVarP(&qubit, "qubit", "q", 0, "Index of the qubit to measure")
	cmd.Flags().Float64Var(&angle, "angle", 0, "Polariser angle in degrees")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the remaining state to this .qbit file")
	return cmd
}

// printSystem renders the amplitudes of s, one basis state per row.
func printSystem(w io.Writer, s *quantum.System) error {
	fmt.Fprintf(w, "Qubits: %d, entangled: %t\n", s.Qubits(), s.IsEntangled())

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"STATE", "AMPLITUDE", "PROBABILITY"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, amp := range s.Amplitudes() {
		table.Append([]string{
			ketLabel(i, s.Qubits()),
			strconv.FormatFloat(amp, 'f', 6, 64),
			percent(amp * amp),
		})
	}
	table.Render()
	return nil
}

func ketLabel(i, qubits int) string {
	if qubits == 0 {
		return "|⟩"
	}
	return fmt.Sprintf("|%0*b⟩", qubits, i)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
