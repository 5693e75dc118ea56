package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/qubit/internal/experiment"
)

func newFiltersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Send random qubits through crossed and diagonal polarisers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := experiment.PolarizedFilters(cmd.Context(), a.experimentConfig())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"CHAIN", "SENT", "PASSED", "RATE", "EXPECTED"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			for _, r := range results {
				table.Append([]string{
					r.Chain,
					strconv.FormatUint(r.Sent, 10),
					strconv.FormatUint(r.Passed[len(r.Passed)-1], 10),
					percent(r.Rate()),
					percent(r.Expected),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		from, to float64
		steps    int
		plotPath string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Rotate the middle polariser of a 0°/90° pair and measure the pass rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, err := experiment.Sweep(cmd.Context(), a.experimentConfig(), from, to, steps)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ANGLE", "RATE", "EXPECTED"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)
			for _, p := range points {
				table.Append([]string{fmt.Sprintf("%g°", p.Degrees), percent(p.Rate), percent(p.Expected)})
			}
			table.Render()

			if plotPath != "" {
				if err := experiment.PlotSweep(points, plotPath); err != nil {
					return err
				}
				a.log.Info().Str("path", plotPath).Msg("plot written")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&from, "from", 0, "First middle-filter angle in degrees")
	cmd.Flags().Float64Var(&to, "to", 90, "Last middle-filter angle in degrees")
	cmd.Flags().IntVar(&steps, "steps", 18, "Number of intervals between --from and --to")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Write a plot of the sweep to this file (.png, .svg, .pdf)")
	return cmd
}

func percent(v float64) string {
	return fmt.Sprintf("%.3f%%", v*100)
}
