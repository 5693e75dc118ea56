package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/qubit/internal/experiment"
)

func newBellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bell",
		Short: "Measure entangled pairs along random directions (Bell's inequality)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := experiment.Bell(cmd.Context(), a.experimentConfig())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"ALICE", "BOB", "TRIALS", "AGREE"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)
			for alice, an := range experiment.DirectionNames {
				for bob, bn := range experiment.DirectionNames {
					table.Append([]string{
						an,
						bn,
						strconv.FormatUint(res.Settings[alice][bob], 10),
						percent(res.SettingRate(alice, bob)),
					})
				}
			}
			table.SetFooter([]string{"", "TOTAL", strconv.FormatUint(res.Trials, 10), percent(res.AgreeRate())})
			table.Render()

			verdict := "within"
			if res.ViolatesLocalBound() {
				verdict = "below"
			}
			fmt.Fprintf(out, "Agreement %s is %s the local hidden-variable bound of %s\n",
				percent(res.AgreeRate()), verdict, percent(experiment.LocalBound))
			return nil
		},
	}
}
