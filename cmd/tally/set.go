package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.lepak.sg/tally/set"
)

func newSetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [ints...]",
		Short: "Deduplicate integers and intersect them with another list",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := set.FromSlice(nums)
			a.log.Debug("built set", "in", len(nums), "distinct", s.Len())

			fmt.Fprintln(out, "set:", set.Sorted(s))
			fmt.Fprintln(out, "duplicates:", set.HasDuplicates(nums))

			if a.v.IsSet("set.with") {
				with, err := a.getInts("set.with")
				if err != nil {
					return fmt.Errorf("--with: %w", err)
				}
				fmt.Fprintln(out, "common:", set.Sorted(set.Intersect(nums, with)))
			}
			return nil
		},
	}

	cmd.Flags().IntSlice("with", nil, "comma-separated integers to intersect with")
	a.bindFlags(cmd.Flags(), "set.")

	return cmd
}
