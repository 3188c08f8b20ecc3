package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.lepak.sg/tally/numbers"
	"go.lepak.sg/tally/seq"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [ints...]",
		Short: "Print the sum and maximum of integers, and the integers doubled",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "sum:", seq.Sum(nums))

			if max, ok := seq.Max(nums); ok {
				fmt.Fprintln(out, "max:", max)
			} else {
				fmt.Fprintln(out, "max: none")
			}

			if even, ok := seq.Find(nums, numbers.IsEven[int]); ok {
				fmt.Fprintln(out, "first even:", even)
			}

			seq.Double(nums)
			fmt.Fprintln(out, "doubled:", nums)

			a.log.Debug("stats done", "n", len(nums))
			return nil
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [ints...]",
		Short: "Describe each integer",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			for _, n := range nums {
				parity := "odd"
				if numbers.IsEven(n) {
					parity = "even"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s, %s\n", n, parity, numbers.Describe(n))
			}

			a.log.Debug("described", "n", len(nums))
			return nil
		},
	}
}
