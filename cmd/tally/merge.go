package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.lepak.sg/tally/counter"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var policies = map[string]counter.Resolver{
	"sum":   counter.Sum,
	"first": counter.KeepFirst,
	"last":  counter.KeepLast,
}

func newMergeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge A B",
		Short: "Merge two counting maps written as key=count,key=count",
		Example: "  tally merge a=1,b=2 b=3,c=4\n" +
			"  tally merge --policy last a=1,b=2 b=3,c=4",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := a.v.GetString("merge.policy")
			resolve, ok := policies[policy]
			if !ok {
				return fmt.Errorf("unknown merge policy %q", policy)
			}

			left, err := parseCounts(args[0])
			if err != nil {
				return fmt.Errorf("first map: %w", err)
			}
			right, err := parseCounts(args[1])
			if err != nil {
				return fmt.Errorf("second map: %w", err)
			}

			merged := counter.MergeFunc(left, right, resolve)
			a.log.Debug("merged", "policy", policy, "keys", len(merged))

			keys := maps.Keys(merged)
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%d\n", k, merged[k])
			}
			return nil
		},
	}

	cmd.Flags().String("policy", "sum", "how to combine counts of shared keys: sum, first or last")
	a.bindFlags(cmd.Flags(), "merge.")

	return cmd
}
