package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.lepak.sg/tally/counter"
	"golang.org/x/exp/slices"
)

func newWordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [text...]",
		Short: "Count whitespace-separated words",
		Long: "Count whitespace-separated words in the arguments, which are joined\n" +
			"with spaces. Words are printed in order of first appearance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			ordered := counter.CountWordsOrdered(text)
			ctr := ordered.Map()

			a.log.Debug("counted words",
				"distinct", ordered.Len(),
				"total", counter.Total(ctr))

			out := cmd.OutOrStdout()

			if a.v.GetBool("words.by-count") {
				for _, group := range counter.ByCount(ctr) {
					slices.SortFunc(group, func(x, y counter.Entry[string]) int {
						return strings.Compare(x.Element, y.Element)
					})

					words := make([]string, len(group))
					for i, e := range group {
						words[i] = e.Element
					}
					fmt.Fprintf(out, "%d: %s\n", group[0].Count, strings.Join(words, " "))
				}
				return nil
			}

			entries := ordered.Entries()
			if top := a.v.GetInt("words.top"); top > 0 {
				if top > len(ctr) {
					top = len(ctr)
				}
				entries = counter.TopK(ctr, top)
			}

			for _, e := range entries {
				fmt.Fprintf(out, "%d %s\n", e.Count, e.Element)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("top", 0, "only print the N most frequent words")
	flags.Bool("by-count", false, "group words by how often they occur")
	a.bindFlags(flags, "words.")

	return cmd
}
