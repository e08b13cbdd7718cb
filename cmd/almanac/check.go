package main

import (
	"fmt"

	"github.com/liznear/almanac-from-scratch/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func checkCmd(flags *globalFlags) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Report tables whose rules overlap",
		Long: `Report tables whose rules overlap.

When two rules of a table overlap, the first listed rule wins for every value
they share. Results are still computed, but they depend on the rule order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "seeds: %d\n", len(s.almanac.Seeds))
			if len(s.almanac.Seeds)%2 != 0 {
				_, _ = fmt.Fprintln(out, "seeds: odd count, seed ranges unavailable")
			}

			found := 0
			for _, t := range s.almanac.Tables {
				rules := t.Rules()
				sources := make([]model.Interval, 0, len(rules))
				for _, r := range rules {
					sources = append(sources, r.Source())
				}
				_, _ = fmt.Fprintf(out, "%s: %d rules covering %s values",
					t.Name(), len(rules), humanizeCount(model.Coverage(sources)))
				if span, ok := model.Fusion(sources); ok {
					_, _ = fmt.Fprintf(out, " in %s", span)
				}
				_, _ = fmt.Fprintln(out)

				for _, pair := range t.Overlaps() {
					found++
					first, second := rules[pair[0]], rules[pair[1]]
					s.logger.Warn("Overlapping rules",
						zap.String("table", t.Name()),
						zap.Stringer("first", first.Source()),
						zap.Stringer("second", second.Source()),
						zap.Stringer("first_destination", first.Destination()),
						zap.Stringer("second_destination", second.Destination()),
					)
					_, _ = fmt.Fprintf(out, "%s: rule %d (%s) overlaps rule %d (%s), sending values to %s and %s\n",
						t.Name(), pair[0]+1, first, pair[1]+1, second, first.Destination(), second.Destination())
				}
			}
			if found > 0 && strict {
				return fmt.Errorf("check: %d overlapping rule pairs", found)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any rules overlap")
	return cmd
}
