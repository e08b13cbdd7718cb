package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/liznear/almanac-from-scratch/pipeline"
	"github.com/spf13/cobra"
)

func traceCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE",
		Short: "Show how the seed ranges change after every table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.close()

			ranges, err := s.almanac.SeedRanges()
			if err != nil {
				return fmt.Errorf("trace: %w", err)
			}
			p := s.almanac.Pipeline(pipeline.WithLogger(s.logger))
			stages := append([]pipeline.Stage{pipeline.Summarize("seeds", ranges)}, p.Trace(ranges)...)
			return writeStages(cmd.OutOrStdout(), stages)
		},
	}
}

func writeStages(w io.Writer, stages []pipeline.Stage) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "STAGE\tINTERVALS\tVALUES\tMIN\tSPAN")
	for _, st := range stages {
		lowest, span := "-", "-"
		if st.HasMin {
			lowest = strconv.FormatUint(st.Min, 10)
		}
		if st.HasSpan {
			span = fmt.Sprintf("[%d,%d)", st.Span.Start, st.Span.End)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			st.Table, st.Intervals, humanizeCount(st.Coverage), lowest, span)
	}
	return tw.Flush()
}

// humanizeCount formats n with thousands separators.
func humanizeCount(n *big.Int) string {
	return humanize.BigComma(n)
}
