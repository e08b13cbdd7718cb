package main

import (
	"errors"
	"fmt"

	"github.com/liznear/almanac-from-scratch/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func solveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the lowest location for the seeds, then for the seed ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, args[0])
			if err != nil {
				return err
			}
			defer s.close()

			p := s.almanac.Pipeline(pipeline.WithLogger(s.logger), pipeline.WithWorkers(s.cfg.Workers))

			lowest, ok := p.Solve(s.almanac.Seeds)
			if !ok {
				return errors.New("solve: almanac has no seeds")
			}
			ranges, err := s.almanac.SeedRanges()
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			lowestInRanges, ok, err := p.SolveRangesConcurrent(cmd.Context(), ranges)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			if !ok {
				return errors.New("solve: seed ranges hold no seed")
			}
			s.logger.Debug("Solved",
				zap.Uint64("seeds", lowest),
				zap.Uint64("ranges", lowestInRanges),
				zap.Int("workers", s.cfg.Workers),
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n%d\n", lowest, lowestInRanges)
			return err
		},
	}
}
