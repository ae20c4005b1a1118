package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"range-remapper/internal/report"
)

func solveCmd(a *app) *cobra.Command {
	var (
		part        int
		inputFormat string
		format      string
		reorder     bool
	)

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Print the lowest location reached by the seeds",
		Long:  `Runs the document's seeds through every stage and prints the lowest resulting value, reading seeds as single values (part 1), as (start, length) pairs (part 2), or both.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := partsFor(part)
			if err != nil {
				return err
			}

			w, err := a.writer(cmd, format)
			if err != nil {
				return err
			}

			doc, err := loadDocument(cmd.InOrStdin(), args[0], inputFormat)
			if err != nil {
				return err
			}

			if reorder {
				if doc, err = doc.Ordered(); err != nil {
					return err
				}
			}

			tables, err := doc.Tables()
			if err != nil {
				return err
			}

			p := a.pipeline(tables)
			res := &report.Result{Source: args[0], Stages: p.StageNames()}

			for _, n := range parts {
				seeds, seeding, err := seedsFor(doc, n)
				if err != nil {
					return fmt.Errorf("part %d: %w", n, err)
				}

				final, err := p.Transform(seeds)
				if err != nil {
					return fmt.Errorf("part %d: %w", n, err)
				}

				pr := report.NewPartResult(n, seeding, final)
				a.logger.Info("part solved",
					zap.Int("part", n),
					zap.Uint64("minimum", pr.Minimum),
					zap.Int("intervals", pr.Intervals),
				)

				res.Parts = append(res.Parts, pr)
			}

			return w.Result(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVar(&part, "part", 0, "1 = seeds as values, 2 = seeds as ranges, 0 = both")
	cmd.Flags().StringVar(&inputFormat, "input-format", inputAuto, "input format (auto, almanac, yaml)")
	cmd.Flags().BoolVar(&reorder, "reorder", false, "sort stages into category chain order before running")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, json, yaml, msgpack)")

	return cmd
}
