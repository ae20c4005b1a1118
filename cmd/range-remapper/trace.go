package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"range-remapper/internal/report"
)

func traceCmd(a *app) *cobra.Command {
	var (
		part        int
		inputFormat string
		format      string
		reorder     bool
	)

	cmd := &cobra.Command{
		Use:   "trace <file>",
		Short: "Show the pieces every stage produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if part != 1 && part != 2 {
				return fmt.Errorf("--part must be 1 or 2, got %d", part)
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

			seeds, seeding, err := seedsFor(doc, part)
			if err != nil {
				return err
			}

			tr, err := a.pipeline(tables).Trace(seeds)
			if err != nil {
				return err
			}

			return w.Trace(cmd.OutOrStdout(), report.FromTrace(args[0], seeding, tr))
		},
	}

	cmd.Flags().IntVar(&part, "part", 2, "1 = seeds as values, 2 = seeds as ranges")
	cmd.Flags().StringVar(&inputFormat, "input-format", inputAuto, "input format (auto, almanac, yaml)")
	cmd.Flags().BoolVar(&reorder, "reorder", false, "sort stages into category chain order before running")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, json, yaml, msgpack)")

	return cmd
}
