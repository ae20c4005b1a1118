package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"range-remapper/internal/mapping"
)

func checkCmd(a *app) *cobra.Command {
	var (
		inputFormat string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a stage document",
		Long:  `Reports every problem in the document's seeds and stages without running the pipeline. Exits non-zero when any error is found.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.writer(cmd, format)
			if err != nil {
				return err
			}

			doc, err := loadDocument(cmd.InOrStdin(), args[0], inputFormat)
			if err != nil {
				return err
			}

			diags := mapping.Validate(doc)
			a.logger.Debug("document checked",
				zap.String("source", args[0]),
				zap.Int("errors", len(diags.Errors)),
				zap.Int("warnings", len(diags.Warnings)),
			)

			if err := w.Diagnostics(cmd.OutOrStdout(), diags); err != nil {
				return err
			}

			if diags.HasErrors() {
				return fmt.Errorf("%s: %d validation error(s)", args[0], len(diags.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", inputAuto, "input format (auto, almanac, yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, json, yaml, msgpack)")

	return cmd
}
