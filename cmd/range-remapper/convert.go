package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"range-remapper/internal/almanac"
	"range-remapper/internal/mapping"
)

func convertCmd(a *app) *cobra.Command {
	var (
		inputFormat string
		output      string
		to          string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Rewrite a stage document in another format",
		Long:  `Converts almanac text to a YAML stage document, or back with --to almanac. Writes to stdout unless -o is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveOutputFormat(output, to)
			if err != nil {
				return err
			}

			doc, err := loadDocument(cmd.InOrStdin(), args[0], inputFormat)
			if err != nil {
				return err
			}

			var buf bytes.Buffer

			if err := encodeDocument(&buf, doc, target); err != nil {
				return err
			}

			if output == "" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}

			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			a.logger.Sugar().Infof("wrote %s (%d stages)", output, len(doc.Stages))

			return nil
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", inputAuto, "input format (auto, almanac, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&to, "to", "", "target format (yaml, almanac); defaults from the output extension, else yaml")

	return cmd
}

// resolveOutputFormat picks the target format from --to or the output file name.
func resolveOutputFormat(output, to string) (string, error) {
	if to != "" && to != inputAuto {
		return resolveInputFormat("", to)
	}

	switch strings.ToLower(filepath.Ext(output)) {
	case ".txt", ".almanac":
		return inputAlmanac, nil
	default:
		return inputYAML, nil
	}
}

func encodeDocument(w io.Writer, doc *mapping.File, format string) error {
	if format == inputAlmanac {
		return almanac.Write(w, doc)
	}

	data, err := mapping.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
