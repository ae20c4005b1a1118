package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"range-remapper/internal/almanac"
	"range-remapper/internal/interval"
	"range-remapper/internal/mapping"
	"range-remapper/internal/report"
)

// Input formats.
const (
	inputAuto    = "auto"
	inputAlmanac = "almanac"
	inputYAML    = "yaml"
)

// stdinPath reads the document from standard input.
const stdinPath = "-"

// resolveInputFormat picks the document format from the flag or the file extension.
func resolveInputFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case "", inputAuto:
	case inputAlmanac, "text", "txt":
		return inputAlmanac, nil
	case inputYAML, "yml":
		return inputYAML, nil
	default:
		return "", fmt.Errorf("unknown input format %q (want auto, almanac or yaml)", format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return inputYAML, nil
	default:
		return inputAlmanac, nil
	}
}

// loadDocument reads a stage document from path, or from stdin when path is "-".
func loadDocument(stdin io.Reader, path, format string) (*mapping.File, error) {
	kind, err := resolveInputFormat(path, format)
	if err != nil {
		return nil, err
	}

	var r io.Reader = stdin

	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		r = f
	}

	if kind == inputAlmanac {
		return almanac.Parse(r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return mapping.Parse(data)
}

// seedsFor returns the initial interval set for a part: 1 reads seeds as
// values, 2 as (start, length) pairs.
func seedsFor(doc *mapping.File, part int) (interval.Set, report.Seeding, error) {
	if part == 1 {
		s, err := doc.SeedValues()
		return s, report.SeedingValues, err
	}

	s, err := doc.SeedRanges()

	return s, report.SeedingRanges, err
}

// partsFor expands the --part flag.
func partsFor(part int) ([]int, error) {
	switch part {
	case 0:
		return []int{1, 2}, nil
	case 1, 2:
		return []int{part}, nil
	default:
		return nil, fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
	}
}
