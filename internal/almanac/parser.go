package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"range-remapper/internal/mapping"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("almanac syntax error")

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

// ParseString parses an almanac held in memory.
func ParseString(s string) (*mapping.File, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads an almanac into a stage document. Rules are checked for
// syntax only; use mapping.Validate or File.Tables for semantic checks.
func Parse(r io.Reader) (*mapping.File, error) {
	p := &parser{file: &mapping.File{Version: "1"}, current: -1}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		p.line++
		if err := p.feed(strings.TrimSpace(scanner.Text())); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac: %w", err)
	}

	if !p.seenSeeds {
		return nil, fmt.Errorf("%w: missing %q line", ErrSyntax, seedsPrefix)
	}

	return p.file, nil
}

type parser struct {
	file      *mapping.File
	line      int
	seenSeeds bool
	// current indexes the stage being filled, -1 between blocks.
	current int
}

func (p *parser) feed(text string) error {
	switch {
	case text == "":
		p.current = -1
		return nil

	case strings.HasPrefix(text, seedsPrefix):
		return p.seeds(strings.TrimPrefix(text, seedsPrefix))

	case strings.HasSuffix(text, mapSuffix):
		return p.header(strings.TrimSuffix(text, mapSuffix))

	case p.current >= 0:
		return p.rule(text)

	default:
		return p.errorf("unexpected line %q", text)
	}
}

func (p *parser) seeds(rest string) error {
	if p.seenSeeds {
		return p.errorf("duplicate %q line", seedsPrefix)
	}

	if len(p.file.Stages) > 0 {
		return p.errorf("%q must come before the first map", seedsPrefix)
	}

	values, err := p.numbers(rest)
	if err != nil {
		return err
	}

	p.seenSeeds = true
	p.file.Seeds = mapping.Numbers(values...)

	return nil
}

func (p *parser) header(name string) error {
	if !p.seenSeeds {
		return p.errorf("map %q before %q line", name, seedsPrefix)
	}

	from, to, ok := strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" || strings.ContainsAny(name, " \t") {
		return p.errorf("map header %q is not of the form <from>-to-<to>", name)
	}

	p.file.Stages = append(p.file.Stages, mapping.StageDef{From: from, To: to})
	p.current = len(p.file.Stages) - 1

	return nil
}

func (p *parser) rule(text string) error {
	values, err := p.numbers(text)
	if err != nil {
		return err
	}

	if len(values) != 3 {
		return p.errorf("rule needs 3 numbers (destination source length), got %d", len(values))
	}

	stage := &p.file.Stages[p.current]
	stage.Rules = append(stage.Rules, mapping.RuleDefFrom(mapping.Rule{
		Destination: values[0],
		Source:      values[1],
		Length:      values[2],
	}))

	return nil
}

func (p *parser) numbers(text string) ([]uint64, error) {
	fields := strings.Fields(text)

	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q: %v", f, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, p.line, fmt.Sprintf(format, args...))
}
