package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"range-remapper/internal/diagnostic"
)

// Writer renders reports in one format.
type Writer struct {
	Format Format
	// Color enables ANSI colours in text output.
	Color bool
}

// DiagnosticReport is the document form of a diagnostic.
type DiagnosticReport struct {
	Severity string `json:"severity"           yaml:"severity"           msgpack:"severity"`
	Code     string `json:"code"               yaml:"code"               msgpack:"code"`
	Message  string `json:"message"            yaml:"message"            msgpack:"message"`
	Stage    string `json:"stage,omitempty"    yaml:"stage,omitempty"    msgpack:"stage,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty" msgpack:"location,omitempty"`
}

// Result writes a solve result.
func (w Writer) Result(out io.Writer, r *Result) error {
	if w.Format != FormatText {
		return encode(out, w.Format, r)
	}

	p := newPalette(w.Color)

	fmt.Fprintf(out, "%s %s (%d stages)\n", p.title.Sprint("source:"), r.Source, len(r.Stages))

	for _, part := range r.Parts {
		fmt.Fprintf(out, "%s %s  %s %d intervals covering %d values\n",
			p.title.Sprintf("part %d (%s):", part.Part, part.Seeding),
			p.value.Sprint(part.Minimum),
			p.dim.Sprint("from"),
			part.Intervals, part.Values)
	}

	return nil
}

// Trace writes a stage trace.
func (w Writer) Trace(out io.Writer, t *TraceReport) error {
	if w.Format != FormatText {
		return encode(out, w.Format, t)
	}

	p := newPalette(w.Color)

	fmt.Fprintf(out, "%s %s (seeds as %s)\n", p.title.Sprint("source:"), t.Source, t.Seeding)
	fmt.Fprint(out, p.title.Sprint("initial:"))

	for _, iv := range t.Initial {
		fmt.Fprintf(out, " %s", iv)
	}

	fmt.Fprintln(out)

	for _, st := range t.Stages {
		fmt.Fprintf(out, "%s\n", p.title.Sprint(st.Name))

		for _, pc := range st.Pieces {
			if pc.Rule == "" {
				fmt.Fprintf(out, "  %-44s %s\n", pc.Source.String(), p.passthrough.Sprint("passthrough"))
				continue
			}

			fmt.Fprintf(out, "  %-44s %s %s %s\n",
				pc.Source.String(), p.mapped.Sprint("->"), pc.Result, p.dim.Sprintf("(rule %s)", pc.Rule))
		}
	}

	fmt.Fprintf(out, "%s %s\n", p.title.Sprint("minimum:"), p.value.Sprint(t.Minimum))

	return nil
}

// Diagnostics writes validation results, errors first.
func (w Writer) Diagnostics(out io.Writer, d *diagnostic.Diagnostics) error {
	all := d.All()

	if w.Format != FormatText {
		docs := make([]DiagnosticReport, len(all))
		for i, dg := range all {
			docs[i] = DiagnosticReport{
				Severity: dg.Severity.String(),
				Code:     dg.Code,
				Message:  dg.Message,
				Stage:    dg.Stage,
				Location: dg.Location,
			}
		}

		return encode(out, w.Format, docs)
	}

	p := newPalette(w.Color)

	for _, dg := range all {
		fmt.Fprintf(out, "%s %s\n", p.severity(dg.Severity).Sprintf("%s:", dg.Severity), dg.String())
	}

	if d.IsValid() {
		fmt.Fprintf(out, "%s\n", p.value.Sprint("ok"))
	}

	return nil
}

func encode(out io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(v)

	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()

	case FormatMsgpack:
		return msgpack.NewEncoder(out).Encode(v)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

type palette struct {
	title       *color.Color
	value       *color.Color
	dim         *color.Color
	mapped      *color.Color
	passthrough *color.Color
	err         *color.Color
	warn        *color.Color
	info        *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c
	}

	return palette{
		title:       mk(color.Bold),
		value:       mk(color.FgGreen, color.Bold),
		dim:         mk(color.Faint),
		mapped:      mk(color.FgCyan),
		passthrough: mk(color.FgYellow),
		err:         mk(color.FgRed, color.Bold),
		warn:        mk(color.FgYellow, color.Bold),
		info:        mk(color.FgBlue),
	}
}

func (p palette) severity(s diagnostic.Severity) *color.Color {
	switch s {
	case diagnostic.SeverityError:
		return p.err
	case diagnostic.SeverityWarning:
		return p.warn
	default:
		return p.info
	}
}
