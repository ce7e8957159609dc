package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

// record is the outcome of evaluating one statement.
type record struct {
	Expr   string   `json:"expr"            yaml:"expr"`
	Result *string  `json:"result"          yaml:"result"`
	Error  string   `json:"error,omitempty" yaml:"error,omitempty"`
	Steps  []string `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// write writes records in the given format.
func write(w io.Writer, format string, echo, trace bool, recs []record) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "yaml":
		b, err := yaml.Marshal(recs)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "text", "":
		return writeText(w, echo, trace, recs)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeText writes one line per record with the result, or null if there is
// none. Colors are used only when w is a terminal.
func writeText(w io.Writer, echo, trace bool, recs []record) error {
	re := lipgloss.NewRenderer(w)
	var (
		stepStyle = re.NewStyle().Faint(true).PaddingLeft(2)
		exprStyle = re.NewStyle().Bold(true)
		nullStyle = re.NewStyle().Foreground(lipgloss.Color("1"))
	)
	for _, r := range recs {
		if trace {
			for _, s := range r.Steps {
				if _, err := fmt.Fprintln(w, stepStyle.Render(s)); err != nil {
					return err
				}
			}
		}
		if echo {
			if _, err := fmt.Fprint(w, exprStyle.Render(r.Expr), " : "); err != nil {
				return err
			}
		}
		res := nullStyle.Render("null")
		if r.Result != nil {
			res = *r.Result
		}
		if _, err := fmt.Fprintln(w, res); err != nil {
			return err
		}
	}
	return nil
}
