package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/runelookup"
)

// record is one looked-up character as printed by the json and yaml formats.
type record struct {
	Char              string `json:"char" yaml:"char"`
	Code              string `json:"code" yaml:"code"`
	Error             string `json:"error,omitempty" yaml:"error,omitempty"`
	runelookup.Result `yaml:",inline"`
}

// writer renders the records of one input line.
type writer interface {
	WriteLine(records []record) error
}

func newWriter(format string, w io.Writer) writer {
	if format == formatAuto {
		format = formatJSON
		if isTerminal(w) {
			format = formatText
		}
	}

	switch format {
	case formatText:
		return textWriter{w: w}
	case formatYAML:
		return yamlWriter{enc: yaml.NewEncoder(w)}
	default:
		return jsonWriter{enc: json.NewEncoder(w)}
	}
}

// textWriter prints the composed suggestions, one output line per input line.
type textWriter struct {
	w io.Writer
}

func (t textWriter) WriteLine(records []record) error {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(rec.Suggested)
	}
	_, err := fmt.Fprintln(t.w, b.String())
	return err
}

// jsonWriter prints one JSON object per character.
type jsonWriter struct {
	enc *json.Encoder
}

func (j jsonWriter) WriteLine(records []record) error {
	for _, rec := range records {
		if err := j.enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// yamlWriter prints one YAML document per input line.
type yamlWriter struct {
	enc *yaml.Encoder
}

func (y yamlWriter) WriteLine(records []record) error {
	return y.enc.Encode(records)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
