package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/brunokim/lam/config"
	"github.com/brunokim/lam/loader"
	"github.com/brunokim/lam/logic"

	"gopkg.in/yaml.v2"
)

// writer prints programs in some format. If headers is set, text output names
// each program before its contents.
type writer func(w io.Writer, format string, progs []*loader.Program, headers bool) error

func writeClauses(w io.Writer, format string, progs []*loader.Program, headers bool) error {
	if format == config.FormatText {
		return writeText(w, progs, headers, func(prog *loader.Program) []fmt.Stringer {
			lines := make([]fmt.Stringer, len(prog.Clauses))
			for i, c := range prog.Clauses {
				lines[i] = c
			}
			return lines
		})
	}
	docs := make([]interface{}, len(progs))
	for i, prog := range progs {
		docs[i] = map[string]interface{}{
			"name":      prog.Name,
			"clauses":   logic.EncodeAll(prog.Clauses),
			"remaining": prog.Remaining,
		}
	}
	return encode(w, format, docs)
}

func writeRecords(w io.Writer, format string, progs []*loader.Program, headers bool) error {
	if format == config.FormatText {
		return writeText(w, progs, headers, func(prog *loader.Program) []fmt.Stringer {
			lines := make([]fmt.Stringer, len(prog.Records))
			for i, r := range prog.Records {
				lines[i] = r
			}
			return lines
		})
	}
	docs := make([]interface{}, len(progs))
	for i, prog := range progs {
		docs[i] = map[string]interface{}{
			"name":      prog.Name,
			"records":   prog.Records,
			"remaining": prog.Remaining,
		}
	}
	return encode(w, format, docs)
}

func writeText(w io.Writer, progs []*loader.Program, headers bool, lines func(*loader.Program) []fmt.Stringer) error {
	for _, prog := range progs {
		if headers {
			if _, err := fmt.Fprintf(w, "%% %s\n", prog.Name); err != nil {
				return err
			}
		}
		for _, line := range lines(prog) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func encode(w io.Writer, format string, docs []interface{}) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case config.FormatYAML:
		bs, err := yaml.Marshal(docs)
		if err != nil {
			return err
		}
		_, err = w.Write(bs)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
