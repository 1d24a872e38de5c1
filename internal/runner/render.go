package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"minigrep/internal/model"
)

type Format string

const (
	FormatPlain Format = "plain"
	FormatJSONL Format = "jsonl"
	FormatVim   Format = "vim"
)

func renderPlain(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func renderJSONL(w io.Writer, matches []model.Match) error {
	enc := json.NewEncoder(w)
	for _, m := range matches {
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return nil
}

func renderVim(w io.Writer, path string, matches []model.Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", path, m.Line, m.Col, m.Text); err != nil {
			return err
		}
	}
	return nil
}
