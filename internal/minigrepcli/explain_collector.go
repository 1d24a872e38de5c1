package minigrepcli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

type ExplainOptions struct {
	Format string
}

// ExplainCollector gathers key/values and phase timings for one run and
// prints them in the order they were first recorded.
type ExplainCollector struct {
	format  string
	keys    []string
	kv      map[string]any
	phases  []string
	timings map[string]time.Duration
}

func NewExplainCollector(opts ExplainOptions) *ExplainCollector {
	format := strings.TrimSpace(opts.Format)
	if format == "" {
		format = "text"
	}
	return &ExplainCollector{
		format:  format,
		kv:      map[string]any{},
		timings: map[string]time.Duration{},
	}
}

func (e *ExplainCollector) KV(key string, value any) {
	if e == nil {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if _, ok := e.kv[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.kv[key] = value
}

func (e *ExplainCollector) Timer(name string) func() {
	if e == nil {
		return func() {}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return func() {}
	}
	start := time.Now()
	return func() {
		if _, ok := e.timings[name]; !ok {
			e.phases = append(e.phases, name)
		}
		e.timings[name] += time.Since(start)
	}
}

func (e *ExplainCollector) Snapshot() map[string]any {
	if e == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(e.kv)+1)
	for k, v := range e.kv {
		out[k] = v
	}
	if len(e.timings) > 0 {
		tm := make(map[string]float64, len(e.timings))
		for k, d := range e.timings {
			tm[k] = float64(d.Microseconds()) / 1000
		}
		out["timings_ms"] = tm
	}
	return out
}

func (e *ExplainCollector) Emit(w io.Writer) error {
	if e == nil || w == nil {
		return nil
	}

	if e.format == "json" {
		b, err := json.Marshal(e.Snapshot())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	if _, err := fmt.Fprintln(w, "explain:"); err != nil {
		return err
	}
	for _, k := range e.keys {
		if _, err := fmt.Fprintf(w, "  %s: %v\n", k, e.kv[k]); err != nil {
			return err
		}
	}
	for _, name := range e.phases {
		if _, err := fmt.Fprintf(w, "  elapsed_%s: %s\n", name, e.timings[name]); err != nil {
			return err
		}
	}
	return nil
}
