package minigrepcli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minigrep/internal/runner"
)

type Options struct {
	Jsonl    bool
	VimLines bool
	Explain  string
}

func (o *Options) Prepare() error {
	o.normalize()

	if o.Jsonl && o.VimLines {
		return fmt.Errorf("--jsonl and --vim-lines cannot be used together")
	}

	switch o.Explain {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid --explain %q (expected: text|json)", o.Explain)
	}

	return nil
}

func (o *Options) normalize() {
	o.Explain = strings.TrimSpace(o.Explain)
}

func (o *Options) Format() runner.Format {
	switch {
	case o.Jsonl:
		return runner.FormatJSONL
	case o.VimLines:
		return runner.FormatVim
	default:
		return runner.FormatPlain
	}
}

type optionsKey struct{}

func optionsFrom(cmd *cobra.Command) *Options {
	if cmd == nil {
		return nil
	}
	root := cmd.Root()
	if root == nil {
		root = cmd
	}
	v := root.Context().Value(optionsKey{})
	opts, _ := v.(*Options)
	return opts
}

func bindFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().BoolVar(&opts.Jsonl, "jsonl", opts.Jsonl, "output matches as JSONL")
	cmd.Flags().BoolVarP(&opts.VimLines, "vim-lines", "L", opts.VimLines, "vim friendly lines (path:line:col: text)")
	cmd.Flags().StringVar(&opts.Explain, "explain", opts.Explain, "print explain info to stderr (text|json)")
	if f := cmd.Flags().Lookup("explain"); f != nil {
		f.NoOptDefVal = "text"
	}
}

func ExecuteForTest(cmd *cobra.Command) (stdout string, stderr string, opts Options, err error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()

	if o := optionsFrom(cmd); o != nil {
		o.normalize()
		opts = *o
	}
	return out.String(), errOut.String(), opts, err
}

func newDefaultOptions() *Options {
	return &Options{}
}

func withOptionsContext(cmd *cobra.Command, opts *Options) {
	cmd.SetContext(context.WithValue(context.Background(), optionsKey{}, opts))
}
