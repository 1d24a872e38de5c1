package runner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"minigrep/internal/config"
	"minigrep/internal/core/explain"
	"minigrep/internal/core/search"
)

type Options struct {
	FS      billy.Basic
	Out     io.Writer
	Format  Format
	Explain explain.Explain
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = osfs.Default
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Format == "" {
		o.Format = FormatPlain
	}
	if o.Explain == nil {
		o.Explain = explain.Discard{}
	}
	return o
}

// Run reads cfg.FilePath(), filters it by cfg.Query() and writes the
// matching lines to opts.Out. Nothing is written if the read fails.
func Run(cfg config.Config, opts Options) error {
	opts = opts.withDefaults()
	ex := opts.Explain

	ex.KV("file", cfg.FilePath())
	ex.KV("ignore_case", cfg.IgnoreCase())

	contents, err := readContents(opts.FS, cfg.FilePath(), ex)
	if err != nil {
		return err
	}

	stopSearch := ex.Timer("search")
	var (
		lines   []string
		matches []search.Match
		count   int
	)
	switch opts.Format {
	case FormatPlain:
		if cfg.IgnoreCase() {
			lines = search.SearchCaseInsensitive(cfg.Query(), contents)
		} else {
			lines = search.Search(cfg.Query(), contents)
		}
		count = len(lines)
	case FormatJSONL, FormatVim:
		matches = search.Find(cfg.Query(), contents, cfg.IgnoreCase())
		count = len(matches)
	default:
		stopSearch()
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
	stopSearch()
	ex.KV("matches", count)

	stopWrite := ex.Timer("write")
	defer stopWrite()

	bw := bufio.NewWriter(opts.Out)
	switch opts.Format {
	case FormatJSONL:
		err = renderJSONL(bw, matches)
	case FormatVim:
		err = renderVim(bw, cfg.FilePath(), matches)
	default:
		err = renderPlain(bw, lines)
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return &IoError{Err: err}
	}
	return nil
}

func readContents(fs billy.Basic, path string, ex explain.Explain) (string, error) {
	stop := ex.Timer("read")
	defer stop()

	b, err := util.ReadFile(fs, path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &FileReadError{Path: path, Err: ErrInvalidText}
	}

	ex.KV("bytes", humanize.Bytes(uint64(len(b))))
	ex.KV("lines", lineCount(b))
	return string(b), nil
}

// lineCount agrees with len(search.Lines(string(b))) without splitting.
func lineCount(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := bytes.Count(b, []byte("\n"))
	if b[len(b)-1] != '\n' {
		n++
	}
	return n
}
