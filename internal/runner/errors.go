package runner

import (
	"errors"
	"fmt"
)

var ErrInvalidText = errors.New("file is not valid UTF-8 text")

// FileReadError is returned when the input file cannot be loaded.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// IoError is returned when results cannot be written.
type IoError struct {
	Err error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("write results: %v", e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }
