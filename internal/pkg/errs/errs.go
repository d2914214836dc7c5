// Package errs wraps cockroachdb/errors so the rest of the codebase never
// imports it directly. Usecases attach sentinel markers with Mark and
// handlers branch on them with errors.Is.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original stack trace.
// Wrapping nil stays nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates an error with a stack trace captured at the call site.
func New(msg string) error {
	return cr.New(msg)
}

// Mark ties err to a sentinel so errors.Is(err, markErr) reports true
// while the underlying cause and its stack stay intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders err verbosely and returns up to maxLines lines,
// enough for structured logs without dumping the full trace.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
