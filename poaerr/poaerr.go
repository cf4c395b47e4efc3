// Package poaerr defines the error-kind taxonomy shared by every core
// package (§7): InvalidInput, Unsupported, OutOfDomain and Unreachable.
package poaerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error returned by the core.
type Kind int

const (
	// InvalidInput covers malformed caller-supplied data: mismatched
	// aligned lengths, all-gap columns, non-ACGT(-) characters, empty
	// reads, transcripts that don't thread the supplied strings.
	InvalidInput Kind = iota
	// Unsupported covers requests for a mode or model the core does not
	// implement: non-GLOBAL pairwise alignment, an unknown model identifier.
	Unsupported
	// OutOfDomain covers otherwise well-formed values outside their
	// allowed range: a mutation position past the template, a non-ACGT base.
	OutOfDomain
	// Unreachable marks a broken internal invariant. Callers should treat
	// it as fatal; this package's own helper panics rather than returning it.
	Unreachable
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case Unsupported:
		return "Unsupported"
	case OutOfDomain:
		return "OutOfDomain"
	case Unreachable:
		return "Unreachable"
	default:
		return "Unknown"
	}
}

// Error is the concrete error value returned by core APIs.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New builds an *Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Panic raises an Unreachable error: an internal invariant was broken.
// There is no sensible recovery, matching the teacher's own
// log.Fatal-on-corruption convention in driver code, just surfaced as a
// panic so library code never calls os.Exit directly.
func Panic(format string, args ...interface{}) {
	panic(New(Unreachable, format, args...))
}

// KindOf extracts the Kind from err if it is (or wraps) a *Error, and
// reports ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
