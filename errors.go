// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import "fmt"

// Kind identifies the category of an *Error returned by this package.
type Kind int

const (
	// KindCoercion is returned when a value of an unsupported type is
	// passed to Coerce.
	KindCoercion Kind = iota

	// KindParse is returned when input text fails the grammar of a
	// CIGAR string or a serialized CigarHit.
	KindParse

	// KindInvalidOperation is returned when a count is negative, an
	// operation letter or ordinal is unknown, or a tuple has the wrong
	// shape.
	KindInvalidOperation

	// KindMSALength is returned when a reference/query sequence is too
	// short for the operations to be rendered. FromMSA inputs of
	// different lengths are reported as KindParse instead.
	KindMSALength

	// KindCigarHitRange is returned when a CigarHit's endpoints
	// disagree with its Cigar's derived lengths.
	KindCigarHitRange

	// KindCigarConnect is returned when Connect is called on
	// overlapping hits, or Add is called on hits that do not touch.
	KindCigarConnect

	// KindCigarCut is returned when a reference cut point is an
	// integer, or lies outside (r_st-1, r_ei+1).
	KindCigarCut

	// KindEmptyCigarHitList is reserved for callers that want
	// ConnectNonoverlapping to reject an empty input; this
	// implementation instead returns an empty, non-error result (see
	// DESIGN.md), but the kind and its sentinel ErrEmptyCigarHitList are
	// retained for API completeness.
	KindEmptyCigarHitList
)

func (k Kind) String() string {
	switch k {
	case KindCoercion:
		return "coercion"
	case KindParse:
		return "parse"
	case KindInvalidOperation:
		return "invalid operation"
	case KindMSALength:
		return "msa length"
	case KindCigarHitRange:
		return "cigar hit range"
	case KindCigarConnect:
		return "cigar connect"
	case KindCigarCut:
		return "cigar cut"
	case KindEmptyCigarHitList:
		return "empty cigar hit list"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every fallible operation
// in this package. It carries a Kind so callers can dispatch on the
// failure category without parsing Msg, while Error/Unwrap make it work
// with errors.Is against the package-level sentinels below.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return "cigar: " + e.Msg
}

// Unwrap lets errors.Is(err, cigar.ErrParse) and friends succeed.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindCoercion:
		return ErrCoercion
	case KindParse:
		return ErrParse
	case KindInvalidOperation:
		return ErrInvalidOperation
	case KindMSALength:
		return ErrMSALength
	case KindCigarHitRange:
		return ErrCigarHitRange
	case KindCigarConnect:
		return ErrCigarConnect
	case KindCigarCut:
		return ErrCigarCut
	case KindEmptyCigarHitList:
		return ErrEmptyCigarHitList
	default:
		return nil
	}
}

// Sentinel errors, one per Kind, usable with errors.Is. CigarAdd is
// deliberately not its own sentinel: connect_cigar_hits.py and
// cigar_hit.py's own __add__ both surface non-touching concatenation as
// a CigarConnect-shaped error (see DESIGN.md), so this package treats
// "add" and "connect" failures as the same kind.
var (
	ErrCoercion          = newSentinel(KindCoercion, "coercion")
	ErrParse             = newSentinel(KindParse, "parse")
	ErrInvalidOperation  = newSentinel(KindInvalidOperation, "invalid operation")
	ErrMSALength         = newSentinel(KindMSALength, "msa length")
	ErrCigarHitRange     = newSentinel(KindCigarHitRange, "cigar hit range")
	ErrCigarConnect      = newSentinel(KindCigarConnect, "cigar connect")
	ErrCigarCut          = newSentinel(KindCigarCut, "cigar cut")
	ErrEmptyCigarHitList = newSentinel(KindEmptyCigarHitList, "empty cigar hit list")
)

func newSentinel(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// maxErrValueLen bounds how much of an offending value is embedded in an
// error message, mirroring cigar.py's `string[:20]!r` truncation.
const maxErrValueLen = 20

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxErrValueLen {
		return s
	}
	return string(r[:maxErrValueLen]) + "..."
}

func errf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}
