// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// Action is a single CIGAR operation kind, as defined on page 8 of the
// SAM specification <https://samtools.github.io/hts-specs/SAMv1.pdf>.
type Action byte

// The nine CIGAR operations, in the stable ordinal order used by the SAM
// specification's 'MIDNSHP=X' table.
const (
	Match        Action = iota // M: alignment match, sequence match or mismatch.
	Insert                     // I: insertion to the reference.
	Delete                     // D: deletion from the reference.
	Skipped                    // N: skipped region from the reference.
	SoftClipped                // S: soft clip, present in SEQ.
	HardClipped                // H: hard clip, not present in SEQ.
	Padding                    // P: padding, silent deletion from padded reference.
	SeqMatch                   // =: sequence match.
	Mismatch                   // X: sequence mismatch.
	numActions
)

var actionBytes = [numActions]byte{
	Match:       'M',
	Insert:      'I',
	Delete:      'D',
	Skipped:     'N',
	SoftClipped: 'S',
	HardClipped: 'H',
	Padding:     'P',
	SeqMatch:    '=',
	Mismatch:    'X',
}

var actionByByte = func() map[byte]Action {
	m := make(map[byte]Action, numActions)
	for a, b := range actionBytes {
		m[b] = Action(a)
	}
	return m
}()

// ParseAction parses a single CIGAR operation byte, returning a *Error
// of KindParse for any byte outside 'MIDNSHP=X'.
func ParseAction(b byte) (Action, error) {
	a, ok := actionByByte[b]
	if !ok {
		return 0, errf(KindParse, "invalid action: %c", b)
	}
	return a, nil
}

// ActionFromOrdinal recovers an Action from its integer ordinal (0..8),
// failing with KindInvalidOperation outside that range.
func ActionFromOrdinal(n int) (Action, error) {
	if n < 0 || n >= int(numActions) {
		return 0, errf(KindInvalidOperation, "invalid action ordinal: %d", n)
	}
	return Action(n), nil
}

// Byte renders the Action as its single-character CIGAR code. Total
// over the valid range 0..8; out-of-range values (which cannot arise
// from ParseAction or ActionFromOrdinal) render as '?'.
func (a Action) Byte() byte {
	if a >= numActions {
		return '?'
	}
	return actionBytes[a]
}

// String renders the Action as its single-character CIGAR code.
func (a Action) String() string {
	return string(a.Byte())
}

// ConsumesReference reports whether an operation of this kind advances
// the reference-sequence pointer.
func (a Action) ConsumesReference() bool {
	switch a {
	case Match, Delete, Skipped, SeqMatch, Mismatch:
		return true
	default:
		return false
	}
}

// ConsumesQuery reports whether an operation of this kind advances the
// query-sequence pointer.
func (a Action) ConsumesQuery() bool {
	switch a {
	case Match, Insert, SoftClipped, SeqMatch, Mismatch:
		return true
	default:
		return false
	}
}

// Relax collapses the sequence-match/mismatch distinction: SeqMatch and
// Mismatch both become Match, every other Action is unchanged.
func (a Action) Relax() Action {
	switch a {
	case SeqMatch, Mismatch:
		return Match
	default:
		return a
	}
}
