// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"strconv"
	"strings"
)

// Op is a single run-length-encoded (count, Action) pair, the unit
// Cigar is built from.
type Op struct {
	Count  int
	Action Action
}

// Cigar is an immutable, canonically normalized run-length-encoded
// alignment operation stream: no two adjacent pairs share an Action,
// and every Count is at least 1. The empty Cigar is a valid value and
// is the identity element of Add.
//
// Coerce is the recommended entry point; Parse, New and the zero
// value (representing an empty CIGAR) also work directly.
type Cigar struct {
	data []Op

	opLength    int
	refLength   int
	queryLength int
	coordMap    CoordMap
}

// opPointer is one element of the decoded operation stream, annotated
// with the reference/query position it consumes, if any.
type opPointer struct {
	action   Action
	refPos   *int
	queryPos *int
}

// New builds a Cigar from a sequence of (count, Action) pairs,
// normalizing it: zero-count items are dropped and adjacent equal-op
// items are coalesced. It fails with KindInvalidOperation if any count
// is negative or any Action is out of range.
func New(items []Op) (Cigar, error) {
	data, err := normalize(items)
	if err != nil {
		return Cigar{}, err
	}
	return fromNormalized(data), nil
}

// fromNormalized builds a Cigar from already-normalized data, computing
// its memoized derived fields. It must only be called with data that is
// already coalesced and free of zero-count items.
func fromNormalized(data []Op) Cigar {
	c := Cigar{data: data}
	c.opLength, c.refLength, c.queryLength = computeLengths(data)
	c.coordMap = computeCoordMap(c)
	return c
}

func computeLengths(data []Op) (opLength, refLength, queryLength int) {
	for _, it := range data {
		opLength += it.Count
		if it.Action.ConsumesReference() {
			refLength += it.Count
		}
		if it.Action.ConsumesQuery() {
			queryLength += it.Count
		}
	}
	return opLength, refLength, queryLength
}

// normalize validates and run-length-coalesces a sequence of Ops. It is
// idempotent: normalizing an already-normalized sequence returns an
// equal sequence.
func normalize(items []Op) ([]Op, error) {
	out := make([]Op, 0, len(items))
	for _, it := range items {
		if it.Count < 0 {
			return nil, errf(KindInvalidOperation,
				"invalid cigar item: number of operations is negative: %d", it.Count)
		}
		if it.Action >= numActions {
			return nil, errf(KindInvalidOperation,
				"invalid cigar item: not a valid action: %d", it.Action)
		}
		if it.Count == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Action == it.Action {
			out[n-1].Count += it.Count
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Coerce converts v to a Cigar: v may already be a Cigar, a CIGAR
// string (see Parse), or a []Op. Any other type fails with
// KindCoercion.
func Coerce(v interface{}) (Cigar, error) {
	switch x := v.(type) {
	case Cigar:
		return x, nil
	case string:
		return Parse(x)
	case []Op:
		return New(x)
	default:
		return Cigar{}, errf(KindCoercion, "cannot coerce %v to CIGAR string", v)
	}
}

// Parse parses a CIGAR string of the form (count action)+, where count
// is a non-empty decimal number and action is a single letter from
// "MIDNSHP=X". The empty string parses to the empty Cigar.
func Parse(s string) (Cigar, error) {
	if s == "" {
		return Cigar{}, nil
	}
	var items []Op
	i := 0
	for i < len(s) {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i || j == len(s) {
			return Cigar{}, errf(KindParse, "invalid cigar string: invalid part %q", truncate(s[i:]))
		}
		n, err := strconv.Atoi(s[i:j])
		if err != nil {
			return Cigar{}, errf(KindParse, "invalid cigar string: invalid part %q", truncate(s[i:]))
		}
		act, aerr := ParseAction(s[j])
		if aerr != nil {
			return Cigar{}, errf(KindInvalidOperation, "unexpected cigar action: %q", s[j])
		}
		items = append(items, Op{Count: n, Action: act})
		i = j + 1
	}
	return New(items)
}

// Empty reports whether c has no operations.
func (c Cigar) Empty() bool { return len(c.data) == 0 }

// Ops returns a copy of the Cigar's normalized (count, Action) pairs.
func (c Cigar) Ops() []Op {
	return append([]Op(nil), c.data...)
}

// OpLength is the total number of decoded operations, Σ counts.
func (c Cigar) OpLength() int { return c.opLength }

// RefLength is the number of reference positions consumed, Σ counts of
// reference-consuming operations.
func (c Cigar) RefLength() int { return c.refLength }

// QueryLength is the number of query positions consumed, Σ counts of
// query-consuming operations.
func (c Cigar) QueryLength() int { return c.queryLength }

// CoordMap is the coordinate mapping obtained by walking the decoded
// operation stream.
func (c Cigar) CoordMap() CoordMap { return c.coordMap }

// IterateOperations decodes the run-length-encoded stream into one
// Action per position, in order.
func (c Cigar) IterateOperations() []Action {
	out := make([]Action, 0, c.opLength)
	for _, it := range c.data {
		for i := 0; i < it.Count; i++ {
			out = append(out, it.Action)
		}
	}
	return out
}

// iterateWithPointers decodes the operation stream while tracking the
// zero-based reference and query pointers each operation consumes.
func (c Cigar) iterateWithPointers() []opPointer {
	out := make([]opPointer, 0, c.opLength)
	refPtr, queryPtr := 0, 0
	for _, a := range c.IterateOperations() {
		switch {
		case a == Match || a == SeqMatch || a == Mismatch:
			r, q := refPtr, queryPtr
			out = append(out, opPointer{a, &r, &q})
			refPtr++
			queryPtr++
		case a == Insert || a == SoftClipped:
			q := queryPtr
			out = append(out, opPointer{a, nil, &q})
			queryPtr++
		case a == Delete || a == Skipped:
			r := refPtr
			out = append(out, opPointer{a, &r, nil})
			refPtr++
		default:
			out = append(out, opPointer{a, nil, nil})
		}
	}
	return out
}

func computeCoordMap(c Cigar) CoordMap {
	b := newCoordMapBuilder()
	for opIdx, p := range c.iterateWithPointers() {
		idx := opIdx
		b.extend(p.refPos, p.queryPos, idx)
	}
	return b.freeze()
}

// SliceOperations reconstructs a Cigar from the decoded operation
// stream restricted to operation indices [startInclusive,
// endExclusive). Bounds are saturated to [0, OpLength()]; an empty or
// inverted range produces the empty Cigar.
func (c Cigar) SliceOperations(startInclusive, endExclusive int) Cigar {
	ops := c.IterateOperations()
	if startInclusive < 0 {
		startInclusive = 0
	}
	if endExclusive > len(ops) {
		endExclusive = len(ops)
	}
	if startInclusive >= endExclusive {
		return Cigar{}
	}
	items := make([]Op, 0, endExclusive-startInclusive)
	for _, a := range ops[startInclusive:endExclusive] {
		items = append(items, Op{Count: 1, Action: a})
	}
	data, _ := normalize(items)
	return fromNormalized(data)
}

// infOp is used as a never-reachable operation index, standing in for
// the Python implementation's float("inf")/float("-inf") sentinels when
// comparing against the always-nonnegative operation-pointer space.
const infOp = 1 << 30

// LstripQuery returns a copy of c with leading query-only operations
// (those that do not also map to a reference position) removed.
func (c Cigar) LstripQuery() Cigar {
	minOp := infOp
	if minR, ok := minKey(c.coordMap.refToQuery); ok {
		if op, ok := c.coordMap.refToOp.Get(minR); ok {
			minOp = op
		}
	}
	return c.filterWithPointers(func(i int, p opPointer) bool {
		return p.queryPos == nil || i >= minOp
	})
}

// RstripQuery returns a copy of c with trailing query-only operations
// removed.
func (c Cigar) RstripQuery() Cigar {
	maxOp := -infOp
	if maxR, ok := maxKey(c.coordMap.refToQuery); ok {
		if op, ok := c.coordMap.refToOp.Get(maxR); ok {
			maxOp = op
		}
	}
	return c.filterWithPointers(func(i int, p opPointer) bool {
		return p.queryPos == nil || i <= maxOp
	})
}

// LstripReference returns a copy of c with leading reference-only
// operations (those that do not also map to a query position) removed.
func (c Cigar) LstripReference() Cigar {
	minOp := infOp
	if minQ, ok := minKey(c.coordMap.queryToRef); ok {
		if op, ok := c.coordMap.queryToOp.Get(minQ); ok {
			minOp = op
		}
	}
	return c.filterWithPointers(func(i int, p opPointer) bool {
		return p.refPos == nil || i >= minOp
	})
}

// RstripReference returns a copy of c with trailing reference-only
// operations removed.
func (c Cigar) RstripReference() Cigar {
	maxOp := -infOp
	if maxQ, ok := maxKey(c.coordMap.queryToRef); ok {
		if op, ok := c.coordMap.queryToOp.Get(maxQ); ok {
			maxOp = op
		}
	}
	return c.filterWithPointers(func(i int, p opPointer) bool {
		return p.refPos == nil || i <= maxOp
	})
}

func (c Cigar) filterWithPointers(keep func(i int, p opPointer) bool) Cigar {
	items := make([]Op, 0, c.opLength)
	for i, p := range c.iterateWithPointers() {
		if keep(i, p) {
			items = append(items, Op{Count: 1, Action: p.action})
		}
	}
	data, _ := normalize(items)
	return fromNormalized(data)
}

func minKey(m IntMap) (int, bool) {
	if len(m.sortedKeys) == 0 {
		return 0, false
	}
	return m.sortedKeys[0], true
}

func maxKey(m IntMap) (int, bool) {
	n := len(m.sortedKeys)
	if n == 0 {
		return 0, false
	}
	return m.sortedKeys[n-1], true
}

// ToMSA renders the alignment described by c as a pair of equal-length
// strings over refSeq and querySeq, introducing '-' wherever one side
// is not consumed. It fails with KindMSALength if an operation requires
// an index beyond either sequence.
func (c Cigar) ToMSA(refSeq, querySeq string) (string, string, error) {
	var ref, query strings.Builder
	for _, p := range c.iterateWithPointers() {
		if p.refPos == nil && p.queryPos == nil {
			continue
		}
		if p.refPos != nil {
			if *p.refPos >= len(refSeq) {
				return "", "", errf(KindMSALength,
					"cigar string corresponds to a larger match than either reference or query")
			}
			ref.WriteByte(refSeq[*p.refPos])
		} else {
			ref.WriteByte('-')
		}
		if p.queryPos != nil {
			if *p.queryPos >= len(querySeq) {
				return "", "", errf(KindMSALength,
					"cigar string corresponds to a larger match than either reference or query")
			}
			query.WriteByte(querySeq[*p.queryPos])
		} else {
			query.WriteByte('-')
		}
	}
	return ref.String(), query.String(), nil
}

// FromMSA converts a pair of equal-length, '-'-gapped MSA strings into
// a Cigar. ('-', '-') columns are skipped; ('-', x) produces an Insert;
// (x, '-') produces a Delete; any other pairing produces a Match (this
// construction never distinguishes SeqMatch from Mismatch). It fails
// with KindParse if the two strings differ in length.
func FromMSA(reference, query string) (Cigar, error) {
	if len(reference) != len(query) {
		return Cigar{}, errf(KindParse, "reference and query sequences must be of the same length")
	}
	items := make([]Op, 0, len(reference))
	for i := 0; i < len(reference); i++ {
		r, q := reference[i], query[i]
		if r == '-' && q == '-' {
			continue
		}
		var act Action
		switch {
		case r == '-':
			act = Insert
		case q == '-':
			act = Delete
		default:
			act = Match
		}
		items = append(items, Op{Count: 1, Action: act})
	}
	return New(items)
}

// Relax collapses every SeqMatch/Mismatch operation in c to Match,
// renormalizing the result (a run of alternating '=' and 'X' operations
// coalesces into a single 'M' run).
func (c Cigar) Relax() Cigar {
	items := make([]Op, len(c.data))
	for i, it := range c.data {
		items[i] = Op{Count: it.Count, Action: it.Action.Relax()}
	}
	data, _ := normalize(items)
	return fromNormalized(data)
}

// Add concatenates two Cigars: their operation streams are joined, then
// renormalized. Add is associative and has Cigar{} as its identity,
// i.e. (Cigar, Add) is a monoid.
func (c Cigar) Add(other Cigar) Cigar {
	items := make([]Op, 0, len(c.data)+len(other.data))
	items = append(items, c.data...)
	items = append(items, other.data...)
	data, _ := normalize(items)
	return fromNormalized(data)
}

// Equal reports whether c and other have identical normalized data.
func (c Cigar) Equal(other Cigar) bool {
	if len(c.data) != len(other.data) {
		return false
	}
	for i := range c.data {
		if c.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String is the inverse of Parse.
func (c Cigar) String() string {
	if len(c.data) == 0 {
		return ""
	}
	var b strings.Builder
	for _, it := range c.data {
		b.WriteString(strconv.Itoa(it.Count))
		b.WriteByte(it.Action.Byte())
	}
	return b.String()
}

// GoString supports %#v and mirrors the Python repr convention of
// quoting the canonical string form.
func (c Cigar) GoString() string {
	return "cigar.Cigar(" + strconv.Quote(c.String()) + ")"
}
