// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// CigarHit is a Cigar positioned at absolute, inclusive reference and
// query intervals: [RefStart, RefEnd] and [QueryStart, QueryEnd]. The
// interval lengths must agree with the underlying Cigar's RefLength and
// QueryLength; NewCigarHit enforces this.
type CigarHit struct {
	cigar      Cigar
	refStart   int
	refEnd     int
	queryStart int
	queryEnd   int
}

// NewCigarHit validates and builds a CigarHit. It fails with
// KindCigarHitRange when the interval lengths disagree with c's derived
// lengths.
func NewCigarHit(c Cigar, refStart, refEnd, queryStart, queryEnd int) (CigarHit, error) {
	if refEnd-refStart+1 != c.RefLength() {
		return CigarHit{}, errf(KindCigarHitRange,
			"CIGAR %q does not correspond to the length of the reference (%d != %d)",
			c.String(), refEnd-refStart+1, c.RefLength())
	}
	if queryEnd-queryStart+1 != c.QueryLength() {
		return CigarHit{}, errf(KindCigarHitRange,
			"CIGAR %q does not correspond to the length of the query (%d != %d)",
			c.String(), queryEnd-queryStart+1, c.QueryLength())
	}
	return CigarHit{c, refStart, refEnd, queryStart, queryEnd}, nil
}

// FromDefaultAlignment builds the "naive" CigarHit that aligns
// [refStart, refEnd] against [queryStart, queryEnd] with no shared
// positions at all: refEnd-refStart+1 Deletes followed by
// queryEnd-queryStart+1 Inserts. Either interval may be empty (refEnd <
// refStart, or queryEnd < queryStart), in which case that side
// contributes zero operations. This is both a standalone constructor
// and the filler CigarHit.Connect uses to bridge a gap between two
// hits.
func FromDefaultAlignment(refStart, refEnd, queryStart, queryEnd int) (CigarHit, error) {
	var items []Op
	if refEnd >= refStart {
		items = append(items, Op{Count: refEnd - refStart + 1, Action: Delete})
	}
	if queryEnd >= queryStart {
		items = append(items, Op{Count: queryEnd - queryStart + 1, Action: Insert})
	}
	cg, err := New(items)
	if err != nil {
		return CigarHit{}, err
	}
	return NewCigarHit(cg, refStart, refEnd, queryStart, queryEnd)
}

// Cigar returns the hit's underlying Cigar.
func (h CigarHit) Cigar() Cigar { return h.cigar }

// RefStart is the first (inclusive) absolute reference position.
func (h CigarHit) RefStart() int { return h.refStart }

// RefEnd is the last (inclusive) absolute reference position.
func (h CigarHit) RefEnd() int { return h.refEnd }

// QueryStart is the first (inclusive) absolute query position.
func (h CigarHit) QueryStart() int { return h.queryStart }

// QueryEnd is the last (inclusive) absolute query position.
func (h CigarHit) QueryEnd() int { return h.queryEnd }

// CoordMap is h's Cigar coordinate mapping translated into h's absolute
// reference/query coordinates.
func (h CigarHit) CoordMap() CoordMap {
	return h.cigar.CoordMap().Translate(h.refStart, h.queryStart)
}

// overlapsIntervals reports whether two inclusive integer intervals
// share at least one point.
func overlapsIntervals(aSt, aEi, bSt, bEi int) bool {
	return aSt <= bEi && bSt <= aEi
}

// OverlapsInReference reports whether h and other cover at least one
// common reference position.
func (h CigarHit) OverlapsInReference(other CigarHit) bool {
	return overlapsIntervals(h.refStart, h.refEnd, other.refStart, other.refEnd)
}

// OverlapsInQuery reports whether h and other cover at least one common
// query position.
func (h CigarHit) OverlapsInQuery(other CigarHit) bool {
	return overlapsIntervals(h.queryStart, h.queryEnd, other.queryStart, other.queryEnd)
}

// TouchesInReference reports whether h ends exactly where other begins
// on the reference axis.
func (h CigarHit) TouchesInReference(other CigarHit) bool {
	return h.refEnd+1 == other.refStart
}

// TouchesInQuery reports whether h ends exactly where other begins on
// the query axis.
func (h CigarHit) TouchesInQuery(other CigarHit) bool {
	return h.queryEnd+1 == other.queryStart
}

// Add concatenates h and other (h ⊕ other): it requires the two hits to
// touch exactly, on both axes, with nothing glued or filled in. It
// fails with KindCigarConnect when they don't.
func (h CigarHit) Add(other CigarHit) (CigarHit, error) {
	if !h.TouchesInReference(other) || !h.TouchesInQuery(other) {
		return CigarHit{}, errf(KindCigarConnect,
			"cannot combine CIGAR hits that do not touch in both reference and query coordinates")
	}
	return CigarHit{
		cigar:      h.cigar.Add(other.cigar),
		refStart:   h.refStart,
		refEnd:     other.refEnd,
		queryStart: h.queryStart,
		queryEnd:   other.queryEnd,
	}, nil
}

// Connect joins h and other, inserting a synthetic deletion+insertion
// filler hit to bridge any reference/query gap between them. It fails
// with KindCigarConnect if h and other overlap in either axis.
func (h CigarHit) Connect(other CigarHit) (CigarHit, error) {
	if h.OverlapsInReference(other) || h.OverlapsInQuery(other) {
		return CigarHit{}, errf(KindCigarConnect,
			"cannot connect overlapping CIGAR hits")
	}
	filler, err := FromDefaultAlignment(h.refEnd+1, other.refStart-1, h.queryEnd+1, other.queryStart-1)
	if err != nil {
		return CigarHit{}, err
	}
	mid, err := h.Add(filler)
	if err != nil {
		return CigarHit{}, err
	}
	return mid.Add(other)
}

// epsilon is the tie-break margin added to an operation cut point that
// would otherwise land exactly on an operation boundary, nudging it to
// the right so floor/ceil disagree and the boundary operation is
// assigned unambiguously.
func epsilon(opLength int) *big.Rat {
	return big.NewRat(1, int64(3*opLength+1))
}

// lerp computes (1-t)*start + t*end exactly.
func lerp(start, end int, t *big.Rat) *big.Rat {
	one := big.NewRat(1, 1)
	oneMinusT := new(big.Rat).Sub(one, t)
	a := new(big.Rat).Mul(oneMinusT, big.NewRat(int64(start), 1))
	b := new(big.Rat).Mul(t, big.NewRat(int64(end), 1))
	return new(big.Rat).Add(a, b)
}

// ratFloor and ratCeil mirror Python's math.floor/math.ceil on a Rat.
func ratFloor(r *big.Rat) int {
	q := new(big.Int).Div(r.Num(), r.Denom())
	return int(q.Int64())
}

func ratCeil(r *big.Rat) int {
	f := ratFloor(r)
	if r.IsInt() {
		return f
	}
	return f + 1
}

// refCutToOpCut maps a reference-space cut point (relative to h's
// start) to the corresponding operation-index cut point, using exact
// rational arithmetic: it linearly interpolates between the operation
// indices flanking the cut, then nudges by epsilon if the result lands
// exactly on an operation boundary (which would otherwise leave the
// boundary operation's side ambiguous).
func (h CigarHit) refCutToOpCut(cutPoint *big.Rat) *big.Rat {
	refToOp := h.cigar.CoordMap().refToOp

	floorCut := ratFloor(cutPoint)
	ceilCut := ratCeil(cutPoint)

	left, leftOK := refToOp.LeftMax(floorCut)
	if !leftOK {
		left = -1
	}
	right, rightOK := refToOp.RightMin(ceilCut)
	if !rightOK {
		right = h.cigar.OpLength()
	}

	frac := new(big.Rat).Sub(cutPoint, big.NewRat(int64(floorCut), 1))
	opCut := lerp(left, right, frac)
	if opCut.IsInt() {
		opCut = new(big.Rat).Add(opCut, epsilon(h.cigar.OpLength()))
	}
	return opCut
}

// CutReference splits h into two hits at cutPoint, a reference
// coordinate that must not be an integer: it must fall strictly
// between two reference positions, never inside one. It fails with
// KindCigarCut when cutPoint is an integer or lies outside
// (RefStart-1, RefEnd+1).
func (h CigarHit) CutReference(cutPoint float64) (CigarHit, CigarHit, error) {
	fcut := new(big.Rat).SetFloat64(cutPoint)
	if fcut == nil {
		return CigarHit{}, CigarHit{}, errf(KindCigarCut, "cut point is not a finite number: %v", cutPoint)
	}
	if fcut.IsInt() {
		return CigarHit{}, CigarHit{}, errf(KindCigarCut, "cut accepts fractions, not integers: %v", cutPoint)
	}
	if h.cigar.RefLength() == 0 ||
		!(float64(h.refStart)-1 < cutPoint && cutPoint < float64(h.refEnd)+1) {
		return CigarHit{}, CigarHit{}, errf(KindCigarCut, "cut point out of reference bounds: %v", cutPoint)
	}

	relativeCut := new(big.Rat).Sub(fcut, big.NewRat(int64(h.refStart), 1))
	opCut := h.refCutToOpCut(relativeCut)

	leftCigar := h.cigar.SliceOperations(0, ratFloor(opCut)+1)
	left, err := NewCigarHit(leftCigar,
		h.refStart, h.refStart+leftCigar.RefLength()-1,
		h.queryStart, h.queryStart+leftCigar.QueryLength()-1)
	if err != nil {
		return CigarHit{}, CigarHit{}, err
	}

	rightCigar := h.cigar.SliceOperations(ratCeil(opCut), h.cigar.OpLength())
	right, err := NewCigarHit(rightCigar,
		left.refEnd+1, left.refEnd+rightCigar.RefLength(),
		left.queryEnd+1, left.queryEnd+rightCigar.QueryLength())
	if err != nil {
		return CigarHit{}, CigarHit{}, err
	}
	return left, right, nil
}

// LstripQuery returns a copy of h with leading query-only operations
// removed, re-deriving the absolute interval from the shrunk Cigar.
func (h CigarHit) LstripQuery() CigarHit {
	c := h.cigar.LstripQuery()
	drop := h.cigar.QueryLength() - c.QueryLength()
	return CigarHit{c, h.refStart, h.refEnd, h.queryStart + drop, h.queryEnd}
}

// RstripQuery returns a copy of h with trailing query-only operations
// removed.
func (h CigarHit) RstripQuery() CigarHit {
	c := h.cigar.RstripQuery()
	return CigarHit{c, h.refStart, h.refEnd, h.queryStart, h.queryStart + c.QueryLength() - 1}
}

// LstripReference returns a copy of h with leading reference-only
// operations removed.
func (h CigarHit) LstripReference() CigarHit {
	c := h.cigar.LstripReference()
	drop := h.cigar.RefLength() - c.RefLength()
	return CigarHit{c, h.refStart + drop, h.refEnd, h.queryStart, h.queryEnd}
}

// RstripReference returns a copy of h with trailing reference-only
// operations removed.
func (h CigarHit) RstripReference() CigarHit {
	c := h.cigar.RstripReference()
	return CigarHit{c, h.refStart, h.refStart + c.RefLength() - 1, h.queryStart, h.queryEnd}
}

// Deletions enumerates the maximal runs of operations that consume the
// reference axis only (D, N): one sub-hit per run, each with a Cigar
// holding just that slice, a non-empty reference interval and an empty
// query interval.
func (h CigarHit) Deletions() []CigarHit {
	return h.gapHits(func(a Action) bool { return a.ConsumesReference() && !a.ConsumesQuery() })
}

// Insertions enumerates the maximal runs of operations that consume the
// query axis only (I, S): one sub-hit per run, each with a Cigar
// holding just that slice, a non-empty query interval and an empty
// reference interval.
func (h CigarHit) Insertions() []CigarHit {
	return h.gapHits(func(a Action) bool { return a.ConsumesQuery() && !a.ConsumesReference() })
}

// gapHits walks h's decoded operation stream for maximal runs of
// operations satisfying match, emitting one positioned sub-hit per run.
// Since every matched run consumes exactly one of the two axes, the
// other axis's interval in the emitted hit is empty, encoded per
// convention as start == end+1.
func (h CigarHit) gapHits(match func(Action) bool) []CigarHit {
	ops := h.cigar.IterateOperations()
	refBefore := make([]int, len(ops)+1)
	queryBefore := make([]int, len(ops)+1)
	for i, a := range ops {
		refBefore[i+1] = refBefore[i]
		queryBefore[i+1] = queryBefore[i]
		if a.ConsumesReference() {
			refBefore[i+1]++
		}
		if a.ConsumesQuery() {
			queryBefore[i+1]++
		}
	}

	var hits []CigarHit
	i := 0
	for i < len(ops) {
		if !match(ops[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(ops) && match(ops[j]) {
			j++
		}

		sub := h.cigar.SliceOperations(i, j)
		refStart := h.refStart + refBefore[i]
		refEnd := h.refStart + refBefore[j] - 1
		queryStart := h.queryStart + queryBefore[i]
		queryEnd := h.queryStart + queryBefore[j] - 1
		hit, _ := NewCigarHit(sub, refStart, refEnd, queryStart, queryEnd)
		hits = append(hits, hit)
		i = j
	}
	return hits
}

// Translate returns a copy of h shifted by refDelta/queryDelta on the
// corresponding axis; the underlying Cigar is unchanged.
func (h CigarHit) Translate(refDelta, queryDelta int) CigarHit {
	return CigarHit{
		cigar:      h.cigar,
		refStart:   h.refStart + refDelta,
		refEnd:     h.refEnd + refDelta,
		queryStart: h.queryStart + queryDelta,
		queryEnd:   h.queryEnd + queryDelta,
	}
}

// ToMSA renders h against full reference/query sequences, using
// 1-based inclusive indexing: h.RefStart()-1 is the zero-based offset
// into refSeq where the hit begins.
func (h CigarHit) ToMSA(refSeq, querySeq string) (string, string, error) {
	if h.refStart-1 > len(refSeq) || h.refEnd > len(refSeq) {
		return "", "", errf(KindMSALength, "reference sequence is too short for this hit")
	}
	if h.queryStart-1 > len(querySeq) || h.queryEnd > len(querySeq) {
		return "", "", errf(KindMSALength, "query sequence is too short for this hit")
	}
	return h.cigar.ToMSA(refSeq[h.refStart-1:h.refEnd], querySeq[h.queryStart-1:h.queryEnd])
}

// String is the canonical serialization:
// "<cigar>@[q_st,q_ei]->[r_st,r_ei]".
func (h CigarHit) String() string {
	return fmt.Sprintf("%s@[%d,%d]->[%d,%d]", h.cigar.String(), h.queryStart, h.queryEnd, h.refStart, h.refEnd)
}

// GoString mirrors the Python repr convention.
func (h CigarHit) GoString() string {
	return "cigar.CigarHit(" + strconv.Quote(h.String()) + ")"
}

// ParseCigarHit parses the canonical "<cigar>@[q_st,q_ei]->[r_st,r_ei]"
// form produced by String, as well as a lenient short form
// "<cigar>@<q_st>->[<r_st>]" used by some callers, inferring r_ei/q_ei
// from the Cigar's derived lengths. It fails with KindParse on any
// other shape.
func ParseCigarHit(s string) (CigarHit, error) {
	at := strings.Index(s, "@")
	if at < 0 {
		return CigarHit{}, errf(KindParse, "invalid cigar hit string: missing '@': %q", truncate(s))
	}
	cigarPart, rest := s[:at], s[at+1:]

	arrow := strings.Index(rest, "->")
	if arrow < 0 {
		return CigarHit{}, errf(KindParse, "invalid cigar hit string: missing '->': %q", truncate(s))
	}
	qPart, rPart := rest[:arrow], rest[arrow+2:]

	c, err := Parse(cigarPart)
	if err != nil {
		return CigarHit{}, err
	}

	if strings.HasPrefix(qPart, "[") && strings.HasSuffix(qPart, "]") &&
		strings.HasPrefix(rPart, "[") && strings.HasSuffix(rPart, "]") {
		qSt, qEi, err := parseIntPair(qPart[1 : len(qPart)-1])
		if err != nil {
			return CigarHit{}, errf(KindParse, "invalid cigar hit string: bad query range: %q", truncate(s))
		}
		rSt, rEi, err := parseIntPair(rPart[1 : len(rPart)-1])
		if err != nil {
			return CigarHit{}, errf(KindParse, "invalid cigar hit string: bad reference range: %q", truncate(s))
		}
		return NewCigarHit(c, rSt, rEi, qSt, qEi)
	}

	// Lenient short form: "<cigar>@<q_st>-><r_st>", r_st optionally bracketed.
	qSt, err := strconv.Atoi(strings.TrimSpace(qPart))
	if err != nil {
		return CigarHit{}, errf(KindParse, "invalid cigar hit string: %q", truncate(s))
	}
	rStr := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(rPart), "["), "]")
	rSt, err := strconv.Atoi(rStr)
	if err != nil {
		return CigarHit{}, errf(KindParse, "invalid cigar hit string: %q", truncate(s))
	}
	return NewCigarHit(c, rSt, rSt+c.RefLength()-1, qSt, qSt+c.QueryLength()-1)
}

func parseIntPair(s string) (int, int, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two comma-separated integers, got %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
