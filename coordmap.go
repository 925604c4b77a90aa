// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// CoordMap is a bidirectional reference/query/operation-index
// coordinate system: four jointly-extended IntMaps. RefToQuery and
// QueryToRef are inverses of each other; RefToOp and QueryToOp each
// inject their axis into the shared operation-index space. Equality
// (Equal) compares only RefToOp and QueryToOp, since the reference/query
// maps are functions of those two.
type CoordMap struct {
	refToQuery IntMap
	queryToRef IntMap
	refToOp    IntMap
	queryToOp  IntMap
}

// coordMapBuilder accumulates a CoordMap one decoded operation at a
// time via extend, then freeze produces the immutable CoordMap.
type coordMapBuilder struct {
	refToQuery *intMapBuilder
	queryToRef *intMapBuilder
	refToOp    *intMapBuilder
	queryToOp  *intMapBuilder
}

func newCoordMapBuilder() *coordMapBuilder {
	return &coordMapBuilder{
		refToQuery: newIntMapBuilder(),
		queryToRef: newIntMapBuilder(),
		refToOp:    newIntMapBuilder(),
		queryToOp:  newIntMapBuilder(),
	}
}

// extend appends one decoded operation's coordinates. opIndex is always
// known; refIndex/queryIndex are nil when the operation does not
// consume that axis.
func (b *coordMapBuilder) extend(refIndex, queryIndex *int, opIndex int) {
	b.refToQuery.extend(refIndex, queryIndex)
	b.queryToRef.extend(queryIndex, refIndex)
	b.refToOp.extend(refIndex, &opIndex)
	b.queryToOp.extend(queryIndex, &opIndex)
}

func (b *coordMapBuilder) freeze() CoordMap {
	return CoordMap{
		refToQuery: b.refToQuery.freeze(),
		queryToRef: b.queryToRef.freeze(),
		refToOp:    b.refToOp.freeze(),
		queryToOp:  b.queryToOp.freeze(),
	}
}

// RefToQuery returns the reference->query coordinate mapping.
func (c CoordMap) RefToQuery() IntMap { return c.refToQuery }

// QueryToRef returns the query->reference coordinate mapping.
func (c CoordMap) QueryToRef() IntMap { return c.queryToRef }

// RefToOp returns the reference->operation-index mapping.
func (c CoordMap) RefToOp() IntMap { return c.refToOp }

// QueryToOp returns the query->operation-index mapping.
func (c CoordMap) QueryToOp() IntMap { return c.queryToOp }

// Translate returns a copy of c whose reference keys are shifted by
// refDelta and whose query keys are shifted by queryDelta; operation
// indices are left unchanged.
func (c CoordMap) Translate(refDelta, queryDelta int) CoordMap {
	return CoordMap{
		refToQuery: c.refToQuery.Translate(refDelta, queryDelta),
		queryToRef: c.queryToRef.Translate(queryDelta, refDelta),
		refToOp:    c.refToOp.Translate(refDelta, 0),
		queryToOp:  c.queryToOp.Translate(queryDelta, 0),
	}
}

// Equal reports whether c and other agree on RefToOp and QueryToOp.
func (c CoordMap) Equal(other CoordMap) bool {
	return c.refToOp.Equal(other.refToOp) && c.queryToOp.Equal(other.queryToOp)
}
