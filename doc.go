// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cigar implements an algebra over CIGAR alignment strings, as
// defined by the SAM specification: parsing and rendering, coordinate
// mapping between reference and query positions, positioned alignment
// hits with cut/connect/strip operations, and combinators for merging
// or deduplicating the hits a mapper returns for one query.
//
// The package is purely functional: every type is immutable once
// constructed, and every derived value of a Cigar (its lengths and
// coordinate map) is computed once at construction time rather than
// lazily, so values may be shared across goroutines without
// synchronization. CigarHit.CoordMap builds a fresh translated copy on
// each call.
package cigar
