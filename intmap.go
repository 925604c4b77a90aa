// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"sort"

	"golang.org/x/exp/slices"
)

// IntMap is a partial integer-to-integer function augmented with two
// sets, Domain and Codomain, that are supersets of its keys and values
// respectively. It is built via an intMapBuilder and then frozen: once
// returned from a CoordMap accessor, an IntMap never changes, and its
// keys are kept sorted so LeftMax/RightMin run in O(log n) instead of
// the linear scan a plain map would require.
type IntMap struct {
	entries    map[int]int
	sortedKeys []int
	domain     map[int]struct{}
	codomain   map[int]struct{}
}

// intMapBuilder is the mutable construction-time counterpart to IntMap.
// extend may be called any number of times; freeze finalizes the sorted
// key index and returns an immutable IntMap.
type intMapBuilder struct {
	entries  map[int]int
	keys     []int
	domain   map[int]struct{}
	codomain map[int]struct{}
}

func newIntMapBuilder() *intMapBuilder {
	return &intMapBuilder{
		entries:  make(map[int]int),
		domain:   make(map[int]struct{}),
		codomain: make(map[int]struct{}),
	}
}

// extend records a (key, value) pair where either side may be absent.
// The present side(s) are added to domain/codomain; the mapping itself
// gains an entry only when both sides are present.
func (b *intMapBuilder) extend(key, value *int) {
	if key != nil && value != nil {
		if _, seen := b.entries[*key]; !seen {
			b.keys = append(b.keys, *key)
		}
		b.entries[*key] = *value
	}
	if key != nil {
		b.domain[*key] = struct{}{}
	}
	if value != nil {
		b.codomain[*value] = struct{}{}
	}
}

func (b *intMapBuilder) freeze() IntMap {
	keys := append([]int(nil), b.keys...)
	slices.Sort(keys)
	return IntMap{
		entries:    b.entries,
		sortedKeys: keys,
		domain:     b.domain,
		codomain:   b.codomain,
	}
}

// newIntMap builds an already-frozen IntMap from the given entries and
// supersets, used when constructing a translated copy directly.
func newIntMap(entries map[int]int, domain, codomain map[int]struct{}) IntMap {
	keys := make([]int, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return IntMap{entries: entries, sortedKeys: keys, domain: domain, codomain: codomain}
}

// Get performs an exact lookup; ok is false when key is not in the
// mapping's domain of definition.
func (m IntMap) Get(key int) (value int, ok bool) {
	value, ok = m.entries[key]
	return value, ok
}

// LeftMax returns f(k*) where k* is the greatest mapped key <= index.
// ok is false when no such key exists.
func (m IntMap) LeftMax(index int) (value int, ok bool) {
	// sortedKeys is ascending; find the first key > index, then step
	// back one to the last key <= index.
	i := sort.Search(len(m.sortedKeys), func(i int) bool { return m.sortedKeys[i] > index })
	if i == 0 {
		return 0, false
	}
	k := m.sortedKeys[i-1]
	return m.entries[k], true
}

// RightMin returns f(k*) where k* is the least mapped key >= index. ok
// is false when no such key exists.
func (m IntMap) RightMin(index int) (value int, ok bool) {
	i := sort.Search(len(m.sortedKeys), func(i int) bool { return m.sortedKeys[i] >= index })
	if i == len(m.sortedKeys) {
		return 0, false
	}
	k := m.sortedKeys[i]
	return m.entries[k], true
}

// Translate returns a copy of m whose mapping is {(k+domainDelta,
// v+codomainDelta)}, and whose Domain/Codomain are shifted the same way.
func (m IntMap) Translate(domainDelta, codomainDelta int) IntMap {
	entries := make(map[int]int, len(m.entries))
	for k, v := range m.entries {
		entries[k+domainDelta] = v + codomainDelta
	}
	domain := make(map[int]struct{}, len(m.domain))
	for k := range m.domain {
		domain[k+domainDelta] = struct{}{}
	}
	codomain := make(map[int]struct{}, len(m.codomain))
	for v := range m.codomain {
		codomain[v+codomainDelta] = struct{}{}
	}
	return newIntMap(entries, domain, codomain)
}

// Len reports the number of mapped (key, value) pairs.
func (m IntMap) Len() int { return len(m.entries) }

// Domain returns the sorted superset of the mapping's keys.
func (m IntMap) Domain() []int {
	out := make([]int, 0, len(m.domain))
	for k := range m.domain {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Codomain returns the sorted superset of the mapping's values.
func (m IntMap) Codomain() []int {
	out := make([]int, 0, len(m.codomain))
	for v := range m.codomain {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Entries returns the mapping's (key, value) pairs sorted by key.
func (m IntMap) Entries() []struct{ Key, Value int } {
	out := make([]struct{ Key, Value int }, 0, len(m.entries))
	for _, k := range m.sortedKeys {
		out = append(out, struct{ Key, Value int }{k, m.entries[k]})
	}
	return out
}

// Equal reports whether m and other have identical mappings, domains
// and codomains.
func (m IntMap) Equal(other IntMap) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for k, v := range m.entries {
		if ov, ok := other.entries[k]; !ok || ov != v {
			return false
		}
	}
	if len(m.domain) != len(other.domain) {
		return false
	}
	for k := range m.domain {
		if _, ok := other.domain[k]; !ok {
			return false
		}
	}
	if len(m.codomain) != len(other.codomain) {
		return false
	}
	for v := range m.codomain {
		if _, ok := other.codomain[v]; !ok {
			return false
		}
	}
	return true
}
