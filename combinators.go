// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import "sort"

// ConnectNonoverlapping merges a list of hits that may have gaps
// between them, as mappers sometimes emit for a single query when a
// large gap defeats their own gap-closing heuristics. Hits are ordered
// by RefStart, then greedily grouped: a hit joins the first group (in
// creation order) for which it starts strictly after that group's last
// QueryEnd and overlaps no group member in reference space; otherwise
// it starts a new group. Each group is folded together with Connect,
// so mutually overlapping hits are never merged and instead pass
// through as separate entries in the result. An empty input returns
// (nil, nil), not an error.
func ConnectNonoverlapping(hits []CigarHit) ([]CigarHit, error) {
	if len(hits) == 0 {
		return nil, nil
	}

	sorted := append([]CigarHit(nil), hits...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].RefStart() < sorted[j].RefStart() })

	var groups [][]CigarHit
	for _, hit := range sorted {
		placed := false
		for gi, group := range groups {
			last := group[len(group)-1]
			if hit.QueryStart() > last.QueryEnd() && !overlapsAnyInReference(hit, group) {
				groups[gi] = append(group, hit)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []CigarHit{hit})
		}
	}

	result := make([]CigarHit, 0, len(groups))
	for _, group := range groups {
		merged := group[0]
		for _, next := range group[1:] {
			var err error
			merged, err = merged.Connect(next)
			if err != nil {
				return nil, err
			}
		}
		result = append(result, merged)
	}
	return result, nil
}

func overlapsAnyInReference(hit CigarHit, group []CigarHit) bool {
	for _, other := range group {
		if hit.OverlapsInReference(other) {
			return true
		}
	}
	return false
}

// QualityFunc scores a CigarHit for DropOverlapping; higher is better.
type QualityFunc func(CigarHit) float64

// DropOverlapping resolves overlapping hits (in reference space) by
// keeping, from each mutually-overlapping cluster, only the hit with
// the highest quality score, breaking ties in favor of the
// earlier-listed hit. Survivors are returned in their original
// relative order. An empty input returns nil.
func DropOverlapping(hits []CigarHit, quality QualityFunc) []CigarHit {
	if len(hits) == 0 {
		return nil
	}

	type ranked struct {
		hit   CigarHit
		index int
		score float64
	}
	candidates := make([]ranked, len(hits))
	for i, h := range hits {
		candidates[i] = ranked{h, i, quality(h)}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	dropped := make([]bool, len(hits))
	var accepted []CigarHit
	for _, cand := range candidates {
		overlapsAccepted := false
		for _, other := range accepted {
			if cand.hit.OverlapsInReference(other) {
				overlapsAccepted = true
				break
			}
		}
		if overlapsAccepted {
			dropped[cand.index] = true
			continue
		}
		accepted = append(accepted, cand.hit)
	}

	result := make([]CigarHit, 0, len(hits))
	for i, h := range hits {
		if !dropped[i] {
			result = append(result, h)
		}
	}
	return result
}
