// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"github.com/kortschak/utter"
	"gopkg.in/check.v1"
)

// dumpOnMismatch checks that got equals want, logging an utter.Sdump of
// both when they disagree so a failing IntMap or CoordMap comparison is
// readable instead of a %v dump of unexported fields.
func dumpOnMismatch(c *check.C, got, want IntMap) {
	if !got.Equal(want) {
		c.Logf("got:\n%swant:\n%s", utter.Sdump(got), utter.Sdump(want))
	}
	c.Check(got.Equal(want), check.Equals, true)
}

func (s *CoordMapSuite) TestDumpOnMismatchHelper(c *check.C) {
	cg, err := Parse("3M1D3M")
	c.Assert(err, check.Equals, nil)
	dumpOnMismatch(c, cg.CoordMap().RefToQuery(), cg.CoordMap().RefToQuery())
}
