// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import "gopkg.in/check.v1"

type CoordMapSuite struct{}

var _ = check.Suite(&CoordMapSuite{})

func (s *CoordMapSuite) TestSimpleMatch(c *check.C) {
	cg, err := Parse("3M")
	c.Assert(err, check.Equals, nil)

	cm := cg.CoordMap()
	for i := 0; i < 3; i++ {
		v, ok := cm.RefToQuery().Get(i)
		c.Check(ok, check.Equals, true)
		c.Check(v, check.Equals, i)
	}
}

func (s *CoordMapSuite) TestDeletionExactAndClosest(c *check.C) {
	// "1M1D1M": exact {0:0, 2:1}, closest {0:0, 1:0, 2:1}.
	cg, err := Parse("1M1D1M")
	c.Assert(err, check.Equals, nil)
	r2q := cg.CoordMap().RefToQuery()

	v, ok := r2q.Get(0)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 0)

	_, ok = r2q.Get(1)
	c.Check(ok, check.Equals, false)

	v, ok = r2q.Get(2)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 1)

	v, ok = r2q.LeftMax(1)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 0)
}

func (s *CoordMapSuite) TestInsertion(c *check.C) {
	// "1M1I1M": exact {0:0, 1:2}.
	cg, err := Parse("1M1I1M")
	c.Assert(err, check.Equals, nil)
	r2q := cg.CoordMap().RefToQuery()

	v, ok := r2q.Get(0)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 0)

	v, ok = r2q.Get(1)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 2)
}

func (s *CoordMapSuite) TestLongerIndelRuns(c *check.C) {
	// "3M1D3M" exact mapping: {0:0, 1:1, 2:2, 4:3, 5:4, 6:5}.
	cg, err := Parse("3M1D3M")
	c.Assert(err, check.Equals, nil)
	r2q := cg.CoordMap().RefToQuery()

	expected := map[int]int{0: 0, 1: 1, 2: 2, 4: 3, 5: 4, 6: 5}
	for k, v := range expected {
		got, ok := r2q.Get(k)
		c.Check(ok, check.Equals, true)
		c.Check(got, check.Equals, v)
	}
	_, ok := r2q.Get(3)
	c.Check(ok, check.Equals, false)
}

func (s *CoordMapSuite) TestEmptyCigar(c *check.C) {
	cg, err := Parse("")
	c.Assert(err, check.Equals, nil)
	cm := cg.CoordMap()
	c.Check(cm.RefToQuery().Len(), check.Equals, 0)
	c.Check(cm.QueryToRef().Len(), check.Equals, 0)
}

func (s *CoordMapSuite) TestTranslate(c *check.C) {
	cg, err := Parse("3M")
	c.Assert(err, check.Equals, nil)
	cm := cg.CoordMap().Translate(10, 100)

	v, ok := cm.RefToQuery().Get(10)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 100)
}

func (s *CoordMapSuite) TestEqualIgnoresRefQueryMaps(c *check.C) {
	a, _ := Parse("3M")
	b, _ := Parse("3M")
	c.Check(a.CoordMap().Equal(b.CoordMap()), check.Equals, true)

	// Emptying the reference/query maps must not affect Equal.
	stripped := b.CoordMap()
	stripped.refToQuery = IntMap{}
	stripped.queryToRef = IntMap{}
	c.Check(a.CoordMap().Equal(stripped), check.Equals, true)
}
