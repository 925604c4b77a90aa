// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import "gopkg.in/check.v1"

type IntMapSuite struct{}

var _ = check.Suite(&IntMapSuite{})

func buildIntMap(pairs map[int]int, domain, codomain []int) IntMap {
	b := newIntMapBuilder()
	for k, v := range pairs {
		k, v := k, v
		b.extend(&k, &v)
	}
	for _, k := range domain {
		k := k
		b.extend(&k, nil)
	}
	for _, v := range codomain {
		v := v
		b.extend(nil, &v)
	}
	return b.freeze()
}

func (s *IntMapSuite) TestGet(c *check.C) {
	m := buildIntMap(map[int]int{0: 0, 1: 1, 2: 2}, nil, nil)
	v, ok := m.Get(1)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 1)

	_, ok = m.Get(5)
	c.Check(ok, check.Equals, false)
}

func (s *IntMapSuite) TestLeftMaxRightMin(c *check.C) {
	// Mirrors the "1M1D1M" mapping: exact {0:0, 2:1}, closest {0:0,1:0,2:1}.
	m := buildIntMap(map[int]int{0: 0, 2: 1}, nil, nil)

	v, ok := m.LeftMax(0)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 0)

	v, ok = m.LeftMax(1)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 0)

	v, ok = m.LeftMax(2)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 1)

	_, ok = m.LeftMax(-1)
	c.Check(ok, check.Equals, false)

	v, ok = m.RightMin(1)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 1)

	v, ok = m.RightMin(2)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 1)

	_, ok = m.RightMin(3)
	c.Check(ok, check.Equals, false)
}

func (s *IntMapSuite) TestTranslate(c *check.C) {
	m := buildIntMap(map[int]int{0: 0, 1: 1}, []int{0, 1, 2}, []int{0, 1})
	t := m.Translate(10, 100)

	v, ok := t.Get(10)
	c.Check(ok, check.Equals, true)
	c.Check(v, check.Equals, 100)

	c.Check(t.Domain(), check.DeepEquals, []int{10, 11, 12})
	c.Check(t.Codomain(), check.DeepEquals, []int{100, 101})
}

func (s *IntMapSuite) TestEqual(c *check.C) {
	a := buildIntMap(map[int]int{0: 0, 1: 1}, []int{0, 1, 2}, nil)
	b := buildIntMap(map[int]int{0: 0, 1: 1}, []int{0, 1, 2}, nil)
	d := buildIntMap(map[int]int{0: 0, 1: 2}, []int{0, 1, 2}, nil)

	c.Check(a.Equal(b), check.Equals, true)
	c.Check(a.Equal(d), check.Equals, false)
}

func (s *IntMapSuite) TestLenAndEntries(c *check.C) {
	m := buildIntMap(map[int]int{2: 20, 0: 0, 1: 10}, nil, nil)
	c.Check(m.Len(), check.Equals, 3)

	entries := m.Entries()
	c.Assert(len(entries), check.Equals, 3)
	c.Check(entries[0].Key, check.Equals, 0)
	c.Check(entries[1].Key, check.Equals, 1)
	c.Check(entries[2].Key, check.Equals, 2)
}
