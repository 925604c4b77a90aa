// Copyright ©2024 The aligntools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"errors"

	"gopkg.in/check.v1"
)

type CigarSuite struct{}

var _ = check.Suite(&CigarSuite{})

func (s *CigarSuite) TestParseAndString(c *check.C) {
	for _, str := range []string{"", "3M", "1M1D1M", "2H5M1H", "3M1D3M"} {
		cg, err := Parse(str)
		c.Assert(err, check.Equals, nil)
		c.Check(cg.String(), check.Equals, str)
	}
}

func (s *CigarSuite) TestParseInvalid(c *check.C) {
	for _, str := range []string{"10Z", "abc", "10", "M10"} {
		_, err := Parse(str)
		c.Assert(err, check.NotNil)
	}
}

func (s *CigarSuite) TestNormalizeCoalescesAdjacentOps(c *check.C) {
	cg, err := New([]Op{{3, Match}, {2, Match}, {1, Delete}})
	c.Assert(err, check.Equals, nil)
	c.Check(cg.String(), check.Equals, "5M1D")
}

func (s *CigarSuite) TestNormalizeDropsZeroCounts(c *check.C) {
	cg, err := New([]Op{{0, Match}, {3, Match}})
	c.Assert(err, check.Equals, nil)
	c.Check(cg.String(), check.Equals, "3M")
}

func (s *CigarSuite) TestNewRejectsNegativeCount(c *check.C) {
	_, err := New([]Op{{-1, Match}})
	c.Assert(err, check.NotNil)
	c.Check(errors.Is(err, ErrInvalidOperation), check.Equals, true)
}

func (s *CigarSuite) TestCoerce(c *check.C) {
	cg, err := Coerce("3M")
	c.Assert(err, check.Equals, nil)
	c.Check(cg.String(), check.Equals, "3M")

	cg2, err := Coerce(cg)
	c.Assert(err, check.Equals, nil)
	c.Check(cg2.Equal(cg), check.Equals, true)

	_, err = Coerce(123)
	c.Assert(err, check.NotNil)
	c.Check(errors.Is(err, ErrCoercion), check.Equals, true)
}

func (s *CigarSuite) TestLengths(c *check.C) {
	cg, err := Parse("3M1D3M")
	c.Assert(err, check.Equals, nil)
	c.Check(cg.OpLength(), check.Equals, 7)
	c.Check(cg.RefLength(), check.Equals, 7)
	c.Check(cg.QueryLength(), check.Equals, 6)
}

func (s *CigarSuite) TestIterateOperations(c *check.C) {
	cg, err := Parse("2M1I")
	c.Assert(err, check.Equals, nil)
	c.Check(cg.IterateOperations(), check.DeepEquals, []Action{Match, Match, Insert})
}

func (s *CigarSuite) TestSliceOperations(c *check.C) {
	cg, err := Parse("3M1D3M")
	c.Assert(err, check.Equals, nil)
	c.Check(cg.SliceOperations(0, 3).String(), check.Equals, "3M")
	c.Check(cg.SliceOperations(3, 4).String(), check.Equals, "1D")
	c.Check(cg.SliceOperations(4, 7).String(), check.Equals, "3M")
	c.Check(cg.SliceOperations(0, 0).String(), check.Equals, "")
}

func (s *CigarSuite) TestMonoidLaws(c *check.C) {
	a, _ := Parse("3M")
	b, _ := Parse("1D")
	d, _ := Parse("2M")
	empty := Cigar{}

	c.Check(empty.Add(a).Equal(a), check.Equals, true)
	c.Check(a.Add(empty).Equal(a), check.Equals, true)

	left := a.Add(b).Add(d)
	right := a.Add(b.Add(d))
	c.Check(left.Equal(right), check.Equals, true)
}

func (s *CigarSuite) TestAddCoalescesAcrossBoundary(c *check.C) {
	a, _ := Parse("3M")
	b, _ := Parse("2M1D")
	c.Check(a.Add(b).String(), check.Equals, "5M1D")
}

func (s *CigarSuite) TestStripQuery(c *check.C) {
	cg, err := Parse("2S3M2S")
	c.Assert(err, check.Equals, nil)
	c.Check(cg.LstripQuery().String(), check.Equals, "3M2S")
	c.Check(cg.RstripQuery().String(), check.Equals, "2S3M")
	c.Check(cg.LstripQuery().RstripQuery().String(), check.Equals, "3M")
}

func (s *CigarSuite) TestStripReference(c *check.C) {
	cg, err := Parse("2D3M2D")
	c.Assert(err, check.Equals, nil)
	c.Check(cg.LstripReference().String(), check.Equals, "3M2D")
	c.Check(cg.RstripReference().String(), check.Equals, "2D3M")
}

func (s *CigarSuite) TestToMSA(c *check.C) {
	cg, err := Parse("1M1D1M")
	c.Assert(err, check.Equals, nil)
	ref, query, err := cg.ToMSA("ACG", "AG")
	c.Assert(err, check.Equals, nil)
	c.Check(ref, check.Equals, "ACG")
	c.Check(query, check.Equals, "A-G")
}

func (s *CigarSuite) TestFromMSARoundTrip(c *check.C) {
	cg, err := FromMSA("ACG", "A-G")
	c.Assert(err, check.Equals, nil)
	c.Check(cg.Relax().String(), check.Equals, "1M1D1M")
}

func (s *CigarSuite) TestFromMSALengthMismatch(c *check.C) {
	_, err := FromMSA("ACTG", "ACG")
	c.Assert(err, check.NotNil)
	c.Check(errors.Is(err, ErrParse), check.Equals, true)
}

func (s *CigarSuite) TestRelaxCoalesces(c *check.C) {
	cg, err := New([]Op{{2, SeqMatch}, {3, Mismatch}, {1, Insert}})
	c.Assert(err, check.Equals, nil)
	c.Check(cg.Relax().String(), check.Equals, "5M1I")
}

func (s *CigarSuite) TestFromMSAThenRelaxScenario(c *check.C) {
	// Scenario: Cigar::from_msa(...).relax() normalizes = / X into M.
	cg, err := FromMSA("ACGT", "ACGT")
	c.Assert(err, check.Equals, nil)
	c.Check(cg.Relax().String(), check.Equals, "4M")
}
