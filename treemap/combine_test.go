// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package treemap

import (
	"fmt"
	"math/rand"

	check "gopkg.in/check.v1"
)

func fromInts(keys ...int) *Tree {
	t := &Tree{}
	for _, k := range keys {
		t = t.Insert(compInt(k), k)
	}
	return t
}

func intKeys(t *Tree) []int {
	var keys []int
	t.Do(func(k Comparable, _ interface{}) bool {
		keys = append(keys, int(k.(compInt)))
		return false
	})
	return keys
}

func (s *S) TestUnion(c *check.C) {
	a := &Tree{}
	a = a.Insert(compInt(1), "a1")
	a = a.Insert(compInt(2), "a2")
	b := &Tree{}
	b = b.Insert(compInt(2), "b2")
	b = b.Insert(compInt(3), "b3")

	u := Union(a, b)
	c.Check(intKeys(u), check.DeepEquals, []int{1, 2, 3})
	v, _ := u.Get(compInt(2))
	c.Check(v, check.Equals, "a2") // Left bias on collision.
	checkTree(u, c, "union")

	// Inputs are unchanged.
	c.Check(intKeys(a), check.DeepEquals, []int{1, 2})
	c.Check(intKeys(b), check.DeepEquals, []int{2, 3})
}

func (s *S) TestIntersect(c *check.C) {
	a := &Tree{}
	a = a.Insert(compInt(1), "a1")
	a = a.Insert(compInt(2), "a2")
	a = a.Insert(compInt(3), "a3")
	b := fromInts(2, 3, 4)

	i := Intersect(a, b)
	c.Check(intKeys(i), check.DeepEquals, []int{2, 3})
	v, _ := i.Get(compInt(2))
	c.Check(v, check.Equals, "a2") // Values come from a.
	checkTree(i, c, "intersect")
}

func (s *S) TestDiff(c *check.C) {
	a := fromInts(1, 2, 3, 4)
	b := fromInts(2, 4, 6)

	d := Diff(a, b)
	c.Check(intKeys(d), check.DeepEquals, []int{1, 3})
	checkTree(d, c, "diff")
	c.Check(intKeys(a), check.DeepEquals, []int{1, 2, 3, 4})
}

func (s *S) TestSetSemantics(c *check.C) {
	for trial := 0; trial < 20; trial++ {
		av, bv := map[int]bool{}, map[int]bool{}
		a, b := &Tree{}, &Tree{}
		for i := 0; i < 50; i++ {
			k := rand.Intn(40)
			a = a.Insert(compInt(k), nil)
			av[k] = true
			k = rand.Intn(40)
			b = b.Insert(compInt(k), nil)
			bv[k] = true
		}
		for k := 0; k < 40; k++ {
			c.Check(Union(a, b).Member(compInt(k)), check.Equals, av[k] || bv[k])
			c.Check(Intersect(a, b).Member(compInt(k)), check.Equals, av[k] && bv[k])
			c.Check(Diff(a, b).Member(compInt(k)), check.Equals, av[k] && !bv[k])
		}
	}
}

func (s *S) TestMergeScenario(c *check.C) {
	a := &Tree{}
	a = a.Insert(compInt(1), "a")
	a = a.Insert(compInt(3), "c")
	b := &Tree{}
	b = b.Insert(compInt(2), "b")
	b = b.Insert(compInt(3), "C")

	got := Merge(
		func(k Comparable, av interface{}, acc interface{}) interface{} {
			return append(acc.([]string), fmt.Sprintf("left %d %v", k, av))
		},
		func(k Comparable, av, bv interface{}, acc interface{}) interface{} {
			return append(acc.([]string), fmt.Sprintf("both %d %v %v", k, av, bv))
		},
		func(k Comparable, bv interface{}, acc interface{}) interface{} {
			return append(acc.([]string), fmt.Sprintf("right %d %v", k, bv))
		},
		a, b, []string(nil),
	)
	c.Check(got, check.DeepEquals, []string{
		"left 1 a",
		"right 2 b",
		"both 3 c C",
	})
}

// Merge must call exactly one step per key of the union, in strictly
// ascending key order.
func (s *S) TestMergeCallOrder(c *check.C) {
	for trial := 0; trial < 20; trial++ {
		a, b := &Tree{}, &Tree{}
		av, bv := map[int]bool{}, map[int]bool{}
		for i := 0; i < 30; i++ {
			k := rand.Intn(50)
			a = a.Insert(compInt(k), nil)
			av[k] = true
			k = rand.Intn(50)
			b = b.Insert(compInt(k), nil)
			bv[k] = true
		}

		type call struct {
			kind string
			key  int
		}
		var calls []call
		record := func(kind string) func(int) {
			return func(k int) { calls = append(calls, call{kind, k}) }
		}
		onLeft, onBoth, onRight := record("left"), record("both"), record("right")
		Merge(
			func(k Comparable, _ interface{}, acc interface{}) interface{} {
				onLeft(int(k.(compInt)))
				return acc
			},
			func(k Comparable, _, _ interface{}, acc interface{}) interface{} {
				onBoth(int(k.(compInt)))
				return acc
			},
			func(k Comparable, _ interface{}, acc interface{}) interface{} {
				onRight(int(k.(compInt)))
				return acc
			},
			a, b, nil,
		)

		seen := map[int]int{}
		for i, cl := range calls {
			seen[cl.key]++
			if i > 0 {
				c.Check(calls[i-1].key < cl.key, check.Equals, true)
			}
			switch {
			case av[cl.key] && bv[cl.key]:
				c.Check(cl.kind, check.Equals, "both")
			case av[cl.key]:
				c.Check(cl.kind, check.Equals, "left")
			default:
				c.Check(cl.kind, check.Equals, "right")
			}
		}
		for k := 0; k < 50; k++ {
			if av[k] || bv[k] {
				c.Check(seen[k], check.Equals, 1)
			} else {
				c.Check(seen[k], check.Equals, 0)
			}
		}
	}
}
