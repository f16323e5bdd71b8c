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

// Package treeset implements a persistent ordered set over the treemap
// package. Operations that would modify the set return a new version
// sharing structure with the receiver.
package treeset

import "github.com/biogo/persist/treemap"

// A Set holds a collection of distinct keys in sorted order. The zero
// value is an empty set.
type Set struct {
	Map *treemap.Tree
}

var none = &treemap.Tree{}

func (s *Set) tree() *treemap.Tree {
	if s.Map == nil {
		return none
	}
	return s.Map
}

// Empty returns an empty set.
func Empty() *Set {
	return &Set{}
}

// Insert returns a new version of the set containing e.
func (s *Set) Insert(e treemap.Comparable) *Set {
	m := s.tree()
	in := m.Insert(e, nil)
	if in == m {
		return s
	}
	return &Set{Map: in}
}

// Remove returns a new version of the set not containing e. Removing an
// absent element returns the receiver.
func (s *Set) Remove(e treemap.Comparable) *Set {
	m := s.tree()
	out := m.Remove(e)
	if out == m {
		return s
	}
	return &Set{Map: out}
}

// Has returns whether e is an element of the set.
func (s *Set) Has(e treemap.Comparable) bool {
	return s.tree().Member(e)
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return s.tree().Len()
}

// IsEmpty returns whether the set holds no elements.
func (s *Set) IsEmpty() bool {
	return s.tree().IsEmpty()
}

// Min returns the minimum element of the set, or nil if the set is
// empty.
func (s *Set) Min() treemap.Comparable {
	return s.tree().Min()
}

// Max returns the maximum element of the set, or nil if the set is
// empty.
func (s *Set) Max() treemap.Comparable {
	return s.tree().Max()
}

// Do performs fn on all elements of the set in ascending order. A
// boolean is returned indicating whether the traversal was interrupted
// by fn returning true.
func (s *Set) Do(fn func(treemap.Comparable) bool) bool {
	return s.tree().Do(func(e treemap.Comparable, _ interface{}) bool {
		return fn(e)
	})
}

// Elems returns the elements of the set in ascending order.
func (s *Set) Elems() []treemap.Comparable {
	return s.tree().Keys()
}

// FromElems returns a set holding the given elements.
func FromElems(elems []treemap.Comparable) *Set {
	s := &Set{}
	for _, e := range elems {
		s = s.Insert(e)
	}
	return s
}

// Union returns the set of elements present in a or b.
func Union(a, b *Set) *Set {
	return &Set{Map: treemap.Union(a.tree(), b.tree())}
}

// Intersect returns the set of elements present in both a and b.
func Intersect(a, b *Set) *Set {
	return &Set{Map: treemap.Intersect(a.tree(), b.tree())}
}

// Diff returns the set of elements of a not present in b.
func Diff(a, b *Set) *Set {
	return &Set{Map: treemap.Diff(a.tree(), b.tree())}
}
