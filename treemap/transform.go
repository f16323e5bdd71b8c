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

// MapValues returns a map with every value transformed by fn. Keys,
// colors and shape are preserved, so the result is built in one O(n)
// pass.
func (t *Tree) MapValues(fn func(Comparable, interface{}) interface{}) *Tree {
	return &Tree{Root: t.Root.mapValues(fn)}
}

func (n *Node) mapValues(fn func(Comparable, interface{}) interface{}) *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Elem:  n.Elem,
		Value: fn(n.Elem, n.Value),
		Left:  n.Left.mapValues(fn),
		Right: n.Right.mapValues(fn),
		Color: n.Color,
	}
}

// A Predicate reports whether an entry should be retained.
type Predicate func(Comparable, interface{}) bool

// KeepIf returns a map holding the entries satisfying fn. The result is
// rebuilt by insertion, costing O(n log n).
func (t *Tree) KeepIf(fn Predicate) *Tree {
	keep := &Tree{}
	t.Do(func(k Comparable, v interface{}) bool {
		if fn(k, v) {
			keep = keep.Insert(k, v)
		}
		return false
	})
	return keep
}

// Filter is KeepIf.
func (t *Tree) Filter(fn Predicate) *Tree {
	return t.KeepIf(fn)
}

// DropIf returns a map holding the entries not satisfying fn.
func (t *Tree) DropIf(fn Predicate) *Tree {
	return t.KeepIf(func(k Comparable, v interface{}) bool {
		return !fn(k, v)
	})
}

// Partition returns two maps, the first holding the entries satisfying
// fn and the second the rest.
func (t *Tree) Partition(fn Predicate) (keep, drop *Tree) {
	keep, drop = &Tree{}, &Tree{}
	t.Do(func(k Comparable, v interface{}) bool {
		if fn(k, v) {
			keep = keep.Insert(k, v)
		} else {
			drop = drop.Insert(k, v)
		}
		return false
	})
	return keep, drop
}
