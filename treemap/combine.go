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

// Union returns a map holding every key of a and b. On keys present in
// both, the value from a wins.
func Union(a, b *Tree) *Tree {
	t := b
	a.Do(func(k Comparable, v interface{}) bool {
		t = t.Insert(k, v)
		return false
	})
	return t
}

// Intersect returns a map holding the keys present in both a and b,
// with the values taken from a.
func Intersect(a, b *Tree) *Tree {
	t := &Tree{}
	a.Do(func(k Comparable, v interface{}) bool {
		if b.Member(k) {
			t = t.Insert(k, v)
		}
		return false
	})
	return t
}

// Diff returns a map holding the entries of a whose keys are not
// present in b.
func Diff(a, b *Tree) *Tree {
	t := a
	b.Do(func(k Comparable, _ interface{}) bool {
		t = t.Remove(k)
		return false
	})
	return t
}

// Merge step functions fold an accumulator over the union of two key
// sets. LeftFunc sees keys present only in the left map, BothFunc keys
// present in both, RightFunc keys present only in the right map.
type (
	LeftFunc  func(key Comparable, a interface{}, acc interface{}) interface{}
	BothFunc  func(key Comparable, a, b interface{}, acc interface{}) interface{}
	RightFunc func(key Comparable, b interface{}, acc interface{}) interface{}
)

// Merge folds acc over the union of the keys of a and b in strictly
// ascending key order, calling exactly one of left, both or right for
// each key depending on which maps hold it. The left map is walked as a
// sorted sequence once while b is traversed, so the whole merge is a
// single linear join.
func Merge(left LeftFunc, both BothFunc, right RightFunc, a, b *Tree, acc interface{}) interface{} {
	rest := a.ToList()
	b.Do(func(k Comparable, bv interface{}) bool {
		for len(rest) > 0 && rest[0].Key.Compare(k) < 0 {
			acc = left(rest[0].Key, rest[0].Value, acc)
			rest = rest[1:]
		}
		if len(rest) > 0 && rest[0].Key.Compare(k) == 0 {
			acc = both(k, rest[0].Value, bv, acc)
			rest = rest[1:]
		} else {
			acc = right(k, bv, acc)
		}
		return false
	})
	for _, kv := range rest {
		acc = left(kv.Key, kv.Value, acc)
	}
	return acc
}
