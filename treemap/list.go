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

// A KeyValue is an entry of the map.
type KeyValue struct {
	Key   Comparable
	Value interface{}
}

// Keys returns the keys stored in the tree in ascending order.
func (t *Tree) Keys() []Comparable {
	var keys []Comparable
	t.Do(func(k Comparable, _ interface{}) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}

// Values returns the values stored in the tree in ascending key order.
func (t *Tree) Values() []interface{} {
	var values []interface{}
	t.Do(func(_ Comparable, v interface{}) bool {
		values = append(values, v)
		return false
	})
	return values
}

// ToList returns the entries of the tree in ascending key order.
func (t *Tree) ToList() []KeyValue {
	var list []KeyValue
	t.Do(func(k Comparable, v interface{}) bool {
		list = append(list, KeyValue{Key: k, Value: v})
		return false
	})
	return list
}

// FromList returns a map holding the given entries. When a key occurs
// more than once the later entry overwrites the earlier.
func FromList(list []KeyValue) *Tree {
	t := &Tree{}
	for _, kv := range list {
		t = t.Insert(kv.Key, kv.Value)
	}
	return t
}
