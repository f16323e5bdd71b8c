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

// Package treemap implements a persistent ordered map based on a Red Black
// tree as described in
//  http://www.eecs.usma.edu/webs/people/okasaki/jfp99.ps
//  http://matt.might.net/papers/germane2014deletion.pdf
//
// Every operation that would modify the map returns a new version of the
// map instead; the original is never altered and remains valid. Versions
// share all untouched subtrees, so an update costs O(log n) space and any
// number of goroutines may read any set of versions without
// synchronization.
package treemap

// A Comparable is a type that can be used as a key in a Tree.
type Comparable interface {
	// Compare returns a value indicating the sort order relationship between the
	// receiver and the parameter.
	//
	// Given c = a.Compare(b):
	//  c < 0 if a < b;
	//  c == 0 if a == b; and
	//  c > 0 if a > b.
	//
	Compare(Comparable) int
}

// A Color represents the color of a Node. DoubleBlack and NegativeBlack
// are transient colors used while a deletion is rebalancing; they never
// appear in a tree returned by a public operation.
type Color uint8

const (
	Red Color = iota
	Black
	DoubleBlack
	NegativeBlack
)

// String returns a string representation of a Color.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	case DoubleBlack:
		return "DoubleBlack"
	case NegativeBlack:
		return "NegativeBlack"
	}
	panic("treemap: invalid color")
}

// moreBlack returns the color one blackness unit darker than c.
func (c Color) moreBlack() Color {
	switch c {
	case NegativeBlack:
		return Red
	case Red:
		return Black
	case Black:
		return DoubleBlack
	case DoubleBlack:
		panic("treemap: cannot darken a double black node")
	}
	panic("treemap: invalid color")
}

// lessBlack returns the color one blackness unit lighter than c.
func (c Color) lessBlack() Color {
	switch c {
	case NegativeBlack:
		panic("treemap: cannot lighten a negative black node")
	case Red:
		return NegativeBlack
	case Black:
		return Red
	case DoubleBlack:
		return Black
	}
	panic("treemap: invalid color")
}

// A Node represents a node in the tree. Nodes are immutable once
// constructed; an operation that would alter a node builds a replacement
// instead, sharing the untouched children with every prior version of
// the tree.
type Node struct {
	Elem        Comparable
	Value       interface{}
	Left, Right *Node
	Color       Color
}

// doubleBlackLeaf is the transient double black empty leaf. It exists
// only while a deletion is in flight and never appears in a returned
// tree. A nil *Node is the ordinary black empty leaf.
var doubleBlackLeaf = &Node{Color: DoubleBlack}

// color returns the effective color of a Node. A nil node is black.
func (n *Node) color() Color {
	if n == nil {
		return Black
	}
	return n.Color
}

func (n *Node) isLeaf() bool {
	return n == nil || n == doubleBlackLeaf
}

func (n *Node) isDoubleBlack() bool {
	return n != nil && n.Color == DoubleBlack
}

// lessBlack returns the tree one blackness unit lighter than n.
func (n *Node) lessBlack() *Node {
	if n == nil {
		panic("treemap: cannot lighten an empty leaf")
	}
	if n == doubleBlackLeaf {
		return nil
	}
	return &Node{Elem: n.Elem, Value: n.Value, Left: n.Left, Right: n.Right, Color: n.Color.lessBlack()}
}

// redden returns a copy of n colored red.
func (n *Node) redden() *Node {
	if n.isLeaf() {
		panic("treemap: cannot redden an empty leaf")
	}
	return &Node{Elem: n.Elem, Value: n.Value, Left: n.Left, Right: n.Right, Color: Red}
}

// blacken returns n with its root colored black, discharging any
// residual double blackness. Legal only at the root of the whole tree,
// which contributes no constraint to a parent.
func (n *Node) blacken() *Node {
	if n.isLeaf() {
		return nil
	}
	if n.Color == Black {
		return n
	}
	return &Node{Elem: n.Elem, Value: n.Value, Left: n.Left, Right: n.Right, Color: Black}
}

// A Tree manages the root node of a persistent Red Black tree. The zero
// value is an empty map. Methods that modify the map return a new *Tree
// sharing all untouched nodes with the receiver.
type Tree struct {
	Root *Node
}

// Empty returns an empty map.
func Empty() *Tree {
	return &Tree{}
}

// Singleton returns a map holding value under key and nothing else.
func Singleton(key Comparable, value interface{}) *Tree {
	return &Tree{Root: &Node{Elem: key, Value: value, Color: Black}}
}

// IsEmpty returns whether the Tree holds no elements.
func (t *Tree) IsEmpty() bool {
	return t.Root == nil
}

// Len returns the number of elements stored in the Tree. The count is
// not cached; Len is a full traversal.
func (t *Tree) Len() int {
	var n int
	t.Do(func(Comparable, interface{}) bool {
		n++
		return false
	})
	return n
}

// Get returns the value stored under q and whether it is present.
func (t *Tree) Get(q Comparable) (interface{}, bool) {
	n := t.Root.search(q)
	if n == nil {
		return nil, false
	}
	return n.Value, true
}

// Member returns whether a value is stored under q.
func (t *Tree) Member(q Comparable) bool {
	return t.Root.search(q) != nil
}

func (n *Node) search(q Comparable) *Node {
	for n != nil {
		switch c := q.Compare(n.Elem); {
		case c == 0:
			return n
		case c < 0:
			n = n.Left
		default:
			n = n.Right
		}
	}
	return nil
}

// Min returns the minimum key stored in the tree, or nil if the tree is
// empty.
func (t *Tree) Min() Comparable {
	if t.Root == nil {
		return nil
	}
	return t.Root.min().Elem
}

func (n *Node) min() *Node {
	for ; n.Left != nil; n = n.Left {
	}
	return n
}

// Max returns the maximum key stored in the tree, or nil if the tree is
// empty.
func (t *Tree) Max() Comparable {
	if t.Root == nil {
		return nil
	}
	return t.Root.max().Elem
}

func (n *Node) max() *Node {
	for ; n.Right != nil; n = n.Right {
	}
	return n
}

// Floor returns the greatest key equal to or less than the query q
// according to q.Compare(), or nil if no such key is stored.
func (t *Tree) Floor(q Comparable) Comparable {
	n := t.Root.floor(q)
	if n == nil {
		return nil
	}
	return n.Elem
}

func (n *Node) floor(q Comparable) *Node {
	if n == nil {
		return nil
	}
	switch c := q.Compare(n.Elem); {
	case c == 0:
		return n
	case c < 0:
		return n.Left.floor(q)
	default:
		if r := n.Right.floor(q); r != nil {
			return r
		}
	}
	return n
}

// Ceil returns the smallest key equal to or greater than the query q
// according to q.Compare(), or nil if no such key is stored.
func (t *Tree) Ceil(q Comparable) Comparable {
	n := t.Root.ceil(q)
	if n == nil {
		return nil
	}
	return n.Elem
}

func (n *Node) ceil(q Comparable) *Node {
	if n == nil {
		return nil
	}
	switch c := q.Compare(n.Elem); {
	case c == 0:
		return n
	case c > 0:
		return n.Right.ceil(q)
	default:
		if l := n.Left.ceil(q); l != nil {
			return l
		}
	}
	return n
}

// An AlterFunc maps the value currently stored under a key, or its
// absence, to the value to store, or absence to request removal. It is
// called with the current value and true when the key is present, and
// with nil and false when it is not.
type AlterFunc func(v interface{}, ok bool) (interface{}, bool)

// status reports how an update changed the black height of a subtree.
type status uint8

const (
	unchanged status = iota // same black height, possibly new contents
	grew                    // a node was added; correct with balance
	shrank                  // a node was removed; correct with bubble
)

// Insert returns a new version of the map with value stored under key,
// replacing any existing value.
func (t *Tree) Insert(key Comparable, value interface{}) *Tree {
	return t.Update(key, func(interface{}, bool) (interface{}, bool) {
		return value, true
	})
}

// Remove returns a new version of the map with no value stored under
// key. Removing an absent key returns the receiver.
func (t *Tree) Remove(key Comparable) *Tree {
	return t.Update(key, func(interface{}, bool) (interface{}, bool) {
		return nil, false
	})
}

// Update returns a new version of the map with the entry for key
// transformed by fn, unifying insertion, replacement and removal in one
// traversal.
func (t *Tree) Update(key Comparable, fn AlterFunc) *Tree {
	root, s := t.Root.update(key, fn)
	if s == unchanged {
		if root == t.Root {
			return t
		}
		return &Tree{Root: root}
	}
	return &Tree{Root: root.blacken()}
}

func (n *Node) update(key Comparable, fn AlterFunc) (*Node, status) {
	if n == nil {
		v, ok := fn(nil, false)
		if !ok {
			return nil, unchanged
		}
		return &Node{Elem: key, Value: v, Color: Red}, grew
	}
	switch c := key.Compare(n.Elem); {
	case c == 0:
		v, ok := fn(n.Value, true)
		if !ok {
			return n.rem()
		}
		return &Node{Elem: n.Elem, Value: v, Left: n.Left, Right: n.Right, Color: n.Color}, unchanged
	case c < 0:
		left, s := n.Left.update(key, fn)
		if s == unchanged && left == n.Left {
			return n, unchanged
		}
		return rebuild(&Node{Elem: n.Elem, Value: n.Value, Left: left, Right: n.Right, Color: n.Color}, s)
	default:
		right, s := n.Right.update(key, fn)
		if s == unchanged && right == n.Right {
			return n, unchanged
		}
		return rebuild(&Node{Elem: n.Elem, Value: n.Value, Left: n.Left, Right: right, Color: n.Color}, s)
	}
}

// rebuild applies the rebalancing step selected by the child's status to
// a freshly built node.
func rebuild(n *Node, s status) (*Node, status) {
	switch s {
	case grew:
		return n.balance(), grew
	case shrank:
		return n.bubble(), shrank
	}
	return n, unchanged
}

// rem excises n, which holds the key being removed. Only three shapes
// are legal under the tree invariants; any other indicates the
// invariants were already broken.
func (n *Node) rem() (*Node, status) {
	left, right := n.Left, n.Right
	switch {
	case left == nil && right == nil:
		switch n.Color {
		case Red:
			return nil, unchanged
		case Black:
			return doubleBlackLeaf, shrank
		}
	case left == nil:
		if n.Color == Black && right.Color == Red {
			return &Node{Elem: right.Elem, Value: right.Value, Left: right.Left, Right: right.Right, Color: Black}, unchanged
		}
	case right == nil:
		if n.Color == Black && left.Color == Red {
			return &Node{Elem: left.Elem, Value: left.Value, Left: left.Left, Right: left.Right, Color: Black}, unchanged
		}
	default:
		pred := left.max()
		nl, s := left.removeMax()
		return rebuild(&Node{Elem: pred.Elem, Value: pred.Value, Left: nl, Right: right, Color: n.Color}, s)
	}
	panic("treemap: remove: tree invariant violated")
}

// removeMax removes the maximum element of the subtree rooted at n.
func (n *Node) removeMax() (*Node, status) {
	if n.Right == nil {
		return n.rem()
	}
	right, s := n.Right.removeMax()
	return rebuild(&Node{Elem: n.Elem, Value: n.Value, Left: n.Left, Right: right, Color: n.Color}, s)
}

// bubble moves a double black child's extra blackness unit into n,
// lightening both children, and rebalances the result. This is how a
// shrink climbs the tree. A node with no double black child is returned
// unchanged.
func (n *Node) bubble() *Node {
	if n.Left.isDoubleBlack() || n.Right.isDoubleBlack() {
		d := &Node{
			Elem:  n.Elem,
			Value: n.Value,
			Left:  n.Left.lessBlack(),
			Right: n.Right.lessBlack(),
			Color: n.Color.moreBlack(),
		}
		return d.balance()
	}
	return n
}

// balance resolves the four double red shapes below a black or double
// black node, and the two negative black shapes below a double black
// node. A node matching none of the six shapes is returned unchanged.
//
// The double red cases are Okasaki's:
//  balance B (T R (T R a x b) y c) z d = T R (T B a x b) y (T B c z d)
//  balance B (T R a x (T R b y c)) z d = T R (T B a x b) y (T B c z d)
//  balance B a x (T R (T R b y c) z d) = T R (T B a x b) y (T B c z d)
//  balance B a x (T R b y (T R c z d)) = T R (T B a x b) y (T B c z d)
// each also taken with a double black root, producing a black one. The
// negative black cases redistribute a blackness unit through the
// sibling:
//  balance BB (T NB a@(T B _ _ _) x (T B b y c)) z d
//      = T B (balance B (redden a) x b) y (T B c z d)
//  balance BB a x (T NB (T B b y c) z d@(T B _ _ _))
//      = T B (T B a x b) y (balance B c z (redden d))
func (n *Node) balance() *Node {
	if n.Color == Black || n.Color == DoubleBlack {
		promoted := n.Color.lessBlack()
		if l := n.Left; l.color() == Red {
			if ll := l.Left; ll.color() == Red {
				return &Node{
					Elem: l.Elem, Value: l.Value, Color: promoted,
					Left:  &Node{Elem: ll.Elem, Value: ll.Value, Left: ll.Left, Right: ll.Right, Color: Black},
					Right: &Node{Elem: n.Elem, Value: n.Value, Left: l.Right, Right: n.Right, Color: Black},
				}
			}
			if lr := l.Right; lr.color() == Red {
				return &Node{
					Elem: lr.Elem, Value: lr.Value, Color: promoted,
					Left:  &Node{Elem: l.Elem, Value: l.Value, Left: l.Left, Right: lr.Left, Color: Black},
					Right: &Node{Elem: n.Elem, Value: n.Value, Left: lr.Right, Right: n.Right, Color: Black},
				}
			}
		}
		if r := n.Right; r.color() == Red {
			if rl := r.Left; rl.color() == Red {
				return &Node{
					Elem: rl.Elem, Value: rl.Value, Color: promoted,
					Left:  &Node{Elem: n.Elem, Value: n.Value, Left: n.Left, Right: rl.Left, Color: Black},
					Right: &Node{Elem: r.Elem, Value: r.Value, Left: rl.Right, Right: r.Right, Color: Black},
				}
			}
			if rr := r.Right; rr.color() == Red {
				return &Node{
					Elem: r.Elem, Value: r.Value, Color: promoted,
					Left:  &Node{Elem: n.Elem, Value: n.Value, Left: n.Left, Right: r.Left, Color: Black},
					Right: &Node{Elem: rr.Elem, Value: rr.Value, Left: rr.Left, Right: rr.Right, Color: Black},
				}
			}
		}
	}
	if n.Color == DoubleBlack {
		if l := n.Left; l.color() == NegativeBlack {
			ll, lr := l.Left, l.Right
			if !ll.isLeaf() && ll.Color == Black && !lr.isLeaf() && lr.Color == Black {
				inner := &Node{Elem: l.Elem, Value: l.Value, Left: ll.redden(), Right: lr.Left, Color: Black}
				return &Node{
					Elem: lr.Elem, Value: lr.Value, Color: Black,
					Left:  inner.balance(),
					Right: &Node{Elem: n.Elem, Value: n.Value, Left: lr.Right, Right: n.Right, Color: Black},
				}
			}
		}
		if r := n.Right; r.color() == NegativeBlack {
			rl, rr := r.Left, r.Right
			if !rl.isLeaf() && rl.Color == Black && !rr.isLeaf() && rr.Color == Black {
				inner := &Node{Elem: r.Elem, Value: r.Value, Left: rl.Right, Right: rr.redden(), Color: Black}
				return &Node{
					Elem: rl.Elem, Value: rl.Value, Color: Black,
					Left:  &Node{Elem: n.Elem, Value: n.Value, Left: n.Left, Right: rl.Left, Color: Black},
					Right: inner.balance(),
				}
			}
		}
	}
	return n
}

// An Operation is a function that operates on a key and its value. If
// done is returned true, the Operation is indicating that no further
// work needs to be done and so the Do function should traverse no
// further.
type Operation func(Comparable, interface{}) (done bool)

// Do performs fn on all entries stored in the tree in ascending key
// order. A boolean is returned indicating whether the traversal was
// interrupted by an Operation returning true.
func (t *Tree) Do(fn Operation) bool {
	if t.Root == nil {
		return false
	}
	return t.Root.do(fn)
}

func (n *Node) do(fn Operation) (done bool) {
	if n.Left != nil {
		done = n.Left.do(fn)
		if done {
			return
		}
	}
	done = fn(n.Elem, n.Value)
	if done {
		return
	}
	if n.Right != nil {
		done = n.Right.do(fn)
	}
	return
}

// DoReverse performs fn on all entries stored in the tree in descending
// key order. A boolean is returned indicating whether the traversal was
// interrupted by an Operation returning true.
func (t *Tree) DoReverse(fn Operation) bool {
	if t.Root == nil {
		return false
	}
	return t.Root.doReverse(fn)
}

func (n *Node) doReverse(fn Operation) (done bool) {
	if n.Right != nil {
		done = n.Right.doReverse(fn)
		if done {
			return
		}
	}
	done = fn(n.Elem, n.Value)
	if done {
		return
	}
	if n.Left != nil {
		done = n.Left.doReverse(fn)
	}
	return
}

// DoRange performs fn on all entries stored in the tree over the
// interval [from, to) in ascending key order. If to equals from the
// call is a no-op, and if to is less than from DoRange will panic. A
// boolean is returned indicating whether the traversal was interrupted
// by an Operation returning true.
func (t *Tree) DoRange(fn Operation, from, to Comparable) bool {
	if t.Root == nil {
		return false
	}
	switch order := from.Compare(to); {
	case order < 0:
		return t.Root.doRange(fn, from, to)
	case order > 0:
		panic("treemap: inverted range")
	}
	return false
}

func (n *Node) doRange(fn Operation, lo, hi Comparable) (done bool) {
	lc, hc := lo.Compare(n.Elem), hi.Compare(n.Elem)
	if lc <= 0 && n.Left != nil {
		done = n.Left.doRange(fn, lo, hi)
		if done {
			return
		}
	}
	if lc <= 0 && hc > 0 {
		done = fn(n.Elem, n.Value)
		if done {
			return
		}
	}
	if hc > 0 && n.Right != nil {
		done = n.Right.doRange(fn, lo, hi)
	}
	return
}
