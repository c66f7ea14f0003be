// Package red implements the lazily-materialised, parent-linked view over
// an immutable green.Node tree (package green). Where a green node knows
// only its own length, a red node additionally knows its absolute start
// offset and its parent — computed on first use and cached, never stored
// in the green layer itself, so the same green tree can be shared and
// traversed concurrently by independent red views.
//
// A red node's parent pointer is non-owning: the red tree is a borrow over
// the green tree and must not outlive it. Nothing here keeps the green
// root alive beyond normal Go garbage-collection reachability through the
// caller's own reference.
package red

import (
	"sync"

	"github.com/maurice/pgn/green"
)

// Node is a red-tree wrapper: a green node, its parent (nil for the root),
// and its absolute start offset within the original source.
type Node struct {
	g      *green.Node
	parent *Node
	start  int

	once     sync.Once
	children []*Node
	prefix   []int // prefix[i] = cumulative length of children[:i]
}

// NewRoot wraps g as the root of a red tree at absolute offset 0.
func NewRoot(g *green.Node) *Node {
	return &Node{g: g, start: 0}
}

// Green returns the wrapped green node.
func (n *Node) Green() *green.Node { return n.g }

// Parent returns n's parent, or nil if n is the root.
func (n *Node) Parent() *Node { return n.parent }

// Start returns n's absolute start offset in the original source.
func (n *Node) Start() int { return n.start }

// End returns n's absolute end offset (exclusive) in the original source.
func (n *Node) End() int { return n.start + n.g.Length() }

// Text returns n's exact source text, recovered from source by absolute
// offset — green nodes never store their own text.
func (n *Node) Text(source []byte) string {
	return string(source[n.start:n.End()])
}

// Children lazily materialises and returns n's red children, each with its
// absolute start computed from n's start plus the lengths of its earlier
// siblings. Materialisation is idempotent and safe under concurrent
// readers of the same green subtree: sync.Once guarantees the table is
// built exactly once regardless of how many goroutines call Children
// concurrently.
func (n *Node) Children() []*Node {
	n.once.Do(n.buildChildren)
	return n.children
}

func (n *Node) buildChildren() {
	gc := n.g.Children()
	children := make([]*Node, len(gc))
	prefix := make([]int, len(gc)+1)
	offset := n.start
	for i, c := range gc {
		children[i] = &Node{g: c, parent: n, start: offset}
		offset += c.Length()
		prefix[i+1] = prefix[i] + c.Length()
	}
	n.children = children
	n.prefix = prefix
}

// ChildContaining returns the red child whose span contains the absolute
// offset, or nil if offset falls outside n's span or n is a leaf. Uses the
// per-node prefix-sum table to run in O(log k) for k children.
func (n *Node) ChildContaining(offset int) *Node {
	if offset < n.Start() || offset >= n.End() {
		return nil
	}
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	rel := offset - n.start
	// Binary search for the last prefix[i] <= rel.
	lo, hi := 0, len(children)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if n.prefix[mid] <= rel {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return children[lo]
}

// ElementAt descends from n to the deepest leaf red node whose span
// contains offset.
func (n *Node) ElementAt(offset int) *Node {
	cur := n
	for {
		child := cur.ChildContaining(offset)
		if child == nil {
			return cur
		}
		cur = child
	}
}

// ElementBefore returns the deepest leaf red node containing offset-1 —
// the element a cursor positioned at offset would be "inside" or
// immediately after; that leaf may extend past offset. An offset beyond
// the end of n's span is clamped to the last leaf. Returns nil if offset
// is at or before the start of n's span.
func (n *Node) ElementBefore(offset int) *Node {
	if offset <= n.Start() {
		return nil
	}
	probe := offset - 1
	if probe >= n.End() {
		probe = n.End() - 1
	}
	return n.ElementAt(probe)
}

// ElementAfter returns the deepest leaf red node containing offset; that
// leaf may start before offset. An offset before the start of n's span is
// clamped to the first leaf. Returns nil if offset is at or beyond the end
// of n's span.
func (n *Node) ElementAfter(offset int) *Node {
	if offset >= n.End() {
		return nil
	}
	probe := offset
	if probe < n.Start() {
		probe = n.Start()
	}
	return n.ElementAt(probe)
}
