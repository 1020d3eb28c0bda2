package list

import (
	uuid "github.com/satori/go.uuid"
)

// Node is one cell of the chain: a value and the link to its successor.
// Nodes are created only by insertion operations and released only by
// deletion operations. Callers get read-only handles: the next link is
// not settable from outside the package, so a returned node cannot be
// used to splice the chain or introduce a cycle.
type Node[T comparable] struct {
	id    string
	value T
	next  *Node[T]
}

func newNode[T comparable](v T) *Node[T] {
	return &Node[T]{id: uuid.NewV4().String(), value: v}
}

// Value returns the payload stored in the node.
func (n *Node[T]) Value() T { return n.value }

// ID returns the identifier assigned at creation. It is unique per node
// and stays the same when the node shifts position in the list.
func (n *Node[T]) ID() string { return n.id }

// Next returns the successor node, or nil if this is the last node.
func (n *Node[T]) Next() *Node[T] { return n.next }
