package list

import (
	"fmt"
	"strings"
)

// LinkedList is a singly linked chain owned through its head pointer.
// Tail and size are derived by traversal instead of being cached, so
// there is no second pointer or counter to keep consistent with the
// chain. The zero value is an empty list ready to use.
//
// The list is not safe for concurrent use. A caller sharing one
// instance across goroutines must provide its own locking.
type LinkedList[T comparable] struct {
	head *Node[T]
}

// New creates an empty list.
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

var _ List[int] = (*LinkedList[int])(nil)

// Prepend puts a new node in front of the current head. O(1).
func (l *LinkedList[T]) Prepend(v T) *Node[T] {
	n := newNode(v)
	n.next = l.head
	l.head = n
	return n
}

// Append walks to the last node and links a new one after it. O(n),
// the cost of not caching a tail pointer.
func (l *LinkedList[T]) Append(v T) *Node[T] {
	n := newNode(v)
	if l.head == nil {
		l.head = n
		return n
	}
	cursor := l.head
	for cursor.next != nil {
		cursor = cursor.next
	}
	cursor.next = n
	return n
}

// InsertAt links a new node so that it ends up at the given index.
// Valid indices run 0..Size() inclusive: 0 behaves like Prepend and
// Size() like Append. An out-of-range index returns ErrIndexOutOfBounds
// and leaves the list untouched.
func (l *LinkedList[T]) InsertAt(v T, index int) (*Node[T], error) {
	if index < 0 {
		return nil, fmt.Errorf("insert at %d: %w", index, ErrIndexOutOfBounds)
	}
	if index == 0 {
		return l.Prepend(v), nil
	}
	// Stop on the predecessor at index-1.
	cursor := l.head
	for i := 0; i < index-1 && cursor != nil; i++ {
		cursor = cursor.next
	}
	if cursor == nil {
		return nil, fmt.Errorf("insert at %d: %w", index, ErrIndexOutOfBounds)
	}
	// The new node takes the predecessor's successor first, then the
	// predecessor is repointed, so no link is lost mid-update.
	n := newNode(v)
	n.next = cursor.next
	cursor.next = n
	return n, nil
}

// Pop unlinks the last node and returns its value. A zero-length list
// returns ErrEmptyList; Head and Tail follow the same policy.
func (l *LinkedList[T]) Pop() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	// Single node: the head itself is the last node.
	if l.head.next == nil {
		v := l.head.value
		l.head = nil
		return v, nil
	}
	// Stop on the second-to-last node.
	cursor := l.head
	for cursor.next.next != nil {
		cursor = cursor.next
	}
	v := cursor.next.value
	cursor.next = nil
	return v, nil
}

// RemoveAt unlinks the node at the given index and returns its value.
// Valid indices run 0..Size()-1. An out-of-range index returns
// ErrIndexOutOfBounds and leaves the list untouched.
func (l *LinkedList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || l.head == nil {
		return zero, fmt.Errorf("remove at %d: %w", index, ErrIndexOutOfBounds)
	}
	if index == 0 {
		v := l.head.value
		l.head = l.head.next
		return v, nil
	}
	cursor := l.head
	for i := 0; i < index-1 && cursor != nil; i++ {
		cursor = cursor.next
	}
	if cursor == nil || cursor.next == nil {
		return zero, fmt.Errorf("remove at %d: %w", index, ErrIndexOutOfBounds)
	}
	v := cursor.next.value
	cursor.next = cursor.next.next
	return v, nil
}

// RemoveValue unlinks the first node holding the given value. Returns
// false when no node matches.
func (l *LinkedList[T]) RemoveValue(v T) bool {
	if l.head == nil {
		return false
	}
	if l.head.value == v {
		l.head = l.head.next
		return true
	}
	cursor := l.head
	for cursor.next != nil && cursor.next.value != v {
		cursor = cursor.next
	}
	if cursor.next == nil {
		return false
	}
	cursor.next = cursor.next.next
	return true
}

// At returns the node at the given 0-based index by linear traversal.
func (l *LinkedList[T]) At(index int) (*Node[T], error) {
	if index < 0 {
		return nil, fmt.Errorf("at %d: %w", index, ErrIndexOutOfBounds)
	}
	cursor := l.head
	for i := 0; i < index && cursor != nil; i++ {
		cursor = cursor.next
	}
	if cursor == nil {
		return nil, fmt.Errorf("at %d: %w", index, ErrIndexOutOfBounds)
	}
	return cursor, nil
}

// Find scans from the head and returns the index of the first node
// holding the given value, or NotFound.
func (l *LinkedList[T]) Find(v T) int {
	index := 0
	for cursor := l.head; cursor != nil; cursor = cursor.next {
		if cursor.value == v {
			return index
		}
		index++
	}
	return NotFound
}

// Contains reports whether any node holds the given value.
func (l *LinkedList[T]) Contains(v T) bool {
	return l.Find(v) != NotFound
}

// Head returns the first node. O(1).
func (l *LinkedList[T]) Head() (*Node[T], error) {
	if l.head == nil {
		return nil, ErrEmptyList
	}
	return l.head, nil
}

// Tail returns the last node by full traversal. O(n).
func (l *LinkedList[T]) Tail() (*Node[T], error) {
	if l.head == nil {
		return nil, ErrEmptyList
	}
	cursor := l.head
	for cursor.next != nil {
		cursor = cursor.next
	}
	return cursor, nil
}

// Size counts the nodes from head to terminal marker. O(n).
func (l *LinkedList[T]) Size() int {
	count := 0
	for cursor := l.head; cursor != nil; cursor = cursor.next {
		count++
	}
	return count
}

// ToSlice returns the values front to back. An empty list returns nil.
func (l *LinkedList[T]) ToSlice() []T {
	var out []T
	for cursor := l.head; cursor != nil; cursor = cursor.next {
		out = append(out, cursor.value)
	}
	return out
}

// Each walks the list front to back, calling back with each index and
// value. Returning false stops the walk.
func (l *LinkedList[T]) Each(callback func(index int, v T) bool) {
	index := 0
	for cursor := l.head; cursor != nil; cursor = cursor.next {
		if !callback(index, cursor.value) {
			break
		}
		index++
	}
}

// Clear drops the whole chain.
func (l *LinkedList[T]) Clear() {
	l.head = nil
}

// String renders every value left to right separated by arrows and
// terminated by the marker, e.g. "(a) -> (b) -> (c) -> null". An empty
// list renders as just "null".
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	for cursor := l.head; cursor != nil; cursor = cursor.next {
		fmt.Fprintf(&sb, "(%v) -> ", cursor.value)
	}
	sb.WriteString("null")
	return sb.String()
}
