package list

// List is the operation set of a singly linked list. LinkedList is the
// chain-of-nodes implementation; MeasuredList wraps any List with
// per-operation counters.
type List[T comparable] interface {
	Prepend(v T) *Node[T]
	Append(v T) *Node[T]
	InsertAt(v T, index int) (*Node[T], error) // valid indices 0..Size() inclusive
	Pop() (T, error)                           // removes the last node
	RemoveAt(index int) (T, error)
	RemoveValue(v T) bool // unlinks the first node holding v

	At(index int) (*Node[T], error)
	Find(v T) int // first matching index, or NotFound
	Contains(v T) bool
	Head() (*Node[T], error)
	Tail() (*Node[T], error)
	Size() int

	ToSlice() []T
	Each(callback func(index int, v T) bool) // false stops the walk
	Clear()
	String() string
}
