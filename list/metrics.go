package list

import (
	"github.com/prometheus/client_golang/prometheus"
)

var operationCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "linkedlist_operations_total",
		Help: "linked list operations by name",
	},
	[]string{"op"},
)

func init() {
	prometheus.MustRegister(operationCounter)
}

// MeasuredList wraps a List and counts every call in a prometheus
// counter vec labelled by operation name. It delegates everything to
// the wrapped list and adds no behavior of its own.
type MeasuredList[T comparable] struct {
	inner List[T]
}

// Measure wraps the given list with operation counting.
func Measure[T comparable](inner List[T]) *MeasuredList[T] {
	return &MeasuredList[T]{inner: inner}
}

var _ List[int] = (*MeasuredList[int])(nil)

func (m *MeasuredList[T]) Prepend(v T) *Node[T] {
	operationCounter.WithLabelValues("prepend").Inc()
	return m.inner.Prepend(v)
}

func (m *MeasuredList[T]) Append(v T) *Node[T] {
	operationCounter.WithLabelValues("append").Inc()
	return m.inner.Append(v)
}

func (m *MeasuredList[T]) InsertAt(v T, index int) (*Node[T], error) {
	operationCounter.WithLabelValues("insert_at").Inc()
	return m.inner.InsertAt(v, index)
}

func (m *MeasuredList[T]) Pop() (T, error) {
	operationCounter.WithLabelValues("pop").Inc()
	return m.inner.Pop()
}

func (m *MeasuredList[T]) RemoveAt(index int) (T, error) {
	operationCounter.WithLabelValues("remove_at").Inc()
	return m.inner.RemoveAt(index)
}

func (m *MeasuredList[T]) RemoveValue(v T) bool {
	operationCounter.WithLabelValues("remove_value").Inc()
	return m.inner.RemoveValue(v)
}

func (m *MeasuredList[T]) At(index int) (*Node[T], error) {
	operationCounter.WithLabelValues("at").Inc()
	return m.inner.At(index)
}

func (m *MeasuredList[T]) Find(v T) int {
	operationCounter.WithLabelValues("find").Inc()
	return m.inner.Find(v)
}

func (m *MeasuredList[T]) Contains(v T) bool {
	operationCounter.WithLabelValues("contains").Inc()
	return m.inner.Contains(v)
}

func (m *MeasuredList[T]) Head() (*Node[T], error) {
	operationCounter.WithLabelValues("head").Inc()
	return m.inner.Head()
}

func (m *MeasuredList[T]) Tail() (*Node[T], error) {
	operationCounter.WithLabelValues("tail").Inc()
	return m.inner.Tail()
}

func (m *MeasuredList[T]) Size() int {
	operationCounter.WithLabelValues("size").Inc()
	return m.inner.Size()
}

func (m *MeasuredList[T]) ToSlice() []T {
	operationCounter.WithLabelValues("to_slice").Inc()
	return m.inner.ToSlice()
}

func (m *MeasuredList[T]) Each(callback func(index int, v T) bool) {
	operationCounter.WithLabelValues("each").Inc()
	m.inner.Each(callback)
}

func (m *MeasuredList[T]) Clear() {
	operationCounter.WithLabelValues("clear").Inc()
	m.inner.Clear()
}

func (m *MeasuredList[T]) String() string {
	operationCounter.WithLabelValues("string").Inc()
	return m.inner.String()
}
