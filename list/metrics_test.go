package list

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasuredListCountsOperations(t *testing.T) {
	m := Measure[int](New[int]())

	appends := testutil.ToFloat64(operationCounter.WithLabelValues("append"))
	pops := testutil.ToFloat64(operationCounter.WithLabelValues("pop"))

	m.Append(1)
	m.Append(2)
	_, err := m.Pop()
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(operationCounter.WithLabelValues("append"))-appends)
	assert.Equal(t, 1.0, testutil.ToFloat64(operationCounter.WithLabelValues("pop"))-pops)
}

func TestMeasuredListDelegates(t *testing.T) {
	m := Measure[string](New[string]())
	m.Append("a")
	m.Append("c")
	_, err := m.InsertAt("b", 1)
	require.NoError(t, err)

	assert.Equal(t, "(a) -> (b) -> (c) -> null", m.String())
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 1, m.Find("b"))
	assert.True(t, m.Contains("c"))

	h, err := m.Head()
	require.NoError(t, err)
	assert.Equal(t, "a", h.Value())

	tl, err := m.Tail()
	require.NoError(t, err)
	assert.Equal(t, "c", tl.Value())

	assert.True(t, m.RemoveValue("b"))
	m.Clear()
	assert.Equal(t, "null", m.String())
}
