package stack_test

import (
	"testing"

	"github.com/leonardinius/gocalc/internal/stack"
	"github.com/stretchr/testify/assert"
)

func TestStackLIFO(t *testing.T) {
	t.Parallel()

	s := stack.New[int](2)
	assert.True(t, s.IsEmpty())

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)

	for _, expected := range []int{3, 2, 1} {
		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, expected, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestStackReset(t *testing.T) {
	t.Parallel()

	var s stack.Stack[string]
	s.Push("a")
	s.Push("b")
	s.Reset()

	assert.True(t, s.IsEmpty())
	s.Push("c")
	v, _ := s.Peek()
	assert.Equal(t, "c", v)
}
