package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)

	var anyv any
	anyv, ok = First([]any{nil})
	assert.True(t, ok)
	assert.Nil(t, anyv)
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 6))
	assert.True(t, IsInRange(0, 6, 6))
	assert.False(t, IsInRange(0, 7, 6))
	assert.False(t, IsInRange(0, -1, 6))
	assert.True(t, IsInRange(-1.5, 0.0, 1.5))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, int64(0), Abs(int64(0)))
	assert.InDelta(t, 2.5, Abs(-2.5), 0)
}
