package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstFunc(t *testing.T) {
	isEven := func(i int) bool { return i%2 == 0 }

	v, ok := FirstFunc([]int{1, 3, 4, 6}, isEven)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = FirstFunc([]int{1, 3}, isEven)
	assert.False(t, ok)

	assert.True(t, AnyFunc([]int{5, 8}, isEven))
	assert.False(t, AnyFunc([]int{}, isEven))
	assert.True(t, IsEmpty([]int{}))
}
