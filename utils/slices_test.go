package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlices(t *testing.T) {
	s := []int{4, 8, 15, 16}
	require.Equal(t, 2, FindIndex(s, 15))
	require.Equal(t, -1, FindIndex(s, 23))

	require.Equal(t, []int{4, 15, 16}, RemoveAt(s, 1))
	require.Equal(t, []int{4, 8, 15, 16}, s, "RemoveAt must not touch its input")

	require.Equal(t, []int{4, 8, 16}, Filter(s, func(v int) bool { return v%2 == 0 }))
	require.Nil(t, Filter(s, func(v int) bool { return v > 100 }))
}
