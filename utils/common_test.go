package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyThenNil(t *testing.T) {
	t.Run("should return nil for blank strings", func(t *testing.T) {
		assert.Nil(t, EmptyThenNil(""))
		assert.Nil(t, EmptyThenNil("  "))
	})
	t.Run("should keep the value otherwise", func(t *testing.T) {
		assert.Equal(t, "10.0.0.1", *EmptyThenNil("10.0.0.1"))
	})
}

func TestSliceHelpers(t *testing.T) {
	t.Run("should map every element", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, Map([]string{"a", "b"}, strings.ToUpper))
	})

	t.Run("should filter and keep the order", func(t *testing.T) {
		assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 }))
	})

	t.Run("should keep the first element of each key", func(t *testing.T) {
		type pair struct {
			key   string
			value int
		}
		res := UniqBy([]pair{{"a", 1}, {"b", 2}, {"a", 3}}, func(p pair) string { return p.key })
		assert.Equal(t, []pair{{"a", 1}, {"b", 2}}, res)
	})
}
