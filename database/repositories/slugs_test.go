package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFreeCode(t *testing.T) {
	t.Run("should keep the base if it is free", func(t *testing.T) {
		assert.Equal(t, "riyadh", nextFreeCode("riyadh", []string{"riyadh-1"}))
	})

	t.Run("should append the first free suffix", func(t *testing.T) {
		assert.Equal(t, "riyadh-2", nextFreeCode("riyadh", []string{"riyadh", "riyadh-1", "riyadh-3"}))
	})

	t.Run("should work without any taken codes", func(t *testing.T) {
		assert.Equal(t, "jeddah", nextFreeCode("jeddah", nil))
	})
}
