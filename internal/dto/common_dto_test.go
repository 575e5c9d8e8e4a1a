package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Run("exact fit", func(t *testing.T) {
		p := NewPagination(1, 10, 30)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("partial last page rounds up", func(t *testing.T) {
		p := NewPagination(2, 10, 31)
		assert.Equal(t, 4, p.TotalPages)
		assert.Equal(t, int64(31), p.Total)
	})

	t.Run("empty result", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
	})
}
