package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 0}
	p.Validate()
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, 40, p.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 15, 31)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPagination(3, 15, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)

	p = NewPagination(1, 15, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPaginatedResult_NeverNilItems(t *testing.T) {
	res := NewPaginatedResult[int](nil, NewPagination(1, 15, 0))
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}
