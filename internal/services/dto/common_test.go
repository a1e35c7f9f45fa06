package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQueryNormalize(t *testing.T) {
	q := &PageQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.Limit)
	assert.Equal(t, 0, q.Offset())

	q = &PageQuery{Page: -3, Limit: -1}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.Limit)

	q = &PageQuery{Page: 4, Limit: 500}
	q.Normalize()
	assert.Equal(t, 4, q.Page)
	assert.Equal(t, MaxPageSize, q.Limit)
	assert.Equal(t, 3*MaxPageSize, q.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(45, PageQuery{Page: 2, Limit: 20})
	assert.EqualValues(t, 45, p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(0, PageQuery{Page: 1, Limit: 20})
	assert.Equal(t, 0, p.TotalPages)

	p = NewPagination(20, PageQuery{Page: 1, Limit: 20})
	assert.Equal(t, 1, p.TotalPages)
}
