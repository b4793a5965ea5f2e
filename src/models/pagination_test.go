package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPaginationDefaults(t *testing.T) {
	params := DefaultPagination()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, "createdAt", params.SortBy)
	assert.Equal(t, "desc", params.Order)
}

func TestSortOrder(t *testing.T) {
	t.Run("TestDescending", func(t *testing.T) {
		params := DefaultPagination()
		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, params.SortOrder())
	})

	t.Run("TestAscending", func(t *testing.T) {
		params := PaginationParams{SortBy: "title", Order: "asc"}
		assert.Equal(t, bson.D{{Key: "title", Value: 1}}, params.SortOrder())
	})

	t.Run("TestEmptyFieldFallsBack", func(t *testing.T) {
		params := PaginationParams{Order: "desc"}
		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, params.SortOrder())
	})
}

func TestGetSkip(t *testing.T) {
	params := PaginationParams{Page: 3, Limit: 10}
	assert.Equal(t, int64(20), params.GetSkip())
}

func TestNewPaginatedResponse(t *testing.T) {
	t.Run("TestMiddlePage", func(t *testing.T) {
		resp := NewPaginatedResponse(nil, 25, PaginationParams{Page: 2, Limit: 10})
		assert.Equal(t, 3, resp.TotalPages)
		assert.True(t, resp.HasNext)
		assert.True(t, resp.HasPrevious)
	})

	t.Run("TestLastPage", func(t *testing.T) {
		resp := NewPaginatedResponse(nil, 25, PaginationParams{Page: 3, Limit: 10})
		assert.False(t, resp.HasNext)
		assert.True(t, resp.HasPrevious)
	})

	t.Run("TestZeroLimit", func(t *testing.T) {
		resp := NewPaginatedResponse(nil, 25, PaginationParams{Page: 1, Limit: 0})
		assert.Equal(t, 0, resp.TotalPages)
		assert.False(t, resp.HasNext)
	})
}
