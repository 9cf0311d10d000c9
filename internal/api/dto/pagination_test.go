package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPageRequestClampsPage(t *testing.T) {
	require.Equal(t, 1, NewPageRequest(0, 20).Page)
	require.Equal(t, 1, NewPageRequest(-5, 20).Page)
	require.Equal(t, 3, NewPageRequest(3, 20).Page)
}

func TestNewPageRequestDefaultsLimit(t *testing.T) {
	require.Equal(t, DefaultPageLimit, NewPageRequest(1, 0).Limit)
	require.Equal(t, DefaultPageLimit, NewPageRequest(1, -1).Limit)
	require.Equal(t, 50, NewPageRequest(1, 50).Limit)
}

func TestPageRequestOffset(t *testing.T) {
	require.Equal(t, 0, NewPageRequest(1, 20).Offset())
	require.Equal(t, 20, NewPageRequest(2, 20).Offset())
	require.Equal(t, 90, NewPageRequest(10, 10).Offset())
}

func TestNewPaginationArithmetic(t *testing.T) {
	p := NewPagination(NewPageRequest(2, 20), 45)
	require.Equal(t, 2, p.Current)
	require.Equal(t, 3, p.Total)
	require.True(t, p.HasNext)
	require.True(t, p.HasPrev)

	first := NewPagination(NewPageRequest(1, 20), 45)
	require.False(t, first.HasPrev)
	require.True(t, first.HasNext)

	last := NewPagination(NewPageRequest(3, 20), 45)
	require.False(t, last.HasNext)
	require.True(t, last.HasPrev)
}

func TestNewPaginationExactMultiple(t *testing.T) {
	p := NewPagination(NewPageRequest(2, 20), 40)
	require.Equal(t, 2, p.Total)
	require.False(t, p.HasNext)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(NewPageRequest(1, 20), 0)
	require.Equal(t, 0, p.Total)
	require.False(t, p.HasNext)
	require.False(t, p.HasPrev)
}
