package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ListQuery
		wantPage  int
		wantLimit int
	}{
		{"defaults for zero values", ListQuery{}, 1, 10},
		{"negative values fall back", ListQuery{Page: -3, Limit: -1}, 1, 10},
		{"valid values kept", ListQuery{Page: 3, Limit: 25}, 3, 25},
		{"limit capped", ListQuery{Page: 1, Limit: 1000}, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize(DefaultLimit, MaxLimit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 2, TotalPages(2, 1))
	assert.Equal(t, 0, TotalPages(5, 0))
}

// Для любых корректных page/limit: total_paginas = ceil(total/limit), длина страницы <= limit
func TestPaginate_Properties(t *testing.T) {
	for total := 0; total <= 23; total++ {
		items := make([]int, total)
		for i := range items {
			items[i] = i + 1
		}
		for limit := 1; limit <= 7; limit++ {
			pages := TotalPages(total, limit)
			wantPages := total / limit
			if total%limit != 0 {
				wantPages++
			}
			assert.Equal(t, wantPages, pages, "total=%d limit=%d", total, limit)

			seen := 0
			for page := 1; page <= pages+1; page++ {
				q := ListQuery{Page: page, Limit: limit}
				got := Paginate(items, q)
				assert.LessOrEqual(t, len(got), limit)
				assert.NotNil(t, got)
				seen += len(got)
			}
			assert.Equal(t, total, seen, "total=%d limit=%d", total, limit)
		}
	}
}

func TestListQuery_Offset(t *testing.T) {
	tests := []struct {
		name string
		q    ListQuery
		want int
	}{
		{"first page", ListQuery{Page: 1, Limit: 10}, 0},
		{"third page", ListQuery{Page: 3, Limit: 10}, 20},
		{"zero page", ListQuery{Page: 0, Limit: 10}, 0},
		{"zero limit", ListQuery{Page: 4, Limit: 0}, 0},
		{"overflow", ListQuery{Page: 1000000000000000000, Limit: 10}, math.MaxInt},
		{"max page", ListQuery{Page: math.MaxInt, Limit: 100}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Offset())
		})
	}
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	for _, page := range []int{1000000000000000000, 922337203685477581, math.MaxInt} {
		got := Paginate(items, ListQuery{Page: page, Limit: 10})
		assert.NotNil(t, got)
		assert.Empty(t, got, "page=%d", page)
	}
}

func TestNewPage_EmptyItemsNotNull(t *testing.T) {
	q := ListQuery{Page: 5, Limit: 10}
	page := NewPage[*POP](nil, 3, q)

	assert.NotNil(t, page.Dados)
	assert.Empty(t, page.Dados)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 5, page.Pagina)
	assert.Equal(t, 10, page.Limite)
	assert.Equal(t, 1, page.TotalPaginas)
}

func TestListQuery_Matches(t *testing.T) {
	pop := &POP{Name: "POP Centro", Code: "POP-001", City: "Recife", Status: POPStatusActive}

	tests := []struct {
		name string
		q    ListQuery
		want bool
	}{
		{"empty query", ListQuery{}, true},
		{"search is case-insensitive", ListQuery{Search: "recife"}, true},
		{"search matches any field", ListQuery{Search: "pop-0"}, true},
		{"search misses", ListQuery{Search: "salvador"}, false},
		{"filter exact", ListQuery{Filters: map[string]string{"status": "active"}}, true},
		{"filter mismatch", ListQuery{Filters: map[string]string{"status": "inactive"}}, false},
		{"filter and search combined", ListQuery{Search: "centro", Filters: map[string]string{"status": "inactive"}}, false},
		{"unknown filter never matches", ListQuery{Filters: map[string]string{"pop_id": "1"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Matches(pop))
		})
	}
}

func TestListQuery_MatchesNumericFilter(t *testing.T) {
	a := &Activity{Title: "Troca de bateria", POPID: 12, Status: ActivityStatusPending}

	assert.True(t, ListQuery{Filters: map[string]string{"pop_id": "12"}}.Matches(a))
	assert.False(t, ListQuery{Filters: map[string]string{"pop_id": "1"}}.Matches(a))
}
