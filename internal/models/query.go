package models

import (
	"math"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListQuery - параметры выборки списка ресурсов
type ListQuery struct {
	Search  string
	Filters map[string]string
	Page    int
	Limit   int
}

// Normalize подставляет значения по умолчанию вместо отсутствующих или некорректных
func (q ListQuery) Normalize(defaultLimit, maxLimit int) ListQuery {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// Offset возвращает смещение первой записи страницы.
// При переполнении смещение упирается в math.MaxInt: такая страница просто пустая.
func (q ListQuery) Offset() int {
	if q.Page < 2 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// Matches проверяет запись на соответствие поиску (OR по полям) и фильтрам (AND)
func (q ListQuery) Matches(e Entity) bool {
	for key, want := range q.Filters {
		got, ok := e.FilterValue(key)
		if !ok || got != want {
			return false
		}
	}

	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	for _, field := range e.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Page - страница результатов в формате ответа API
type Page[T any] struct {
	Dados        []T `json:"dados"`
	Total        int `json:"total"`
	Pagina       int `json:"pagina"`
	Limite       int `json:"limite"`
	TotalPaginas int `json:"total_paginas"`
}

// NewPage собирает страницу и считает количество страниц
func NewPage[T any](items []T, total int, q ListQuery) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &Page[T]{
		Dados:        items,
		Total:        total,
		Pagina:       q.Page,
		Limite:       q.Limit,
		TotalPaginas: TotalPages(total, q.Limit),
	}
}

// TotalPages = ceil(total/limit)
func TotalPages(total, limit int) int {
	if limit < 1 || total < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Paginate вырезает страницу из уже отфильтрованного набора
func Paginate[T any](items []T, q ListQuery) []T {
	start := q.Offset()
	if start >= len(items) {
		return make([]T, 0)
	}
	end := len(items)
	if q.Limit > 0 && q.Limit < end-start {
		end = start + q.Limit
	}
	page := make([]T, end-start)
	copy(page, items[start:end])
	return page
}
