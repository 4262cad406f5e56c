// Package memory - хранилище ресурсов в памяти процесса.
// Записи хранятся в порядке вставки, идентификаторы выдаются монотонным счетчиком.
package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/shenikar/pop_field_ops/internal/models"
	"github.com/shenikar/pop_field_ops/internal/repository"
)

// Table - упорядоченная коллекция записей одного типа.
// M - тип модели, P - указатель на нее, реализующий models.Entity.
type Table[M any, P interface {
	*M
	models.Entity
}] struct {
	mu      sync.RWMutex
	name    string
	items   []P
	counter int64
}

// NewTable создает пустую таблицу
func NewTable[M any, P interface {
	*M
	models.Entity
}](name string) *Table[M, P] {
	return &Table[M, P]{
		name:  name,
		items: make([]P, 0),
	}
}

// Create добавляет запись и выдает ей новый идентификатор
func (t *Table[M, P]) Create(_ context.Context, item P) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conflicts(item, 0) {
		return errors.Wrapf(repository.ErrAlreadyExists, "%s with key %q", t.name, item.UniqueKey())
	}

	t.counter++
	item.SetID(t.counter)
	t.items = append(t.items, clone[M, P](item))
	return nil
}

// GetByID возвращает копию записи
func (t *Table[M, P]) GetByID(_ context.Context, id int64) (P, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return nil, errors.Wrapf(repository.ErrNotFound, "%s with id %d", t.name, id)
	}
	return clone[M, P](t.items[idx]), nil
}

// Update заменяет запись целиком, позиция в порядке вставки сохраняется
func (t *Table[M, P]) Update(_ context.Context, item P) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(item.GetID())
	if idx < 0 {
		return errors.Wrapf(repository.ErrNotFound, "%s with id %d", t.name, item.GetID())
	}
	if t.conflicts(item, item.GetID()) {
		return errors.Wrapf(repository.ErrAlreadyExists, "%s with key %q", t.name, item.UniqueKey())
	}

	t.items[idx] = clone[M, P](item)
	return nil
}

// Delete удаляет запись
func (t *Table[M, P]) Delete(_ context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx < 0 {
		return errors.Wrapf(repository.ErrNotFound, "%s with id %d", t.name, id)
	}
	t.items = append(t.items[:idx], t.items[idx+1:]...)
	return nil
}

// List фильтрует записи и возвращает запрошенную страницу и общее количество совпадений
func (t *Table[M, P]) List(_ context.Context, q models.ListQuery) ([]P, int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	matched := make([]P, 0, len(t.items))
	for _, item := range t.items {
		if q.Matches(item) {
			matched = append(matched, item)
		}
	}

	page := models.Paginate(matched, q)
	for i := range page {
		page[i] = clone[M, P](page[i])
	}
	return page, len(matched), nil
}

// All возвращает все записи в порядке вставки
func (t *Table[M, P]) All(_ context.Context) ([]P, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]P, len(t.items))
	for i, item := range t.items {
		out[i] = clone[M, P](item)
	}
	return out, nil
}

// Count возвращает количество записей
func (t *Table[M, P]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

func (t *Table[M, P]) indexOf(id int64) int {
	for i, item := range t.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// conflicts проверяет уникальный ключ среди остальных записей
func (t *Table[M, P]) conflicts(item P, selfID int64) bool {
	key := item.UniqueKey()
	if key == "" {
		return false
	}
	for _, existing := range t.items {
		if existing.GetID() != selfID && existing.UniqueKey() == key {
			return true
		}
	}
	return false
}

// detacher реализуют модели со срезами, которые нельзя разделять между копиями
type detacher interface {
	Detach()
}

// clone копирует запись, чтобы вызывающий код не менял хранимую
func clone[M any, P interface {
	*M
	models.Entity
}](item P) P {
	c := *item
	out := P(&c)
	if d, ok := any(out).(detacher); ok {
		d.Detach()
	}
	return out
}
