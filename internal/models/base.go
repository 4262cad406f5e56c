package models

import "time"

// Entity - общий контракт ресурсов, с которым работают хранилища и сервисы
type Entity interface {
	GetID() int64
	SetID(id int64)
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
	SetTimestamps(createdAt, updatedAt time.Time)
	// SearchFields возвращает значения полей, по которым работает свободный поиск
	SearchFields() []string
	// FilterValue возвращает значение категориального фильтра
	FilterValue(key string) (string, bool)
	// UniqueKey возвращает значение уникального поля, пустая строка - без ограничения
	UniqueKey() string
}

// Base - поля, общие для всех ресурсов
type Base struct {
	ID        int64     `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (b *Base) GetID() int64 {
	return b.ID
}

func (b *Base) SetID(id int64) {
	b.ID = id
}

func (b *Base) GetCreatedAt() time.Time {
	return b.CreatedAt
}

func (b *Base) GetUpdatedAt() time.Time {
	return b.UpdatedAt
}

func (b *Base) SetTimestamps(createdAt, updatedAt time.Time) {
	b.CreatedAt = createdAt
	b.UpdatedAt = updatedAt
}

func (b *Base) UniqueKey() string {
	return ""
}
