package service

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/shenikar/pop_field_ops/internal/models"
)

// Fixture - начальные данные для заполнения хранилища
type Fixture struct {
	POPs        []*models.POP        `yaml:"pops"`
	Technicians []*models.Technician `yaml:"technicians"`
	Generators  []*models.Generator  `yaml:"generators"`
	Activities  []*models.Activity   `yaml:"activities"`
	Supplies    []*models.Supply     `yaml:"supplies"`
	Checklists  []*models.Checklist  `yaml:"checklists"`
}

// LoadFixture читает YAML-файл с начальными данными
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture разбирает YAML с начальными данными
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// RecordValidator проверяет запись фикстуры по тем же правилам, что и тело запроса API
type RecordValidator func(item models.Entity) error

// Seed проверяет всю фикстуру и создает записи через сервисы в порядке зависимостей.
// Ссылки pop_id и technician_id в фикстуре рассчитаны на пустое хранилище.
func (s *Services) Seed(ctx context.Context, f *Fixture, validate RecordValidator) error {
	if validate == nil {
		return errors.New("seed: record validator is required")
	}
	if err := f.validate(validate); err != nil {
		return err
	}

	if err := seedAll(ctx, s.POPs, f.POPs); err != nil {
		return err
	}
	if err := seedAll(ctx, s.Technicians, f.Technicians); err != nil {
		return err
	}
	if err := seedAll(ctx, s.Generators, f.Generators); err != nil {
		return err
	}
	if err := seedAll(ctx, s.Activities, f.Activities); err != nil {
		return err
	}
	if err := seedAll(ctx, s.Supplies, f.Supplies); err != nil {
		return err
	}
	return seedAll(ctx, s.Checklists.ResourceService, f.Checklists)
}

// SeedIfEmpty загружает фикстуру только в пустое хранилище, чтобы повторный старт не упирался в уникальные ключи
func (s *Services) SeedIfEmpty(ctx context.Context, f *Fixture, validate RecordValidator) (bool, error) {
	empty, err := s.Empty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		return false, nil
	}
	if err := s.Seed(ctx, f, validate); err != nil {
		return false, err
	}
	return true, nil
}

// Empty - в хранилище нет ни одной записи
func (s *Services) Empty(ctx context.Context) (bool, error) {
	counters := []interface {
		Count(ctx context.Context) (int, error)
	}{s.POPs, s.Technicians, s.Generators, s.Activities, s.Supplies, s.Checklists.ResourceService}

	for _, c := range counters {
		n, err := c.Count(ctx)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

func (f *Fixture) validate(validate RecordValidator) error {
	for _, group := range []struct {
		name  string
		items []models.Entity
	}{
		{"pop", entities(f.POPs)},
		{"technician", entities(f.Technicians)},
		{"generator", entities(f.Generators)},
		{"activity", entities(f.Activities)},
		{"supply", entities(f.Supplies)},
		{"checklist", entities(f.Checklists)},
	} {
		for i, item := range group.items {
			if err := validate(item); err != nil {
				return fmt.Errorf("invalid seed %s #%d: %w", group.name, i+1, err)
			}
		}
	}
	return nil
}

func entities[P models.Entity](items []P) []models.Entity {
	out := make([]models.Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func seedAll[M any, P interface {
	*M
	models.Entity
}](ctx context.Context, svc *ResourceService[M, P], items []P) error {
	for i, item := range items {
		if err := svc.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to seed %s #%d: %w", svc.Name(), i+1, err)
		}
	}
	return nil
}
