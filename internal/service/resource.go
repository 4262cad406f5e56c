package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/pop_field_ops/internal/models"
	"github.com/shenikar/pop_field_ops/internal/repository"
	"github.com/shenikar/pop_field_ops/internal/repository/cache"
	"github.com/shenikar/pop_field_ops/internal/webhook"
)

//go:generate mockgen -source=resource.go -destination=mocks/mock_service.go -package=mocks CRUDService,ChecklistManager,DashboardProvider

// Repository определяет контракт хранилища одного ресурса
type Repository[P models.Entity] interface {
	Create(ctx context.Context, item P) error
	GetByID(ctx context.Context, id int64) (P, error)
	Update(ctx context.Context, item P) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q models.ListQuery) ([]P, int, error)
	All(ctx context.Context) ([]P, error)
}

// CRUDService определяет контракт бизнес-логики ресурса
type CRUDService[P models.Entity] interface {
	Create(ctx context.Context, item P) error
	Get(ctx context.Context, id int64) (P, error)
	Update(ctx context.Context, item P) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q models.ListQuery) (*models.Page[P], error)
}

// Deps - общие зависимости сервисов
type Deps struct {
	Logger       *logrus.Logger
	Cache        cache.RecordCache
	Publisher    webhook.WebhookPublisher
	Now          func() time.Time
	DefaultLimit int
	MaxLimit     int
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = logrus.New()
	}
	if d.Cache == nil {
		d.Cache = cache.Nop{}
	}
	if d.Publisher == nil {
		d.Publisher = webhook.NopPublisher{}
	}
	if d.Now == nil {
		d.Now = func() time.Time { return time.Now().UTC() }
	}
	if d.DefaultLimit < 1 {
		d.DefaultLimit = models.DefaultLimit
	}
	if d.MaxLimit < 1 {
		d.MaxLimit = models.MaxLimit
	}
	return d
}

// ResourceService - CRUD одного ресурса: таймстемпы, кэш, события вебхуков
type ResourceService[M any, P interface {
	*M
	models.Entity
}] struct {
	name string
	repo Repository[P]
	deps Deps
}

func NewResourceService[M any, P interface {
	*M
	models.Entity
}](name string, repo Repository[P], deps Deps) *ResourceService[M, P] {
	return &ResourceService[M, P]{
		name: name,
		repo: repo,
		deps: deps.withDefaults(),
	}
}

// Name возвращает имя ресурса
func (s *ResourceService[M, P]) Name() string {
	return s.name
}

func (s *ResourceService[M, P]) log(method string) *logrus.Entry {
	return s.deps.Logger.WithFields(logrus.Fields{
		"service": s.name,
		"method":  method,
	})
}

// Create создает запись: значения по умолчанию, новый id и два таймстемпа
func (s *ResourceService[M, P]) Create(ctx context.Context, item P) error {
	log := s.log("Create")
	log.Info("Attempting to create a new record")

	now := s.deps.Now()
	prepare(item, now)
	item.SetTimestamps(now, now)

	if err := s.repo.Create(ctx, item); err != nil {
		log.WithError(err).Warn("Failed to create record in repository")
		return s.translate(err, "could not create")
	}

	log.WithField("id", item.GetID()).Info("Record created successfully")
	s.publish(ctx, webhook.ActionCreated, item.GetID(), item)
	return nil
}

// Get получает запись по id, сначала из кэша
func (s *ResourceService[M, P]) Get(ctx context.Context, id int64) (P, error) {
	log := s.log("Get").WithField("id", id)

	cached := P(new(M))
	hit, err := s.deps.Cache.Get(ctx, s.name, id, cached)
	if err != nil {
		log.WithError(err).Warn("Failed to read cache, falling back to repository")
	}
	if hit {
		log.Debug("Record served from cache")
		return cached, nil
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get record from repository")
		return nil, s.translate(err, "could not get")
	}

	if err := s.deps.Cache.Set(ctx, s.name, id, item); err != nil {
		log.WithError(err).Warn("Failed to cache record")
	}
	return item, nil
}

// Update сохраняет уже слитую с телом запроса запись, created_at и id не меняются
func (s *ResourceService[M, P]) Update(ctx context.Context, item P) error {
	id := item.GetID()
	log := s.log("Update").WithField("id", id)
	log.Info("Attempting to update record")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent record")
		return s.translate(err, "could not update")
	}

	now := s.deps.Now()
	prepare(item, now)
	item.SetTimestamps(existing.GetCreatedAt(), now)

	if err := s.repo.Update(ctx, item); err != nil {
		log.WithError(err).Warn("Failed to update record in repository")
		return s.translate(err, "could not update")
	}
	s.invalidate(ctx, log, id)

	log.Info("Record updated successfully")
	s.publish(ctx, webhook.ActionUpdated, id, item)
	return nil
}

// Delete удаляет запись
func (s *ResourceService[M, P]) Delete(ctx context.Context, id int64) error {
	log := s.log("Delete").WithField("id", id)
	log.Info("Attempting to delete record")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete record in repository")
		return s.translate(err, "could not delete")
	}
	s.invalidate(ctx, log, id)

	log.Info("Record deleted successfully")
	s.publish(ctx, webhook.ActionDeleted, id, nil)
	return nil
}

// List возвращает отфильтрованную страницу записей
func (s *ResourceService[M, P]) List(ctx context.Context, q models.ListQuery) (*models.Page[P], error) {
	q = q.Normalize(s.deps.DefaultLimit, s.deps.MaxLimit)

	log := s.log("List").WithFields(logrus.Fields{
		"page":   q.Page,
		"limit":  q.Limit,
		"search": q.Search,
	})

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		log.WithError(err).Error("Failed to list records from repository")
		return nil, s.translate(err, "could not list")
	}

	log.WithField("total", total).Debug("Records listed successfully")
	return models.NewPage(items, total, q), nil
}

// All возвращает все записи ресурса
func (s *ResourceService[M, P]) All(ctx context.Context) ([]P, error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return nil, s.translate(err, "could not load")
	}
	return items, nil
}

// Count возвращает количество записей ресурса
func (s *ResourceService[M, P]) Count(ctx context.Context) (int, error) {
	_, total, err := s.repo.List(ctx, models.ListQuery{Page: models.DefaultPage, Limit: 1})
	if err != nil {
		return 0, s.translate(err, "could not count")
	}
	return total, nil
}

func (s *ResourceService[M, P]) invalidate(ctx context.Context, log *logrus.Entry, id int64) {
	if err := s.deps.Cache.Invalidate(ctx, s.name, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate cache")
	}
}

// publish отправляет событие; ошибка публикации не прерывает запрос
func (s *ResourceService[M, P]) publish(ctx context.Context, action webhook.Action, id int64, data any) {
	event := webhook.NewEvent(s.name, action, id, data, s.deps.Now())
	if err := s.deps.Publisher.Publish(ctx, event); err != nil {
		s.log("publish").WithError(err).WithField("event", event.Event).Error("Failed to publish webhook event")
	}
}

func (s *ResourceService[M, P]) translate(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewError(ErrorCodeNotFound, fmt.Sprintf("%s not found", s.name))
	case errors.Is(err, repository.ErrAlreadyExists):
		return NewError(ErrorCodeConflict, fmt.Sprintf("%s already exists", s.name))
	default:
		return errors.Wrapf(err, "service: %s %s", action, s.name)
	}
}

type completer interface {
	MarkCompleted(now time.Time)
}

func prepare(item models.Entity, now time.Time) {
	if d, ok := item.(models.Defaulter); ok {
		d.ApplyDefaults()
	}
	if c, ok := item.(completer); ok {
		c.MarkCompleted(now)
	}
}

// ChecklistManager - CRUD чек-листов с заполнением пунктов
type ChecklistManager interface {
	CRUDService[*models.Checklist]
	SetItem(ctx context.Context, id int64, index int, checked bool, notes *string) (*models.Checklist, error)
}

// DashboardProvider - источник сводки для панели
type DashboardProvider interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
