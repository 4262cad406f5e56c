package service

import (
	"context"
	"fmt"

	"github.com/shenikar/pop_field_ops/internal/models"
)

// ChecklistService добавляет к CRUD заполнение отдельных пунктов
type ChecklistService struct {
	*ResourceService[models.Checklist, *models.Checklist]
}

func NewChecklistService(repo Repository[*models.Checklist], deps Deps) *ChecklistService {
	return &ChecklistService{
		ResourceService: NewResourceService[models.Checklist]("checklist", repo, deps),
	}
}

// SetItem отмечает пункт чек-листа, прогресс и статус пересчитываются при сохранении
func (s *ChecklistService) SetItem(ctx context.Context, id int64, index int, checked bool, notes *string) (*models.Checklist, error) {
	log := s.log("SetItem").WithField("id", id).WithField("index", index)

	checklist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get checklist from repository")
		return nil, s.translate(err, "could not get")
	}

	if index < 0 || index >= len(checklist.Items) {
		return nil, NewError(ErrorCodeInvalidBody, fmt.Sprintf("item index %d out of range [0, %d)", index, len(checklist.Items)))
	}

	items := make([]models.ChecklistItem, len(checklist.Items))
	copy(items, checklist.Items)
	items[index].Checked = checked
	if notes != nil {
		items[index].Notes = *notes
	}
	checklist.Items = items

	if err := s.Update(ctx, checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}
