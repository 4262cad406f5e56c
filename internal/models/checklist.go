package models

import (
	"math"
	"strconv"
)

const (
	ChecklistStatusPending    = "pending"
	ChecklistStatusInProgress = "in_progress"
	ChecklistStatusCompleted  = "completed"
)

// ChecklistItem - пункт чек-листа
type ChecklistItem struct {
	Description string `json:"description" yaml:"description"`
	Checked     bool   `json:"checked" yaml:"checked"`
	Notes       string `json:"notes,omitempty" yaml:"notes"`
}

// Checklist - чек-лист обслуживания, заполняемый по шаблону
type Checklist struct {
	Base         `yaml:",inline"`
	Title        string          `json:"title" yaml:"title"`
	Template     string          `json:"template,omitempty" yaml:"template"`
	POPID        int64           `json:"pop_id" yaml:"pop_id"`
	ActivityID   *int64          `json:"activity_id,omitempty" yaml:"activity_id"`
	TechnicianID *int64          `json:"technician_id,omitempty" yaml:"technician_id"`
	Items        []ChecklistItem `json:"items" yaml:"items"`
	Status       string          `json:"status" yaml:"status"`
	Progress     int             `json:"progress" yaml:"-"`
	Notes        string          `json:"notes,omitempty" yaml:"notes"`
}

func (c *Checklist) SearchFields() []string {
	return []string{c.Title, c.Notes}
}

func (c *Checklist) FilterValue(key string) (string, bool) {
	switch key {
	case "status":
		return c.Status, true
	case "pop_id":
		return strconv.FormatInt(c.POPID, 10), true
	}
	return "", false
}

// Recalculate пересчитывает процент выполнения и статус по отмеченным пунктам
func (c *Checklist) Recalculate() {
	checked := 0
	for _, item := range c.Items {
		if item.Checked {
			checked++
		}
	}

	switch {
	case len(c.Items) == 0:
		c.Progress = 0
	default:
		c.Progress = int(math.Round(float64(checked) * 100 / float64(len(c.Items))))
	}

	switch {
	case len(c.Items) > 0 && checked == len(c.Items):
		c.Status = ChecklistStatusCompleted
	case checked > 0:
		c.Status = ChecklistStatusInProgress
	default:
		c.Status = ChecklistStatusPending
	}
}

// Detach копирует пункты в собственный срез
func (c *Checklist) Detach() {
	if c.Items == nil {
		return
	}
	items := make([]ChecklistItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
}
