package models

import (
	"strconv"
	"time"
)

const (
	ActivityStatusPending    = "pending"
	ActivityStatusInProgress = "in_progress"
	ActivityStatusCompleted  = "completed"
	ActivityStatusCancelled  = "cancelled"

	ActivityPriorityMedium = "medium"
	ActivityTypePreventive = "preventive"
)

// Activity - работа на POP (плановая, аварийная, инспекция)
type Activity struct {
	Base          `yaml:",inline"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description" yaml:"description"`
	POPID         int64      `json:"pop_id" yaml:"pop_id"`
	TechnicianID  *int64     `json:"technician_id,omitempty" yaml:"technician_id"`
	Status        string     `json:"status" yaml:"status"`
	Priority      string     `json:"priority" yaml:"priority"`
	Type          string     `json:"type" yaml:"type"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty" yaml:"scheduled_date"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" yaml:"completed_at"`
	Cost          float64    `json:"cost" yaml:"cost"`
}

func (a *Activity) SearchFields() []string {
	return []string{a.Title, a.Description}
}

func (a *Activity) FilterValue(key string) (string, bool) {
	switch key {
	case "status":
		return a.Status, true
	case "priority":
		return a.Priority, true
	case "type":
		return a.Type, true
	case "pop_id":
		return strconv.FormatInt(a.POPID, 10), true
	}
	return "", false
}

// MarkCompleted проставляет время завершения при переходе в статус completed
func (a *Activity) MarkCompleted(now time.Time) {
	if a.Status == ActivityStatusCompleted && a.CompletedAt == nil {
		a.CompletedAt = &now
	}
}
