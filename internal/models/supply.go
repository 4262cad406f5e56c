package models

import (
	"strconv"
	"time"
)

const (
	FuelDiesel   = "diesel"
	FuelGasoline = "gasoline"
	FuelGas      = "gas"

	SupplyStatusScheduled = "scheduled"
	SupplyStatusDelivered = "delivered"
	SupplyStatusCancelled = "cancelled"
)

// Supply - поставка топлива на POP
type Supply struct {
	Base          `yaml:",inline"`
	POPID         int64      `json:"pop_id" yaml:"pop_id"`
	GeneratorID   *int64     `json:"generator_id,omitempty" yaml:"generator_id"`
	FuelType      string     `json:"fuel_type" yaml:"fuel_type"`
	Quantity      float64    `json:"quantity" yaml:"quantity"`
	Cost          float64    `json:"cost" yaml:"cost"`
	Supplier      string     `json:"supplier" yaml:"supplier"`
	InvoiceNumber string     `json:"invoice_number,omitempty" yaml:"invoice_number"`
	Status        string     `json:"status" yaml:"status"`
	SupplyDate    *time.Time `json:"supply_date,omitempty" yaml:"supply_date"`
	Notes         string     `json:"notes,omitempty" yaml:"notes"`
}

func (s *Supply) SearchFields() []string {
	return []string{s.Supplier, s.Notes, s.InvoiceNumber}
}

func (s *Supply) FilterValue(key string) (string, bool) {
	switch key {
	case "fuel_type":
		return s.FuelType, true
	case "status":
		return s.Status, true
	case "pop_id":
		return strconv.FormatInt(s.POPID, 10), true
	}
	return "", false
}

// EffectiveDate - дата поставки, либо дата создания записи если дата не указана
func (s *Supply) EffectiveDate() time.Time {
	if s.SupplyDate != nil {
		return *s.SupplyDate
	}
	return s.CreatedAt
}
