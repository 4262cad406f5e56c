package models

import "strconv"

const (
	GeneratorStatusOperational = "operational"
	GeneratorStatusMaintenance = "maintenance"
	GeneratorStatusOffline     = "offline"
)

// Generator - генератор, установленный на POP
type Generator struct {
	Base         `yaml:",inline"`
	POPID        int64    `json:"pop_id" yaml:"pop_id"`
	Model        string   `json:"model" yaml:"model"`
	Manufacturer string   `json:"manufacturer" yaml:"manufacturer"`
	SerialNumber string   `json:"serial_number" yaml:"serial_number"`
	PowerKVA     float64  `json:"power_kva" yaml:"power_kva"`
	FuelType     string   `json:"fuel_type" yaml:"fuel_type"`
	TankCapacity float64  `json:"tank_capacity" yaml:"tank_capacity"`
	FuelLevel    *float64 `json:"fuel_level,omitempty" yaml:"fuel_level"`
	Status       string   `json:"status" yaml:"status"`
}

func (g *Generator) SearchFields() []string {
	return []string{g.Model, g.Manufacturer, g.SerialNumber}
}

func (g *Generator) FilterValue(key string) (string, bool) {
	switch key {
	case "status":
		return g.Status, true
	case "fuel_type":
		return g.FuelType, true
	case "pop_id":
		return strconv.FormatInt(g.POPID, 10), true
	}
	return "", false
}

// UniqueKey - серийный номер уникален, если заполнен
func (g *Generator) UniqueKey() string {
	return g.SerialNumber
}
