package models

import "strings"

const (
	TechnicianStatusActive   = "active"
	TechnicianStatusInactive = "inactive"
	TechnicianStatusOnLeave  = "on_leave"
)

// Technician - полевой техник
type Technician struct {
	Base          `yaml:",inline"`
	Name          string `json:"name" yaml:"name"`
	Email         string `json:"email" yaml:"email"`
	Phone         string `json:"phone" yaml:"phone"`
	Especialidade string `json:"especialidade" yaml:"especialidade"`
	Status        string `json:"status" yaml:"status"`
	Region        string `json:"region,omitempty" yaml:"region"`
}

func (t *Technician) SearchFields() []string {
	return []string{t.Name, t.Email, t.Phone}
}

func (t *Technician) FilterValue(key string) (string, bool) {
	switch key {
	case "status":
		return t.Status, true
	case "especialidade":
		return t.Especialidade, true
	}
	return "", false
}

// UniqueKey - email уникален без учета регистра
func (t *Technician) UniqueKey() string {
	return strings.ToLower(t.Email)
}
