package models

const (
	POPStatusActive      = "active"
	POPStatusInactive    = "inactive"
	POPStatusMaintenance = "maintenance"
)

// POP - точка присутствия сети
type POP struct {
	Base      `yaml:",inline"`
	Name      string   `json:"name" yaml:"name"`
	Code      string   `json:"code" yaml:"code"`
	Address   string   `json:"address" yaml:"address"`
	City      string   `json:"city" yaml:"city"`
	State     string   `json:"state" yaml:"state"`
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude"`
	Status    string   `json:"status" yaml:"status"`
	Notes     string   `json:"notes,omitempty" yaml:"notes"`
}

func (p *POP) SearchFields() []string {
	return []string{p.Name, p.Code, p.City}
}

func (p *POP) FilterValue(key string) (string, bool) {
	switch key {
	case "status":
		return p.Status, true
	}
	return "", false
}

// UniqueKey - код POP уникален
func (p *POP) UniqueKey() string {
	return p.Code
}
