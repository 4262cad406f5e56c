package models

// Defaulter реализуют модели, у которых есть значения по умолчанию
type Defaulter interface {
	ApplyDefaults()
}

func (p *POP) ApplyDefaults() {
	if p.Status == "" {
		p.Status = POPStatusActive
	}
}

func (a *Activity) ApplyDefaults() {
	if a.Status == "" {
		a.Status = ActivityStatusPending
	}
	if a.Priority == "" {
		a.Priority = ActivityPriorityMedium
	}
	if a.Type == "" {
		a.Type = ActivityTypePreventive
	}
}

func (t *Technician) ApplyDefaults() {
	if t.Status == "" {
		t.Status = TechnicianStatusActive
	}
}

func (s *Supply) ApplyDefaults() {
	if s.Status == "" {
		s.Status = SupplyStatusScheduled
	}
}

func (g *Generator) ApplyDefaults() {
	if g.Status == "" {
		g.Status = GeneratorStatusOperational
	}
	if g.FuelType == "" {
		g.FuelType = FuelDiesel
	}
}

// ApplyDefaults для чек-листа: статус и прогресс всегда выводятся из пунктов
func (c *Checklist) ApplyDefaults() {
	if c.Items == nil {
		c.Items = make([]ChecklistItem, 0)
	}
	c.Recalculate()
}
