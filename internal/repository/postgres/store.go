package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/pop_field_ops/internal/models"
)

// Store - репозитории всех ресурсов поверх одного пула соединений
type Store struct {
	POPs        *Table[models.POP, *models.POP]
	Activities  *Table[models.Activity, *models.Activity]
	Technicians *Table[models.Technician, *models.Technician]
	Supplies    *Table[models.Supply, *models.Supply]
	Generators  *Table[models.Generator, *models.Generator]
	Checklists  *Table[models.Checklist, *models.Checklist]
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		POPs:        newTable[models.POP](pool, popSchema),
		Activities:  newTable[models.Activity](pool, activitySchema),
		Technicians: newTable[models.Technician](pool, technicianSchema),
		Supplies:    newTable[models.Supply](pool, supplySchema),
		Generators:  newTable[models.Generator](pool, generatorSchema),
		Checklists:  newTable[models.Checklist](pool, checklistSchema),
	}
}

var popSchema = schema[*models.POP]{
	table:   "pops",
	columns: []string{"name", "code", "address", "city", "state", "latitude", "longitude", "status", "notes"},
	search:  []string{"name", "code", "city"},
	filters: map[string]string{"status": "status"},
	values: func(p *models.POP) []any {
		return []any{p.Name, p.Code, p.Address, p.City, p.State, p.Latitude, p.Longitude, p.Status, p.Notes}
	},
	fields: func(p *models.POP) []any {
		return []any{&p.Name, &p.Code, &p.Address, &p.City, &p.State, &p.Latitude, &p.Longitude, &p.Status, &p.Notes}
	},
}

var activitySchema = schema[*models.Activity]{
	table: "activities",
	columns: []string{"title", "description", "pop_id", "technician_id", "status", "priority", "type",
		"scheduled_date", "completed_at", "cost"},
	search: []string{"title", "description"},
	filters: map[string]string{
		"status":   "status",
		"priority": "priority",
		"type":     "type",
		"pop_id":   "pop_id",
	},
	values: func(a *models.Activity) []any {
		return []any{a.Title, a.Description, a.POPID, a.TechnicianID, a.Status, a.Priority, a.Type,
			a.ScheduledDate, a.CompletedAt, a.Cost}
	},
	fields: func(a *models.Activity) []any {
		return []any{&a.Title, &a.Description, &a.POPID, &a.TechnicianID, &a.Status, &a.Priority, &a.Type,
			&a.ScheduledDate, &a.CompletedAt, &a.Cost}
	},
}

var technicianSchema = schema[*models.Technician]{
	table:   "technicians",
	columns: []string{"name", "email", "phone", "especialidade", "status", "region"},
	search:  []string{"name", "email", "phone"},
	filters: map[string]string{"status": "status", "especialidade": "especialidade"},
	values: func(t *models.Technician) []any {
		return []any{t.Name, t.Email, t.Phone, t.Especialidade, t.Status, t.Region}
	},
	fields: func(t *models.Technician) []any {
		return []any{&t.Name, &t.Email, &t.Phone, &t.Especialidade, &t.Status, &t.Region}
	},
}

var supplySchema = schema[*models.Supply]{
	table: "supplies",
	columns: []string{"pop_id", "generator_id", "fuel_type", "quantity", "cost", "supplier",
		"invoice_number", "status", "supply_date", "notes"},
	search:  []string{"supplier", "notes", "invoice_number"},
	filters: map[string]string{"fuel_type": "fuel_type", "pop_id": "pop_id", "status": "status"},
	values: func(s *models.Supply) []any {
		return []any{s.POPID, s.GeneratorID, s.FuelType, s.Quantity, s.Cost, s.Supplier,
			s.InvoiceNumber, s.Status, s.SupplyDate, s.Notes}
	},
	fields: func(s *models.Supply) []any {
		return []any{&s.POPID, &s.GeneratorID, &s.FuelType, &s.Quantity, &s.Cost, &s.Supplier,
			&s.InvoiceNumber, &s.Status, &s.SupplyDate, &s.Notes}
	},
}

var generatorSchema = schema[*models.Generator]{
	table: "generators",
	columns: []string{"pop_id", "model", "manufacturer", "serial_number", "power_kva", "fuel_type",
		"tank_capacity", "fuel_level", "status"},
	search:  []string{"model", "manufacturer", "serial_number"},
	filters: map[string]string{"status": "status", "fuel_type": "fuel_type", "pop_id": "pop_id"},
	values: func(g *models.Generator) []any {
		// пустой серийный номер хранится как NULL, чтобы не конфликтовать по уникальному индексу
		var serial *string
		if g.SerialNumber != "" {
			serial = &g.SerialNumber
		}
		return []any{g.POPID, g.Model, g.Manufacturer, serial, g.PowerKVA, g.FuelType,
			g.TankCapacity, g.FuelLevel, g.Status}
	},
	fields: func(g *models.Generator) []any {
		return []any{&g.POPID, &g.Model, &g.Manufacturer, nullString{&g.SerialNumber}, &g.PowerKVA, &g.FuelType,
			&g.TankCapacity, &g.FuelLevel, &g.Status}
	},
}

var checklistSchema = schema[*models.Checklist]{
	table:   "checklists",
	columns: []string{"title", "template", "pop_id", "activity_id", "technician_id", "items", "status", "notes"},
	search:  []string{"title", "notes"},
	filters: map[string]string{"status": "status", "pop_id": "pop_id"},
	values: func(c *models.Checklist) []any {
		items := c.Items
		if items == nil {
			items = []models.ChecklistItem{}
		}
		return []any{c.Title, c.Template, c.POPID, c.ActivityID, c.TechnicianID, items, c.Status, c.Notes}
	},
	fields: func(c *models.Checklist) []any {
		return []any{&c.Title, &c.Template, &c.POPID, &c.ActivityID, &c.TechnicianID, &c.Items, &c.Status, &c.Notes}
	},
	afterScan: func(c *models.Checklist) {
		c.Recalculate()
	},
}

// nullString сканирует NULL в пустую строку
type nullString struct {
	dst *string
}

func (n nullString) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n.dst = ""
	case string:
		*n.dst = v
	case []byte:
		*n.dst = string(v)
	}
	return nil
}
