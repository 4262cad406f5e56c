package memory

import "github.com/shenikar/pop_field_ops/internal/models"

// Store - набор таблиц всех ресурсов
type Store struct {
	POPs        *Table[models.POP, *models.POP]
	Activities  *Table[models.Activity, *models.Activity]
	Technicians *Table[models.Technician, *models.Technician]
	Supplies    *Table[models.Supply, *models.Supply]
	Generators  *Table[models.Generator, *models.Generator]
	Checklists  *Table[models.Checklist, *models.Checklist]
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		POPs:        NewTable[models.POP]("pop"),
		Activities:  NewTable[models.Activity]("activity"),
		Technicians: NewTable[models.Technician]("technician"),
		Supplies:    NewTable[models.Supply]("supply"),
		Generators:  NewTable[models.Generator]("generator"),
		Checklists:  NewTable[models.Checklist]("checklist"),
	}
}
