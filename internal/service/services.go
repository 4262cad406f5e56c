package service

import "github.com/shenikar/pop_field_ops/internal/models"

// Services - все сервисы приложения
type Services struct {
	POPs        *ResourceService[models.POP, *models.POP]
	Activities  *ResourceService[models.Activity, *models.Activity]
	Technicians *ResourceService[models.Technician, *models.Technician]
	Supplies    *ResourceService[models.Supply, *models.Supply]
	Generators  *ResourceService[models.Generator, *models.Generator]
	Checklists  *ChecklistService
	Dashboard   *DashboardService
}

// New собирает сервисы поверх набора репозиториев
func New(src Sources, deps Deps) *Services {
	return &Services{
		POPs:        NewResourceService[models.POP]("pop", src.POPs, deps),
		Activities:  NewResourceService[models.Activity]("activity", src.Activities, deps),
		Technicians: NewResourceService[models.Technician]("technician", src.Technicians, deps),
		Supplies:    NewResourceService[models.Supply]("supply", src.Supplies, deps),
		Generators:  NewResourceService[models.Generator]("generator", src.Generators, deps),
		Checklists:  NewChecklistService(src.Checklists, deps),
		Dashboard:   NewDashboardService(src, deps),
	}
}
