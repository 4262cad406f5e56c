package v1

import "github.com/shenikar/pop_field_ops/internal/models"

// POP

func POPRequestToModel(r POPRequest) *models.POP {
	return &models.POP{
		Name:      r.Name,
		Code:      r.Code,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Status:    r.Status,
		Notes:     r.Notes,
	}
}

func POPModelToRequest(m *models.POP) POPRequest {
	return POPRequest{
		Name:      m.Name,
		Code:      m.Code,
		Address:   m.Address,
		City:      m.City,
		State:     m.State,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Status:    m.Status,
		Notes:     m.Notes,
	}
}

// Activity

func ActivityRequestToModel(r ActivityRequest) *models.Activity {
	return &models.Activity{
		Title:         r.Title,
		Description:   r.Description,
		POPID:         r.POPID,
		TechnicianID:  r.TechnicianID,
		Status:        r.Status,
		Priority:      r.Priority,
		Type:          r.Type,
		ScheduledDate: r.ScheduledDate,
		CompletedAt:   r.CompletedAt,
		Cost:          r.Cost,
	}
}

func ActivityModelToRequest(m *models.Activity) ActivityRequest {
	return ActivityRequest{
		Title:         m.Title,
		Description:   m.Description,
		POPID:         m.POPID,
		TechnicianID:  m.TechnicianID,
		Status:        m.Status,
		Priority:      m.Priority,
		Type:          m.Type,
		ScheduledDate: m.ScheduledDate,
		CompletedAt:   m.CompletedAt,
		Cost:          m.Cost,
	}
}

// Technician

func TechnicianRequestToModel(r TechnicianRequest) *models.Technician {
	return &models.Technician{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Especialidade: r.Especialidade,
		Status:        r.Status,
		Region:        r.Region,
	}
}

func TechnicianModelToRequest(m *models.Technician) TechnicianRequest {
	return TechnicianRequest{
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Especialidade: m.Especialidade,
		Status:        m.Status,
		Region:        m.Region,
	}
}

// Supply

func SupplyRequestToModel(r SupplyRequest) *models.Supply {
	return &models.Supply{
		POPID:         r.POPID,
		GeneratorID:   r.GeneratorID,
		FuelType:      r.FuelType,
		Quantity:      r.Quantity,
		Cost:          r.Cost,
		Supplier:      r.Supplier,
		InvoiceNumber: r.InvoiceNumber,
		Status:        r.Status,
		SupplyDate:    r.SupplyDate,
		Notes:         r.Notes,
	}
}

func SupplyModelToRequest(m *models.Supply) SupplyRequest {
	return SupplyRequest{
		POPID:         m.POPID,
		GeneratorID:   m.GeneratorID,
		FuelType:      m.FuelType,
		Quantity:      m.Quantity,
		Cost:          m.Cost,
		Supplier:      m.Supplier,
		InvoiceNumber: m.InvoiceNumber,
		Status:        m.Status,
		SupplyDate:    m.SupplyDate,
		Notes:         m.Notes,
	}
}

// Generator

func GeneratorRequestToModel(r GeneratorRequest) *models.Generator {
	return &models.Generator{
		POPID:        r.POPID,
		Model:        r.Model,
		Manufacturer: r.Manufacturer,
		SerialNumber: r.SerialNumber,
		PowerKVA:     r.PowerKVA,
		FuelType:     r.FuelType,
		TankCapacity: r.TankCapacity,
		FuelLevel:    r.FuelLevel,
		Status:       r.Status,
	}
}

func GeneratorModelToRequest(m *models.Generator) GeneratorRequest {
	return GeneratorRequest{
		POPID:        m.POPID,
		Model:        m.Model,
		Manufacturer: m.Manufacturer,
		SerialNumber: m.SerialNumber,
		PowerKVA:     m.PowerKVA,
		FuelType:     m.FuelType,
		TankCapacity: m.TankCapacity,
		FuelLevel:    m.FuelLevel,
		Status:       m.Status,
	}
}

// Checklist

func ChecklistRequestToModel(r ChecklistRequest) *models.Checklist {
	items := make([]models.ChecklistItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = models.ChecklistItem{Description: it.Description, Checked: it.Checked, Notes: it.Notes}
	}
	return &models.Checklist{
		Title:        r.Title,
		Template:     r.Template,
		POPID:        r.POPID,
		ActivityID:   r.ActivityID,
		TechnicianID: r.TechnicianID,
		Items:        items,
		Notes:        r.Notes,
	}
}

func ChecklistModelToRequest(m *models.Checklist) ChecklistRequest {
	items := make(ChecklistItems, len(m.Items))
	for i, it := range m.Items {
		items[i] = ChecklistItemRequest{Description: it.Description, Checked: it.Checked, Notes: it.Notes}
	}
	return ChecklistRequest{
		Title:        m.Title,
		Template:     m.Template,
		POPID:        m.POPID,
		ActivityID:   m.ActivityID,
		TechnicianID: m.TechnicianID,
		Items:        items,
		Notes:        m.Notes,
	}
}
