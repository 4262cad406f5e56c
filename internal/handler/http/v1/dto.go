package v1

import (
	"encoding/json"
	"time"
)

// POPRequest DTO для создания и обновления POP
// @Description DTO для создания и обновления POP
type POPRequest struct {
	Name      string   `json:"name" validate:"required,max=255"`
	Code      string   `json:"code" validate:"required,max=64"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Status    string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive maintenance"`
	Notes     string   `json:"notes,omitempty"`
}

// ActivityRequest DTO для создания и обновления работы
// @Description DTO для создания и обновления работы
type ActivityRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Description   string     `json:"description,omitempty"`
	POPID         int64      `json:"pop_id" validate:"required,gt=0"`
	TechnicianID  *int64     `json:"technician_id,omitempty" validate:"omitempty,gt=0"`
	Status        string     `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority      string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Type          string     `json:"type,omitempty" validate:"omitempty,oneof=preventive corrective inspection installation"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Cost          float64    `json:"cost,omitempty" validate:"gte=0"`
}

// TechnicianRequest DTO для создания и обновления техника
// @Description DTO для создания и обновления техника
type TechnicianRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone,omitempty"`
	Especialidade string `json:"especialidade,omitempty"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=active inactive on_leave"`
	Region        string `json:"region,omitempty"`
}

// SupplyRequest DTO для создания и обновления поставки топлива
// @Description DTO для создания и обновления поставки топлива
type SupplyRequest struct {
	POPID         int64      `json:"pop_id" validate:"required,gt=0"`
	GeneratorID   *int64     `json:"generator_id,omitempty" validate:"omitempty,gt=0"`
	FuelType      string     `json:"fuel_type" validate:"required,oneof=diesel gasoline gas"`
	Quantity      float64    `json:"quantity" validate:"required,gt=0"`
	Cost          float64    `json:"cost,omitempty" validate:"gte=0"`
	Supplier      string     `json:"supplier,omitempty"`
	InvoiceNumber string     `json:"invoice_number,omitempty"`
	Status        string     `json:"status,omitempty" validate:"omitempty,oneof=scheduled delivered cancelled"`
	SupplyDate    *time.Time `json:"supply_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// GeneratorRequest DTO для создания и обновления генератора
// @Description DTO для создания и обновления генератора
type GeneratorRequest struct {
	POPID        int64    `json:"pop_id" validate:"required,gt=0"`
	Model        string   `json:"model" validate:"required,max=255"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	SerialNumber string   `json:"serial_number,omitempty"`
	PowerKVA     float64  `json:"power_kva,omitempty" validate:"gte=0"`
	FuelType     string   `json:"fuel_type,omitempty" validate:"omitempty,oneof=diesel gasoline gas"`
	TankCapacity float64  `json:"tank_capacity,omitempty" validate:"gte=0"`
	FuelLevel    *float64 `json:"fuel_level,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=operational maintenance offline"`
}

// ChecklistItemRequest DTO пункта чек-листа
type ChecklistItemRequest struct {
	Description string `json:"description" validate:"required"`
	Checked     bool   `json:"checked"`
	Notes       string `json:"notes,omitempty"`
}

// ChecklistItems - пункты заменяются целиком, без слияния со старыми элементами
type ChecklistItems []ChecklistItemRequest

func (items *ChecklistItems) UnmarshalJSON(data []byte) error {
	var fresh []ChecklistItemRequest
	if err := json.Unmarshal(data, &fresh); err != nil {
		return err
	}
	*items = fresh
	return nil
}

// ChecklistRequest DTO для создания и обновления чек-листа
// @Description DTO для создания и обновления чек-листа
type ChecklistRequest struct {
	Title        string         `json:"title" validate:"required,max=255"`
	Template     string         `json:"template,omitempty"`
	POPID        int64          `json:"pop_id" validate:"required,gt=0"`
	ActivityID   *int64         `json:"activity_id,omitempty" validate:"omitempty,gt=0"`
	TechnicianID *int64         `json:"technician_id,omitempty" validate:"omitempty,gt=0"`
	Items        ChecklistItems `json:"items,omitempty" validate:"dive"`
	Notes        string         `json:"notes,omitempty"`
}

// ChecklistItemUpdateRequest DTO для отметки пункта чек-листа
// @Description DTO для отметки пункта чек-листа
type ChecklistItemUpdateRequest struct {
	Checked bool    `json:"checked"`
	Notes   *string `json:"notes,omitempty"`
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
