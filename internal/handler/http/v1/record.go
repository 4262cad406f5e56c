package v1

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/shenikar/pop_field_ops/internal/models"
	"github.com/shenikar/pop_field_ops/internal/service"
)

// NewRecordValidator проверяет готовую запись через DTO запроса, с теми же правилами, что и POST
func NewRecordValidator(validate *validator.Validate) service.RecordValidator {
	if validate == nil {
		validate = validator.New()
	}
	return func(item models.Entity) error {
		var req any
		switch m := item.(type) {
		case *models.POP:
			req = POPModelToRequest(m)
		case *models.Activity:
			req = ActivityModelToRequest(m)
		case *models.Technician:
			req = TechnicianModelToRequest(m)
		case *models.Supply:
			req = SupplyModelToRequest(m)
		case *models.Generator:
			req = GeneratorModelToRequest(m)
		case *models.Checklist:
			req = ChecklistModelToRequest(m)
		default:
			return fmt.Errorf("unsupported record type %T", item)
		}
		return validate.Struct(req)
	}
}
