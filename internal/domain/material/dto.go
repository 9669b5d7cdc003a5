package material

import (
	"github.com/hydroseal/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateMaterialRequest struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Category *string `json:"category,omitempty"`
}

func (r *CreateMaterialRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordMovementRequest struct {
	MaterialID string          `json:"-"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  *string         `json:"reference,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
	MovedAt    *string         `json:"moved_at,omitempty"`
}

func (r *RecordMovementRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.MaterialID) {
		errs = append(errs, validator.ValidationError{Field: "material_id", Message: "must be a valid id"})
	}
	if !ValidMovementType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of 'inward', 'outward', 'return'"})
	}
	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}
	if r.MovedAt != nil {
		if _, ok := validator.IsValidDateTime(*r.MovedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "moved_at", Message: "must be a valid RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MaterialResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Category *string `json:"category,omitempty"`
}

type MovementResponse struct {
	ID         string          `json:"id"`
	MaterialID string          `json:"material_id"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  *string         `json:"reference,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
	MovedAt    string          `json:"moved_at"`
}

type StockLedgerResponse struct {
	Material  MaterialResponse   `json:"material"`
	Movements []MovementResponse `json:"movements"`
	Balance   decimal.Decimal    `json:"balance"`
}
