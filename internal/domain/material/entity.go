package material

import (
	"time"

	"github.com/shopspring/decimal"
)

type Material struct {
	ID        string
	Name      string
	Unit      string // "kg", "litre", "roll", "bag", ...
	Category  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MovementType string

const (
	MovementInward  MovementType = "inward"
	MovementOutward MovementType = "outward"
	MovementReturn  MovementType = "return"
)

// StockMovement is one event in the append-only stock ledger of a material.
// The current balance is always derived by summing movements (inward and
// return add, outward subtracts); there is no stored quantity column.
type StockMovement struct {
	ID         string
	MaterialID string
	Type       MovementType
	Quantity   decimal.Decimal
	Reference  *string // delivery note, project code, ...
	Notes      *string
	MovedAt    time.Time
	CreatedAt  time.Time
}

// Delta returns the signed balance contribution of the movement.
func (m *StockMovement) Delta() decimal.Decimal {
	if m.Type == MovementOutward {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

func ValidMovementType(s string) bool {
	switch MovementType(s) {
	case MovementInward, MovementOutward, MovementReturn:
		return true
	}
	return false
}
