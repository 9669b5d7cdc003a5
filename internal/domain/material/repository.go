package material

import (
	"context"

	"github.com/shopspring/decimal"
)

type MaterialRepository interface {
	Create(ctx context.Context, mat Material) (Material, error)
	GetByID(ctx context.Context, id string) (Material, error)
	// GetForUpdate reads the material row under a row lock so that
	// concurrent movements against the same material serialize. Callers
	// must hold a transaction for the lock to outlive the read.
	GetForUpdate(ctx context.Context, id string) (Material, error)
	List(ctx context.Context) ([]Material, error)

	AppendMovement(ctx context.Context, movement StockMovement) (StockMovement, error)
	ListMovements(ctx context.Context, materialID string) ([]StockMovement, error)
	// Balance derives the current stock level by summing movement deltas.
	Balance(ctx context.Context, materialID string) (decimal.Decimal, error)
}
