package material

import "context"

type MaterialService interface {
	Create(ctx context.Context, req CreateMaterialRequest) (MaterialResponse, error)
	List(ctx context.Context) ([]MaterialResponse, error)
	RecordMovement(ctx context.Context, req RecordMovementRequest) (MovementResponse, error)
	StockLedger(ctx context.Context, materialID string) (StockLedgerResponse, error)
}
