package material

import (
	"context"
	"time"

	"github.com/hydroseal/erp-backend-go/internal/domain/material"
	"github.com/hydroseal/erp-backend-go/internal/pkg/database"
	"github.com/hydroseal/erp-backend-go/internal/repository/postgresql"
)

type MaterialServiceImpl struct {
	db           *database.DB
	materialRepo material.MaterialRepository
	withTx       func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewMaterialService(db *database.DB, materialRepo material.MaterialRepository) material.MaterialService {
	return &MaterialServiceImpl{
		db:           db,
		materialRepo: materialRepo,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *MaterialServiceImpl) Create(ctx context.Context, req material.CreateMaterialRequest) (material.MaterialResponse, error) {
	if err := req.Validate(); err != nil {
		return material.MaterialResponse{}, err
	}

	created, err := s.materialRepo.Create(ctx, material.Material{
		Name:     req.Name,
		Unit:     req.Unit,
		Category: req.Category,
	})
	if err != nil {
		return material.MaterialResponse{}, err
	}

	return toMaterialResponse(created), nil
}

func (s *MaterialServiceImpl) List(ctx context.Context) ([]material.MaterialResponse, error) {
	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]material.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		responses = append(responses, toMaterialResponse(m))
	}
	return responses, nil
}

func (s *MaterialServiceImpl) RecordMovement(ctx context.Context, req material.RecordMovementRequest) (material.MovementResponse, error) {
	if err := req.Validate(); err != nil {
		return material.MovementResponse{}, err
	}

	movedAt := time.Now()
	if req.MovedAt != nil {
		movedAt, _ = time.Parse(time.RFC3339, *req.MovedAt)
	}

	var recorded material.StockMovement
	err := s.withTx(ctx, func(txCtx context.Context) error {
		// The row lock serializes concurrent movements on the same
		// material, so the outward check below reads a stable balance.
		if _, err := s.materialRepo.GetForUpdate(txCtx, req.MaterialID); err != nil {
			return err
		}

		// Outward movements may not take the balance negative.
		if material.MovementType(req.Type) == material.MovementOutward {
			balance, err := s.materialRepo.Balance(txCtx, req.MaterialID)
			if err != nil {
				return err
			}
			if balance.LessThan(req.Quantity) {
				return material.ErrInsufficientStock
			}
		}

		movement, err := s.materialRepo.AppendMovement(txCtx, material.StockMovement{
			MaterialID: req.MaterialID,
			Type:       material.MovementType(req.Type),
			Quantity:   req.Quantity,
			Reference:  req.Reference,
			Notes:      req.Notes,
			MovedAt:    movedAt,
		})
		if err != nil {
			return err
		}

		recorded = movement
		return nil
	})
	if err != nil {
		return material.MovementResponse{}, err
	}

	return toMovementResponse(recorded), nil
}

func (s *MaterialServiceImpl) StockLedger(ctx context.Context, materialID string) (material.StockLedgerResponse, error) {
	mat, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return material.StockLedgerResponse{}, err
	}

	movements, err := s.materialRepo.ListMovements(ctx, materialID)
	if err != nil {
		return material.StockLedgerResponse{}, err
	}
	balance, err := s.materialRepo.Balance(ctx, materialID)
	if err != nil {
		return material.StockLedgerResponse{}, err
	}

	resp := material.StockLedgerResponse{
		Material:  toMaterialResponse(mat),
		Movements: make([]material.MovementResponse, 0, len(movements)),
		Balance:   balance,
	}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, toMovementResponse(m))
	}
	return resp, nil
}

func toMaterialResponse(m material.Material) material.MaterialResponse {
	return material.MaterialResponse{
		ID:       m.ID,
		Name:     m.Name,
		Unit:     m.Unit,
		Category: m.Category,
	}
}

func toMovementResponse(m material.StockMovement) material.MovementResponse {
	return material.MovementResponse{
		ID:         m.ID,
		MaterialID: m.MaterialID,
		Type:       string(m.Type),
		Quantity:   m.Quantity,
		Reference:  m.Reference,
		Notes:      m.Notes,
		MovedAt:    m.MovedAt.Format(time.RFC3339),
	}
}
