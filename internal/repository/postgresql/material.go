package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hydroseal/erp-backend-go/internal/domain/material"
	"github.com/hydroseal/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type materialRepository struct {
	db *database.DB
}

func NewMaterialRepository(db *database.DB) material.MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, mat material.Material) (material.Material, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO materials (name, unit, category)
		VALUES ($1, $2, $3)
		RETURNING id, name, unit, category, created_at, updated_at
	`

	var m material.Material
	err := q.QueryRow(ctx, query, mat.Name, mat.Unit, mat.Category).Scan(
		&m.ID, &m.Name, &m.Unit, &m.Category, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_materials_name") {
			return material.Material{}, material.ErrMaterialNameExists
		}
		return material.Material{}, fmt.Errorf("failed to create material: %w", err)
	}

	return m, nil
}

func (r *materialRepository) GetByID(ctx context.Context, id string) (material.Material, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, unit, category, created_at, updated_at
		FROM materials
		WHERE id = $1
	`

	var m material.Material
	err := q.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Unit, &m.Category, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return material.Material{}, material.ErrMaterialNotFound
		}
		return material.Material{}, fmt.Errorf("failed to get material: %w", err)
	}

	return m, nil
}

func (r *materialRepository) GetForUpdate(ctx context.Context, id string) (material.Material, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, unit, category, created_at, updated_at
		FROM materials
		WHERE id = $1
		FOR UPDATE
	`

	var m material.Material
	err := q.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Unit, &m.Category, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return material.Material{}, material.ErrMaterialNotFound
		}
		return material.Material{}, fmt.Errorf("failed to lock material: %w", err)
	}

	return m, nil
}

func (r *materialRepository) List(ctx context.Context) ([]material.Material, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, unit, category, created_at, updated_at
		FROM materials
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	defer rows.Close()

	var materials []material.Material
	for rows.Next() {
		var m material.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.Category, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate materials: %w", err)
	}

	return materials, nil
}

func (r *materialRepository) AppendMovement(ctx context.Context, movement material.StockMovement) (material.StockMovement, error) {
	q := GetQuerier(ctx, r.db)

	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}

	query := `
		INSERT INTO stock_movements (id, material_id, type, quantity, reference, notes, moved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, material_id, type, quantity, reference, notes, moved_at, created_at
	`

	var m material.StockMovement
	err := q.QueryRow(ctx, query,
		movement.ID, movement.MaterialID, movement.Type, movement.Quantity, movement.Reference, movement.Notes, movement.MovedAt,
	).Scan(
		&m.ID, &m.MaterialID, &m.Type, &m.Quantity, &m.Reference, &m.Notes, &m.MovedAt, &m.CreatedAt,
	)
	if err != nil {
		return material.StockMovement{}, fmt.Errorf("failed to append stock movement: %w", err)
	}

	return m, nil
}

func (r *materialRepository) ListMovements(ctx context.Context, materialID string) ([]material.StockMovement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, material_id, type, quantity, reference, notes, moved_at, created_at
		FROM stock_movements
		WHERE material_id = $1
		ORDER BY moved_at ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []material.StockMovement
	for rows.Next() {
		var m material.StockMovement
		if err := rows.Scan(&m.ID, &m.MaterialID, &m.Type, &m.Quantity, &m.Reference, &m.Notes, &m.MovedAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock movements: %w", err)
	}

	return movements, nil
}

func (r *materialRepository) Balance(ctx context.Context, materialID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'outward' THEN -quantity ELSE quantity END), 0)
		FROM stock_movements
		WHERE material_id = $1
	`

	var balance decimal.Decimal
	if err := q.QueryRow(ctx, query, materialID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to derive stock balance: %w", err)
	}

	return balance, nil
}
