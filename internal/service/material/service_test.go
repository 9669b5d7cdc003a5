package material

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hydroseal/erp-backend-go/internal/domain/material"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMaterialRepo struct {
	materials map[string]material.Material
	movements []material.StockMovement
	lockCalls int
}

func (f *fakeMaterialRepo) Create(_ context.Context, mat material.Material) (material.Material, error) {
	mat.ID = uuid.NewString()
	f.materials[mat.ID] = mat
	return mat, nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id string) (material.Material, error) {
	mat, ok := f.materials[id]
	if !ok {
		return material.Material{}, material.ErrMaterialNotFound
	}
	return mat, nil
}

func (f *fakeMaterialRepo) GetForUpdate(ctx context.Context, id string) (material.Material, error) {
	f.lockCalls++
	return f.GetByID(ctx, id)
}

func (f *fakeMaterialRepo) List(_ context.Context) ([]material.Material, error) {
	var out []material.Material
	for _, m := range f.materials {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMaterialRepo) AppendMovement(_ context.Context, movement material.StockMovement) (material.StockMovement, error) {
	movement.ID = uuid.NewString()
	movement.CreatedAt = time.Now()
	f.movements = append(f.movements, movement)
	return movement, nil
}

func (f *fakeMaterialRepo) ListMovements(_ context.Context, materialID string) ([]material.StockMovement, error) {
	var out []material.StockMovement
	for _, m := range f.movements {
		if m.MaterialID == materialID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaterialRepo) Balance(_ context.Context, materialID string) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, m := range f.movements {
		if m.MaterialID == materialID {
			balance = balance.Add(m.Delta())
		}
	}
	return balance, nil
}

func newTestService() (*MaterialServiceImpl, *fakeMaterialRepo) {
	repo := &fakeMaterialRepo{materials: make(map[string]material.Material)}
	svc := &MaterialServiceImpl{
		materialRepo: repo,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return svc, repo
}

func TestRecordMovement_BalanceFollowsLedger(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mat, err := svc.Create(ctx, material.CreateMaterialRequest{Name: "Bitumen membrane", Unit: "roll"})
	require.NoError(t, err)

	steps := []struct {
		movementType string
		quantity     int64
	}{
		{"inward", 50},
		{"outward", 20},
		{"return", 5},
	}
	for _, step := range steps {
		_, err := svc.RecordMovement(ctx, material.RecordMovementRequest{
			MaterialID: mat.ID,
			Type:       step.movementType,
			Quantity:   decimal.NewFromInt(step.quantity),
		})
		require.NoError(t, err)
	}

	ledger, err := svc.StockLedger(ctx, mat.ID)
	require.NoError(t, err)
	assert.Len(t, ledger.Movements, 3)
	assert.Equal(t, "35", ledger.Balance.String())
}

func TestRecordMovement_OutwardBeyondStockRejected(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	mat, err := svc.Create(ctx, material.CreateMaterialRequest{Name: "Primer", Unit: "litre"})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, material.RecordMovementRequest{
		MaterialID: mat.ID,
		Type:       "inward",
		Quantity:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, material.RecordMovementRequest{
		MaterialID: mat.ID,
		Type:       "outward",
		Quantity:   decimal.NewFromInt(11),
	})
	assert.ErrorIs(t, err, material.ErrInsufficientStock)
	assert.Len(t, repo.movements, 1)
}

// Each movement must acquire the material row lock before reading the
// balance, so two issues that together exceed stock cannot both pass
// the check against the same snapshot.
func TestRecordMovement_LocksRowBeforeBalanceCheck(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	mat, err := svc.Create(ctx, material.CreateMaterialRequest{Name: "Torch-on felt", Unit: "roll"})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, material.RecordMovementRequest{
		MaterialID: mat.ID,
		Type:       "inward",
		Quantity:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, material.RecordMovementRequest{
		MaterialID: mat.ID,
		Type:       "outward",
		Quantity:   decimal.NewFromInt(6),
	})
	require.NoError(t, err)

	// A second issue against the post-lock balance of 4 must fail, not
	// pass against the stale balance of 10.
	_, err = svc.RecordMovement(ctx, material.RecordMovementRequest{
		MaterialID: mat.ID,
		Type:       "outward",
		Quantity:   decimal.NewFromInt(6),
	})
	assert.ErrorIs(t, err, material.ErrInsufficientStock)

	assert.Equal(t, 3, repo.lockCalls)

	balance, err := repo.Balance(ctx, mat.ID)
	require.NoError(t, err)
	assert.Equal(t, "4", balance.String())
}

func TestRecordMovement_UnknownMaterial(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RecordMovement(context.Background(), material.RecordMovementRequest{
		MaterialID: uuid.NewString(),
		Type:       "inward",
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, material.ErrMaterialNotFound)
}

func TestRecordMovement_InvalidQuantityRejected(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	mat, err := svc.Create(ctx, material.CreateMaterialRequest{Name: "Sealant", Unit: "kg"})
	require.NoError(t, err)

	_, err = svc.RecordMovement(ctx, material.RecordMovementRequest{
		MaterialID: mat.ID,
		Type:       "inward",
		Quantity:   decimal.Zero,
	})
	assert.Error(t, err)
	assert.Empty(t, repo.movements)
}
