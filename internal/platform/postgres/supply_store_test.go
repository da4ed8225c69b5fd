package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/aimun-naharr/food-donation-app-server/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSupply(t *testing.T, name string, createdAt time.Time) *domain.Supply {
	t.Helper()

	supply, err := domain.NewSupplyFromFields(map[string]any{
		"name":  name,
		"image": "https://example.com/" + name + ".png",
		"donor": "Acme Corp",
	})
	require.NoError(t, err)
	supply.CreatedAt = createdAt
	supply.UpdatedAt = createdAt
	return supply
}

func TestSupplyStoreCreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	supplyStore := NewSupplyStore(db, nil)
	ctx := context.Background()

	supply, err := domain.NewSupplyFromFields(map[string]any{
		"name":        "Rice",
		"description": "50kg bags",
		"quantity":    float64(3),
		"category":    "grains",
		"image":       "https://example.com/rice.png",
		"donor":       "Acme Corp",
		"urgent":      true,
	})
	require.NoError(t, err)
	require.NoError(t, supplyStore.Create(ctx, supply))

	loaded, err := supplyStore.GetByID(ctx, supply.ID)
	require.NoError(t, err)
	assert.Equal(t, supply.ID, loaded.ID)
	assert.Equal(t, "Rice", loaded.Name)
	assert.Equal(t, "50kg bags", loaded.Description)
	assert.Equal(t, 3, loaded.Quantity)
	assert.Equal(t, "grains", loaded.Category)
	assert.Equal(t, "https://example.com/rice.png", loaded.Image)

	// Pass-through extras survive the JSONB round trip.
	assert.Equal(t, "Acme Corp", loaded.Extra["donor"])
	assert.Equal(t, true, loaded.Extra["urgent"])
}

func TestSupplyStoreGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	supplyStore := NewSupplyStore(db, nil)

	_, err := supplyStore.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrSupplyNotFound)
}

func TestSupplyStoreListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	supplyStore := NewSupplyStore(db, nil)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)
	older := newTestSupply(t, "older", base.Add(-time.Minute))
	newer := newTestSupply(t, "newer", base)

	require.NoError(t, supplyStore.Create(ctx, older))
	require.NoError(t, supplyStore.Create(ctx, newer))

	supplies, err := supplyStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, supplies, 2)
	assert.Equal(t, "newer", supplies[0].Name)
	assert.Equal(t, "older", supplies[1].Name)
}

func TestSupplyStoreListEmpty(t *testing.T) {
	db := newTestDB(t)
	supplyStore := NewSupplyStore(db, nil)

	supplies, err := supplyStore.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, supplies)
}

func TestSupplyStoreUpdateMerges(t *testing.T) {
	db := newTestDB(t)
	supplyStore := NewSupplyStore(db, nil)
	ctx := context.Background()

	supply := newTestSupply(t, "Rice", time.Now().UTC())
	require.NoError(t, supplyStore.Create(ctx, supply))

	quantity := 5
	patch := &domain.SupplyPatch{
		Quantity: &quantity,
		Extra:    map[string]any{"urgent": true},
	}
	require.NoError(t, supplyStore.Update(ctx, supply.ID, patch))

	loaded, err := supplyStore.GetByID(ctx, supply.ID)
	require.NoError(t, err)

	// The patched fields changed...
	assert.Equal(t, 5, loaded.Quantity)
	assert.Equal(t, true, loaded.Extra["urgent"])

	// ...and everything else, stored extras included, is retained.
	assert.Equal(t, "Rice", loaded.Name)
	assert.Equal(t, supply.Image, loaded.Image)
	assert.Equal(t, "Acme Corp", loaded.Extra["donor"])
	assert.True(t, loaded.UpdatedAt.After(loaded.CreatedAt))
}

func TestSupplyStoreUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	supplyStore := NewSupplyStore(db, nil)

	quantity := 5
	err := supplyStore.Update(context.Background(), uuid.New(), &domain.SupplyPatch{Quantity: &quantity})
	assert.ErrorIs(t, err, store.ErrSupplyNotFound)
}

func TestSupplyStoreDelete(t *testing.T) {
	db := newTestDB(t)
	supplyStore := NewSupplyStore(db, nil)
	ctx := context.Background()

	supply := newTestSupply(t, "Rice", time.Now().UTC())
	require.NoError(t, supplyStore.Create(ctx, supply))

	require.NoError(t, supplyStore.Delete(ctx, supply.ID))

	_, err := supplyStore.GetByID(ctx, supply.ID)
	assert.ErrorIs(t, err, store.ErrSupplyNotFound)

	// Deleting again reports the absence.
	assert.ErrorIs(t, supplyStore.Delete(ctx, supply.ID), store.ErrSupplyNotFound)
}
