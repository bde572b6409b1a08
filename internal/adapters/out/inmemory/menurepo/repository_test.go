package menurepo_test

import (
	"context"
	"testing"

	"foodorders/internal/adapters/out/inmemory/menurepo"
	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCandidate(t *testing.T, name string, price float64, category menu.Category) menu.Candidate {
	t.Helper()
	candidate, err := menu.NewCandidate(name, price, category)
	require.NoError(t, err)
	return candidate
}

func TestInMemoryMenuRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("should create items with dense ids starting at 1", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()

		items, err := repo.Upsert(ctx, []menu.Candidate{
			mustCandidate(t, "Margherita", 9.5, menu.CategoryPizza),
			mustCandidate(t, "Cola", 2.5, menu.CategoryDrinks),
		})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[0].ID())
		assert.Equal(t, "Margherita", items[0].Name())
		assert.Equal(t, 2, items[1].ID())
		assert.Equal(t, "Cola", items[1].Name())
	})

	t.Run("should update existing item by name keeping its id", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()

		_, err := repo.Upsert(ctx, []menu.Candidate{
			mustCandidate(t, "Margherita", 9.5, menu.CategoryPizza),
		})
		require.NoError(t, err)

		items, err := repo.Upsert(ctx, []menu.Candidate{
			mustCandidate(t, "Margherita", 11.0, menu.CategoryPizza),
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].ID())
		assert.InDelta(t, 11.0, items[0].Price(), 0.0001)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.InDelta(t, 11.0, all[0].Price(), 0.0001)
	})

	t.Run("should keep exactly one entry per distinct name", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()

		_, err := repo.Upsert(ctx, []menu.Candidate{
			mustCandidate(t, "Margherita", 9.5, menu.CategoryPizza),
			mustCandidate(t, "Cola", 2.5, menu.CategoryDrinks),
			mustCandidate(t, "Margherita", 10.0, menu.CategoryPizza),
		})
		require.NoError(t, err)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.InDelta(t, 10.0, all[0].Price(), 0.0001)
	})

	t.Run("should reject empty batch", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()

		items, err := repo.Upsert(ctx, nil)

		require.Error(t, err)
		assert.Nil(t, items)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should not mutate catalog when a candidate is invalid", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()

		items, err := repo.Upsert(ctx, []menu.Candidate{
			mustCandidate(t, "Margherita", 9.5, menu.CategoryPizza),
			{}, // zero value bypassed the constructor
		})

		require.Error(t, err)
		assert.Nil(t, items)
		assert.Equal(t, menu.ErrCandidateIsNotConstructed, err)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestInMemoryMenuRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("should retrieve item by id", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()
		_, err := repo.Upsert(ctx, []menu.Candidate{
			mustCandidate(t, "Tiramisu", 5.0, menu.CategoryDessert),
		})
		require.NoError(t, err)

		item, err := repo.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Tiramisu", item.Name())
		assert.Equal(t, menu.CategoryDessert, item.Category())
	})

	t.Run("should return not found for unknown id", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()

		item, err := repo.Get(ctx, 99)

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestInMemoryMenuRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("should return catalog in insertion order", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()
		_, err := repo.Upsert(ctx, []menu.Candidate{
			mustCandidate(t, "Cola", 2.5, menu.CategoryDrinks),
			mustCandidate(t, "Margherita", 9.5, menu.CategoryPizza),
			mustCandidate(t, "Tiramisu", 5.0, menu.CategoryDessert),
		})
		require.NoError(t, err)

		all, err := repo.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Cola", all[0].Name())
		assert.Equal(t, "Margherita", all[1].Name())
		assert.Equal(t, "Tiramisu", all[2].Name())
	})

	t.Run("should return empty snapshot for empty catalog", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()

		all, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("returned aggregates are copies", func(t *testing.T) {
		repo := menurepo.NewInMemoryMenuRepository()
		_, err := repo.Upsert(ctx, []menu.Candidate{
			mustCandidate(t, "Cola", 2.5, menu.CategoryDrinks),
		})
		require.NoError(t, err)

		first, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, first.UpdateDetails(100, menu.CategoryDessert))

		stored, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, stored.Price(), 0.0001)
		assert.Equal(t, menu.CategoryDrinks, stored.Category())
	})
}
