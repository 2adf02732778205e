package store

import (
	"context"
	"sync"
	"testing"

	"phone-store-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryCreateAssignsID(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	id, err := mem.Create(ctx, Products, models.Product{Brand: "Apple", Model: "iPhone 15 Pro", Price: 1199, Stock: 25})
	require.NoError(t, err)

	_, err = primitive.ObjectIDFromHex(id)
	require.NoError(t, err, "generated id must be a valid ObjectID hex string")

	var product models.Product
	require.NoError(t, mem.FindByID(ctx, Products, id, &product))
	assert.Equal(t, "Apple", product.Brand)
	assert.Equal(t, id, product.ID.Hex())
	assert.Equal(t, 25, product.Stock)
	assert.Equal(t, float64(1199), product.Price)
}

func TestMemoryFindByIDErrors(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	var product models.Product
	err := mem.FindByID(ctx, Products, "not-a-hex-id", &product)
	assert.ErrorIs(t, err, ErrInvalidID)

	err = mem.FindByID(ctx, Products, primitive.NewObjectID().Hex(), &product)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFindQuery(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	for _, p := range []models.Product{
		{Brand: "Apple", Model: "iPhone 15 Pro", Price: 1199, Stock: 25},
		{Brand: "Samsung", Model: "Galaxy S23 Ultra", Price: 1099, Stock: 30},
		{Brand: "Google", Model: "Pixel 8 Pro", Price: 999, Stock: 15},
	} {
		_, err := mem.Create(ctx, Products, p)
		require.NoError(t, err)
	}

	fields := []string{"brand", "model"}

	var all []models.Product
	require.NoError(t, mem.Find(ctx, Products, Query{}, &all))
	require.Len(t, all, 3)
	assert.Equal(t, "Apple", all[0].Brand, "insertion order must be preserved")
	assert.Equal(t, "Google", all[2].Brand)

	var byBrand []models.Product
	require.NoError(t, mem.Find(ctx, Products, Query{Term: "SAMSUNG", Fields: fields}, &byBrand))
	require.Len(t, byBrand, 1)
	assert.Equal(t, "Galaxy S23 Ultra", byBrand[0].Model)

	var byModel []models.Product
	require.NoError(t, mem.Find(ctx, Products, Query{Term: "ultra", Fields: fields}, &byModel))
	require.Len(t, byModel, 1)
	assert.Equal(t, "Samsung", byModel[0].Brand)

	var none []models.Product
	require.NoError(t, mem.Find(ctx, Products, Query{Term: "nokia", Fields: fields}, &none))
	assert.Empty(t, none)
}

func TestMemoryDecrementGuarded(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	id, err := mem.Create(ctx, Products, models.Product{Brand: "Google", Model: "Pixel 8 Pro", Price: 999, Stock: 5})
	require.NoError(t, err)

	require.NoError(t, mem.DecrementGuarded(ctx, Products, id, "stock", 3))

	var product models.Product
	require.NoError(t, mem.FindByID(ctx, Products, id, &product))
	assert.Equal(t, 2, product.Stock)

	err = mem.DecrementGuarded(ctx, Products, id, "stock", 3)
	assert.ErrorIs(t, err, ErrConditionFailed)

	require.NoError(t, mem.FindByID(ctx, Products, id, &product))
	assert.Equal(t, 2, product.Stock, "failed decrement must not change the field")

	err = mem.DecrementGuarded(ctx, Products, primitive.NewObjectID().Hex(), "stock", 1)
	assert.ErrorIs(t, err, ErrConditionFailed)
}

func TestMemoryDecrementGuardedConcurrent(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	id, err := mem.Create(ctx, Products, models.Product{Brand: "Apple", Model: "iPhone 15 Pro", Price: 1199, Stock: 100})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := mem.DecrementGuarded(ctx, Products, id, "stock", 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, succeeded, "exactly stock-many decrements may succeed")

	var product models.Product
	require.NoError(t, mem.FindByID(ctx, Products, id, &product))
	assert.Equal(t, 0, product.Stock)
}

func TestMemoryIncrementField(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	id, err := mem.Create(ctx, Products, models.Product{Brand: "Samsung", Model: "Galaxy S23 Ultra", Price: 1099, Stock: 1})
	require.NoError(t, err)

	require.NoError(t, mem.IncrementField(ctx, Products, id, "stock", 4))

	var product models.Product
	require.NoError(t, mem.FindByID(ctx, Products, id, &product))
	assert.Equal(t, 5, product.Stock)

	err = mem.IncrementField(ctx, Products, primitive.NewObjectID().Hex(), "stock", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteAndCount(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	id, err := mem.Create(ctx, Orders, models.Order{CustomerName: "Ada", Status: models.OrderStatusPending})
	require.NoError(t, err)

	count, err := mem.Count(ctx, Orders)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, mem.Delete(ctx, Orders, id))

	count, err = mem.Count(ctx, Orders)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, mem.Delete(ctx, Orders, id), ErrNotFound)
}

func TestUnconfigured(t *testing.T) {
	ctx := context.Background()
	var st Store = Unconfigured{}

	_, err := st.Create(ctx, Products, models.Product{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, st.Find(ctx, Products, Query{}, &[]models.Product{}), ErrNotConfigured)
	assert.ErrorIs(t, st.Ping(ctx), ErrNotConfigured)
	_, err = st.Count(ctx, Products)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
