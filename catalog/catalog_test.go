package catalog

import (
	"context"
	"testing"

	"phone-store-backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seededCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat := New(store.NewMemory())
	ids, err := cat.Seed(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 3)
	return cat
}

func TestSeedTwice(t *testing.T) {
	cat := seededCatalog(t)

	ids, err := cat.Seed(context.Background())
	require.NoError(t, err)
	assert.Nil(t, ids, "second seed must insert nothing")
}

func TestListAll(t *testing.T) {
	cat := seededCatalog(t)

	products, err := cat.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Apple", products[0].Brand, "insertion order")
	assert.Equal(t, "Samsung", products[1].Brand)
	assert.Equal(t, "Google", products[2].Brand)
}

func TestListFilter(t *testing.T) {
	cat := seededCatalog(t)
	ctx := context.Background()

	tests := []struct {
		term   string
		models []string
	}{
		{"apple", []string{"iPhone 15 Pro"}},
		{"GALAXY", []string{"Galaxy S23 Ultra"}},
		{"pro", []string{"iPhone 15 Pro", "Pixel 8 Pro"}},
		{"nokia", nil},
	}
	for _, tt := range tests {
		products, err := cat.List(ctx, tt.term)
		require.NoError(t, err, tt.term)
		var got []string
		for _, p := range products {
			got = append(got, p.Model)
		}
		assert.Equal(t, tt.models, got, "term %q", tt.term)
	}
}

func TestGetRoundTrip(t *testing.T) {
	cat := seededCatalog(t)
	ctx := context.Background()

	products, err := cat.List(ctx, "pixel")
	require.NoError(t, err)
	require.Len(t, products, 1)

	id := products[0].ID.Hex()
	product, err := cat.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, product.ID.Hex())
	assert.Equal(t, "Pixel 8 Pro", product.Model)
}

func TestGetErrors(t *testing.T) {
	cat := seededCatalog(t)
	ctx := context.Background()

	_, err := cat.Get(ctx, "not-a-valid-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)

	_, err = cat.Get(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUnconfiguredStore(t *testing.T) {
	cat := New(store.Unconfigured{})
	ctx := context.Background()

	_, err := cat.List(ctx, "")
	assert.ErrorIs(t, err, store.ErrNotConfigured)

	_, err = cat.Seed(ctx)
	assert.ErrorIs(t, err, store.ErrNotConfigured)
}
