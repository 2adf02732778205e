package catalog

import (
	"context"
	"fmt"

	"phone-store-backend/models"
	"phone-store-backend/store"

	"github.com/go-playground/validator/v10"
)

// Catalog reads products from the store. Products are only ever written
// through Seed; the API surface is read-only.
type Catalog struct {
	store    store.Store
	validate *validator.Validate
}

func New(st store.Store) *Catalog {
	return &Catalog{
		store:    st,
		validate: validator.New(),
	}
}

// List returns every product whose brand or model contains term,
// case-insensitively, in insertion order. An empty term returns all products.
func (c *Catalog) List(ctx context.Context, term string) ([]models.Product, error) {
	products := []models.Product{}
	q := store.Query{Term: term, Fields: []string{"brand", "model"}}
	if err := c.store.Find(ctx, store.Products, q, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.store.FindByID(ctx, store.Products, id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Seed inserts the demo catalog if the products collection is empty.
// Returns the inserted ids, or nil when the catalog is already seeded.
func (c *Catalog) Seed(ctx context.Context) ([]string, error) {
	count, err := c.store.Count(ctx, store.Products)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(demoPhones))
	for _, p := range demoPhones {
		if err := c.validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid seed product %s %s: %w", p.Brand, p.Model, err)
		}
		id, err := c.store.Create(ctx, store.Products, p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
