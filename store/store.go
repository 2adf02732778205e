package store

import (
	"context"
	"errors"
)

// Collection names. The mapping from entity type to collection is fixed here
// rather than derived from type names.
const (
	Products = "phoneproduct"
	Orders   = "order"
)

var (
	ErrNotConfigured   = errors.New("store: database not configured")
	ErrNotFound        = errors.New("store: document not found")
	ErrInvalidID       = errors.New("store: invalid document id")
	ErrConditionFailed = errors.New("store: conditional update failed")
)

// Query selects documents whose listed string fields contain Term,
// case-insensitively. A zero Query matches every document.
type Query struct {
	Term   string
	Fields []string
}

// Store is generic create/read access to named collections of documents.
// Identifiers are store-generated and exchanged as hex strings.
type Store interface {
	// Create inserts doc and returns its generated id.
	Create(ctx context.Context, collection string, doc any) (string, error)
	// Find decodes every matching document, in insertion order, into out,
	// which must be a pointer to a slice.
	Find(ctx context.Context, collection string, q Query, out any) error
	FindByID(ctx context.Context, collection, id string, out any) error
	Delete(ctx context.Context, collection, id string) error
	// DecrementGuarded atomically decrements a numeric field by the given
	// amount only if the field currently holds at least that amount.
	// Returns ErrConditionFailed otherwise.
	DecrementGuarded(ctx context.Context, collection, id, field string, by int) error
	IncrementField(ctx context.Context, collection, id, field string, by int) error
	Count(ctx context.Context, collection string) (int64, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Unconfigured is the degraded store installed when no database is reachable
// at startup. The process keeps serving; every data operation fails.
type Unconfigured struct{}

func (Unconfigured) Create(context.Context, string, any) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Find(context.Context, string, Query, any) error { return ErrNotConfigured }

func (Unconfigured) FindByID(context.Context, string, string, any) error { return ErrNotConfigured }

func (Unconfigured) Delete(context.Context, string, string) error { return ErrNotConfigured }

func (Unconfigured) DecrementGuarded(context.Context, string, string, string, int) error {
	return ErrNotConfigured
}

func (Unconfigured) IncrementField(context.Context, string, string, string, int) error {
	return ErrNotConfigured
}

func (Unconfigured) Count(context.Context, string) (int64, error) { return 0, ErrNotConfigured }

func (Unconfigured) Collections(context.Context) ([]string, error) { return nil, ErrNotConfigured }

func (Unconfigured) Ping(context.Context) error { return ErrNotConfigured }
