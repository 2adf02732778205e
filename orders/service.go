package orders

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"phone-store-backend/models"
	"phone-store-backend/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventPublisher notifies downstream consumers of a placed order. Optional.
type EventPublisher interface {
	OrderPlaced(ctx context.Context, order models.Order) error
}

// Service places orders: it validates cart lines against the catalog,
// reserves stock with guarded decrements, and persists the order document.
type Service struct {
	store  store.Store
	events EventPublisher
}

func NewService(st store.Store, events EventPublisher) *Service {
	return &Service{store: st, events: events}
}

// Placed is the result of a successful order.
type Placed struct {
	OrderID string
	Total   float64
}

// Place runs the order workflow. Stock is reserved before the order document
// is written, so a persisted order always has its stock decremented; any
// failure after a decrement compensates every decrement already applied.
func (s *Service) Place(ctx context.Context, req models.CreateOrderRequest) (*Placed, error) {
	items := make([]models.LineItem, 0, len(req.Items))
	var total float64

	for _, line := range req.Items {
		var product models.Product
		err := s.store.FindByID(ctx, store.Products, line.ProductID, &product)
		switch {
		case errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID):
			return nil, &InvalidProductError{ProductID: line.ProductID}
		case err != nil:
			return nil, err
		}

		// Courtesy precheck. The guarded decrement below is the
		// authoritative stock check under concurrency.
		if product.Stock < line.Qty {
			return nil, &InsufficientStockError{Model: product.Model}
		}

		items = append(items, models.LineItem{
			ProductID: line.ProductID,
			Brand:     product.Brand,
			Model:     product.Model,
			Price:     product.Price,
			Qty:       line.Qty,
			Image:     product.Image,
		})
		total += product.Price * float64(line.Qty)
	}
	total = round2(total)

	for i, line := range req.Items {
		err := s.store.DecrementGuarded(ctx, store.Products, line.ProductID, "stock", line.Qty)
		if err != nil {
			s.restoreStock(ctx, req.Items[:i])
			if errors.Is(err, store.ErrConditionFailed) {
				return nil, &InsufficientStockError{Model: items[i].Model}
			}
			return nil, err
		}
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		Items:        items,
		Total:        total,
		Status:       models.OrderStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	orderID, err := s.store.Create(ctx, store.Orders, order)
	if err != nil {
		s.restoreStock(ctx, req.Items)
		return nil, err
	}

	log.Printf("Placed order %s with %d items, total %.2f", orderID, len(items), total)

	if s.events != nil {
		order.ID, _ = primitive.ObjectIDFromHex(orderID)
		if err := s.events.OrderPlaced(ctx, order); err != nil {
			log.Printf("Failed to publish order %s to warehouse: %v", orderID, err)
		}
	}

	return &Placed{OrderID: orderID, Total: total}, nil
}

// restoreStock compensates decrements already applied for this order.
func (s *Service) restoreStock(ctx context.Context, lines []models.CartItem) {
	for _, line := range lines {
		if err := s.store.IncrementField(ctx, store.Products, line.ProductID, "stock", line.Qty); err != nil {
			log.Printf("Failed to restore stock for product %s: %v", line.ProductID, err)
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
