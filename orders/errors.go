package orders

import "fmt"

// InvalidProductError covers both malformed product ids and ids that do not
// resolve to a product. Client error.
type InvalidProductError struct {
	ProductID string
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("product %s not found or invalid", e.ProductID)
}

// InsufficientStockError names the model that could not be reserved.
type InsufficientStockError struct {
	Model string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s", e.Model)
}
