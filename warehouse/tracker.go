package warehouse

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"phone-store-backend/models"
)

// Tracker tallies processed orders and per-model unit counts in a
// thread-safe manner.
type Tracker struct {
	mu              sync.Mutex
	totalOrders     int64
	modelQuantities map[string]int64
}

func NewTracker() *Tracker {
	return &Tracker{
		modelQuantities: make(map[string]int64),
	}
}

// RecordOrder records an order and updates per-model quantities.
func (t *Tracker) RecordOrder(orderID string, items []models.LineItem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalOrders++
	for _, item := range items {
		t.modelQuantities[item.Model] += int64(item.Qty)
	}

	log.Printf("Recorded order %s (Total orders: %d)", orderID, t.totalOrders)
}

// PrintSummary prints the final summary when shutting down.
func (t *Tracker) PrintSummary() {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("WAREHOUSE SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total Orders Processed: %d\n", t.totalOrders)
	for model, qty := range t.modelQuantities {
		fmt.Printf("  %s: %d units\n", model, qty)
	}
	fmt.Println(strings.Repeat("=", 60))
}

func (t *Tracker) TotalOrders() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalOrders
}

func (t *Tracker) ModelQuantity(model string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.modelQuantities[model]
}
