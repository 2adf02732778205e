package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"phone-store-backend/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderPlacedMessage is the wire format consumed by the warehouse.
type OrderPlacedMessage struct {
	OrderID string            `json:"order_id"`
	Total   float64           `json:"total"`
	Items   []models.LineItem `json:"items"`
}

type Publisher struct {
	pool      *ChannelPool
	queueName string
}

func NewPublisher(pool *ChannelPool, queueName string) *Publisher {
	return &Publisher{
		pool:      pool,
		queueName: queueName,
	}
}

// OrderPlaced publishes a placed order to the warehouse queue.
func (p *Publisher) OrderPlaced(ctx context.Context, order models.Order) error {
	ch, err := p.pool.GetChannel()
	if err != nil {
		return fmt.Errorf("failed to get channel from pool: %w", err)
	}
	defer p.pool.ReturnChannel(ch)

	msg := OrderPlacedMessage{
		OrderID: order.ID.Hex(),
		Total:   order.Total,
		Items:   order.Items,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order: %w", err)
	}

	log.Printf("Published order %s to warehouse queue", msg.OrderID)
	return nil
}
