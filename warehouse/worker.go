package warehouse

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"phone-store-backend/events"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Worker struct {
	workerID  int
	channel   *amqp.Channel
	queueName string
	tracker   *Tracker
}

// NewWorker opens a dedicated channel for the worker with prefetch 1 so each
// worker handles one order at a time.
func NewWorker(workerID int, conn *amqp.Connection, queueName string, tracker *Tracker) (*Worker, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel for worker %d: %w", workerID, err)
	}

	err = ch.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to set QoS for worker %d: %w", workerID, err)
	}

	return &Worker{
		workerID:  workerID,
		channel:   ch,
		queueName: queueName,
		tracker:   tracker,
	}, nil
}

// Start consumes order messages until the channel closes.
func (w *Worker) Start(wg *sync.WaitGroup) {
	defer wg.Done()
	defer w.channel.Close()

	msgs, err := w.channel.Consume(
		w.queueName,                          // queue
		fmt.Sprintf("worker-%d", w.workerID), // consumer tag
		false,                                // auto-ack (we want manual acknowledgements)
		false,                                // exclusive
		false,                                // no-local
		false,                                // no-wait
		nil,                                  // args
	)
	if err != nil {
		log.Printf("Worker %d failed to register consumer: %v", w.workerID, err)
		return
	}

	log.Printf("Worker %d started and waiting for orders", w.workerID)

	for msg := range msgs {
		w.processMessage(msg)
	}

	log.Printf("Worker %d stopped", w.workerID)
}

func (w *Worker) processMessage(msg amqp.Delivery) {
	var order events.OrderPlacedMessage

	if err := json.Unmarshal(msg.Body, &order); err != nil {
		log.Printf("Worker %d: Failed to unmarshal order: %v", w.workerID, err)
		// Reject without requeue, the message is malformed
		msg.Nack(false, false)
		return
	}

	w.tracker.RecordOrder(order.OrderID, order.Items)

	if err := msg.Ack(false); err != nil {
		log.Printf("Worker %d: Failed to acknowledge message: %v", w.workerID, err)
	} else {
		log.Printf("Worker %d: Processed and acknowledged order %s", w.workerID, order.OrderID)
	}
}

// Stop gracefully stops the worker.
func (w *Worker) Stop() {
	if w.channel != nil {
		w.channel.Close()
	}
}
