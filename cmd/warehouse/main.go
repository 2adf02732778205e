package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"phone-store-backend/config"
	"phone-store-backend/warehouse"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.RabbitMQURL == "" {
		log.Fatal("RABBITMQ_URL must be set for the warehouse consumer")
	}

	log.Printf("Starting Warehouse Consumer with %d workers", cfg.NumWorkers)
	log.Printf("Connecting to RabbitMQ at %s", cfg.RabbitMQURL)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer conn.Close()

	// Declare the queue (ensure it exists)
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}

	_, err = ch.QueueDeclare(
		cfg.RabbitMQQueue, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}
	ch.Close()

	log.Printf("Connected to queue: %s", cfg.RabbitMQQueue)

	tracker := warehouse.NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < cfg.NumWorkers; i++ {
		worker, err := warehouse.NewWorker(i+1, conn, cfg.RabbitMQQueue, tracker)
		if err != nil {
			log.Fatalf("Failed to create worker %d: %v", i+1, err)
		}

		wg.Add(1)
		go worker.Start(&wg)
	}

	log.Printf("All %d workers started successfully", cfg.NumWorkers)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Received shutdown signal, stopping workers...")

	// Closing the connection closes all channels and stops the workers.
	conn.Close()
	wg.Wait()

	tracker.PrintSummary()

	log.Println("Warehouse Consumer shut down gracefully")
}
