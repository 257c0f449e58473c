// Command producer publishes a continuous synthetic cash-transaction feed
// to Kafka, one message per second, until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cashsight/simulator/internal/config"
	"github.com/cashsight/simulator/internal/logger"
	"github.com/cashsight/simulator/internal/stream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env)
	log.Info("Starting transaction producer", map[string]interface{}{
		"brokers": cfg.Kafka.Brokers,
		"topic":   cfg.Kafka.Topic,
	})

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	feed := stream.NewFeed(seed)
	producer := stream.NewProducer(cfg.Kafka, feed, log)
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("Failed to close producer", err, nil)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := producer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Producer stopped", err, nil)
	}

	log.Info("Producer exited", nil)
}
