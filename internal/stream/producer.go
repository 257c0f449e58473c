package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/cashsight/simulator/internal/config"
	"github.com/cashsight/simulator/internal/logger"
)

// DefaultPublishInterval is the pause between published transactions.
const DefaultPublishInterval = 1 * time.Second

// Producer publishes feed transactions to a Kafka topic at a fixed
// interval until its context is cancelled.
type Producer struct {
	writer   *kafka.Writer
	feed     *Feed
	log      *logger.Logger
	interval time.Duration
}

// NewProducer creates a producer over the configured brokers and topic.
func NewProducer(cfg config.KafkaConfig, feed *Feed, log *logger.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{
		writer:   writer,
		feed:     feed,
		log:      log,
		interval: DefaultPublishInterval,
	}
}

// Run publishes one transaction per interval until ctx is cancelled.
// Publish failures are logged and the loop continues; the broker may come
// and go without killing the feed.
func (p *Producer) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			txn := p.feed.Next()
			if err := p.publish(ctx, txn); err != nil {
				p.log.Error("Failed to publish transaction", err, map[string]interface{}{
					"txn_id": txn.TxnID,
				})
				continue
			}
			p.log.Debug("Published transaction", map[string]interface{}{
				"txn_id": txn.TxnID,
				"amount": txn.Amount,
			})
		}
	}
}

func (p *Producer) publish(ctx context.Context, txn interface{}) error {
	value, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("marshal transaction: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: value}); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
