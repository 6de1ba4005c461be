package kafka

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/segmentio/kafka-go"

	kafka_config "rechargetravels/pkg/kafka/config"
	"rechargetravels/pkg/logger"
)

// Handler processes one consumed message. Returning a PermanentError
// routes the message to the DLQ; any other error triggers a retry.
type Handler func(ctx context.Context, msg Message) error

type Consumer struct {
	reader     *kafka.Reader
	dlq        *Producer
	handler    Handler
	maxRetries int
	log        *logger.Logger
	closed     bool
	mu         sync.Mutex
}

func NewConsumer(cfg *kafka_config.Config, topic, groupID, dlqTopic string, handler Handler, log *logger.Logger) (*Consumer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if topic == "" || groupID == "" {
		return nil, fmt.Errorf("topic and group id are required")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler cannot be nil")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: cfg.ConsumerMinBytes,
		MaxBytes: cfg.ConsumerMaxBytes,
		MaxWait:  cfg.ConsumerMaxWait,
	})

	var dlq *Producer
	if dlqTopic != "" {
		var err error
		dlq, err = NewProducer(cfg, dlqTopic, "")
		if err != nil {
			_ = reader.Close()
			return nil, fmt.Errorf("failed to create DLQ producer: %w", err)
		}
	}

	return &Consumer{
		reader:     reader,
		dlq:        dlq,
		handler:    handler,
		maxRetries: cfg.ConsumerMaxRetries,
		log:        log,
	}, nil
}

// Run consumes until ctx is cancelled or the consumer is closed.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		km, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			c.mu.Lock()
			closed := c.closed
			c.mu.Unlock()
			if closed {
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		msg := fromKafkaMessage(km)
		if err := c.process(ctx, msg); err != nil {
			c.log.Error("Message processing failed after retries",
				"topic", msg.Topic,
				"key", msg.Key,
				"event_id", msg.GetEventID(),
				"error", err,
			)
		}

		if err := c.reader.CommitMessages(ctx, km); err != nil {
			c.log.Error("Failed to commit offset", "topic", msg.Topic, "offset", msg.Offset, "error", err)
		}
	}
}

func (c *Consumer) process(ctx context.Context, msg Message) error {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		lastErr = c.handler(ctx, msg)
		if lastErr == nil {
			return nil
		}
		if IsPermanent(lastErr) {
			break
		}
		c.log.Warn("Message handler failed, retrying",
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"key", msg.Key,
			"error", lastErr,
		)
	}

	if c.dlq != nil {
		msg.Headers[HeaderRetryCount] = strconv.Itoa(c.maxRetries)
		msg.Headers[HeaderOriginalTopic] = msg.Topic
		if dlqErr := c.dlq.Publish(ctx, msg); dlqErr != nil {
			return fmt.Errorf("handler failed and DLQ publish failed: %v (handler error: %w)", dlqErr, lastErr)
		}
		c.log.Info("Message routed to DLQ", "key", msg.Key, "event_id", msg.GetEventID())
	}
	return lastErr
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	err := c.reader.Close()
	if c.dlq != nil {
		if dlqErr := c.dlq.Close(); err == nil {
			err = dlqErr
		}
	}
	return err
}

func fromKafkaMessage(km kafka.Message) Message {
	msg := Message{
		Key:       string(km.Key),
		Value:     km.Value,
		Headers:   make(map[string]string, len(km.Headers)),
		Topic:     km.Topic,
		Partition: km.Partition,
		Offset:    km.Offset,
		Timestamp: km.Time,
	}
	for _, h := range km.Headers {
		msg.Headers[h.Key] = string(h.Value)
	}
	return msg
}
