package consumer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	v1 "github.com/ivaaaan/candlestream/internal/domain/trade/v1"
	"github.com/ivaaaan/candlestream/pkg/config"
	"github.com/ivaaaan/candlestream/pkg/errors"
	"github.com/ivaaaan/candlestream/pkg/logger"
	"github.com/ivaaaan/candlestream/pkg/util"
)

// reader is the subset of kafka.Reader the consumer drives. FetchMessage
// is used instead of ReadMessage so offsets are only committed after a
// trade has been handled.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TradeConsumer is the consumer for the trade topic.
type TradeConsumer struct {
	kafkaReader reader
	logger      logger.Interface

	msgChan chan kafka.Message
}

// NewTradeConsumer creates a new TradeConsumer.
func NewTradeConsumer(cfg config.TradeKafkaConfig, logger logger.Interface) *TradeConsumer {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.ConsumerGroup,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &TradeConsumer{
		kafkaReader: kafkaReader,
		logger:      logger,
		msgChan:     make(chan kafka.Message),
	}
}

// Start fetches messages from the trade topic and pushes them onto the
// internal channel until the context is cancelled.
func (c *TradeConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "starting trade consumer", logger.Field{
		Key:   "action",
		Value: "trade_consumer_start",
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "trade_consumer_stop",
			})
			close(c.msgChan)
			return
		default:
			msg, err := c.kafkaReader.FetchMessage(ctx)
			if err != nil {
				c.logger.ErrorContext(ctx, errors.TracerFromError(errors.NewErrorDetails(
					err.Error(), string(errors.KafkaReadError), "topic",
				)), logger.Field{
					Key:   "action",
					Value: "fetch_message",
				})
				continue
			}

			c.msgChan <- msg
		}
	}
}

// Stop stops the TradeConsumer.
func (c *TradeConsumer) Stop() error {
	c.logger.InfoContext(context.Background(), "stopping trade consumer", logger.Field{
		Key:   "action",
		Value: "trade_consumer_stop",
	})
	return c.kafkaReader.Close()
}

// Subscribe decodes trade events and hands them to the handler.
func (c *TradeConsumer) Subscribe(ctx context.Context, handler func(ctx context.Context, event *v1.TradeEvent) error) {
	c.logger.InfoContext(ctx, "subscribing to trade consumer", logger.Field{
		Key:   "action",
		Value: "trade_consumer_subscribe",
	})

	for msg := range c.msgChan {
		c.handleMessage(ctx, msg, handler)
	}
}

// handleMessage processes one Kafka message. The offset is committed
// only after the handler succeeds, so a trade lost to a transient
// failure is replayed on restart. Undecodable messages are committed
// and skipped; replaying them can never succeed.
func (c *TradeConsumer) handleMessage(ctx context.Context, msg kafka.Message, handler func(ctx context.Context, event *v1.TradeEvent) error) {
	var trade v1.TradeEvent
	if err := json.Unmarshal(msg.Value, &trade); err != nil {
		c.logger.ErrorContext(ctx, errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.TradeDecodeError), "payload",
		)), logger.Field{
			Key:   "action",
			Value: "unmarshal_trade",
		})
		c.commit(ctx, msg)
		return
	}

	ctx = util.WithRequestID(ctx, trade.ID)

	if err := handler(ctx, &trade); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "handle_trade",
		})
		return
	}

	c.commit(ctx, msg)
}

func (c *TradeConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.kafkaReader.CommitMessages(ctx, msg); err != nil {
		c.logger.ErrorContext(ctx, errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.KafkaCommitError), "offset",
		)), logger.Field{
			Key:   "action",
			Value: "commit_message",
		})
	}
}
