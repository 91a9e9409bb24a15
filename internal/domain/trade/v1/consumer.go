package v1

import (
	"context"
)

//go:generate mockgen -source=consumer.go -destination=mock/consumer_mock.go -package=mock

// TradeConsumer represents a consumer that delivers trade events.
type TradeConsumer interface {
	Start(ctx context.Context)
	Stop() error
	Subscribe(ctx context.Context, handler func(ctx context.Context, event *TradeEvent) error)
}
