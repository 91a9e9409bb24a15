package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const (
	requestIDKey = key("x-request-id")
	streamIDKey  = key("stream-id")
)

// WithRequestID returns a context with a request id.
// It will generate a new request id if the provided id is empty.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return context.WithValue(ctx, requestIDKey, uuid.NewString())
	}

	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the request id from ctx if available.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithStreamID returns a context tagged with the symbol of the trade
// stream currently being processed.
func WithStreamID(ctx context.Context, symbol string) context.Context {
	return context.WithValue(ctx, streamIDKey, symbol)
}

// GetStreamID returns the stream symbol from ctx if available.
func GetStreamID(ctx context.Context) string {
	id, _ := ctx.Value(streamIDKey).(string)
	return id
}
