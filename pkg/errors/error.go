package errors

import (
	"bytes"
	"reflect"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// ConfigParseError represents an error when parsing environment configuration.
	ConfigParseError ErrorCode = "config_parse_error"
	// RuleConfigError represents an error when a boundary rule is constructed
	// with an invalid period or threshold.
	RuleConfigError ErrorCode = "rule_config_error"

	// QuestDBConnectionError represents an error when connecting to QuestDB.
	QuestDBConnectionError ErrorCode = "questdb_connection_error"
	// QuestDBQueryError represents an error when querying QuestDB.
	QuestDBQueryError ErrorCode = "questdb_query_error"
	// CandleStoreError represents an error when persisting an emitted candle.
	CandleStoreError ErrorCode = "candle_store_error"

	// KafkaReadError represents an error when reading a message from Kafka.
	KafkaReadError ErrorCode = "kafka_read_error"
	// KafkaCommitError represents an error when committing a Kafka offset.
	KafkaCommitError ErrorCode = "kafka_commit_error"
	// TradeDecodeError represents an error when decoding a raw trade event.
	TradeDecodeError ErrorCode = "trade_decode_error"

	// SinkWriteError represents an error when writing candles to a file sink.
	SinkWriteError ErrorCode = "sink_write_error"
)

// BaseError is an `error` type containing an array of ErrorDetails.
// This error provides basic functions for performing transformations
// on a list of ErrorDetails.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		buff.WriteString("; object: ")
		if err.Object != nil {
			buff.WriteString(reflect.TypeOf(err.Object).String())
		}
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code string) bool {
	for _, d := range b.GetDetails() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// IsAllCodeEqual check if all ErrorDetails code is equal with given code
func (b *BaseError) IsAllCodeEqual(code string) bool {
	if len(b.details) == 0 {
		return false
	}

	for _, d := range b.GetDetails() {
		if d.Code != code {
			return false
		}
	}
	return true
}
