package bar

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ivaaaan/candlestream/pkg/errors"
	"github.com/ivaaaan/candlestream/pkg/questdb"
)

const barColumns = `timestamp, symbol, window, open, high, low, close, volume, trade_count,
			  weighted_price, average_price, stddev_prices, stddev_sizes, time_velocity, entropy`

// Repository represents the repository for bar data.
type Repository struct {
	client questdb.QuestDBClient
}

// Ensure Repository implements BarRepository
var _ BarRepository = (*Repository)(nil)

// NewRepository creates a new bar repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store stores a single bar.
func (r *Repository) Store(ctx context.Context, bar *Bar) error {
	query := `INSERT INTO bars (` + barColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	err := r.client.Exec(ctx, query,
		bar.Timestamp, bar.Symbol, bar.Window, bar.Open, bar.High, bar.Low, bar.Close,
		bar.Volume, bar.TradeCount, bar.WeightedPrice, bar.AveragePrice,
		bar.StdDevPrices, bar.StdDevSizes, bar.TimeVelocity, bar.Entropy)

	if err != nil {
		return fmt.Errorf("failed to store bar: %w", err)
	}

	return nil
}

// StoreBatch stores a batch of bars using CopyFrom for better performance.
func (r *Repository) StoreBatch(ctx context.Context, bars []*Bar) error {
	if len(bars) == 0 {
		return nil
	}

	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"bars"},
		[]string{
			"timestamp", "symbol", "window", "open", "high", "low", "close",
			"volume", "trade_count", "weighted_price", "average_price",
			"stddev_prices", "stddev_sizes", "time_velocity", "entropy",
		},
		pgx.CopyFromSlice(len(bars), func(i int) ([]any, error) {
			bar := bars[i]
			return []any{
				bar.Timestamp,
				bar.Symbol,
				bar.Window,
				bar.Open,
				bar.High,
				bar.Low,
				bar.Close,
				bar.Volume,
				bar.TradeCount,
				bar.WeightedPrice,
				bar.AveragePrice,
				bar.StdDevPrices,
				bar.StdDevSizes,
				bar.TimeVelocity,
				bar.Entropy,
			}, nil
		}),
	)

	if err != nil {
		return fmt.Errorf("failed to copy bar batch: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recent bar for a symbol and window.
func (r *Repository) GetLatest(ctx context.Context, symbol, window string) (*Bar, error) {
	query := `SELECT ` + barColumns + ` FROM bars
			  WHERE symbol = $1 AND window = $2 ORDER BY timestamp DESC LIMIT 1`

	bar := &Bar{}
	err := r.client.QueryRow(ctx, query, symbol, window).Scan(
		&bar.Timestamp, &bar.Symbol, &bar.Window, &bar.Open, &bar.High, &bar.Low, &bar.Close,
		&bar.Volume, &bar.TradeCount, &bar.WeightedPrice, &bar.AveragePrice,
		&bar.StdDevPrices, &bar.StdDevSizes, &bar.TimeVelocity, &bar.Entropy)
	if err != nil {
		return nil, errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.QuestDBQueryError), "symbol",
		))
	}

	return bar, nil
}

// GetByFilter retrieves bars by filter.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Bar, error) {
	query := "SELECT " + barColumns + " FROM bars WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Symbol != "" {
		query += fmt.Sprintf(" AND symbol = $%d", argIndex)
		args = append(args, filter.Symbol)
		argIndex++
	}

	if filter.Window != "" {
		query += fmt.Sprintf(" AND window = $%d", argIndex)
		args = append(args, filter.Window)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.QuestDBQueryError), "filter",
		))
	}
	defer rows.Close()

	var bars []*Bar
	for rows.Next() {
		bar := &Bar{}
		if err := rows.Scan(
			&bar.Timestamp, &bar.Symbol, &bar.Window, &bar.Open, &bar.High, &bar.Low, &bar.Close,
			&bar.Volume, &bar.TradeCount, &bar.WeightedPrice, &bar.AveragePrice,
			&bar.StdDevPrices, &bar.StdDevSizes, &bar.TimeVelocity, &bar.Entropy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bar: %w", err)
		}
		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bars: %w", err)
	}

	return bars, nil
}
