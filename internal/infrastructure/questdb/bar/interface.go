package bar

import "context"

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// BarRepository defines persistence for emitted bars.
type BarRepository interface {
	Store(ctx context.Context, bar *Bar) error
	StoreBatch(ctx context.Context, bars []*Bar) error
	GetLatest(ctx context.Context, symbol, window string) (*Bar, error)
	GetByFilter(ctx context.Context, filter Filter) ([]*Bar, error)
}
