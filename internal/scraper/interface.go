package scraper

import (
	"context"
	"errors"

	"github.com/jimezsa/profcli/internal/models"
)

var ErrUnknownEngine = errors.New("unknown fetch engine")

// Fetcher loads profesia.sk search result pages for a single keyword and
// returns the listings found. Each call re-fetches; results are not cached.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, keyword string) ([]models.Job, error)
	Close() error
}
