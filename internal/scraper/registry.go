package scraper

import (
	"fmt"

	"github.com/jimezsa/profcli/internal/models"
	"github.com/jimezsa/profcli/internal/network"
	"github.com/rs/zerolog"
)

const (
	EngineBrowser = "browser"
	EngineHTTP    = "http"
)

// New builds the requested fetch engine. The caller owns Close.
func New(engine string, cfg models.FetchConfig, rotator *network.Rotator, logger zerolog.Logger) (Fetcher, error) {
	switch engine {
	case EngineBrowser:
		return NewBrowser(cfg, logger), nil
	case EngineHTTP:
		client, err := network.NewClient(rotator)
		if err != nil {
			return nil, err
		}
		return NewHTTPFetcher(client, cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}
