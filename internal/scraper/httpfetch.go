package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/profcli/internal/models"
	"github.com/jimezsa/profcli/internal/network"
	"github.com/rs/zerolog"
)

// HTTPFetcher fetches result pages without a browser, using a
// Chrome-fingerprinted TLS client.
type HTTPFetcher struct {
	client *network.Client
	cfg    models.FetchConfig
	logger zerolog.Logger
}

func NewHTTPFetcher(client *network.Client, cfg models.FetchConfig, logger zerolog.Logger) *HTTPFetcher {
	return &HTTPFetcher{client: client, cfg: cfg, logger: logger}
}

func (h *HTTPFetcher) Name() string { return EngineHTTP }

func (h *HTTPFetcher) Fetch(ctx context.Context, keyword string) ([]models.Job, error) {
	if h.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.Timeout)
		defer cancel()
	}

	var jobs []models.Job
	target := SearchURL(keyword)

	for page := 1; ; page++ {
		doc, err := h.fetchDocument(ctx, target)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("profesia: fetch %q: %w", keyword, err)
			}
			h.logger.Warn().Err(err).Int("page", page).Msg("stopping pagination early")
			break
		}

		jobs = append(jobs, parseListings(doc, h.logger)...)

		next := nextPageHref(doc)
		if next == "" || (h.cfg.MaxPages > 0 && page >= h.cfg.MaxPages) {
			break
		}
		target = absoluteURL(BaseURL, next)
	}

	return jobs, nil
}

func (h *HTTPFetcher) fetchDocument(ctx context.Context, target string) (*goquery.Document, error) {
	var lastErr error
	for attempt := 0; attempt <= h.cfg.Retries; attempt++ {
		if attempt > 0 {
			h.logger.Debug().Int("attempt", attempt).Str("url", target).Msg("retrying fetch")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
		doc, err := h.fetchOnce(ctx, target)
		if err == nil {
			return doc, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (h *HTTPFetcher) fetchOnce(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("accept-language", "sk-SK,sk;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

func (h *HTTPFetcher) Close() error { return nil }
