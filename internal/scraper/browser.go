package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/jimezsa/profcli/internal/models"
	"github.com/rs/zerolog"
)

// Clicks the profesia cookie-consent button when the banner is present.
const consentJS = `(() => {
	const btn = [...document.querySelectorAll('button, a')]
		.find(el => el.textContent.trim() === 'Povoliť Všetko');
	if (btn) { btn.click(); return true; }
	return false;
})()`

// Browser fetches result pages through a real Chrome session. One browser
// instance is shared across all keywords of a run and torn down by Close.
type Browser struct {
	cfg    models.FetchConfig
	logger zerolog.Logger

	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
}

func NewBrowser(cfg models.FetchConfig, logger zerolog.Logger) *Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("headless", !cfg.Visible),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	return &Browser{
		cfg:           cfg,
		logger:        logger,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
	}
}

func (b *Browser) Name() string { return EngineBrowser }

func (b *Browser) Fetch(ctx context.Context, keyword string) ([]models.Job, error) {
	tabCtx, cancel := chromedp.NewContext(b.browserCtx)
	defer cancel()

	if b.cfg.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		tabCtx, timeoutCancel = context.WithTimeout(tabCtx, b.cfg.Timeout)
		defer timeoutCancel()
	}
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-tabCtx.Done():
		}
	}()

	target := SearchURL(keyword)
	if err := b.navigate(tabCtx, target); err != nil {
		return nil, fmt.Errorf("profesia: navigate %q: %w", keyword, err)
	}

	var consentClicked bool
	_ = chromedp.Run(tabCtx, chromedp.Evaluate(consentJS, &consentClicked))
	if consentClicked {
		b.logger.Debug().Msg("dismissed cookie consent banner")
	}

	var jobs []models.Job
	for page := 1; ; page++ {
		var pageHTML string
		if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &pageHTML)); err != nil {
			if page == 1 {
				return nil, fmt.Errorf("profesia: read page for %q: %w", keyword, err)
			}
			b.logger.Warn().Err(err).Int("page", page).Msg("stopping pagination early")
			break
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
		if err != nil {
			return jobs, fmt.Errorf("profesia: parse page for %q: %w", keyword, err)
		}

		jobs = append(jobs, parseListings(doc, b.logger)...)

		next := nextPageHref(doc)
		if next == "" || (b.cfg.MaxPages > 0 && page >= b.cfg.MaxPages) {
			break
		}
		if err := b.navigate(tabCtx, absoluteURL(BaseURL, next)); err != nil {
			b.logger.Warn().Err(err).Int("page", page+1).Msg("stopping pagination early")
			break
		}
	}

	return jobs, nil
}

func (b *Browser) navigate(ctx context.Context, target string) error {
	var err error
	for attempt := 0; attempt <= b.cfg.Retries; attempt++ {
		if attempt > 0 {
			b.logger.Debug().Int("attempt", attempt).Str("url", target).Msg("retrying navigation")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
		err = chromedp.Run(ctx,
			chromedp.Navigate(target),
			chromedp.WaitReady("body"),
		)
		if err == nil {
			return nil
		}
	}
	return err
}

// Close tears down the shared browser and its allocator.
func (b *Browser) Close() error {
	b.browserCancel()
	b.allocCancel()
	return nil
}
