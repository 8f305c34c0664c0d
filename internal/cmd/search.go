package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jimezsa/profcli/internal/config"
	"github.com/jimezsa/profcli/internal/export"
	"github.com/jimezsa/profcli/internal/filter"
	"github.com/jimezsa/profcli/internal/models"
	"github.com/jimezsa/profcli/internal/network"
	"github.com/jimezsa/profcli/internal/scraper"
	"github.com/jimezsa/profcli/internal/seen"
	"github.com/muesli/termenv"
)

type SearchCmd struct {
	Keywords []string `short:"k" required:"" sep:"," help:"Search keywords (repeatable or comma-separated)."`
	Min      *int     `help:"Minimum monthly salary in EUR."`
	Max      *int     `help:"Maximum monthly salary in EUR."`
	All      []string `sep:"," help:"Title must contain all of these words."`
	Any      []string `sep:"," help:"Title must contain at least one of these words."`
	None     []string `sep:"," help:"Title must contain none of these words."`

	Browser bool   `short:"b" help:"Show the browser window (browser engine only)."`
	Engine  string `enum:",browser,http" default:"" help:"Fetch engine: browser (default) or http."`
	Pages   int    `help:"Maximum result pages per keyword (0 = config default)."`
	Retries int    `help:"Retries per failed page load."`
	Timeout int    `default:"90" help:"Per-keyword fetch timeout in seconds."`

	IncludeUndisclosed bool `help:"Keep listings without a disclosed salary even when salary bounds are set."`

	Format  string `enum:",csv,json,tsv,table" default:"" help:"Output format."`
	Output  string `short:"o" help:"Write output to a file (default jobs.csv for CSV)."`
	Proxies string `help:"Comma-separated proxy URLs (http engine)." env:"PROFCLI_PROXIES"`

	Seen       string `help:"Path to seen listings JSON file."`
	NewOnly    bool   `help:"Output only unseen listings (requires --seen)."`
	SeenUpdate bool   `help:"Merge new listings into --seen after the run."`
}

type keywordFailure struct {
	keyword string
	err     error
}

func (s *SearchCmd) Run(ctx *Context) error {
	query, err := s.buildQuery(ctx.Config)
	if err != nil {
		return err
	}
	if s.NewOnly && strings.TrimSpace(s.Seen) == "" {
		return usageErrorf("--new-only requires --seen")
	}
	if s.SeenUpdate && strings.TrimSpace(s.Seen) == "" {
		return usageErrorf("--seen-update requires --seen")
	}

	engine := firstNonEmpty(s.Engine, ctx.Config.DefaultEngine)
	fetchCfg := models.FetchConfig{
		Visible:  s.Browser,
		MaxPages: defaultInt(s.Pages, ctx.Config.DefaultPages),
		Retries:  s.Retries,
		Timeout:  time.Duration(s.Timeout) * time.Second,
	}

	var rotator *network.Rotator
	if engine == scraper.EngineHTTP {
		proxies, err := config.LoadProxies(s.Proxies)
		if err != nil {
			return err
		}
		if len(proxies) > 0 {
			rotator, err = network.NewRotator(proxies, 10*time.Minute)
			if err != nil {
				return err
			}
		}
	}

	fetcher, err := scraper.New(engine, fetchCfg, rotator, ctx.Logger)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	stopIndicator := startFetchIndicator(ctx)

	var (
		jobs     []models.Job
		failures []keywordFailure
	)
	for _, keyword := range query.Keywords {
		found, err := fetcher.Fetch(context.Background(), keyword)
		if err != nil {
			ctx.Logger.Warn().Err(err).Str("keyword", keyword).Msg("keyword fetch failed")
			failures = append(failures, keywordFailure{keyword: keyword, err: err})
			continue
		}
		jobs = mergeUniqueJobs(jobs, found)
	}

	if stopIndicator != nil {
		stopIndicator()
	}

	reportKeywordFailures(ctx, failures)
	if len(failures) == len(query.Keywords) {
		return fmt.Errorf("all keyword fetches failed")
	}

	matched, droppedCount := filter.Apply(query, jobs)

	var unseenJobs []models.Job
	if strings.TrimSpace(s.Seen) != "" {
		history, err := seen.ReadJobsAllowMissing(s.Seen)
		if err != nil {
			return fmt.Errorf("read --seen: %w", err)
		}
		unseenJobs, _ = seen.Diff(matched, history)
	}

	outputJobs := matched
	if s.NewOnly {
		outputJobs = unseenJobs
	}

	format, outputPath := resolveOutput(ctx, s.Format, s.Output, ctx.Config.DefaultOutput)
	if outputPath != "" && pathsEqual(outputPath, s.Seen) {
		return usageErrorf("--output path must differ from --seen")
	}

	writer := ctx.Out
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outputPath, err)
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled && outputPath == ""
	writeErr := export.WriteJobs(writer, outputJobs, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(writer),
	})
	if writeErr != nil {
		if outputPath != "" {
			return fmt.Errorf("write %s: %w", outputPath, writeErr)
		}
		return writeErr
	}

	if s.SeenUpdate {
		if err := updateSeenHistory(s.Seen, unseenJobs); err != nil {
			return err
		}
	}

	printSearchSummary(ctx, outputJobs, droppedCount, unseenJobs, s.Seen, outputPath)
	return nil
}

func (s *SearchCmd) buildQuery(cfg config.Config) (models.SearchQuery, error) {
	keywords := normalizeWords(s.Keywords)
	if len(keywords) == 0 {
		return models.SearchQuery{}, usageErrorf("at least one non-empty keyword is required")
	}

	query := models.SearchQuery{
		Keywords:           keywords,
		AllWords:           normalizeWords(s.All),
		AnyWords:           normalizeWords(s.Any),
		NoneWords:          normalizeWords(s.None),
		IncludeUndisclosed: s.IncludeUndisclosed || cfg.IncludeUndisclosed,
	}
	if s.Min != nil {
		query.HasMin = true
		query.MinSalary = *s.Min
	}
	if s.Max != nil {
		query.HasMax = true
		query.MaxSalary = *s.Max
	}
	if query.HasMin && query.HasMax && query.MinSalary > query.MaxSalary {
		return models.SearchQuery{}, usageErrorf("--min (%d) must not exceed --max (%d)", query.MinSalary, query.MaxSalary)
	}

	return query, nil
}

func normalizeWords(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	return out
}

// mergeUniqueJobs appends incoming listings, deduping by URL across
// keywords.
func mergeUniqueJobs(existing []models.Job, incoming []models.Job) []models.Job {
	if len(incoming) == 0 {
		return existing
	}

	keys := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]models.Job, 0, len(existing)+len(incoming))

	add := func(job models.Job) {
		key := job.URL
		if key == "" {
			key = strings.ToLower(job.Title + "|" + job.Company)
		}
		if _, exists := keys[key]; exists {
			return
		}
		keys[key] = struct{}{}
		merged = append(merged, job)
	}

	for _, job := range existing {
		add(job)
	}
	for _, job := range incoming {
		add(job)
	}

	return merged
}

func updateSeenHistory(seenPath string, newJobs []models.Job) error {
	history, err := seen.ReadJobsAllowMissing(seenPath)
	if err != nil {
		return fmt.Errorf("read --seen: %w", err)
	}

	merged, _ := seen.Merge(history, newJobs)
	if err := seen.WriteJobs(seenPath, merged); err != nil {
		return fmt.Errorf("write --seen: %w", err)
	}
	return nil
}

func reportKeywordFailures(ctx *Context, failures []keywordFailure) {
	if ctx == nil || ctx.UI == nil || len(failures) == 0 {
		return
	}
	for _, failure := range failures {
		ctx.UI.Warnf("fetch failed for %q: %v", failure.keyword, failure.err)
	}
}

func printSearchSummary(ctx *Context, exported []models.Job, dropped int, unseenJobs []models.Job, seenPath string, outputPath string) {
	if ctx == nil || ctx.UI == nil {
		return
	}

	target := "stdout"
	if outputPath != "" {
		target = outputPath
	}

	summary := fmt.Sprintf("Exported %d listings to %s (filtered out %d)", len(exported), target, dropped)
	if strings.TrimSpace(seenPath) != "" {
		summary += fmt.Sprintf(", %d new", len(unseenJobs))
	}
	ctx.UI.Successf("%s", summary)
}

// resolveOutput decides format and destination. The default run writes CSV
// to the configured output file; non-CSV formats go to stdout unless -o is
// given.
func resolveOutput(ctx *Context, formatFlag string, outputFlag string, defaultOutput string) (export.Format, string) {
	var format export.Format
	switch {
	case formatFlag != "":
		format = export.Format(formatFlag)
	case ctx.JSONOutput:
		format = export.FormatJSON
	case ctx.PlainText:
		format = export.FormatTSV
	}

	if format == "" && outputFlag != "" {
		format = formatByExtension(outputFlag)
	}
	if format == "" {
		format = export.FormatCSV
	}

	outputPath := outputFlag
	if outputPath == "" && format == export.FormatCSV {
		outputPath = defaultOutput
	}
	return format, outputPath
}

func formatByExtension(path string) export.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return export.FormatJSON
	case ".tsv":
		return export.FormatTSV
	default:
		return export.FormatCSV
	}
}

func pathsEqual(a, b string) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil {
		return absA == absB
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func startFetchIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	sp := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(ctx.Err))
	sp.Suffix = " fetching listings..."
	sp.Start()
	return sp.Stop
}
