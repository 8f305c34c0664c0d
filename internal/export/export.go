package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/profcli/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatTSV   Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

// WriteJobs writes listings in the requested format. The CSV/TSV header is
// always written, so zero matches still produce a header-only file.
func WriteJobs(w io.Writer, jobs []models.Job, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, jobs)
	case FormatCSV:
		return writeCSV(w, jobs, ',')
	case FormatTSV:
		return writeCSV(w, jobs, '\t')
	default:
		return writeTable(w, jobs, opts)
	}
}

func writeJSON(w io.Writer, jobs []models.Job) error {
	if jobs == nil {
		jobs = []models.Job{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jobs)
}

func writeCSV(w io.Writer, jobs []models.Job, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := writer.Write(csvRow(job)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, jobs []models.Job, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(), "\t"))
	output := termenv.NewOutput(w)
	for _, job := range jobs {
		fmt.Fprintln(tw, strings.Join(tableRow(job, output, opts), "\t"))
	}
	return tw.Flush()
}

func csvHeader() []string {
	return []string{
		"title",
		"salary",
		"salary_min",
		"salary_max",
		"company",
		"location",
		"url",
	}
}

func csvRow(job models.Job) []string {
	salaryMin, salaryMax := "", ""
	if job.HasSalary {
		salaryMin = strconv.Itoa(job.SalaryMin)
		salaryMax = strconv.Itoa(job.SalaryMax)
	}
	return []string{
		job.Title,
		job.SalaryRaw,
		salaryMin,
		salaryMax,
		job.Company,
		job.Location,
		job.URL,
	}
}

func tableHeader() []string {
	return []string{
		"title",
		"salary",
		"company",
		"location",
		"url",
	}
}

func tableRow(job models.Job, output *termenv.Output, opts WriteOptions) []string {
	const linkColor = "#87CEEB"

	salaryText := job.SalaryRaw
	if salaryText == "" {
		salaryText = "-"
	}

	displayURL := "-"
	if url := strings.TrimSpace(job.URL); url != "" {
		displayURL = url
		if opts.ColorEnabled {
			displayURL = output.String(displayURL).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			displayURL = hyperlink(url, displayURL)
		}
	}

	return []string{
		strings.TrimSpace(job.Title),
		salaryText,
		strings.TrimSpace(job.Company),
		strings.TrimSpace(job.Location),
		displayURL,
	}
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}
