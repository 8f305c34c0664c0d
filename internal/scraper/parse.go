package scraper

import (
	"errors"
	"html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/profcli/internal/models"
	"github.com/jimezsa/profcli/internal/salary"
	"github.com/rs/zerolog"
)

var errNoTitleLink = errors.New("listing card has no title link")

// parseListings extracts all listing cards from a result-page document.
// A malformed card is logged and skipped; it never aborts the page.
func parseListings(doc *goquery.Document, logger zerolog.Logger) []models.Job {
	var jobs []models.Job

	doc.Find("li.list-row").Each(func(_ int, card *goquery.Selection) {
		job, err := parseCard(card)
		if err != nil {
			logger.Debug().Err(err).Msg("skipping malformed listing card")
			return
		}
		jobs = append(jobs, job)
	})

	return jobs
}

func parseCard(card *goquery.Selection) (models.Job, error) {
	anchor := card.Find("h2 > a").First()
	if anchor.Length() == 0 {
		return models.Job{}, errNoTitleLink
	}

	title := cleanText(anchor.Text())
	href := strings.TrimSpace(anchor.AttrOr("href", ""))
	if title == "" || href == "" {
		return models.Job{}, errNoTitleLink
	}

	job := models.Job{
		Title:     title,
		Company:   cleanText(card.Find("span.employer").First().Text()),
		Location:  cleanText(card.Find("span.job-location").First().Text()),
		URL:       absoluteURL(BaseURL, href),
		SalaryRaw: cleanText(card.Find("span.green").First().Text()),
	}

	if r, ok := salary.Parse(job.SalaryRaw); ok {
		job.HasSalary = true
		job.SalaryMin = r.Min
		job.SalaryMax = r.Max
	}

	return job, nil
}

// nextPageHref returns the pagination link of a result page, or "" on the
// last page.
func nextPageHref(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("a.next").First().AttrOr("href", ""))
}

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}

func absoluteURL(base string, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}
