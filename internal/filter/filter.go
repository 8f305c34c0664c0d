package filter

import (
	"strings"
	"unicode"

	"github.com/jimezsa/profcli/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases and strips diacritics so unaccented query words match
// Slovak titles ("manazer" matches "Manažér").
func Fold(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, value)
	if err != nil {
		folded = value
	}
	return strings.ToLower(folded)
}

// Match reports whether a single listing satisfies the query. It is a pure
// function of its inputs and never mutates the listing.
func Match(query models.SearchQuery, job models.Job) bool {
	title := Fold(job.Title)
	if !containsAll(title, query.AllWords) {
		return false
	}
	if len(query.AnyWords) > 0 && !containsAny(title, query.AnyWords) {
		return false
	}
	if containsAny(title, query.NoneWords) {
		return false
	}
	return salaryMatch(query, job)
}

// Apply returns the listings matching query and the count filtered out.
func Apply(query models.SearchQuery, jobs []models.Job) ([]models.Job, int) {
	kept := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if Match(query, job) {
			kept = append(kept, job)
		}
	}
	return kept, len(jobs) - len(kept)
}

func containsAll(title string, words []string) bool {
	for _, word := range words {
		if !strings.Contains(title, Fold(word)) {
			return false
		}
	}
	return true
}

func containsAny(title string, words []string) bool {
	for _, word := range words {
		if strings.Contains(title, Fold(word)) {
			return true
		}
	}
	return false
}

// salaryMatch passes a disclosed range iff it overlaps the query bounds.
// Undisclosed salaries pass only when no bound is set, unless the query
// opted into keeping them.
func salaryMatch(query models.SearchQuery, job models.Job) bool {
	if !job.HasSalary {
		if !query.HasMin && !query.HasMax {
			return true
		}
		return query.IncludeUndisclosed
	}
	if query.HasMin && job.SalaryMax < query.MinSalary {
		return false
	}
	if query.HasMax && job.SalaryMin > query.MaxSalary {
		return false
	}
	return true
}
