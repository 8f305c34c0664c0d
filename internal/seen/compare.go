package seen

import (
	"strings"

	"github.com/jimezsa/profcli/internal/models"
)

const keySeparator = "::"

// DiffStats captures stats for unseen filtering.
type DiffStats struct {
	TotalNew  int
	TotalSeen int
	Invalid   int
	Unseen    int
}

// MergeStats captures stats for seen history updates.
type MergeStats struct {
	TotalSeen  int
	TotalInput int
	Invalid    int
	Added      int
	TotalOut   int
}

// Normalize collapses whitespace and lowercases a key component.
func Normalize(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	return strings.Join(fields, " ")
}

// Key builds the normalized title+company identity of a listing. URLs are
// not used because profesia offer URLs change when a posting is renewed.
func Key(job models.Job) (string, bool) {
	title := Normalize(job.Title)
	company := Normalize(job.Company)
	if title == "" || company == "" {
		return "", false
	}
	return title + keySeparator + company, true
}

// Diff returns listings from newJobs whose key is absent from seenJobs.
func Diff(newJobs []models.Job, seenJobs []models.Job) ([]models.Job, DiffStats) {
	stats := DiffStats{
		TotalNew:  len(newJobs),
		TotalSeen: len(seenJobs),
	}

	seenKeys := make(map[string]struct{}, len(seenJobs))
	for _, job := range seenJobs {
		key, ok := Key(job)
		if !ok {
			stats.Invalid++
			continue
		}
		seenKeys[key] = struct{}{}
	}

	emitted := make(map[string]struct{}, len(newJobs))
	unseen := make([]models.Job, 0, len(newJobs))
	for _, job := range newJobs {
		key, ok := Key(job)
		if !ok {
			stats.Invalid++
			continue
		}
		if _, dup := emitted[key]; dup {
			continue
		}
		emitted[key] = struct{}{}
		if _, exists := seenKeys[key]; exists {
			continue
		}
		unseen = append(unseen, job)
	}

	stats.Unseen = len(unseen)
	return unseen, stats
}

// Merge appends unique new listings into the seen history. Existing entries
// win collisions.
func Merge(existingSeen []models.Job, inputJobs []models.Job) ([]models.Job, MergeStats) {
	stats := MergeStats{
		TotalSeen:  len(existingSeen),
		TotalInput: len(inputJobs),
	}

	keys := make(map[string]struct{}, len(existingSeen)+len(inputJobs))
	out := make([]models.Job, 0, len(existingSeen)+len(inputJobs))

	for _, job := range existingSeen {
		key, ok := Key(job)
		if !ok {
			stats.Invalid++
			out = append(out, job)
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, job)
	}

	for _, job := range inputJobs {
		key, ok := Key(job)
		if !ok {
			stats.Invalid++
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, job)
		stats.Added++
	}

	stats.TotalOut = len(out)
	return out, stats
}
