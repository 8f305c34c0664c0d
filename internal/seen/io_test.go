package seen

import (
	"path/filepath"
	"testing"

	"github.com/jimezsa/profcli/internal/models"
)

func TestReadJobsAllowMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	jobs, err := ReadJobsAllowMissing(path)
	if err != nil {
		t.Fatalf("ReadJobsAllowMissing() error = %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("len(jobs) = %d, want 0", len(jobs))
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	input := []models.Job{
		{Title: "Python Dev", Company: "Acme", URL: "https://www.profesia.sk/praca/acme/O1"},
	}

	if err := WriteJobs(path, input); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}

	got, err := ReadJobs(path)
	if err != nil {
		t.Fatalf("ReadJobs() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Python Dev" {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}
