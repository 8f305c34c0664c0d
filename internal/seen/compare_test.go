package seen

import (
	"testing"

	"github.com/jimezsa/profcli/internal/models"
)

func TestNormalize(t *testing.T) {
	got := Normalize("  Python   Medior\tDev  ")
	want := "python medior dev"
	if got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestKey(t *testing.T) {
	job := models.Job{Title: "  Python Medior Dev ", Company: " Acme   s.r.o. "}
	got, ok := Key(job)
	if !ok {
		t.Fatalf("expected valid key")
	}
	want := "python medior dev::acme s.r.o."
	if got != want {
		t.Fatalf("Key() = %q, want %q", got, want)
	}

	if _, ok := Key(models.Job{Title: "No Company"}); ok {
		t.Fatalf("expected invalid key without company")
	}
}

func TestDiff(t *testing.T) {
	newJobs := []models.Job{
		{Title: "Python Dev", Company: "Acme", URL: "https://www.profesia.sk/praca/acme/O1"},
		{Title: "Python   Dev", Company: " Acme ", URL: "https://www.profesia.sk/praca/acme/O1-renewed"},
		{Title: "Tester", Company: "Beta", URL: "https://www.profesia.sk/praca/beta/O2"},
		{Title: "", Company: "Invalid"},
	}
	seenJobs := []models.Job{
		{Title: "python dev", Company: "acme"},
	}

	unseen, stats := Diff(newJobs, seenJobs)

	if len(unseen) != 1 {
		t.Fatalf("len(unseen) = %d, want 1", len(unseen))
	}
	if unseen[0].Title != "Tester" {
		t.Fatalf("unexpected unseen listing: %+v", unseen[0])
	}
	if stats.TotalNew != 4 || stats.TotalSeen != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.Invalid != 1 {
		t.Fatalf("Invalid = %d, want 1", stats.Invalid)
	}
	if stats.Unseen != 1 {
		t.Fatalf("Unseen = %d, want 1", stats.Unseen)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	input := []models.Job{
		{Title: "Python Dev", Company: "Acme"},
		{Title: "Tester", Company: "Beta"},
	}

	merged, stats := Merge(nil, input)
	if len(merged) != 2 || stats.Added != 2 {
		t.Fatalf("unexpected first merge: len=%d stats=%+v", len(merged), stats)
	}

	merged2, stats2 := Merge(merged, input)
	if len(merged2) != 2 {
		t.Fatalf("len(merged2) = %d, want 2", len(merged2))
	}
	if stats2.Added != 0 {
		t.Fatalf("Added = %d, want 0", stats2.Added)
	}
}
