package filter

import (
	"testing"

	"github.com/jimezsa/profcli/internal/models"
)

func disclosed(title string, low, high int) models.Job {
	return models.Job{Title: title, HasSalary: true, SalaryMin: low, SalaryMax: high}
}

func TestFold(t *testing.T) {
	got := Fold("Manažér Kvality")
	want := "manazer kvality"
	if got != want {
		t.Fatalf("Fold() = %q, want %q", got, want)
	}
}

func TestMatchScenario(t *testing.T) {
	query := models.SearchQuery{
		Keywords:  []string{"python"},
		MinSalary: 2000,
		HasMin:    true,
		AnyWords:  []string{"medior", "junior"},
		NoneWords: []string{"senior"},
	}
	jobs := []models.Job{
		disclosed("Python Medior Dev", 2200, 2600),
		disclosed("Python Senior Architect", 3500, 4000),
		disclosed("Python Intern", 1000, 1200),
	}

	kept, dropped := Apply(query, jobs)
	if len(kept) != 1 {
		t.Fatalf("len(kept) = %d, want 1", len(kept))
	}
	if kept[0].Title != "Python Medior Dev" {
		t.Fatalf("unexpected match: %+v", kept[0])
	}
	if dropped != 2 {
		t.Fatalf("dropped = %d, want 2", dropped)
	}
}

func TestSalaryOverlap(t *testing.T) {
	cases := []struct {
		name       string
		low, high  int
		qmin, qmax int
		want       bool
	}{
		{"inside bounds", 2200, 2600, 2000, 3000, true},
		{"straddles min", 1800, 2200, 2000, 3000, true},
		{"straddles max", 2800, 3200, 2000, 3000, true},
		{"below min", 1000, 1500, 2000, 3000, false},
		{"above max", 3500, 4000, 2000, 3000, false},
		{"touching min", 1500, 2000, 2000, 3000, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query := models.SearchQuery{
				MinSalary: tc.qmin, HasMin: true,
				MaxSalary: tc.qmax, HasMax: true,
			}
			got := Match(query, disclosed("Dev", tc.low, tc.high))
			if got != tc.want {
				t.Fatalf("Match([%d,%d] vs [%d,%d]) = %v, want %v",
					tc.low, tc.high, tc.qmin, tc.qmax, got, tc.want)
			}
		})
	}
}

func TestUndisclosedSalaryPolicy(t *testing.T) {
	job := models.Job{Title: "Dev"}

	if !Match(models.SearchQuery{}, job) {
		t.Fatalf("undisclosed salary should pass without bounds")
	}

	bounded := models.SearchQuery{MinSalary: 2000, HasMin: true}
	if Match(bounded, job) {
		t.Fatalf("undisclosed salary should fail a bounded query")
	}

	bounded.IncludeUndisclosed = true
	if !Match(bounded, job) {
		t.Fatalf("include-undisclosed should keep the listing")
	}
}

func TestAnyPredicateVacuousPass(t *testing.T) {
	query := models.SearchQuery{AnyWords: nil}
	if !Match(query, models.Job{Title: "Anything At All"}) {
		t.Fatalf("empty any-list must pass vacuously")
	}
}

func TestNonePredicateExcludes(t *testing.T) {
	query := models.SearchQuery{
		AnyWords:  []string{"python"},
		NoneWords: []string{"senior"},
	}
	job := disclosed("Senior Python Dev", 2000, 3000)
	if Match(query, job) {
		t.Fatalf("none-list word in title must exclude the listing")
	}
}

func TestAllPredicate(t *testing.T) {
	query := models.SearchQuery{AllWords: []string{"python", "dev"}}
	if !Match(query, models.Job{Title: "Python Backend Dev"}) {
		t.Fatalf("title containing all words must pass")
	}
	if Match(query, models.Job{Title: "Python Backend"}) {
		t.Fatalf("title missing an all-word must fail")
	}
}

func TestMatchFoldsDiacritics(t *testing.T) {
	query := models.SearchQuery{AllWords: []string{"manazer"}}
	if !Match(query, models.Job{Title: "Manažér predaja"}) {
		t.Fatalf("diacritics in the title must not prevent a match")
	}
}
