package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("NewDocumentFromReader() error = %v", err)
	}
	return doc
}

func TestParseListings(t *testing.T) {
	html := `
<ul>
  <li class="list-row">
    <h2><a href="/praca/acme/O123">Python Medior Dev</a></h2>
    <span class="employer">Acme s.r.o.</span>
    <span class="job-location">Bratislava</span>
    <span class="green">2 200 - 2 600 EUR/mesiac</span>
  </li>
  <li class="list-row">
    <h2><a href="https://www.profesia.sk/praca/beta/O456">Tester</a></h2>
    <span class="employer">Beta a.s.</span>
    <span class="job-location">Košice</span>
  </li>
</ul>`

	jobs := parseListings(mustDoc(t, html), zerolog.Nop())
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2", len(jobs))
	}

	first := jobs[0]
	if first.Title != "Python Medior Dev" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if first.URL != "https://www.profesia.sk/praca/acme/O123" {
		t.Fatalf("unexpected url: %q", first.URL)
	}
	if first.Company != "Acme s.r.o." {
		t.Fatalf("unexpected company: %q", first.Company)
	}
	if first.Location != "Bratislava" {
		t.Fatalf("unexpected location: %q", first.Location)
	}
	if !first.HasSalary || first.SalaryMin != 2200 || first.SalaryMax != 2600 {
		t.Fatalf("unexpected salary: %+v", first)
	}

	second := jobs[1]
	if second.HasSalary {
		t.Fatalf("expected undisclosed salary: %+v", second)
	}
	if second.URL != "https://www.profesia.sk/praca/beta/O456" {
		t.Fatalf("unexpected url: %q", second.URL)
	}
}

func TestParseListingsSkipsMalformedCard(t *testing.T) {
	html := `
<ul>
  <li class="list-row"><span class="employer">No Title Corp</span></li>
  <li class="list-row">
    <h2><a href="/praca/acme/O1">Dev</a></h2>
  </li>
</ul>`

	jobs := parseListings(mustDoc(t, html), zerolog.Nop())
	if len(jobs) != 1 {
		t.Fatalf("len(jobs) = %d, want 1", len(jobs))
	}
	if jobs[0].Title != "Dev" {
		t.Fatalf("unexpected title: %q", jobs[0].Title)
	}
}

func TestNextPageHref(t *testing.T) {
	withNext := mustDoc(t, `<a class="next" href="/praca/?search_anywhere=python&page_num=2">Ďalšia</a>`)
	if got := nextPageHref(withNext); got != "/praca/?search_anywhere=python&page_num=2" {
		t.Fatalf("nextPageHref() = %q", got)
	}

	lastPage := mustDoc(t, `<div>no pagination</div>`)
	if got := nextPageHref(lastPage); got != "" {
		t.Fatalf("nextPageHref() on last page = %q, want empty", got)
	}
}

func TestSearchURL(t *testing.T) {
	got := SearchURL("python developer")
	want := "https://www.profesia.sk/praca/?search_anywhere=python+developer"
	if got != want {
		t.Fatalf("SearchURL() = %q, want %q", got, want)
	}
}

func TestAbsoluteURL(t *testing.T) {
	cases := []struct {
		href string
		want string
	}{
		{"/praca/acme/O1", "https://www.profesia.sk/praca/acme/O1"},
		{"https://other.sk/a", "https://other.sk/a"},
		{"//cdn.profesia.sk/img", "https://cdn.profesia.sk/img"},
	}

	for _, tc := range cases {
		got := absoluteURL(BaseURL, tc.href)
		if got != tc.want {
			t.Fatalf("absoluteURL(%q) = %q, want %q", tc.href, got, tc.want)
		}
	}
}
