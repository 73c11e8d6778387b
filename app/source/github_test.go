package source

import (
	"context"
	"testing"
	"time"

	"internsift/app/fetch"
	"internsift/app/job"
)

type fakeFetcher struct {
	html string
	url  string
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (*fetch.Result, error) {
	doc, err := fetch.NewDocumentFromHTML(f.html, f.url)
	if err != nil {
		return nil, err
	}
	return &fetch.Result{Doc: doc, FinalURL: f.url}, nil
}

func TestGithubFeed_ParsesHTMLTable(t *testing.T) {
	html := `<html><body><table><tbody>
		<tr><td>Acme</td><td>Software Engineering Intern</td><td>Austin, TX</td><td><a href="https://acme.com/jobs/1">Apply</a></td><td>5d</td></tr>
		<tr><td>↳</td><td>Data Intern</td><td>Seattle, WA</td><td><a href="https://acme.com/jobs/2">Apply</a></td><td>2d</td></tr>
		<tr><td>Globex</td><td>ML Intern</td><td>Remote</td><td><a href="https://globex.com/jobs/9">Apply 🔒</a></td><td>12d</td></tr>
		<tr><td>NoLink</td><td>Broken Row</td><td>Nowhere</td><td></td><td>1d</td></tr>
	</tbody></table></body></html>`

	feed := NewGithubFeed(&fakeFetcher{html: html, url: "https://github.com/listings"}, "https://github.com/listings", "GithubListings")
	got, err := feed.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3", len(got))
	}

	first := got[0]
	if first.Hints.Company != "Acme" || first.Hints.Title != "Software Engineering Intern" {
		t.Errorf("first row hints = %+v", first.Hints)
	}
	if first.SourceURL != "https://acme.com/jobs/1" || first.AgeLabel != "5d" {
		t.Errorf("first row url/age = %q/%q", first.SourceURL, first.AgeLabel)
	}
	if first.Origin != job.OriginGithubFeed || first.Service != "GithubListings" {
		t.Errorf("first row origin/service = %v/%q", first.Origin, first.Service)
	}

	if got[1].Hints.Company != "Acme" {
		t.Errorf("continuation row company = %q, want carried forward", got[1].Hints.Company)
	}
	if !got[2].Closed {
		t.Error("locked row not marked closed")
	}
}

func TestGithubFeed_ParsesMarkdownFallback(t *testing.T) {
	md := `# Listings
| Company | Role | Location | Application | Age |
| ------- | ---- | -------- | ----------- | --- |
| **Acme** | Software Engineering Intern | Austin, TX | [Apply](https://acme.com/jobs/1) | 3d |
| ↳ | Backend Intern | Austin, TX | [Apply](https://acme.com/jobs/2) | 3d |
| Globex | Platform Intern ❌ | Denver, CO | [Apply](https://globex.com/jobs/7) | 1mo |
`
	html := "<html><body><pre>" + md + "</pre></body></html>"

	feed := NewGithubFeed(&fakeFetcher{html: html, url: "https://raw.github.com/readme"}, "https://raw.github.com/readme", "GithubListings")
	got, err := feed.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3", len(got))
	}
	if got[0].Hints.Company != "Acme" {
		t.Errorf("bold cell company = %q, want markdown stripped", got[0].Hints.Company)
	}
	if got[1].Hints.Company != "Acme" {
		t.Errorf("continuation company = %q, want carried forward", got[1].Hints.Company)
	}
	if got[2].SourceURL != "https://globex.com/jobs/7" || !got[2].Closed {
		t.Errorf("closed row = %+v", got[2])
	}
}

func TestParseAgeLabel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		label    string
		wantDays int
		wantOK   bool
	}{
		{"days", "5d", 5, true},
		{"months", "2mo", 60, true},
		{"calendar same year", "Mar 1", 9, true},
		{"calendar rolls back", "Oct 15", 146, true},
		{"empty", "", 0, false},
		{"garbage", "soon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := ParseAgeLabel(tt.label, now)
			if ok != tt.wantOK || days != tt.wantDays {
				t.Errorf("ParseAgeLabel(%q) = (%d, %v), want (%d, %v)", tt.label, days, ok, tt.wantDays, tt.wantOK)
			}
		})
	}
}
