package resolve

import (
	"testing"

	"internsift/app/fetch"
	"internsift/app/job"
)

func TestResolveRemote(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		location string
		html     string
		want     job.RemoteStatus
	}{
		{"hybrid in title", "SWE Intern (Hybrid)", "Austin, TX", "", job.Hybrid},
		{"remote in location", "SWE Intern", "Remote", "", job.Remote},
		{"onsite in title", "SWE Intern - Onsite", "Austin, TX", "", job.OnSite},
		{"work arrangement window", "SWE Intern", "",
			"<html><body><p>Work arrangement: this role is hybrid, three days in office.</p></body></html>", job.Hybrid},
		{"fully remote text", "SWE Intern", "",
			"<html><body><p>This position is fully remote.</p></body></html>", job.Remote},
		{"location defaults onsite", "SWE Intern", "Austin, TX",
			"<html><body><p>Join our team.</p></body></html>", job.OnSite},
		{"nothing known", "SWE Intern", "",
			"<html><body><p>Join our team.</p></body></html>", job.RemoteUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc *fetch.Document
			if tt.html != "" {
				var err error
				doc, err = fetch.NewDocumentFromHTML(tt.html, "https://example.org/jobs/1")
				if err != nil {
					t.Fatal(err)
				}
			}
			if got := ResolveRemote(tt.title, tt.location, doc); got != tt.want {
				t.Errorf("ResolveRemote(%q, %q) = %v, want %v", tt.title, tt.location, got, tt.want)
			}
		})
	}
}
