package resolve

import (
	"testing"

	"internsift/app/fetch"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips season parenthetical", "Software Engineering Intern (Summer 2026)", "Software Engineering Intern"},
		{"strips season suffix", "Data Engineer Intern - Fall 2026", "Data Engineer Intern"},
		{"strips bracketed qualifier", "ML Intern [Remote Eligible]", "ML Intern"},
		{"strips bare year", "Hardware Intern 2026", "Hardware Intern"},
		{"collapses whitespace", "Software   Intern", "Software Intern"},
		{"keeps plain title", "Backend Developer Intern", "Backend Developer Intern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.in); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanTitle_RevertsWhenOverCleaned(t *testing.T) {
	// Cleaning must never destroy an already-short valid title.
	in := "(SWE) 2026"
	if got := CleanTitle(in); got != in {
		t.Errorf("CleanTitle(%q) = %q, want original preserved", in, got)
	}
}

func TestTitleResolver_Resolve_PrefersStructuredData(t *testing.T) {
	html := `<html><head>
		<title>Careers at Acme - Acme Inc</title>
		<script type="application/ld+json">{"@type":"JobPosting","title":"Software Engineering Intern"}</script>
	</head><body><h1>Join us!</h1></body></html>`
	doc, err := fetch.NewDocumentFromHTML(html, "https://acme.com/jobs/1")
	if err != nil {
		t.Fatal(err)
	}

	got := NewTitleResolver().Resolve(doc, "")
	if got != "Software Engineering Intern" {
		t.Errorf("Resolve = %q, want structured data title", got)
	}
}

func TestTitleResolver_Resolve_FallsBackToHeading(t *testing.T) {
	html := `<html><body><h1>Data Science Intern</h1></body></html>`
	doc, err := fetch.NewDocumentFromHTML(html, "https://acme.com/jobs/2")
	if err != nil {
		t.Fatal(err)
	}

	got := NewTitleResolver().Resolve(doc, "")
	if got != "Data Science Intern" {
		t.Errorf("Resolve = %q, want heading text", got)
	}
}

func TestTitleResolver_Resolve_SplitsDocTitle(t *testing.T) {
	html := `<html><head><title>Platform Intern | Acme</title></head><body></body></html>`
	doc, err := fetch.NewDocumentFromHTML(html, "https://acme.com/jobs/3")
	if err != nil {
		t.Fatal(err)
	}

	got := NewTitleResolver().Resolve(doc, "")
	if got != "Platform Intern" {
		t.Errorf("Resolve = %q, want title before separator", got)
	}
}

func TestTitleResolver_Resolve_UsesHintLast(t *testing.T) {
	doc, err := fetch.NewDocumentFromHTML("<html><body></body></html>", "https://acme.com/jobs/4")
	if err != nil {
		t.Fatal(err)
	}

	got := NewTitleResolver().Resolve(doc, "Security Intern")
	if got != "Security Intern" {
		t.Errorf("Resolve = %q, want hint fallback", got)
	}
}
