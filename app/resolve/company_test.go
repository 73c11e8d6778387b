package resolve

import (
	"testing"

	"internsift/app/fetch"
	"internsift/app/rules"
)

func testRules(t *testing.T) *rules.Set {
	t.Helper()
	tables := rules.Defaults()
	tables.URLCompanyPatterns = append(tables.URLCompanyPatterns,
		rules.PatternName{Pattern: `careers\.acme\.com`, Name: "Acme Inc"})
	rs, err := rules.Compile(tables)
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

func TestCompanyResolver_URLMappingWins(t *testing.T) {
	rs := testRules(t)
	r := NewCompanyResolver(rs)
	doc, err := fetch.NewDocumentFromHTML(
		`<html><head><meta property="og:site_name" content="SomeBoard"></head><body></body></html>`,
		"https://careers.acme.com/jobs/123")
	if err != nil {
		t.Fatal(err)
	}

	got := r.Resolve(doc, "https://careers.acme.com/jobs/123", "Software Engineering Intern", "")
	if got != "Acme" {
		t.Errorf("Resolve = %q, want table hit cleaned to %q", got, "Acme")
	}
}

func TestCompanyResolver_BoardPath(t *testing.T) {
	rs := testRules(t)
	r := NewCompanyResolver(rs)
	doc, err := fetch.NewDocumentFromHTML("<html><body></body></html>", "")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"greenhouse path", "https://boards.greenhouse.io/stripe/jobs/456", "Stripe"},
		{"lever path", "https://jobs.lever.co/figma/abc-def", "Figma"},
		{"workday subdomain", "https://datadog.wd5.myworkdayjobs.com/en-US/careers/job/NY/x_R123", "Datadog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(doc, tt.url, "Software Intern", ""); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestCompanyResolver_StructuredData(t *testing.T) {
	rs := testRules(t)
	r := NewCompanyResolver(rs)
	html := `<html><head><script type="application/ld+json">
		{"@type":"JobPosting","title":"SWE Intern","hiringOrganization":{"@type":"Organization","name":"Initech, LLC"}}
	</script></head><body></body></html>`
	doc, err := fetch.NewDocumentFromHTML(html, "https://example.org/jobs/1")
	if err != nil {
		t.Fatal(err)
	}

	got := r.Resolve(doc, "https://example.org/jobs/1", "SWE Intern", "")
	if got != "Initech" {
		t.Errorf("Resolve = %q, want legal suffix stripped", got)
	}
}

func TestCompanyResolver_DomainFallback(t *testing.T) {
	rs := testRules(t)
	r := NewCompanyResolver(rs)
	doc, err := fetch.NewDocumentFromHTML("<html><body></body></html>", "")
	if err != nil {
		t.Fatal(err)
	}

	got := r.Resolve(doc, "https://www.hooli.com/openings/9", "Backend Intern", "")
	if got != "Hooli" {
		t.Errorf("Resolve = %q, want domain-derived name", got)
	}
}

func TestCompanyNamer_Clean(t *testing.T) {
	n := NewCompanyNamer(testRules(t))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"legal suffix", "Acme Inc.", "Acme"},
		{"corp suffix", "Globex Corporation", "Globex"},
		{"dba keeps brand", "Vandelay Industries d/b/a Vandelay", "Vandelay"},
		{"country parenthetical", "Umbrella (US)", "Umbrella"},
		{"mixed case preserved", "eBay", "eBay"},
		{"all caps preserved", "NVIDIA", "NVIDIA"},
		{"lowercase capitalized", "stark industries", "Stark Industries"},
		{"placeholder rejected", "Unknown", ""},
		{"html entity", "Johnson &amp; Johnson", "Johnson & Johnson"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompanyNamer_IsPlausible(t *testing.T) {
	n := NewCompanyNamer(testRules(t))
	title := "Software Engineering Intern"

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"normal name", "Acme", true},
		{"too short", "A", false},
		{"equals title", "Software Engineering Intern", false},
		{"title leak", "Software Intern", false},
		{"short caps non acronym", "XQZV", false},
		{"known acronym", "IBM", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.IsPlausible(tt.value, title); got != tt.want {
				t.Errorf("IsPlausible(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
