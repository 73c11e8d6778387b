package classify

import (
	"strings"
	"testing"

	"internsift/app/fetch"
)

func TestGeography_CheckLocation(t *testing.T) {
	g := NewGeography(testRules(t))

	tests := []struct {
		name       string
		location   string
		wantOK     bool
		wantInside string
	}{
		{"us city state", "Austin, TX", true, ""},
		{"empty location passes", "", true, ""},
		{"province name", "Toronto, Ontario", false, "Canada"},
		{"canada literal", "Remote - Canada", false, "Canada"},
		{"known canadian city with code", "Markham, ON", false, "Canada"},
		{"province code not a state", "Montreal, QC", false, "Canada"},
		{"ca suffix is california", "San Jose, CA", true, ""},
		{"uk city", "London UK", false, "UK"},
		{"country keyword", "Bangalore, India", false, "India"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := g.CheckLocation(tt.location, nil)
			if ok != tt.wantOK {
				t.Fatalf("CheckLocation(%q) = (%v, %q), want ok=%v", tt.location, ok, reason, tt.wantOK)
			}
			if tt.wantInside != "" && !strings.Contains(reason, tt.wantInside) {
				t.Errorf("reason %q does not mention %q", reason, tt.wantInside)
			}
		})
	}
}

func TestGeography_AmbiguousCityUsesContext(t *testing.T) {
	g := NewGeography(testRules(t))

	canadaPage := `<html><body><p>Vancouver office. Applicants must hold a Canadian
		work permit. Enter your postal code. Salary in CAD.</p></body></html>`
	usPage := `<html><body><p>Vancouver, WA office. United States applicants only.
		401(k) match. Equal opportunity employer. Enter your zip code.</p></body></html>`

	docCA, err := fetch.NewDocumentFromHTML(canadaPage, "https://acme.ca/jobs/1")
	if err != nil {
		t.Fatal(err)
	}
	docUS, err := fetch.NewDocumentFromHTML(usPage, "https://acme.com/jobs/1")
	if err != nil {
		t.Fatal(err)
	}

	if ok, _ := g.CheckLocation("Vancouver, BC", docCA); ok {
		t.Error("Vancouver with Canadian context should be rejected")
	}
	if ok, reason := g.CheckLocation("Vancouver, WA", docUS); !ok {
		t.Errorf("Vancouver, WA with US context rejected: %q", reason)
	}
}

func TestGeography_ValidStateTrustedOverPageSignals(t *testing.T) {
	g := NewGeography(testRules(t))

	// Multi-office pages mention every region; a resolved US state wins.
	html := `<html><body><p>Our offices span Austin, New York, and Toronto, Canada.
		Canadian applicants apply via the Canada portal.</p></body></html>`
	doc, err := fetch.NewDocumentFromHTML(html, "https://acme.com/jobs/2")
	if err != nil {
		t.Fatal(err)
	}

	if ok, reason := g.CheckLocation("Austin, TX", doc); !ok {
		t.Errorf("CheckLocation(Austin, TX) rejected: %q", reason)
	}
}

func TestGeography_PageSignalsWithoutState(t *testing.T) {
	g := NewGeography(testRules(t))

	html := `<html><head><meta property="og:description" content="Engineering internship in Canada"></head>
		<body><p>Work with us.</p></body></html>`
	doc, err := fetch.NewDocumentFromHTML(html, "https://acme.com/jobs/3")
	if err != nil {
		t.Fatal(err)
	}

	if ok, _ := g.CheckLocation("Remote", doc); ok {
		t.Error("Canada og:description should reject a stateless location")
	}
}

func TestGeography_CheckCompany(t *testing.T) {
	g := NewGeography(testRules(t))

	tests := []struct {
		name    string
		company string
		wantOK  bool
	}{
		{"us company", "Acme", true},
		{"uk marker", "Monzo (UK)", false},
		{"gmbh suffix", "Siemens GmbH", false},
		{"ltd suffix", "Tata Ltd.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := g.CheckCompany(tt.company)
			if ok != tt.wantOK {
				t.Errorf("CheckCompany(%q) = (%v, %q), want ok=%v", tt.company, ok, reason, tt.wantOK)
			}
		})
	}
}
