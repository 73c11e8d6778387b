package classify

import (
	"testing"
	"time"

	"internsift/app/fetch"
	"internsift/app/job"
)

func restrictDoc(t *testing.T, body string) *fetch.Document {
	t.Helper()
	doc, err := fetch.NewDocumentFromHTML("<html><body><p>"+body+"</p></body></html>", "https://example.org/jobs/1")
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRestrictions_Check(t *testing.T) {
	r := NewRestrictions(testRules(t), 2026)

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantReason string
	}{
		{"clean posting",
			"Join our engineering team for the summer. You will build backend services in Go.",
			true, ""},
		{"clearance",
			"Candidates must be able to obtain a security clearance.",
			false, "Requires security clearance"},
		{"citizenship",
			"Applicants must be a U.S. citizen for this role.",
			false, "Requires US citizenship"},
		{"undergrad only",
			"This program is for undergraduate students only.",
			false, "Undergraduate students only"},
		{"bachelor only",
			"Minimum Qualifications: currently enrolled in a bachelor's degree program.",
			false, "Bachelor's-only degree requirement"},
		{"bachelor with flex phrase",
			"Minimum Qualifications: bachelor's degree required, or equivalent practical experience.",
			true, ""},
		{"phd only",
			"Requirements: PhD candidates only, focus on machine learning.",
			false, "PhD-only degree requirement"},
		{"cpt not accepted",
			"Please note this role is not eligible for CPT or employment authorization support.",
			false, "CPT/OPT not accepted"},
		{"graduation year too early",
			"Candidates graduating by May 2025 preferred.",
			false, "Graduation year out of range: 2025"},
		{"graduation year current cycle",
			"Candidates graduating in 2026 or 2027 are welcome.",
			true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := r.Check(restrictDoc(t, tt.body))
			if ok != tt.wantOK {
				t.Fatalf("Check = (%v, %q), want ok=%v", ok, reason, tt.wantOK)
			}
			if !tt.wantOK && reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestRestrictions_DegreeCheckScopedToQualifications(t *testing.T) {
	r := NewRestrictions(testRules(t), 2026)

	// A degree mention in a preferred section after the required block
	// stays outside the scanned window only when a heading is found; here
	// the required block itself carries the flex phrase.
	body := "Basic Qualifications: pursuing a bachelor's or master's degree in computer science. " +
		"Must be pursuing a bachelor's program."
	ok, reason := r.Check(restrictDoc(t, body))
	if !ok {
		t.Errorf("flex phrase within window should suppress the reject, got %q", reason)
	}
}

func TestRestrictions_Sponsorship(t *testing.T) {
	r := NewRestrictions(testRules(t), 2026)

	tests := []struct {
		name string
		body string
		want job.Sponsorship
	}{
		{"explicit yes", "We will sponsor H-1B visas for exceptional candidates.", job.SponsorshipYes},
		{"explicit no", "This employer is unable to sponsor work visas at this time.", job.SponsorshipNo},
		{"no wins over yes", "We value sponsorship programs but cannot provide sponsorship for this role.", job.SponsorshipNo},
		{"silent", "Build distributed systems with our platform team.", job.SponsorshipUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Sponsorship(restrictDoc(t, tt.body)); got != tt.want {
				t.Errorf("Sponsorship = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRestrictions_PageAgeDays(t *testing.T) {
	r := NewRestrictions(testRules(t), 2026)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		body     string
		wantDays int
		wantOK   bool
	}{
		{"posted days ago", "Posted 5 days ago. Apply below.", 5, true},
		{"posted hours ago", "Posted 6 hours ago.", 0, true},
		{"posted today", "Posted today.", 0, true},
		{"explicit date", "Date posted: March 1, 2026.", 9, true},
		{"no age info", "Join our internship program.", 0, false},
		{"skip indicator nearby", "Founded in 1999. Posted 400 days ago per our copyright notice.", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := r.PageAgeDays(restrictDoc(t, tt.body), now)
			if ok != tt.wantOK || days != tt.wantDays {
				t.Errorf("PageAgeDays = (%d, %v), want (%d, %v)", days, ok, tt.wantDays, tt.wantOK)
			}
		})
	}
}

func TestRestrictions_NilDocPasses(t *testing.T) {
	r := NewRestrictions(testRules(t), 2026)
	if ok, reason := r.Check(nil); !ok {
		t.Errorf("Check(nil) = (false, %q), want pass", reason)
	}
	if got := r.Sponsorship(nil); got != job.SponsorshipUnknown {
		t.Errorf("Sponsorship(nil) = %v, want unknown", got)
	}
	if _, ok := r.PageAgeDays(nil, time.Now()); ok {
		t.Error("PageAgeDays(nil) reported an age")
	}
}
