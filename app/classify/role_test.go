package classify

import (
	"testing"

	"internsift/app/rules"
)

func testRules(t *testing.T) *rules.Set {
	t.Helper()
	rs, err := rules.Compile(rules.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

func TestRole_IsValidJobTitle(t *testing.T) {
	r := NewRole(testRules(t), "Summer")

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"real title", "Software Engineering Intern", true},
		{"too short", "SWE", false},
		{"apply button text", "Apply Now", false},
		{"navigation text", "Sign In", false},
		{"search link", "Search Jobs", false},
		{"embedded apply now", "Software Intern - Apply Now", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsValidJobTitle(tt.title); got != tt.want {
				t.Errorf("IsValidJobTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestRole_IsInternshipRole(t *testing.T) {
	r := NewRole(testRules(t), "Summer")

	tests := []struct {
		name     string
		title    string
		category string
		want     bool
	}{
		{"intern keyword", "Software Engineering Intern", "", true},
		{"co-op keyword", "Hardware Co-op", "", true},
		{"senior rejected", "Senior Software Engineer Intern", "", false},
		{"staff rejected", "Staff Engineer", "", false},
		{"manager rejected", "Engineering Manager Intern", "", false},
		{"product manager allowed", "Product Manager Intern", "", true},
		{"category trusted", "Summer Analyst Program", "Internship", true},
		{"full time rejected", "Software Engineer II", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsInternshipRole(tt.title, tt.category); got != tt.want {
				t.Errorf("IsInternshipRole(%q, %q) = %v, want %v", tt.title, tt.category, got, tt.want)
			}
		})
	}
}

func TestRole_CheckSeason(t *testing.T) {
	r := NewRole(testRules(t), "Summer")

	tests := []struct {
		name       string
		title      string
		pageText   string
		wantOK     bool
		wantSeason string
	}{
		{"accepted season", "Software Intern - Summer 2026", "", true, ""},
		{"no season mentioned", "Software Engineering Intern", "", true, ""},
		{"wrong season in title", "Software Intern - Fall 2026", "", false, "Fall"},
		{"wrong season in page", "Software Intern", "This internship runs Spring 2026.", false, "Spring"},
		{"autumn reported as fall", "Software Intern, Autumn 2026", "", false, "Fall"},
		{"multi season override", "Software Intern (Fall/Winter 2026)", "", true, ""},
		{"multi season with and", "Software Intern - Fall and Spring", "", true, ""},
		{"accepted beats wrong", "Software Intern", "Open for Summer 2026 and beyond.", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, season := r.CheckSeason(tt.title, tt.pageText)
			if ok != tt.wantOK || season != tt.wantSeason {
				t.Errorf("CheckSeason(%q, %q) = (%v, %q), want (%v, %q)",
					tt.title, tt.pageText, ok, season, tt.wantOK, tt.wantSeason)
			}
		})
	}
}

func TestRole_IsCSRole(t *testing.T) {
	r := NewRole(testRules(t), "Summer")

	tests := []struct {
		name     string
		title    string
		category string
		want     bool
	}{
		{"software intern", "Software Engineering Intern", "", true},
		{"data intern", "Data Science Intern", "", true},
		{"sales rejected", "Sales Intern", "", false},
		{"marketing rejected", "Marketing Intern", "", false},
		{"nurse rejected", "Nurse Intern", "", false},
		{"category override", "Rotational Intern Program", "swe", true},
		{"no signal rejected", "General Intern", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsCSRole(tt.title, tt.category); got != tt.want {
				t.Errorf("IsCSRole(%q, %q) = %v, want %v", tt.title, tt.category, got, tt.want)
			}
		})
	}
}

func TestRole_IsBlacklistedCompany(t *testing.T) {
	r := NewRole(testRules(t), "Summer")

	if !r.IsBlacklistedCompany("Revature") {
		t.Error("IsBlacklistedCompany(Revature) = false, want true")
	}
	if !r.IsBlacklistedCompany("revature") {
		t.Error("blacklist match should be case-insensitive")
	}
	if r.IsBlacklistedCompany("Acme") {
		t.Error("IsBlacklistedCompany(Acme) = true, want false")
	}
}
