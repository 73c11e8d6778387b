package classify

import (
	"regexp"
	"strings"

	"internsift/app/rules"
)

var multiSeasonRe = regexp.MustCompile(`(?i)\b(spring|summer|fall|autumn|winter)\s*(?:/|,|&|\+|\bor\b|\band\b|-)\s*(spring|summer|fall|autumn|winter)\b`)

// Role classifies titles: real posting vs UI noise, internship vs senior,
// season match, technical vs not.
type Role struct {
	rules  *rules.Set
	season string // accepted hiring season, e.g. "Summer"
}

func NewRole(rs *rules.Set, season string) *Role {
	return &Role{rules: rs, season: season}
}

// IsValidJobTitle reports whether the title looks like a posting title at
// all. Failures are Skip, not Discard: "Apply Now" is noise, not a job.
func (r *Role) IsValidJobTitle(title string) bool {
	title = strings.TrimSpace(title)
	if len(title) < 5 {
		return false
	}
	lower := strings.ToLower(title)
	for _, re := range r.rules.TitleSpam {
		if re.MatchString(lower) {
			return false
		}
	}
	return true
}

// IsInternshipRole requires an internship keyword and no seniority marker.
// A source category tag of "internship" is trusted over the keyword scan.
func (r *Role) IsInternshipRole(title, category string) bool {
	lower := strings.ToLower(title)

	for _, kw := range r.rules.SeniorityKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	if strings.Contains(lower, "manager") && !r.managerAllowed(lower) {
		return false
	}

	if strings.EqualFold(category, "internship") {
		return true
	}
	for _, kw := range r.rules.InternshipKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (r *Role) managerAllowed(lowerTitle string) bool {
	for _, allowed := range r.rules.ManagerAllowed {
		if strings.Contains(lowerTitle, allowed) {
			return true
		}
	}
	return false
}

// CheckSeason scans title and page text for an explicit wrong-season
// marker. An explicit multi-season mention overrides a single wrong-season
// match. Returns the offending season name on failure.
func (r *Role) CheckSeason(title, pageText string) (bool, string) {
	text := title + " " + truncate(pageText, 5000)
	lower := strings.ToLower(text)

	if multiSeasonRe.MatchString(text) {
		return true, ""
	}
	if strings.Contains(lower, strings.ToLower(r.season)) {
		return true, ""
	}

	for _, season := range r.rules.Seasons {
		if sameSeason(season, r.season) {
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + season + `\b(?:\s*20\d{2})?`)
		if re.MatchString(text) {
			name := season
			if strings.EqualFold(name, "Autumn") {
				name = "Fall"
			}
			return false, name
		}
	}
	return true, ""
}

func sameSeason(a, b string) bool {
	norm := func(s string) string {
		if strings.EqualFold(s, "autumn") {
			return "fall"
		}
		return strings.ToLower(s)
	}
	return norm(a) == norm(b)
}

// IsCSRole requires a technical keyword and no purely non-technical
// marker. A source-provided technical category tag overrides a keyword
// miss: source ground truth wins.
func (r *Role) IsCSRole(title, category string) bool {
	lower := strings.ToLower(title) + " "

	for _, bad := range r.rules.NonTechnicalPure {
		if strings.Contains(lower, bad) {
			return false
		}
	}

	for _, kw := range r.rules.TechnicalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	switch strings.ToLower(category) {
	case "software", "engineering", "tech", "swe", "internship":
		return true
	}
	return false
}

// IsBlacklistedCompany reports whether the company is on the static
// denylist (staffing farms, scraped aggregators).
func (r *Role) IsBlacklistedCompany(company string) bool {
	return r.rules.IsBlacklisted(company)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
