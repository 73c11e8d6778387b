package classify

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"internsift/app/fetch"
	"internsift/app/job"
	"internsift/app/rules"
)

const (
	degreeWindow   = 300
	sponsorWindow  = 3000
	maxScannedText = 20000
)

var (
	bachelorOnlyRe = regexp.MustCompile(`(?i)bachelor'?s?\s+(?:degree\s+)?(?:is\s+)?required|must\s+be\s+pursuing\s+a\s+bachelor'?s?|currently\s+enrolled\s+in\s+a\s+bachelor'?s?`)
	phdOnlyRe      = regexp.MustCompile(`(?i)phd\s+(?:candidates?\s+)?(?:only|required)|must\s+be\s+(?:pursuing|enrolled\s+in)\s+a\s+phd|doctoral\s+(?:degree|candidates?)\s+(?:only|required)`)
	undergradOnlyRe = regexp.MustCompile(`(?i)undergraduate\s+students?\s+only|open\s+only\s+to\s+undergraduates`)
	cptOptRe       = regexp.MustCompile(`(?i)cpt\s+(?:is\s+)?not\s+(?:accepted|eligible|supported)|not\s+eligible\s+for\s+(?:cpt|opt)`)
	gradYearRe     = regexp.MustCompile(`(?i)graduat(?:e|ing|ion)\s+(?:by\s+|date\s+of\s+|in\s+)?(?:\w+\s+)?(20\d{2})`)
	postedAgoRe    = regexp.MustCompile(`(?i)posted\s+(\d+)\+?\s+day`)
	postedHoursRe  = regexp.MustCompile(`(?i)posted\s+(?:(\d+)\+?\s+hours?\s+ago|today|just\s+now)`)
	postedDateRe   = regexp.MustCompile(`(?i)(?:posted|date\s+posted)[:\s]+([A-Z][a-z]+ \d{1,2},? \d{4})`)
)

// Restrictions scans page content for eligibility constraints that make a
// posting unusable: clearance, citizenship, degree-level exclusions,
// enrollment windows.
type Restrictions struct {
	rules     *rules.Set
	cycleYear int
}

func NewRestrictions(rs *rules.Set, cycleYear int) *Restrictions {
	return &Restrictions{rules: rs, cycleYear: cycleYear}
}

// Check returns (false, reason) at the first restriction found. The scan
// prefers the readability-extracted main content; degree checks draw their
// text from a qualification section when one can be isolated.
func (r *Restrictions) Check(doc *fetch.Document) (bool, string) {
	if doc == nil {
		return true, ""
	}
	text := truncate(doc.MainText(), maxScannedText)

	for _, re := range r.rules.Clearance {
		if re.MatchString(text) {
			return false, "Requires security clearance"
		}
	}
	for _, re := range r.rules.Citizenship {
		if re.MatchString(text) {
			return false, "Requires US citizenship"
		}
	}
	if undergradOnlyRe.MatchString(text) {
		return false, "Undergraduate students only"
	}

	degreeText := r.qualificationSection(text)
	if loc := bachelorOnlyRe.FindStringIndex(degreeText); loc != nil {
		if !r.windowHasFlexPhrase(degreeText, loc) {
			return false, "Bachelor's-only degree requirement"
		}
	}
	if loc := phdOnlyRe.FindStringIndex(degreeText); loc != nil {
		if !r.windowHasFlexPhrase(degreeText, loc) {
			return false, "PhD-only degree requirement"
		}
	}

	if cptOptRe.MatchString(text) {
		return false, "CPT/OPT not accepted"
	}

	if ok, year := r.graduationYearOK(text); !ok {
		return false, fmt.Sprintf("Graduation year out of range: %d", year)
	}

	return true, ""
}

// qualificationSection isolates text following a required-qualifications
// heading so a degree mentioned under "Preferred Qualifications" does not
// cause a false reject. Falls back to the full text.
func (r *Restrictions) qualificationSection(text string) string {
	lower := strings.ToLower(text)
	for _, heading := range []string{"required qualifications", "minimum qualifications", "basic qualifications", "requirements"} {
		if i := strings.Index(lower, heading); i >= 0 {
			end := i + 2000
			if end > len(text) {
				end = len(text)
			}
			return text[i:end]
		}
	}
	return text
}

// windowHasFlexPhrase checks a bounded window around a degree match for an
// inclusive modifier ("or higher", "bachelor's or master's"). The window
// size and phrase list are empirical; keep them as given.
func (r *Restrictions) windowHasFlexPhrase(text string, loc []int) bool {
	start := loc[0] - degreeWindow
	if start < 0 {
		start = 0
	}
	end := loc[1] + degreeWindow
	if end > len(text) {
		end = len(text)
	}
	window := strings.ToLower(text[start:end])
	for _, phrase := range r.rules.DegreeFlexPhrases {
		if strings.Contains(window, phrase) {
			return true
		}
	}
	return false
}

// graduationYearOK rejects postings whose stated graduation window closes
// before the current hiring cycle.
func (r *Restrictions) graduationYearOK(text string) (bool, int) {
	matches := gradYearRe.FindAllStringSubmatch(text, 5)
	if len(matches) == 0 {
		return true, 0
	}
	maxYear := 0
	for _, m := range matches {
		var y int
		fmt.Sscanf(m[1], "%d", &y)
		if y > maxYear {
			maxYear = y
		}
	}
	if maxYear > 0 && maxYear < r.cycleYear {
		return false, maxYear
	}
	return true, 0
}

// Sponsorship scans the start of the page for an explicit visa sponsorship
// statement. Negative patterns win over positive ones.
func (r *Restrictions) Sponsorship(doc *fetch.Document) job.Sponsorship {
	if doc == nil {
		return job.SponsorshipUnknown
	}
	text := truncate(doc.MainText(), sponsorWindow)
	for _, re := range r.rules.SponsorNo {
		if re.MatchString(text) {
			return job.SponsorshipNo
		}
	}
	for _, re := range r.rules.SponsorYes {
		if re.MatchString(text) {
			return job.SponsorshipYes
		}
	}
	return job.SponsorshipUnknown
}

// PageAgeDays extracts how many days ago the posting went up, when the
// page states it. Returns (days, true) on success. Lines carrying a skip
// indicator (copyright notices, start dates) are ignored.
func (r *Restrictions) PageAgeDays(doc *fetch.Document, now time.Time) (int, bool) {
	if doc == nil {
		return 0, false
	}
	text := truncate(doc.MainText(), maxScannedText)

	if m := postedHoursRe.FindStringSubmatch(text); m != nil {
		return 0, true
	}
	if m := postedAgoRe.FindStringSubmatch(text); m != nil {
		if r.nearSkipIndicator(text, m[0]) {
			return 0, false
		}
		var days int
		fmt.Sscanf(m[1], "%d", &days)
		return days, true
	}
	if m := postedDateRe.FindStringSubmatch(text); m != nil {
		if t, err := dateparse.ParseAny(m[1]); err == nil {
			days := int(now.Sub(t).Hours() / 24)
			if days >= 0 && days < 365 {
				return days, true
			}
		}
	}
	return 0, false
}

func (r *Restrictions) nearSkipIndicator(text, match string) bool {
	i := strings.Index(text, match)
	if i < 0 {
		return false
	}
	start := i - 100
	if start < 0 {
		start = 0
	}
	end := i + len(match) + 100
	if end > len(text) {
		end = len(text)
	}
	window := strings.ToLower(text[start:end])
	for _, ind := range r.rules.AgeSkipIndicators {
		if strings.Contains(window, ind) {
			return true
		}
	}
	return false
}
