package resolve

import (
	"regexp"
	"strings"

	"internsift/app/fetch"
	"internsift/app/job"
	"internsift/app/rules"
)

var (
	titleParenLocRe  = regexp.MustCompile(`\(([A-Za-z .]+,\s*[A-Z]{2})\)`)
	titleDashLocRe   = regexp.MustCompile(`[-–]\s*([A-Za-z .]+,\s*[A-Z]{2})\s*$`)
	titleRemoteRe    = regexp.MustCompile(`(?i)\((remote[^)]*)\)`)
	labelLocRe       = regexp.MustCompile(`(?i)location:?\s*([A-Za-z .]+,\s*[A-Za-z]{2,20})`)
	cityStateScanRe  = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)?),\s*([A-Z]{2})\b`)
	suiteNoiseRe     = regexp.MustCompile(`(?i)\b(?:suite|ste\.?|bldg\.?|building|floor|fl\.?|unit|#)\s*[\w\-]+`)
	streetNumberRe   = regexp.MustCompile(`^\d+\s+`)

	locationSelectors = []string{
		`[data-automation-id="locations"]`,
		`[itemprop="jobLocation"]`,
		`[itemprop="address"]`,
		".location",
		".posting-categories .location",
		".job-location",
	}
)

// LocationResolver produces a display location for a posting. The result
// of every strategy passes through FormatClean.
type LocationResolver struct {
	rules *rules.Set
}

func NewLocationResolver(rs *rules.Set) *LocationResolver {
	return &LocationResolver{rules: rs}
}

func (r *LocationResolver) Resolve(doc *fetch.Document, pageURL, title, hint string) string {
	accept := func(res Result) bool { return !r.isGarbage(res.Value) }

	res := firstAccepted([]Strategy{
		func() Result { return r.fromTitle(title) },
		func() Result { return r.fromSelectors(doc) },
		func() Result { return r.fromPostingData(doc) },
		func() Result { return r.fromLabelScan(doc) },
		func() Result { return r.fromWorkdayURL(pageURL) },
		func() Result { return r.fromTextScan(doc) },
		func() Result { return Result{Value: hint, Confidence: 0.72, Method: "hint"} },
	}, accept)

	return r.FormatClean(res.Value)
}

func (r *LocationResolver) fromTitle(title string) Result {
	if m := titleParenLocRe.FindStringSubmatch(title); m != nil {
		return Result{Value: m[1], Confidence: 0.96, Method: "title_paren"}
	}
	if m := titleDashLocRe.FindStringSubmatch(title); m != nil {
		return Result{Value: m[1], Confidence: 0.90, Method: "title_dash"}
	}
	if m := titleRemoteRe.FindStringSubmatch(title); m != nil {
		return Result{Value: m[1], Confidence: 0.92, Method: "title_remote"}
	}
	return Result{}
}

func (r *LocationResolver) fromSelectors(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	for _, sel := range locationSelectors {
		if v := strings.TrimSpace(doc.Find(sel).First().Text()); v != "" {
			return Result{Value: v, Confidence: 0.88, Method: "dom_selector"}
		}
	}
	return Result{}
}

func (r *LocationResolver) fromPostingData(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	posting := doc.JobPosting()
	if posting == nil {
		return Result{}
	}
	loc := posting["jobLocation"]
	if arr, ok := loc.([]any); ok && len(arr) > 0 {
		loc = arr[0]
	}
	obj, _ := loc.(map[string]any)
	if obj == nil {
		return Result{}
	}
	addr, _ := obj["address"].(map[string]any)
	if addr == nil {
		return Result{}
	}
	city, _ := addr["addressLocality"].(string)
	region, _ := addr["addressRegion"].(string)
	switch {
	case city != "" && region != "":
		return Result{Value: city + ", " + region, Confidence: 0.93, Method: "json_ld"}
	case city != "":
		return Result{Value: city, Confidence: 0.85, Method: "json_ld"}
	case region != "":
		return Result{Value: region, Confidence: 0.78, Method: "json_ld"}
	}
	return Result{}
}

func (r *LocationResolver) fromLabelScan(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	if m := labelLocRe.FindStringSubmatch(doc.Text()); m != nil {
		return Result{Value: m[1], Confidence: 0.80, Method: "label_scan"}
	}
	return Result{}
}

func (r *LocationResolver) fromWorkdayURL(pageURL string) Result {
	if v := parseWorkdayPath(pageURL, r.rules); v != "" {
		return Result{Value: v, Confidence: 0.82, Method: "workday_url"}
	}
	return Result{}
}

// fromTextScan finds the first City, ST pattern with a recognized state
// code in the page text.
func (r *LocationResolver) fromTextScan(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	for _, m := range cityStateScanRe.FindAllStringSubmatch(doc.Text(), 10) {
		if r.rules.IsUSState(m[2]) {
			return Result{Value: m[1] + ", " + m[2], Confidence: 0.70, Method: "text_scan"}
		}
	}
	return Result{}
}

func (r *LocationResolver) isGarbage(loc string) bool {
	l := strings.ToLower(strings.TrimSpace(loc))
	if l == "" || len(l) > 80 {
		return true
	}
	for _, bad := range []string{"cookie", "privacy", "javascript", "sign in", "http"} {
		if strings.Contains(l, bad) {
			return true
		}
	}
	return false
}

// FormatClean normalizes a raw location to display form: strips building
// and suite noise, expands known abbreviations, resolves bare city names to
// "City, ST" via the static table. Unrecognized values pass through as-is.
func (r *LocationResolver) FormatClean(loc string) string {
	loc = strings.TrimSpace(job.FoldText(loc))
	if loc == "" {
		return ""
	}

	loc = suiteNoiseRe.ReplaceAllString(loc, "")
	loc = streetNumberRe.ReplaceAllString(loc, "")

	lower := strings.ToLower(loc)
	if full, ok := r.rules.CityAbbreviations[lower]; ok {
		loc = full
		lower = strings.ToLower(loc)
	}

	for _, suffix := range r.rules.LocationSuffixes {
		lower = strings.ToLower(loc)
		if strings.HasSuffix(lower, " "+suffix) {
			loc = strings.TrimSpace(loc[:len(loc)-len(suffix)-1])
			loc = strings.TrimRight(loc, ",- ")
		}
	}

	// "City, Statename" -> "City, ST"
	if i := strings.LastIndex(loc, ","); i > 0 {
		tail := strings.ToLower(strings.TrimSpace(loc[i+1:]))
		if code, ok := r.rules.StateNames[tail]; ok {
			loc = strings.TrimSpace(loc[:i]) + ", " + code
		}
	}

	// Bare known city -> "City, ST"
	if !strings.Contains(loc, ",") {
		if code, ok := r.rules.CityToState[strings.ToLower(loc)]; ok {
			loc = capitalizeWords(loc) + ", " + code
		}
	}

	return strings.TrimSpace(loc)
}
