package resolve

import (
	"net/url"
	"regexp"
	"strings"

	"internsift/app/fetch"
	"internsift/app/rules"
)

var (
	workdaySubdomainRe = regexp.MustCompile(`^https?://([a-z0-9\-]+)\.wd\d+\.myworkdayjobs\.com`)
	boardPathRe        = regexp.MustCompile(`(?:boards\.greenhouse\.io|jobs\.lever\.co|jobs\.ashbyhq\.com)/([a-zA-Z0-9\-_]+)`)
	careersAtRe        = regexp.MustCompile(`(?i)careers?\s+at\s+([A-Za-z0-9&.,'\- ]{2,60})`)
	junkSubdomainRe    = regexp.MustCompile(`^(www|jobs|careers|apply|recruiting|talent|wd\d+|boards|job-boards)$`)
)

// CompanyResolver produces the company name for a posting using an ordered
// strategy cascade, then cleans and validates the raw value.
type CompanyResolver struct {
	rules *rules.Set
	namer *CompanyNamer
}

func NewCompanyResolver(rs *rules.Set) *CompanyResolver {
	return &CompanyResolver{rules: rs, namer: NewCompanyNamer(rs)}
}

// Resolve returns the cleaned company name, or "" when nothing plausible
// was found. The title is needed for the title-leak plausibility check.
func (r *CompanyResolver) Resolve(doc *fetch.Document, pageURL, title, hint string) string {
	accept := func(res Result) bool {
		return r.namer.IsPlausible(res.Value, title)
	}

	strategies := []Strategy{
		func() Result { return r.fromURLMapping(pageURL) },
		func() Result { return r.fromBoardPath(pageURL) },
		func() Result { return r.fromStructuredData(doc) },
		func() Result { return r.fromSiteName(doc) },
		func() Result { return r.fromVisibleDOM(doc) },
		func() Result { return r.fromDomain(pageURL) },
		func() Result {
			return Result{Value: r.namer.Clean(hint), Confidence: 0.75, Method: "hint"}
		},
	}

	return firstAccepted(strategies, accept).Value
}

// fromURLMapping consults the static pattern table. A hit is authoritative.
func (r *CompanyResolver) fromURLMapping(pageURL string) Result {
	for _, uc := range r.rules.URLCompany {
		if uc.Re.MatchString(pageURL) {
			// The normalization pass runs on every strategy's output,
			// including table hits.
			return Result{Value: r.namer.Clean(uc.Name), Confidence: 0.95, Method: "url_mapping"}
		}
	}
	return Result{}
}

// fromBoardPath handles hosted boards that encode the company as a
// subdomain (workday) or first path segment (greenhouse, lever, ashby).
func (r *CompanyResolver) fromBoardPath(pageURL string) Result {
	if m := workdaySubdomainRe.FindStringSubmatch(pageURL); m != nil {
		slug := m[1]
		if !junkSubdomainRe.MatchString(slug) {
			return Result{Value: r.namer.Clean(deslug(slug)), Confidence: 0.85, Method: "workday_subdomain"}
		}
	}
	if m := boardPathRe.FindStringSubmatch(pageURL); m != nil {
		return Result{Value: r.namer.Clean(deslug(m[1])), Confidence: 0.80, Method: "board_path"}
	}
	return Result{}
}

func (r *CompanyResolver) fromStructuredData(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	posting := doc.JobPosting()
	if posting == nil {
		return Result{}
	}
	org, _ := posting["hiringOrganization"].(map[string]any)
	if org == nil {
		return Result{}
	}
	name, _ := org["name"].(string)
	return Result{Value: r.namer.Clean(name), Confidence: 0.93, Method: "json_ld"}
}

func (r *CompanyResolver) fromSiteName(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	return Result{Value: r.namer.Clean(doc.Meta("og:site_name")), Confidence: 0.90, Method: "meta_site_name"}
}

func (r *CompanyResolver) fromVisibleDOM(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	for _, sel := range []string{"[data-company-name]", ".company-name", "header .logo img[alt]"} {
		s := doc.Find(sel).First()
		if s.Length() == 0 {
			continue
		}
		v := strings.TrimSpace(s.Text())
		if v == "" {
			v, _ = s.Attr("alt")
		}
		if v != "" {
			return Result{Value: r.namer.Clean(v), Confidence: 0.82, Method: "visible_dom"}
		}
	}
	if m := careersAtRe.FindStringSubmatch(doc.Title()); m != nil {
		return Result{Value: r.namer.Clean(m[1]), Confidence: 0.85, Method: "title_careers_at"}
	}
	return Result{}
}

// fromDomain strips the TLD and board suffixes from the host as a last
// page-derived fallback.
func (r *CompanyResolver) fromDomain(pageURL string) Result {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return Result{}
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return Result{}
	}
	// Prefer the registrable label, skipping junk subdomains.
	label := parts[len(parts)-2]
	if junkSubdomainRe.MatchString(label) && len(parts) >= 3 {
		label = parts[len(parts)-3]
	}
	if junkSubdomainRe.MatchString(label) || r.rules.IsGarbageCompany(label) {
		return Result{}
	}
	return Result{Value: r.namer.Clean(deslug(label)), Confidence: 0.70, Method: "domain"}
}

func deslug(slug string) string {
	return strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
}
