package resolve

import (
	"regexp"
	"strings"

	"internsift/app/fetch"
	"internsift/app/rules"
)

var (
	idLabelRe  = regexp.MustCompile(`(?i)(?:job\s*(?:code|id|number)|requisition\s*(?:id|number)?|req\.?\s*id|role\s*id)\s*[:#]?\s*([A-Za-z0-9\-_]{3,20})`)
	validIDRe  = regexp.MustCompile(`^[A-Za-z0-9\-_]{4,20}$`)
	hasDigitRe = regexp.MustCompile(`\d`)
)

// JobIDResolver extracts the platform requisition code for a posting.
// A resolved ID is an opaque code, never a synthesized placeholder.
type JobIDResolver struct {
	rules *rules.Set
}

func NewJobIDResolver(rs *rules.Set) *JobIDResolver {
	return &JobIDResolver{rules: rs}
}

// Resolve returns the job id, or "" when none was found. Greenhouse path
// numbers and glassdoor pages never yield an id: their numeric fragments
// are not requisition codes.
func (r *JobIDResolver) Resolve(doc *fetch.Document, pageURL string) string {
	lower := strings.ToLower(pageURL)
	if strings.Contains(lower, "greenhouse.io") || strings.Contains(lower, "glassdoor.com") {
		return ""
	}

	res := firstAccepted([]Strategy{
		func() Result { return r.fromURL(pageURL) },
		func() Result { return r.fromMeta(doc) },
		func() Result { return r.fromPostingData(doc) },
		func() Result { return r.fromPageText(doc) },
	}, func(res Result) bool { return r.isValidID(res.Value) })

	return res.Value
}

func (r *JobIDResolver) fromURL(pageURL string) Result {
	for _, p := range r.rules.JobID {
		if m := p.Re.FindStringSubmatch(pageURL); m != nil {
			return Result{Value: m[1], Confidence: p.Confidence, Method: "url_pattern"}
		}
	}
	return Result{}
}

func (r *JobIDResolver) fromMeta(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	if v := doc.Meta("og:job:id"); v != "" {
		return Result{Value: v, Confidence: 0.90, Method: "meta"}
	}
	if v, ok := doc.Find("[data-job-id]").First().Attr("data-job-id"); ok && v != "" {
		return Result{Value: v, Confidence: 0.88, Method: "data_attr"}
	}
	return Result{}
}

func (r *JobIDResolver) fromPostingData(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	posting := doc.JobPosting()
	if posting == nil {
		return Result{}
	}
	switch ident := posting["identifier"].(type) {
	case string:
		return Result{Value: ident, Confidence: 0.92, Method: "json_ld"}
	case map[string]any:
		if v, _ := ident["value"].(string); v != "" {
			return Result{Value: v, Confidence: 0.92, Method: "json_ld"}
		}
	}
	return Result{}
}

func (r *JobIDResolver) fromPageText(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	if m := idLabelRe.FindStringSubmatch(doc.Text()); m != nil {
		return Result{Value: m[1], Confidence: 0.78, Method: "text_label"}
	}
	return Result{}
}

// isValidID rejects short values, word-like values without digits, and UI
// words captured by over-eager patterns.
func (r *JobIDResolver) isValidID(id string) bool {
	id = strings.TrimSpace(id)
	if !validIDRe.MatchString(id) {
		return false
	}
	if !hasDigitRe.MatchString(id) {
		return false
	}
	if r.rules.IsInvalidIDWord(id) {
		return false
	}
	return true
}
