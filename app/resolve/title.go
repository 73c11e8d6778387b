package resolve

import (
	"regexp"
	"strings"

	"internsift/app/fetch"
	"internsift/app/job"
)

var (
	parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)`)
	bracketedRe     = regexp.MustCompile(`\s*\[[^\]]*\]`)
	seasonYearRe    = regexp.MustCompile(`(?i)[-–,|]?\s*(summer|fall|autumn|spring|winter)\s*20\d{2}\s*`)
	bareYearRe      = regexp.MustCompile(`[-–,|]?\s*\b20\d{2}\b\s*`)
	degreeQualRe    = regexp.MustCompile(`(?i)[-–,|]?\s*\((?:bs/ms|ms|phd|bachelor'?s?|master'?s?)[^)]*\)|\b(?:bs/ms|ms/phd)\b`)
	spaceRunRe      = regexp.MustCompile(`\s{2,}`)

	titleSelectors = []string{
		`[data-automation-id="jobPostingHeader"]`,
		".job-title",
		".posting-headline h2",
		".app-title",
		`[itemprop="title"]`,
		"h1",
	}
)

type TitleResolver struct{}

func NewTitleResolver() *TitleResolver {
	return &TitleResolver{}
}

// Resolve returns the raw job title, or "" when nothing was found. Callers
// pass the result through CleanTitle before classification.
func (r *TitleResolver) Resolve(doc *fetch.Document, hint string) string {
	res := firstAccepted([]Strategy{
		func() Result { return fromPostingData(doc) },
		func() Result { return fromMetaTitle(doc) },
		func() Result { return fromHeading(doc) },
		func() Result { return fromDocTitle(doc) },
		func() Result { return Result{Value: strings.TrimSpace(hint), Confidence: 0.75, Method: "hint"} },
	}, nil)
	return res.Value
}

func fromPostingData(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	posting := doc.JobPosting()
	if posting == nil {
		return Result{}
	}
	title, _ := posting["title"].(string)
	return Result{Value: strings.TrimSpace(title), Confidence: 0.95, Method: "json_ld"}
}

func fromMetaTitle(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	return Result{Value: doc.Meta("og:title"), Confidence: 0.88, Method: "meta_title"}
}

func fromHeading(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	for _, sel := range titleSelectors {
		if v := strings.TrimSpace(doc.Find(sel).First().Text()); v != "" {
			return Result{Value: v, Confidence: 0.85, Method: "heading"}
		}
	}
	return Result{}
}

// fromDocTitle splits the <title> on the first separator, which usually
// divides the role from the company or site name.
func fromDocTitle(doc *fetch.Document) Result {
	if doc == nil {
		return Result{}
	}
	t := doc.Title()
	for _, sep := range []string{"|", " - ", "–"} {
		if i := strings.Index(t, sep); i > 0 {
			t = t[:i]
			break
		}
	}
	return Result{Value: strings.TrimSpace(t), Confidence: 0.72, Method: "doc_title"}
}

// CleanTitle strips qualifier noise from a title: parenthetical and
// bracketed segments, season+year suffixes, bare years, degree-level
// qualifiers. If cleaning shrinks the result below 5 characters the
// original is kept, since cleaning must never destroy a short valid title.
func CleanTitle(title string) string {
	original := strings.TrimSpace(job.FoldText(title))
	if original == "" {
		return ""
	}

	cleaned := parentheticalRe.ReplaceAllString(original, "")
	cleaned = bracketedRe.ReplaceAllString(cleaned, "")
	cleaned = seasonYearRe.ReplaceAllString(cleaned, " ")
	cleaned = bareYearRe.ReplaceAllString(cleaned, " ")
	cleaned = degreeQualRe.ReplaceAllString(cleaned, "")
	cleaned = spaceRunRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(strings.Trim(cleaned, "-–,| "))

	if len(cleaned) < 5 {
		return original
	}
	return cleaned
}
