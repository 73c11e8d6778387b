package resolve

import (
	"html"
	"regexp"
	"strings"

	"internsift/app/job"
	"internsift/app/rules"
)

var (
	legalSuffixRe   = regexp.MustCompile(`(?i)[,\s]+(inc\.?|llc\.?|l\.l\.c\.|ltd\.?|corp\.?|corporation|co\.?|company|plc|lp|llp|holdings?|group)\s*$`)
	prefixCodeRe    = regexp.MustCompile(`^[A-Z]{2,4}[-\s]`)
	parenCountryRe  = regexp.MustCompile(`\s*\((?:us|usa|u\.s\.|united states|north america|global)\)\s*$`)
	dbaSplitRe      = regexp.MustCompile(`(?i)\s+d/?b/?a\s+`)
	titleKeywordsRe = regexp.MustCompile(`(?i)\b(intern|internship|engineer|engineering|software|developer|analyst|scientist|designer|summer|co-?op)\b`)
	allCapsRe       = regexp.MustCompile(`^[A-Z]{2,5}$`)
)

// CompanyNamer cleans and canonicalizes raw company names and judges
// whether a candidate string is plausibly a company name at all.
type CompanyNamer struct {
	rules *rules.Set
}

func NewCompanyNamer(rs *rules.Set) *CompanyNamer {
	return &CompanyNamer{rules: rs}
}

// Clean normalizes a raw company value into display form. It runs
// regardless of which extraction strategy produced the value.
func (n *CompanyNamer) Clean(raw string) string {
	name := strings.TrimSpace(html.UnescapeString(job.FoldText(raw)))
	if name == "" {
		return ""
	}

	// "Legal Name d/b/a Brand" keeps the brand half.
	if parts := dbaSplitRe.Split(name, 2); len(parts) == 2 {
		name = strings.TrimSpace(parts[1])
	}

	name = prefixCodeRe.ReplaceAllString(name, "")
	name = parenCountryRe.ReplaceAllString(name, "")
	name = legalSuffixRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(strings.Trim(name, ",-– "))

	if name == "" {
		return ""
	}
	if n.rules.IsPlaceholder(name) || n.rules.IsGarbageCompany(name) {
		return ""
	}

	return n.canonicalize(name)
}

func (n *CompanyNamer) canonicalize(name string) string {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))

	if display, ok := n.rules.CompoundWords[key]; ok {
		return display
	}
	if display, ok := n.rules.CompanyAliases[key]; ok {
		return display
	}
	if display, ok := n.rules.SpecialCaps[strings.ToLower(name)]; ok {
		return display
	}
	if n.rules.IsAcronym(name) {
		return strings.ToUpper(name)
	}

	return capitalizeWords(name)
}

func capitalizeWords(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if w != strings.ToLower(w) {
			continue // keep existing caps and mixed case (NVIDIA, eBay)
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// IsPlausible rejects values that leak from the title, placeholder strings,
// short all-caps tokens, and known garbage names.
func (n *CompanyNamer) IsPlausible(name, title string) bool {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 60 {
		return false
	}
	if n.rules.IsPlaceholder(name) || n.rules.IsGarbageCompany(name) {
		return false
	}
	if title != "" && strings.EqualFold(name, title) {
		return false
	}
	if len(titleKeywordsRe.FindAllString(name, -1)) >= 2 {
		return false
	}
	if allCapsRe.MatchString(name) && !n.rules.IsAcronym(name) {
		return false
	}
	return true
}
