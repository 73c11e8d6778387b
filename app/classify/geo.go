package classify

import (
	"fmt"
	"regexp"
	"strings"

	"internsift/app/fetch"
	"internsift/app/rules"
)

var provinceCodeRe = regexp.MustCompile(`,\s*([A-Z]{2})\b`)

// Geography detects international (non-US) postings from the resolved
// location, the page content, and separately from the company name itself.
type Geography struct {
	rules *rules.Set
}

func NewGeography(rs *rules.Set) *Geography {
	return &Geography{rules: rs}
}

// CheckLocation reports (true, "") for US locations; otherwise false plus a
// reason naming the country. The two-letter province match is guarded:
// codes that collide with US state abbreviations only fire alongside
// Canadian co-occurrence signals, and a ", CA" suffix is always California.
func (g *Geography) CheckLocation(location string, doc *fetch.Document) (bool, string) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return true, ""
	}
	lower := strings.ToLower(loc)

	for _, name := range g.rules.CanadaProvinceNames {
		if strings.Contains(lower, name) {
			return false, fmt.Sprintf("International location: %s (Canada)", loc)
		}
	}
	if strings.Contains(lower, "canada") {
		return false, fmt.Sprintf("International location: %s (Canada)", loc)
	}

	if m := provinceCodeRe.FindStringSubmatch(loc); m != nil {
		code := m[1]
		if code == "CA" {
			// ", CA" is California, never a province.
		} else if g.rules.IsCanadaProvince(code) {
			city := strings.ToLower(strings.TrimSpace(loc[:strings.LastIndex(loc, ",")]))
			if _, known := g.rules.CanadianCities[city]; known {
				return false, fmt.Sprintf("International location: %s (Canada)", loc)
			}
			if amb, ok := g.rules.AmbiguousCities[city]; ok {
				if g.contextLeansCanada(doc, amb) {
					return false, fmt.Sprintf("International location: %s (Canada)", loc)
				}
			} else if !g.rules.IsUSState(code) {
				// Province code that is not also a US state (QC, NS, ...).
				return false, fmt.Sprintf("International location: %s (Canada)", loc)
			}
		}
	}

	// Bare Canadian city with no state/province part.
	if !strings.Contains(loc, ",") {
		if _, known := g.rules.CanadianCities[lower]; known {
			if _, amb := g.rules.AmbiguousCities[lower]; !amb {
				return false, fmt.Sprintf("International location: %s (Canada)", loc)
			}
		}
	}

	for _, city := range g.rules.UKCities {
		if strings.Contains(lower, city) {
			return false, fmt.Sprintf("International location: %s (UK)", loc)
		}
	}
	for _, kw := range g.rules.CountryKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return false, fmt.Sprintf("International location: %s", loc)
		}
	}

	// A location carrying a valid US state is trusted over page-level
	// Canada signals (multi-office pages mention every region).
	if m := provinceCodeRe.FindStringSubmatch(loc); m != nil && g.rules.IsUSState(m[1]) {
		return true, ""
	}

	if doc != nil {
		if desc := strings.ToLower(doc.Meta("og:description")); strings.Contains(desc, "canada") {
			return false, fmt.Sprintf("International posting: %s (Canada)", loc)
		}
		text := strings.ToLower(truncate(doc.Text(), 4000))
		for _, p := range []string{"located in canada", "based in canada", "work in canada", "canadian applicants only"} {
			if strings.Contains(text, p) {
				return false, fmt.Sprintf("International posting: %s (Canada)", loc)
			}
		}
	}

	return true, ""
}

// contextLeansCanada scores page signals for an ambiguous city (Vancouver,
// London, Cambridge, ...). The guard list is empirical; extend it with
// literal cases rather than generalizing.
func (g *Geography) contextLeansCanada(doc *fetch.Document, amb rules.Ambiguity) bool {
	if doc == nil {
		return false
	}
	text := strings.ToLower(truncate(doc.Text(), 6000))
	score := 0

	for _, kw := range g.rules.CanadaContext {
		if strings.Contains(text, kw) {
			score++
		}
	}
	for _, kw := range g.rules.USContext {
		if strings.Contains(text, kw) {
			score--
		}
	}
	if strings.Contains(strings.ToLower(doc.URL()), ".ca/") || strings.HasSuffix(strings.ToLower(doc.URL()), ".ca") {
		score += 3
	}
	if amb.Province != "" && strings.Contains(text, ", "+strings.ToLower(amb.Province)) {
		score += 2
	}

	return score > 0
}

// CheckCompany inspects the resolved company name itself for
// international-entity markers, independent of location.
func (g *Geography) CheckCompany(company string) (bool, string) {
	lower := strings.ToLower(company)
	for _, mark := range g.rules.InternationalMarks {
		if strings.Contains(lower, mark) {
			return false, fmt.Sprintf("International company: %s", company)
		}
	}
	return true, ""
}
