package resolve

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"internsift/app/rules"
)

var addressTailRe = regexp.MustCompile(`-\d{3,}-.*$`)

// parseWorkdayPath extracts a location from a Workday job URL, whose paths
// encode it as a slug segment like "/en-US/careers/job/Austin-TX/...", a
// reversed "PA-Philadelphia" form, or an HQ location code.
func parseWorkdayPath(pageURL string, rs *rules.Set) string {
	if !strings.Contains(pageURL, "myworkdayjobs.com") {
		return ""
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for _, seg := range segments {
		if loc, ok := rs.WorkdayHQCodes[strings.ToUpper(seg)]; ok {
			return loc
		}
		if loc := parseLocationSegment(seg, rs); loc != "" {
			return loc
		}
	}
	return ""
}

func parseLocationSegment(seg string, rs *rules.Set) string {
	if seg == "" || strings.EqualFold(seg, "job") || strings.HasPrefix(seg, "en-") {
		return ""
	}

	// Strip country suffixes longest-first so "united-states-of-america"
	// wins over "us".
	suffixes := append([]string(nil), rs.CountrySuffixes...)
	sort.Slice(suffixes, func(i, j int) bool { return len(suffixes[i]) > len(suffixes[j]) })
	lower := strings.ToLower(seg)
	for _, suf := range suffixes {
		if strings.HasSuffix(lower, "-"+suf) {
			seg = seg[:len(seg)-len(suf)-1]
			lower = strings.ToLower(seg)
			break
		}
	}

	seg = addressTailRe.ReplaceAllString(seg, "")
	words := strings.Split(seg, "-")
	if len(words) < 2 {
		return ""
	}

	// Reversed "PA-Philadelphia" form.
	if rs.IsUSState(words[0]) && len(words) >= 2 {
		city := deslug(strings.Join(words[1:], " "))
		return capitalizeWords(city) + ", " + strings.ToUpper(words[0])
	}

	// Canadian marker segments ("Canadian-Toronto" style exports).
	if strings.EqualFold(words[0], "canadian") || strings.EqualFold(words[0], "can") {
		city := capitalizeWords(strings.Join(words[1:], " "))
		return city + ", Canada"
	}

	// Right-to-left state match: try the last two words as a state name,
	// then the last word as a name or code.
	if len(words) >= 3 {
		tail2 := strings.ToLower(words[len(words)-2] + " " + words[len(words)-1])
		if code, ok := rs.StateNames[tail2]; ok {
			city := capitalizeWords(strings.Join(words[:len(words)-2], " "))
			return city + ", " + code
		}
	}
	last := words[len(words)-1]
	if code, ok := rs.StateNames[strings.ToLower(last)]; ok {
		city := capitalizeWords(strings.Join(words[:len(words)-1], " "))
		return city + ", " + code
	}
	if rs.IsUSState(last) {
		city := capitalizeWords(strings.Join(words[:len(words)-1], " "))
		return city + ", " + strings.ToUpper(last)
	}

	return ""
}
