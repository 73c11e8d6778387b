package classify

import (
	"strings"

	"internsift/app/rules"
)

// Dead detects postings that no longer exist: redirect targets and error
// pages share recognizable URL and title shapes.
type Dead struct {
	rules *rules.Set
}

func NewDead(rs *rules.Set) *Dead {
	return &Dead{rules: rs}
}

// URL reports whether the URL itself signals a removed posting. Checked
// both before fetching and again on the post-redirect URL, since redirects
// can newly reveal the signal.
func (d *Dead) URL(u string) bool {
	lower := strings.ToLower(u)
	for _, p := range d.rules.DeadURLPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// PageTitle reports whether a parsed page title signals a removed posting
// or a generic listing page rather than a single job.
func (d *Dead) PageTitle(title string) bool {
	lower := strings.ToLower(strings.TrimSpace(title))
	if lower == "" {
		return false
	}
	for _, p := range d.rules.DeadPageTitles {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
