package resolve

import (
	"strings"

	"internsift/app/fetch"
	"internsift/app/job"
)

// ResolveRemote decides the work arrangement from the title, the resolved
// location, and as a last resort the page text.
func ResolveRemote(title, location string, doc *fetch.Document) job.RemoteStatus {
	t := strings.ToLower(title)
	l := strings.ToLower(location)

	switch {
	case strings.Contains(t, "hybrid") || strings.Contains(l, "hybrid"):
		return job.Hybrid
	case strings.Contains(t, "remote") || strings.Contains(l, "remote"):
		return job.Remote
	case strings.Contains(t, "on-site") || strings.Contains(t, "onsite") ||
		strings.Contains(l, "on-site") || strings.Contains(l, "onsite"):
		return job.OnSite
	}

	if doc != nil {
		text := strings.ToLower(doc.Text())
		if i := strings.Index(text, "work arrangement"); i >= 0 {
			window := text[i:min(i+120, len(text))]
			switch {
			case strings.Contains(window, "hybrid"):
				return job.Hybrid
			case strings.Contains(window, "remote"):
				return job.Remote
			case strings.Contains(window, "on-site") || strings.Contains(window, "onsite"):
				return job.OnSite
			}
		}
		if strings.Contains(text, "fully remote") || strings.Contains(text, "100% remote") {
			return job.Remote
		}
	}

	if location != "" {
		return job.OnSite
	}
	return job.RemoteUnknown
}
