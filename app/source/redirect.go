package source

import (
	"net/url"
	"strings"
)

// wrapperHosts are intermediary job-board services whose links wrap the
// real posting. Their pages redirect (or link through) to the underlying
// board; the fetcher's final URL resolves them.
var wrapperHosts = map[string]string{
	"simplify.jobs":    "Simplify",
	"jobright.ai":      "Jobright",
	"lnkd.in":          "LinkedIn",
	"linkedin.com":     "LinkedIn",
	"ziprecruiter.com": "ZipRecruiter",
}

// ServiceFor labels the originating service for reporting. Unrecognized
// hosts report as their bare domain.
func ServiceFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	for suffix, name := range wrapperHosts {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return name
		}
	}
	return host
}

// redirectParams are the query keys wrapper services use to carry the
// destination URL inside alert links.
var redirectParams = []string{"url", "u", "redirect", "redirect_url", "target"}

// ResolveEmbedded extracts the destination a wrapper link embeds in its
// query string. Returns "" when the link is not a wrapper or carries no
// destination; such links still resolve through the fetcher's redirects.
func ResolveEmbedded(rawURL string) string {
	if !IsWrapper(rawURL) {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	for _, key := range redirectParams {
		v := q.Get(key)
		if !strings.HasPrefix(v, "http") {
			continue
		}
		if _, err := url.Parse(v); err == nil {
			return v
		}
	}
	return ""
}

// IsWrapper reports whether the URL belongs to a wrapper service, meaning
// the resolved (post-redirect) URL should be preferred for dedup.
func IsWrapper(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	for suffix := range wrapperHosts {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}
