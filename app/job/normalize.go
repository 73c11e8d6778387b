package job

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldText strips diacritics and drops characters outside the basic
// multilingual text range (emoji, symbols) so downstream matching works on
// plain ASCII-ish text.
func FoldText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r == unicode.ReplacementChar || r > 0xFFFF {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// NormalizeText lowercases and strips every non-alphanumeric rune. It is
// idempotent, which the identity key construction relies on.
func NormalizeText(s string) string {
	s = strings.ToLower(FoldText(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IdentityKey builds the primary dedup key for a posting.
func IdentityKey(company, title string) string {
	return NormalizeText(company) + "_" + NormalizeText(title)
}

// CleanURL canonicalizes a URL for dedup purposes: query string and fragment
// are dropped, scheme/host/path are lowercased, and a trailing slash is
// removed. jobright.ai paths embed an opaque page ID, so their path is kept
// verbatim rather than lowercased.
func CleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		if i := strings.IndexAny(raw, "?#"); i >= 0 {
			raw = raw[:i]
		}
		return strings.TrimSuffix(strings.ToLower(raw), "/")
	}
	host := strings.ToLower(u.Host)
	path := u.Path
	if !strings.Contains(host, "jobright.ai") {
		path = strings.ToLower(path)
	}
	path = strings.TrimSuffix(path, "/")
	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + host + path
}
