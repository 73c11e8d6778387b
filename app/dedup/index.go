package dedup

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"internsift/app/job"
)

// Index holds every already-known job identity: normalized company+title
// keys, canonicalized URLs, and lowercased job ids. Loaded once from the
// store at startup, mutated by every Valid/Discarded verdict, and never
// persisted incrementally.
type Index struct {
	keys   mapset.Set[string]
	urls   mapset.Set[string]
	jobIDs mapset.Set[string]
	claims mapset.Set[string] // URLs claimed by in-flight candidates this run
}

func NewIndex(keys, urls, jobIDs []string) *Index {
	idx := &Index{
		keys:   mapset.NewSet[string](),
		urls:   mapset.NewSet[string](),
		jobIDs: mapset.NewSet[string](),
		claims: mapset.NewSet[string](),
	}
	for _, k := range keys {
		idx.keys.Add(k)
	}
	for _, u := range urls {
		idx.urls.Add(job.CleanURL(u))
	}
	for _, id := range jobIDs {
		if id != "" {
			idx.jobIDs.Add(strings.ToLower(id))
		}
	}
	return idx
}

// Claim reserves a URL for one in-flight candidate. Returns false when the
// URL is already known or already claimed this run.
func (i *Index) Claim(url string) bool {
	u := job.CleanURL(url)
	if u == "" {
		return true
	}
	if i.urls.Contains(u) {
		return false
	}
	return i.claims.Add(u)
}

// Release drops an in-flight claim without recording the identity. Used
// when a candidate ends as Skip or a retryable fetch failure, so a later
// legitimate posting at the same URL is not blocked.
func (i *Index) Release(url string) {
	i.claims.Remove(job.CleanURL(url))
}

// IsDuplicate applies the dedup policy in order: known URL; known identity
// key with an unresolved or matching job id; known job id under a
// different key. Same company+title with two different resolved job ids is
// deliberately NOT a duplicate: one company posts the same internship
// title per requisition. The flat id set cannot tell which key a stored id
// belonged to, so a known key whose stored row had no id also admits a
// newly resolved id as a fresh requisition.
func (i *Index) IsDuplicate(company, title, url, jobID string) bool {
	if u := job.CleanURL(url); u != "" && i.urls.Contains(u) {
		return true
	}

	key := job.IdentityKey(company, title)
	id := strings.ToLower(strings.TrimSpace(jobID))

	if i.keys.Contains(key) {
		return id == "" || i.jobIDs.Contains(id)
	}
	return id != "" && i.jobIDs.Contains(id)
}

// Commit records a terminal identity. Called for Valid and Discarded
// verdicts; Skips never reach the index.
func (i *Index) Commit(company, title, url, jobID string) {
	i.keys.Add(job.IdentityKey(company, title))
	if u := job.CleanURL(url); u != "" {
		i.urls.Add(u)
	}
	if id := strings.ToLower(strings.TrimSpace(jobID)); id != "" {
		i.jobIDs.Add(id)
	}
}

func (i *Index) KnownKeys() int   { return i.keys.Cardinality() }
func (i *Index) KnownURLs() int   { return i.urls.Cardinality() }
func (i *Index) KnownJobIDs() int { return i.jobIDs.Cardinality() }
