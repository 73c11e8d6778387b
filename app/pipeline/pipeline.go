package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"internsift/app/classify"
	"internsift/app/fetch"
	"internsift/app/job"
	"internsift/app/resolve"
	"internsift/app/rules"
	"internsift/app/source"
)

// Pipeline validates one candidate at a time through a fixed gate
// sequence; the first failing gate wins and sets the discard reason.
type Pipeline struct {
	fetcher      fetch.PageFetcher
	company      *resolve.CompanyResolver
	title        *resolve.TitleResolver
	location     *resolve.LocationResolver
	jobID        *resolve.JobIDResolver
	role         *classify.Role
	geo          *classify.Geography
	restrictions *classify.Restrictions
	dead         *classify.Dead
	scorer       *classify.Scorer
	maxAgeDays   int
}

func New(rs *rules.Set, fetcher fetch.PageFetcher, season string, cycleYear, maxAgeDays int) *Pipeline {
	return &Pipeline{
		fetcher:      fetcher,
		company:      resolve.NewCompanyResolver(rs),
		title:        resolve.NewTitleResolver(),
		location:     resolve.NewLocationResolver(rs),
		jobID:        resolve.NewJobIDResolver(rs),
		role:         classify.NewRole(rs, season),
		geo:          classify.NewGeography(rs),
		restrictions: classify.NewRestrictions(rs, cycleYear),
		dead:         classify.NewDead(rs),
		scorer:       classify.NewScorer(rs),
		maxAgeDays:   maxAgeDays,
	}
}

// Run processes a batch sequentially. Each candidate is isolated: no
// failure propagates past its own verdict.
func (p *Pipeline) Run(ctx context.Context, pc *Context, candidates []job.Candidate) {
	for _, cand := range candidates {
		select {
		case <-ctx.Done():
			slog.Warn("Run interrupted", "processed", pc.Seen, "remaining", len(candidates)-pc.Seen)
			return
		default:
		}
		p.record(pc, p.Process(ctx, pc, cand))
	}
	p.sweepMutualExclusion(pc)
}

// Process takes one candidate to a terminal verdict.
func (p *Pipeline) Process(ctx context.Context, pc *Context, cand job.Candidate) (verdict job.Verdict) {
	// Wrapper links that embed their destination claim and fetch the
	// destination directly, so two alerts wrapping the same posting
	// collapse before any network round-trip.
	procURL := cand.SourceURL
	if cand.ResolvedURL != "" {
		procURL = cand.ResolvedURL
	}

	verdict = job.Verdict{
		Status:  job.StatusSkipped,
		URL:     procURL,
		Origin:  cand.Origin,
		Service: cand.Service,
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Candidate processing panicked", "url", procURL, "panic", r)
			pc.Index.Release(procURL)
			verdict = p.transientDiscard(pc, cand, procURL, job.Fields{
				Company: cand.Hints.Company,
				Title:   cand.Hints.Title,
			})
		}
	}()

	if !pc.Index.Claim(procURL) {
		return p.duplicate(cand)
	}

	if cand.Closed {
		return p.discard(pc, cand, procURL, job.Fields{
			Company:  cand.Hints.Company,
			Title:    cand.Hints.Title,
			Location: cand.Hints.Location,
		}, "Posting closed at source")
	}

	if p.dead.URL(procURL) {
		return p.discard(pc, cand, procURL, job.Fields{
			Company: cand.Hints.Company,
			Title:   cand.Hints.Title,
		}, "Job posting no longer exists")
	}

	if cand.Origin == job.OriginGithubFeed && cand.AgeLabel != "" {
		if days, ok := source.ParseAgeLabel(cand.AgeLabel, pc.Now()); ok && days > p.maxAgeDays {
			return p.discard(pc, cand, procURL, job.Fields{
				Company:  cand.Hints.Company,
				Title:    cand.Hints.Title,
				Location: cand.Hints.Location,
			}, fmt.Sprintf("Posting too old: %d days", days))
		}
	}

	res, err := p.fetcher.Fetch(ctx, procURL)
	if err != nil {
		slog.Debug("Fetch failed", "url", procURL, "error", err)
		pc.Index.Release(procURL)
		return p.transientDiscard(pc, cand, procURL, job.Fields{
			Company: cand.Hints.Company,
			Title:   cand.Hints.Title,
		})
	}
	doc, finalURL := res.Doc, res.FinalURL

	// Redirects can land on a dead-posting URL that the source URL did
	// not reveal.
	if finalURL != procURL && p.dead.URL(finalURL) {
		return p.discard(pc, cand, finalURL, job.Fields{
			Company: cand.Hints.Company,
			Title:   cand.Hints.Title,
		}, "Job posting no longer exists")
	}
	if p.dead.PageTitle(doc.Title()) {
		return p.discard(pc, cand, finalURL, job.Fields{
			Company: cand.Hints.Company,
			Title:   cand.Hints.Title,
		}, "Job posting no longer exists")
	}

	fields := job.Fields{}
	fields.Company = p.company.Resolve(doc, finalURL, cand.Hints.Title, cand.Hints.Company)
	rawTitle := p.title.Resolve(doc, cand.Hints.Title)
	fields.Title = resolve.CleanTitle(rawTitle)
	// The job id is resolved before the duplicate check so the
	// same-title-different-requisition exception can apply.
	fields.JobID = p.jobID.Resolve(doc, finalURL)

	if pc.Index.IsDuplicate(fields.Company, fields.Title, finalURL, fields.JobID) {
		return p.duplicate(cand)
	}

	if !p.role.IsValidJobTitle(fields.Title) {
		pc.Index.Release(procURL)
		slog.Debug("Candidate skipped", "title", fields.Title, "url", procURL)
		return job.Verdict{Status: job.StatusSkipped, URL: finalURL, Origin: cand.Origin, Service: cand.Service}
	}

	if !p.role.IsInternshipRole(fields.Title, cand.Category) {
		return p.discard(pc, cand, finalURL, fields, "Not an internship role")
	}
	if ok, season := p.role.CheckSeason(fields.Title, doc.Text()); !ok {
		return p.discard(pc, cand, finalURL, fields, "wrong season: "+season)
	}
	if !p.role.IsCSRole(fields.Title, cand.Category) {
		return p.discard(pc, cand, finalURL, fields, "Not a CS/Engineering role")
	}
	if p.role.IsBlacklistedCompany(fields.Company) {
		return p.discard(pc, cand, finalURL, fields, "Blacklisted company: "+fields.Company)
	}

	fields.Location = p.location.Resolve(doc, finalURL, rawTitle, cand.Hints.Location)

	if ok, reason := p.geo.CheckLocation(fields.Location, doc); !ok {
		return p.discard(pc, cand, finalURL, fields, reason)
	}
	if ok, reason := p.geo.CheckCompany(fields.Company); !ok {
		return p.discard(pc, cand, finalURL, fields, reason)
	}
	if ok, reason := p.restrictions.Check(doc); !ok {
		return p.discard(pc, cand, finalURL, fields, reason)
	}
	if days, ok := p.restrictions.PageAgeDays(doc, pc.Now()); ok && days > p.maxAgeDays {
		return p.discard(pc, cand, finalURL, fields, fmt.Sprintf("Posting too old: %d days", days))
	}

	fields.Remote = resolve.ResolveRemote(fields.Title, fields.Location, doc)
	fields.Sponsorship = p.restrictions.Sponsorship(doc)

	if ok, reason := p.scorer.Check(fields); !ok {
		return p.discard(pc, cand, finalURL, fields, reason)
	}

	// Authoritative duplicate check at commit. The early check and this
	// one see the same inputs, so they agree by construction.
	if pc.Index.IsDuplicate(fields.Company, fields.Title, finalURL, fields.JobID) {
		return p.duplicate(cand)
	}

	pc.Index.Commit(fields.Company, fields.Title, finalURL, fields.JobID)
	slog.Info("Candidate accepted",
		"company", fields.Company, "title", fields.Title,
		"location", fields.Location, "score", p.scorer.Score(fields))

	return job.Verdict{
		Status:    job.StatusValid,
		Fields:    fields,
		URL:       finalURL,
		Origin:    cand.Origin,
		Service:   cand.Service,
		EntryDate: pc.Now(),
	}
}

func (p *Pipeline) discard(pc *Context, cand job.Candidate, url string, fields job.Fields, reason string) job.Verdict {
	pc.Index.Commit(fields.Company, fields.Title, url, fields.JobID)
	slog.Info("Candidate discarded",
		"company", fields.Company, "title", fields.Title, "reason", reason)
	return job.Verdict{
		Status:    job.StatusDiscarded,
		Fields:    fields,
		URL:       url,
		Origin:    cand.Origin,
		Service:   cand.Service,
		Reason:    reason,
		EntryDate: pc.Now(),
	}
}

// transientDiscard produces a discard row without touching the identity
// index: the URL stays unknown so the next run retries it.
func (p *Pipeline) transientDiscard(pc *Context, cand job.Candidate, url string, fields job.Fields) job.Verdict {
	return job.Verdict{
		Status:    job.StatusDiscarded,
		Fields:    fields,
		URL:       url,
		Origin:    cand.Origin,
		Service:   cand.Service,
		Reason:    job.ReasonFetchFailed,
		EntryDate: pc.Now(),
		Transient: true,
	}
}

func (p *Pipeline) duplicate(cand job.Candidate) job.Verdict {
	slog.Debug("Duplicate candidate", "url", cand.SourceURL)
	return job.Verdict{
		Status:  job.StatusSkipped,
		URL:     cand.SourceURL,
		Origin:  cand.Origin,
		Service: cand.Service,
		Reason:  "duplicate",
	}
}

func (p *Pipeline) record(pc *Context, v job.Verdict) {
	pc.Seen++
	stats := pc.serviceStats(v.Service)
	stats.Seen++

	switch v.Status {
	case job.StatusValid:
		pc.Valid = append(pc.Valid, v)
		stats.Valid++
	case job.StatusDiscarded:
		pc.Discarded = append(pc.Discarded, v)
		pc.ByReason[reasonCategory(v.Reason)]++
		stats.Discarded++
	case job.StatusSkipped:
		if v.Reason == "duplicate" {
			pc.Duplicates++
		} else {
			pc.Skipped++
		}
	}
}

// sweepMutualExclusion drops any Valid row whose identity key also shows
// up among this run's Discarded rows. A posting cannot be both.
func (p *Pipeline) sweepMutualExclusion(pc *Context) {
	discardedKeys := make(map[string]struct{}, len(pc.Discarded))
	for _, v := range pc.Discarded {
		discardedKeys[job.IdentityKey(v.Fields.Company, v.Fields.Title)] = struct{}{}
	}

	kept := pc.Valid[:0]
	for _, v := range pc.Valid {
		key := job.IdentityKey(v.Fields.Company, v.Fields.Title)
		if _, clash := discardedKeys[key]; clash {
			slog.Warn("Dropping valid row discarded elsewhere in run",
				"company", v.Fields.Company, "title", v.Fields.Title)
			continue
		}
		kept = append(kept, v)
	}
	pc.Valid = kept
}
