package job

import "time"

type Origin string

const (
	OriginGithubFeed Origin = "github_feed"
	OriginEmailAlert Origin = "email_alert"
	OriginRSSFeed    Origin = "rss_feed"
)

// Hints carry weak prior values from the originating source. They are only
// used as fallbacks when page-derived extraction fails.
type Hints struct {
	Company  string
	Title    string
	Location string
}

// Candidate is a job posting reference that has not been validated yet.
// Created by a source adapter, consumed exactly once by the pipeline.
type Candidate struct {
	SourceURL   string
	ResolvedURL string // unwrapped destination of a wrapper-service link, if known
	Hints       Hints
	Origin      Origin
	Service     string // originating service label, reporting only
	Category    string // source-provided role category, if any
	AgeLabel    string // raw age cell from listing sources ("5d", "Oct 15")
	Closed      bool
}

type RemoteStatus int

const (
	RemoteUnknown RemoteStatus = iota
	Remote
	Hybrid
	OnSite
)

func (r RemoteStatus) String() string {
	switch r {
	case Remote:
		return "Remote"
	case Hybrid:
		return "Hybrid"
	case OnSite:
		return "On-site"
	default:
		return "Unknown"
	}
}

type Sponsorship int

const (
	SponsorshipUnknown Sponsorship = iota
	SponsorshipYes
	SponsorshipNo
)

func (s Sponsorship) String() string {
	switch s {
	case SponsorshipYes:
		return "Yes"
	case SponsorshipNo:
		return "No"
	default:
		return "Unknown"
	}
}

// Fields is the pipeline's working state for one candidate. Empty strings
// mean "unresolved"; sentinel strings are applied only when a Row is built.
type Fields struct {
	Company     string
	Title       string
	Location    string
	JobID       string
	Remote      RemoteStatus
	Sponsorship Sponsorship
}

// ReasonFetchFailed is the discard reason for transient fetch or parse
// failures. Rows that carry it never enter the identity index, in the run
// that produced them or when existing keys are reloaded, so the URL gets
// retried.
const ReasonFetchFailed = "fetch/parse failed"

type Status int

const (
	StatusValid Status = iota
	StatusDiscarded
	StatusSkipped
)

// Verdict is the terminal outcome for one candidate.
type Verdict struct {
	Status    Status
	Fields    Fields
	URL       string
	Origin    Origin
	Service   string
	Reason    string
	EntryDate time.Time
	// Transient marks a fetch/parse failure verdict that must not enter
	// the identity index, so a future run retries the URL.
	Transient bool
}
