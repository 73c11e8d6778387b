package job

import (
	"strings"
	"time"
)

const (
	SentinelUnknown = "Unknown"
	SentinelNoID    = "N/A"

	entryDateLayout = "02 January, 03:04 PM"
)

// Row is one output record in spreadsheet column order. Sentinel strings
// ("Unknown", "N/A") exist only here, at the serialization boundary.
type Row struct {
	SrNo        int
	Status      string // "Valid" or the discard reason
	Company     string
	Title       string
	DateApplied string
	JobURL      string
	JobID       string
	JobType     string
	Location    string
	Remote      string
	EntryDate   string
	Source      string
	Sponsorship string
}

func orSentinel(v, sentinel string) string {
	if v == "" {
		return sentinel
	}
	return v
}

// JobTypeFor classifies a title as "Co-op" or "Internship" by substring.
func JobTypeFor(title string) string {
	t := strings.ToLower(title)
	if strings.Contains(t, "co-op") || strings.Contains(t, "coop") {
		return "Co-op"
	}
	return "Internship"
}

func FormatEntryDate(t time.Time) string {
	return t.Format(entryDateLayout)
}

// NewRow builds the output row for a terminal verdict. Valid verdicts get
// Status "Valid"; discarded verdicts carry their reason in the same column.
func NewRow(v Verdict) Row {
	status := "Valid"
	if v.Status == StatusDiscarded {
		status = v.Reason
	}
	return Row{
		Status:      status,
		Company:     orSentinel(v.Fields.Company, SentinelUnknown),
		Title:       orSentinel(v.Fields.Title, SentinelUnknown),
		JobURL:      v.URL,
		JobID:       orSentinel(v.Fields.JobID, SentinelNoID),
		JobType:     JobTypeFor(v.Fields.Title),
		Location:    orSentinel(v.Fields.Location, SentinelUnknown),
		Remote:      v.Fields.Remote.String(),
		EntryDate:   FormatEntryDate(v.EntryDate),
		Source:      v.Service,
		Sponsorship: v.Fields.Sponsorship.String(),
	}
}
