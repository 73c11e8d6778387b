package job

import (
	"testing"
	"time"
)

func TestNewRow_AppliesSentinels(t *testing.T) {
	v := Verdict{
		Status:    StatusValid,
		Fields:    Fields{Title: "Software Engineering Intern"},
		URL:       "https://example.com/jobs/1",
		Service:   "GitHub",
		EntryDate: time.Date(2026, time.September, 5, 15, 14, 0, 0, time.UTC),
	}

	row := NewRow(v)
	if row.Company != SentinelUnknown {
		t.Errorf("Company = %q, want %q", row.Company, SentinelUnknown)
	}
	if row.JobID != SentinelNoID {
		t.Errorf("JobID = %q, want %q", row.JobID, SentinelNoID)
	}
	if row.Location != SentinelUnknown {
		t.Errorf("Location = %q, want %q", row.Location, SentinelUnknown)
	}
	if row.Sponsorship != "Unknown" {
		t.Errorf("Sponsorship = %q, want Unknown", row.Sponsorship)
	}
	if row.Status != "Valid" {
		t.Errorf("Status = %q, want Valid", row.Status)
	}
	if row.EntryDate != "05 September, 03:14 PM" {
		t.Errorf("EntryDate = %q", row.EntryDate)
	}
}

func TestNewRow_DiscardReasonInStatusColumn(t *testing.T) {
	v := Verdict{
		Status: StatusDiscarded,
		Fields: Fields{Company: "Acme", Title: "Data Engineer Intern"},
		Reason: "wrong season: Fall",
	}

	row := NewRow(v)
	if row.Status != "wrong season: Fall" {
		t.Errorf("Status = %q, want the discard reason", row.Status)
	}
	if row.Company != "Acme" {
		t.Errorf("Company = %q, want Acme", row.Company)
	}
}
