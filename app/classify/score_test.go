package classify

import (
	"testing"

	"internsift/app/job"
)

func TestScorer_Score(t *testing.T) {
	s := NewScorer(testRules(t))

	tests := []struct {
		name   string
		fields job.Fields
		want   int
	}{
		{"nothing resolved", job.Fields{}, 0},
		{"company only", job.Fields{Company: "Acme"}, 2},
		{"placeholder company scores nothing", job.Fields{Company: "Unknown"}, 0},
		{"company and location", job.Fields{Company: "Acme", Location: "Austin, TX"}, 4},
		{"title in length band", job.Fields{Title: "Software Engineering Intern"}, 1},
		{"title too short", job.Fields{Title: "SWE Intern"}, 0},
		{"everything", job.Fields{
			Company:     "Acme",
			Location:    "Austin, TX",
			JobID:       "R-12345",
			Title:       "Software Engineering Intern",
			Sponsorship: job.SponsorshipYes,
		}, 7},
		{"sponsorship no still counts", job.Fields{Sponsorship: job.SponsorshipNo}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.fields); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScorer_Check(t *testing.T) {
	s := NewScorer(testRules(t))

	// Score 2: company only. Below the floor.
	ok, reason := s.Check(job.Fields{Company: "Acme"})
	if ok {
		t.Fatal("score 2 passed the floor")
	}
	if reason != "Low quality score: 2/7" {
		t.Errorf("reason = %q, want %q", reason, "Low quality score: 2/7")
	}

	// Score 3: company plus job id. At the floor.
	if ok, _ := s.Check(job.Fields{Company: "Acme", JobID: "R-12345"}); !ok {
		t.Error("score 3 should pass the floor")
	}
}
