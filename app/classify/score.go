package classify

import (
	"fmt"

	"internsift/app/job"
	"internsift/app/rules"
)

// MinQualityScore is the acceptance floor. The score gate runs last so a
// low score never masks a more specific rejection reason.
const MinQualityScore = 3

const maxQualityScore = 7

// Scorer combines resolved fields into a 0..7 completeness score.
type Scorer struct {
	rules *rules.Set
}

func NewScorer(rs *rules.Set) *Scorer {
	return &Scorer{rules: rs}
}

func (s *Scorer) Score(f job.Fields) int {
	score := 0
	if f.Company != "" && !s.rules.IsPlaceholder(f.Company) {
		score += 2
	}
	if f.Location != "" {
		score += 2
	}
	if f.JobID != "" {
		score++
	}
	if n := len(f.Title); n >= 15 && n <= 120 {
		score++
	}
	if f.Sponsorship != job.SponsorshipUnknown {
		score++
	}
	return score
}

// Check returns (false, reason) when the score falls below the floor. The
// reason carries the numeric score.
func (s *Scorer) Check(f job.Fields) (bool, string) {
	score := s.Score(f)
	if score < MinQualityScore {
		return false, fmt.Sprintf("Low quality score: %d/%d", score, maxQualityScore)
	}
	return true, ""
}
