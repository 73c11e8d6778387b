package pipeline

import (
	"strings"
	"time"

	"internsift/app/dedup"
	"internsift/app/job"
)

// Context is the mutable state of one aggregation run: the identity index
// plus the verdict accumulators and counters. Constructed once per run and
// passed explicitly; nothing in the module keeps run state at package
// level.
type Context struct {
	Index     *dedup.Index
	Valid     []job.Verdict
	Discarded []job.Verdict

	Seen       int
	Skipped    int
	Duplicates int
	ByReason   map[string]int
	ByService  map[string]*ServiceStats

	Now func() time.Time
}

type ServiceStats struct {
	Seen      int
	Valid     int
	Discarded int
}

func NewContext(index *dedup.Index) *Context {
	return &Context{
		Index:     index,
		ByReason:  make(map[string]int),
		ByService: make(map[string]*ServiceStats),
		Now:       time.Now,
	}
}

func (c *Context) serviceStats(service string) *ServiceStats {
	s, ok := c.ByService[service]
	if !ok {
		s = &ServiceStats{}
		c.ByService[service] = s
	}
	return s
}

// reasonCategory buckets a discard reason for the end-of-run summary.
func reasonCategory(reason string) string {
	switch {
	case contains(reason, "wrong season"):
		return "wrong_season"
	case contains(reason, "International"):
		return "international"
	case contains(reason, "duplicate"):
		return "duplicate"
	case contains(reason, "quality score"):
		return "low_quality"
	case contains(reason, "no longer exists"), contains(reason, "closed"):
		return "dead_posting"
	case contains(reason, "too old"):
		return "too_old"
	case contains(reason, "internship"):
		return "not_internship"
	case contains(reason, "CS/Engineering"):
		return "not_technical"
	case contains(reason, "fetch/parse"):
		return "fetch_failed"
	case contains(reason, "clearance"), contains(reason, "citizenship"),
		contains(reason, "degree"), contains(reason, "CPT"),
		contains(reason, "Graduation"), contains(reason, "Undergraduate"):
		return "restricted"
	case contains(reason, "Blacklisted"):
		return "blacklisted"
	default:
		return "other"
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
