package resolve

// Result is one extraction attempt's outcome. A zero Result means the
// strategy found nothing.
type Result struct {
	Value      string
	Confidence float64
	Method     string
}

func (r Result) OK() bool { return r.Value != "" }

// MinConfidence is the floor below which an extraction attempt is treated
// as if it found nothing.
const MinConfidence = 0.70

// Strategy is a single pure extraction attempt. Resolvers run an ordered
// list of strategies and take the first acceptable result.
type Strategy func() Result

func firstAccepted(strategies []Strategy, accept func(Result) bool) Result {
	for _, s := range strategies {
		r := s()
		if !r.OK() || r.Confidence < MinConfidence {
			continue
		}
		if accept != nil && !accept(r) {
			continue
		}
		return r
	}
	return Result{}
}
