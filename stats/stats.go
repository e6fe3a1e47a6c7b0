// Package stats has the small amount of statistics autoplay needs to say
// whether a result is real or noise.
package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Proportion counts how often something happens over repeated trials,
// for example the player who moved first going on to win.
type Proportion struct {
	trials int
	hits   int
}

func (p *Proportion) Push(hit bool) {
	p.trials++
	if hit {
		p.hits++
	}
}

func (p *Proportion) Trials() int {
	return p.trials
}

func (p *Proportion) Hits() int {
	return p.hits
}

// Rate is the observed fraction of hits, 0 with no trials.
func (p *Proportion) Rate() float64 {
	if p.trials == 0 {
		return 0
	}
	return float64(p.hits) / float64(p.trials)
}

// StandardError uses the normal approximation to the binomial.
func (p *Proportion) StandardError() float64 {
	if p.trials == 0 {
		return 0
	}
	r := p.Rate()
	return math.Sqrt(r * (1 - r) / float64(p.trials))
}

// Interval returns the two-sided confidence interval around Rate for a
// confidence given in percent, clamped to [0, 1].
func (p *Proportion) Interval(confidence float64) (lo, hi float64) {
	r := p.Rate()
	margin := ZVal(confidence) * p.StandardError()
	return math.Max(0, r-margin), math.Min(1, r+margin)
}
