package automatic

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/domino14/puluc/board"
	"github.com/domino14/puluc/stats"
)

// Summary aggregates the results of many games.
type Summary struct {
	Games           int            `yaml:"games"`
	Unfinished      int            `yaml:"unfinished"`
	Wins            map[string]int `yaml:"wins"`
	FirstPlayerWins int            `yaml:"first_player_wins"`
	// FirstPlayerWinRate is over finished games, with its 95% interval.
	FirstPlayerWinRate     float64    `yaml:"first_player_win_rate"`
	FirstPlayerWinInterval [2]float64 `yaml:"first_player_win_rate_95"`

	MeanTurns         float64 `yaml:"mean_turns"`
	StdevTurns        float64 `yaml:"stdev_turns"`
	MaxTurns          int     `yaml:"max_turns"`
	Captures          int     `yaml:"captures"`
	BonusTurns        int     `yaml:"bonus_turns"`
	Passes            int     `yaml:"passes"`
	Reflections       int     `yaml:"reflections"`
	DistinctPositions int     `yaml:"distinct_positions"`

	turns     []float64
	seen      map[uint64]struct{}
	firstWins stats.Proportion
}

func NewSummary() *Summary {
	return &Summary{
		Wins: map[string]int{board.White.String(): 0, board.Black.String(): 0},
		seen: make(map[uint64]struct{}),
	}
}

// Add folds one game into the summary. It is not safe for concurrent use.
func (s *Summary) Add(r Result) {
	s.Games++
	if !r.Finished {
		s.Unfinished++
	} else {
		s.Wins[r.Winner.String()]++
		s.firstWins.Push(r.Winner == r.First)
		s.FirstPlayerWins = s.firstWins.Hits()
	}
	s.Captures += r.Captures
	s.BonusTurns += r.BonusTurns
	s.Passes += r.Passes
	s.Reflections += r.Reflections
	s.turns = append(s.turns, float64(r.Turns))
	for _, h := range r.Positions {
		s.seen[h] = struct{}{}
	}
	s.DistinctPositions = len(s.seen)
	s.MaxTurns = max(s.MaxTurns, r.Turns)
}

func (s *Summary) compute() {
	s.FirstPlayerWinRate = s.firstWins.Rate()
	low, high := s.firstWins.Interval(95)
	s.FirstPlayerWinInterval = [2]float64{low, high}
	if len(s.turns) == 0 {
		return
	}
	s.MeanTurns = stat.Mean(s.turns, nil)
	if len(s.turns) > 1 {
		s.StdevTurns = stat.StdDev(s.turns, nil)
	}
}

// Turns returns the length of every game added so far.
func (s *Summary) Turns() []int {
	return lo.Map(s.turns, func(t float64, _ int) int { return int(t) })
}

func (s *Summary) WriteYAML(w io.Writer) error {
	s.compute()
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Histogram draws the distribution of game lengths.
func (s *Summary) Histogram(w io.Writer) error {
	if len(s.turns) == 0 {
		_, err := fmt.Fprintln(w, "No games played.")
		return err
	}
	h := histogram.Hist(15, s.turns)
	return histogram.Fprint(w, h, histogram.Linear(50))
}

func (s *Summary) String() string {
	if s.Games == 0 {
		return "Games played: 0\n"
	}
	s.compute()
	pct := func(n int) float64 { return 100.0 * float64(n) / float64(s.Games) }
	str := fmt.Sprintf("Games played: %d (%d unfinished)\n", s.Games, s.Unfinished)
	for _, c := range []board.Color{board.White, board.Black} {
		n := s.Wins[c.String()]
		str += fmt.Sprintf("%v wins: %d (%.3f%%)\n", c, n, pct(n))
	}
	str += fmt.Sprintf("Player who went first wins: %d of %d finished (%.3f%%, 95%% CI %.3f%%-%.3f%%)\n",
		s.FirstPlayerWins, s.firstWins.Trials(), 100*s.FirstPlayerWinRate,
		100*s.FirstPlayerWinInterval[0], 100*s.FirstPlayerWinInterval[1])
	str += fmt.Sprintf("Mean turns: %.3f  Stdev: %.3f  Max: %d\n",
		s.MeanTurns, s.StdevTurns, s.MaxTurns)
	str += fmt.Sprintf("Captures: %d  Bonus turns: %d  Passes: %d  Reflections: %d\n",
		s.Captures, s.BonusTurns, s.Passes, s.Reflections)
	str += fmt.Sprintf("Distinct positions: %d\n", s.DistinctPositions)
	return str
}
