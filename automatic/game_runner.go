// Package automatic plays computer-vs-computer Puluc games, in bulk and in
// parallel, and gathers statistics about them.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/puluc/board"
	"github.com/domino14/puluc/config"
	"github.com/domino14/puluc/game"
	"github.com/domino14/puluc/roll"
)

// MaxTurns stops a game that is taking unreasonably long. Random play
// finishes far sooner than this.
const MaxTurns = 5000

// Result is what one finished (or abandoned) game looked like.
type Result struct {
	GameID      string
	First       board.Color
	Winner      board.Color
	Finished    bool
	Turns       int
	Passes      int
	Captures    int
	BonusTurns  int
	Reflections int
	// Positions are the hashes of every distinct position reached.
	Positions []uint64
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game     *game.Game
	players  [board.NumColors]Player
	rules    board.Rules
	logchan  chan string
	maxTurns int
}

// NewGameRunner creates a runner for cfg's rules. Per-turn CSV lines are
// sent to logchan if it is not nil.
func NewGameRunner(logchan chan string, cfg *config.Config) (*GameRunner, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	r := &GameRunner{logchan: logchan, rules: rules, maxTurns: MaxTurns}
	r.Init(cfg.Seed())
	return r, nil
}

// Init sets up a fresh game. With a non-empty seed, the throws and both
// players' choices are reproducible.
func (r *GameRunner) Init(seed []byte) {
	r.game = game.NewGame(r.rules, roll.NewSource(seed))
	for c := range r.players {
		var pseed []byte
		if len(seed) > 0 {
			pseed = fmt.Appendf(append([]byte(nil), seed...), "-player%d", c)
		}
		r.players[c] = NewRandomPlayer(pseed)
	}
}

// Game returns the game being played.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayGame plays the current game until someone wins or MaxTurns is hit.
func (r *GameRunner) PlayGame(ctx context.Context) (Result, error) {
	res := Result{GameID: r.game.Uid(), First: r.game.PlayerOnTurn()}
	positions := []uint64{r.game.Board().Hash()}
	for r.game.Playing() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if r.game.Turn() >= r.maxTurns {
			log.Warn().Str("gid", res.GameID).Int("turns", r.game.Turn()).Msg("abandoning game")
			break
		}
		if err := r.playTurn(&res); err != nil {
			return res, err
		}
		positions = append(positions, r.game.Board().Hash())
	}
	res.Turns = r.game.Turn()
	res.Winner, res.Finished = r.game.Winner()
	res.Positions = lo.Uniq(positions)
	return res, nil
}

func (r *GameRunner) playTurn(res *Result) error {
	player := r.game.PlayerOnTurn()
	throw, plays, err := r.game.RollDice()
	if err != nil {
		return err
	}
	desc := "pass"
	var eff board.Effects
	if len(plays) == 0 {
		if err := r.game.Pass(); err != nil {
			return err
		}
		res.Passes++
	} else {
		m := r.players[player].ChooseMove(plays)
		eff, err = r.game.PlayMove(m)
		if err != nil {
			return err
		}
		desc = m.ShortDescription()
		res.Captures += lo.Ternary(eff.Captured, 1, 0)
		res.BonusTurns += lo.Ternary(eff.BonusTurn, 1, 0)
		res.Reflections += lo.Ternary(eff.Reflected, 1, 0)
	}

	if r.logchan != nil {
		b := r.game.Board()
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v,%v,%v\n",
			player,
			r.game.Uid(),
			r.game.Turn(),
			throw.Distance(),
			desc,
			len(plays),
			eff.Captured,
			eff.BonusTurn,
			b.RemovedCount(board.White),
			b.RemovedCount(board.Black))
	}
	return nil
}
