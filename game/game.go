// Package game runs a Puluc game turn by turn: throw the sticks, list the
// legal moves, then play one of them or pass. It owns no rules itself; the
// board and move generator do. Players, human or computer, live outside
// this package.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/puluc/board"
	"github.com/domino14/puluc/move"
	"github.com/domino14/puluc/movegen"
	"github.com/domino14/puluc/roll"
)

var (
	ErrRollPending = errors.New("sticks already thrown this turn; play a move or pass")
	ErrNoRoll      = errors.New("throw the sticks first")
	ErrNotLegal    = errors.New("move is not legal for this throw")
	ErrMustMove    = errors.New("cannot pass when a legal move exists")
	ErrGameOver    = errors.New("game is over")
)

// Game is the turn controller for one game.
type Game struct {
	uid    string
	board  *board.Board
	roller *roll.Engine
	gen    movegen.MoveGenerator

	rolled   bool
	lastRoll roll.Roll
	plays    []move.Move
	turnnum  int
}

// NewGame starts a new game with all pieces in base.
func NewGame(rules board.Rules, src roll.Source) *Game {
	return NewFromBoard(board.NewWithRules(rules), src)
}

// NewFromBoard continues a game from an arbitrary position.
func NewFromBoard(b *board.Board, src roll.Source) *Game {
	g := &Game{
		uid:    uuid.NewString(),
		board:  b,
		roller: roll.NewEngine(src),
		gen:    movegen.NewGenerator(),
	}
	log.Debug().Str("gid", g.uid).Msgf("new game, %v to move", b.CurrentPlayer())
	return g
}

func (g *Game) Uid() string {
	return g.uid
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Turn is the number of moves and passes played so far.
func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) PlayerOnTurn() board.Color {
	return g.board.CurrentPlayer()
}

func (g *Game) Playing() bool {
	return !g.board.GameOver()
}

func (g *Game) Winner() (board.Color, bool) {
	return g.board.Winner()
}

// LastRoll returns the throw for the current turn, if one has been made.
func (g *Game) LastRoll() (roll.Roll, bool) {
	return g.lastRoll, g.rolled
}

// LegalMoves returns the moves available for the pending throw.
func (g *Game) LegalMoves() []move.Move {
	return g.plays
}

// RollDice throws the sticks for the player on turn.
func (g *Game) RollDice() (roll.Roll, []move.Move, error) {
	if g.rolled {
		return g.lastRoll, g.plays, ErrRollPending
	}
	r := g.roller.Roll()
	plays, err := g.SetRoll(r)
	return r, plays, err
}

// SetRoll uses a throw made elsewhere, such as physical sticks.
func (g *Game) SetRoll(r roll.Roll) ([]move.Move, error) {
	if !g.Playing() {
		return nil, ErrGameOver
	}
	if g.rolled {
		return g.plays, ErrRollPending
	}
	player := g.board.CurrentPlayer()
	if err := g.gen.GenAll(g.board, player, r.Distance()); err != nil {
		return nil, err
	}
	g.plays = append([]move.Move(nil), g.gen.Plays()...)
	g.rolled = true
	g.lastRoll = r
	log.Debug().Str("gid", g.uid).Int("turn", g.turnnum).
		Msgf("%v threw %v, %d legal moves", player, r, len(g.plays))
	return g.plays, nil
}

// PlayMove plays m for the player on turn. Only the endpoints of m are
// looked at; the distance comes from the pending throw.
func (g *Game) PlayMove(m move.Move) (board.Effects, error) {
	if !g.rolled {
		return board.Effects{}, ErrNoRoll
	}
	legal, ok := lo.Find(g.plays, func(p move.Move) bool {
		return p.Key() == m.Key()
	})
	if !ok {
		return board.Effects{}, fmt.Errorf("%w: %v", ErrNotLegal, m.ShortDescription())
	}
	player := g.board.CurrentPlayer()
	nb, eff, err := g.board.Apply(legal, player)
	if err != nil {
		return board.Effects{}, err
	}
	g.board = nb
	g.endTurn()
	log.Debug().Str("gid", g.uid).Int("turn", g.turnnum).
		Str("effects", eff.String()).
		Msgf("%v played %v", player, legal.ShortDescription())
	return eff, nil
}

// Pass ends the turn when the throw left no legal moves.
func (g *Game) Pass() error {
	if !g.rolled {
		return ErrNoRoll
	}
	if len(g.plays) > 0 {
		return ErrMustMove
	}
	player := g.board.CurrentPlayer()
	nb, err := g.board.Pass(player)
	if err != nil {
		return err
	}
	g.board = nb
	g.endTurn()
	log.Debug().Str("gid", g.uid).Int("turn", g.turnnum).Msgf("%v passed", player)
	return nil
}

func (g *Game) endTurn() {
	g.rolled = false
	g.plays = nil
	g.turnnum++
}

// ToDisplayText shows the board, the pending throw and its moves.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.board.ToDisplayText())
	if w, over := g.Winner(); over {
		fmt.Fprintf(&sb, "Game over: %v wins after %d turns\n", w, g.turnnum)
		return sb.String()
	}
	if g.rolled {
		sb.WriteString(g.lastRoll.String())
		sb.WriteString("\n")
		if len(g.plays) == 0 {
			sb.WriteString("No legal moves; pass.\n")
		}
		for i, m := range g.plays {
			fmt.Fprintf(&sb, "%3d: %s\n", i+1, m.ShortDescription())
		}
	}
	return sb.String()
}
