package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/puluc/board"
	"github.com/domino14/puluc/move"
	"github.com/domino14/puluc/ppn"
	"github.com/domino14/puluc/roll"
)

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := NewGame(board.DefaultRules(), roll.NewSource([]byte("seed")))
	is.True(g.Uid() != "")
	is.True(g.Playing())
	is.Equal(g.PlayerOnTurn(), board.White)
	is.Equal(g.Turn(), 0)
	_, rolled := g.LastRoll()
	is.True(!rolled)

	g = NewGame(board.Rules{FirstPlayer: board.Black}, roll.NewSource(nil))
	is.Equal(g.PlayerOnTurn(), board.Black)
}

func TestTurnFlow(t *testing.T) {
	is := is.New(t)
	g := NewGame(board.DefaultRules(), roll.NewSource([]byte("seed")))

	_, err := g.PlayMove(move.New(move.Base, 2, 3))
	is.Equal(err, ErrNoRoll)
	is.Equal(g.Pass(), ErrNoRoll)

	plays, err := g.SetRoll(roll.FromValues([4]uint8{1, 1, 1, 0}))
	is.NoErr(err)
	is.Equal(plays, []move.Move{move.New(move.Base, 2, 3)})

	_, _, err = g.RollDice()
	is.Equal(err, ErrRollPending)
	is.Equal(g.Pass(), ErrMustMove)

	_, err = g.PlayMove(move.New(move.Base, 3, 3))
	is.True(errors.Is(err, ErrNotLegal))

	// distance is filled in from the throw
	eff, err := g.PlayMove(move.Move{From: move.Base, To: 2})
	is.NoErr(err)
	is.True(eff.Entered)
	is.Equal(g.Turn(), 1)
	is.Equal(g.PlayerOnTurn(), board.Black)
	s, ok := g.Board().TileAt(2)
	is.True(ok)
	is.Equal(s.Top, board.White)

	r, plays, err := g.RollDice()
	is.NoErr(err)
	is.True(r.Distance() >= 1 && r.Distance() <= 5)
	is.True(len(plays) > 0)
	lr, rolled := g.LastRoll()
	is.True(rolled)
	is.Equal(lr, r)
}

func TestPassWhenStuck(t *testing.T) {
	is := is.New(t)
	b, err := ppn.Parse(ppn.WhiteStuck, board.DefaultRules())
	is.NoErr(err)
	g := NewFromBoard(b, roll.NewSource(nil))
	plays, err := g.SetRoll(roll.FromValues([4]uint8{1, 0, 0, 0}))
	is.NoErr(err)
	is.Equal(len(plays), 0)
	is.NoErr(g.Pass())
	is.Equal(g.PlayerOnTurn(), board.Black)
	is.Equal(g.Turn(), 1)
}

func TestBonusTurnAndGameOver(t *testing.T) {
	is := is.New(t)
	b, err := ppn.Parse(ppn.ExactFinish, board.DefaultRules())
	is.NoErr(err)
	g := NewFromBoard(b, roll.NewSource(nil))

	_, err = g.SetRoll(roll.FromValues([4]uint8{1, 1, 1, 0}))
	is.NoErr(err)
	eff, err := g.PlayMove(move.New(2, move.Removed, 3))
	is.NoErr(err)
	is.True(eff.BonusTurn)
	is.Equal(g.PlayerOnTurn(), board.White)

	_, err = g.SetRoll(roll.FromValues([4]uint8{1, 0, 0, 0}))
	is.NoErr(err)
	eff, err = g.PlayMove(move.New(4, 3, 1))
	is.NoErr(err)
	is.True(!eff.BonusTurn)
	is.Equal(g.PlayerOnTurn(), board.Black)

	_, err = g.SetRoll(roll.FromValues([4]uint8{1, 1, 0, 0}))
	is.NoErr(err)
	_, err = g.SetRoll(roll.FromValues([4]uint8{1, 1, 0, 0}))
	is.Equal(err, ErrRollPending)
	is.Equal(g.Pass(), ErrMustMove)
	_, err = g.PlayMove(move.New(move.Base, 1, 2))
	is.NoErr(err)

	_, err = g.SetRoll(roll.FromValues([4]uint8{0, 0, 0, 0}))
	is.NoErr(err)
	eff, err = g.PlayMove(move.New(3, move.Removed, 5))
	is.NoErr(err)
	is.True(eff.GameOver)
	is.True(!eff.BonusTurn)
	is.Equal(eff.Winner, board.White)
	is.True(!g.Playing())
	is.Equal(g.Turn(), 4)

	_, _, err = g.RollDice()
	is.Equal(err, ErrGameOver)
}
