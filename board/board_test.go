package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/puluc/move"
)

func mustBoard(t *testing.T, p Position) *Board {
	t.Helper()
	b, err := NewFromPosition(p, DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func checkPopulation(is *is.I, b *Board) {
	is.Helper()
	for _, c := range []Color{White, Black} {
		is.Equal(b.BaseCount(c)+b.OnTrack(c)+b.RemovedCount(c), PiecesPerColor)
	}
}

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	b := New()
	is.Equal(b.CurrentPlayer(), White)
	for _, c := range []Color{White, Black} {
		is.Equal(b.BaseCount(c), 6)
		is.Equal(b.RemovedCount(c), 0)
		is.Equal(b.OnTrack(c), 0)
	}
	for i := 0; i < TrackLen; i++ {
		_, ok := b.TileAt(i)
		is.True(!ok)
	}
	is.NoErr(b.Validate())
	is.True(!b.GameOver())
}

func TestEnterFromBase(t *testing.T) {
	is := is.New(t)
	b := New()
	nb, eff, err := b.Apply(move.New(move.Base, 2, 3), White)
	is.NoErr(err)
	is.True(eff.Entered)
	is.True(!eff.Captured)
	s, ok := nb.TileAt(2)
	is.True(ok)
	is.Equal(s, Stack{Top: White})
	is.Equal(nb.BaseCount(White), 5)
	is.Equal(nb.CurrentPlayer(), Black)
	checkPopulation(is, nb)
	// the original board is untouched
	is.Equal(b.BaseCount(White), 6)
	is.Equal(b.CurrentPlayer(), White)
}

func TestCaptureTrapsOpponent(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{2: {Top: White}},
		InBase: [NumColors]uint8{5, 6},
		OnTurn: Black,
	})
	nb, eff, err := b.Apply(move.New(move.Base, 2, 3), Black)
	is.NoErr(err)
	is.True(eff.Captured)
	is.Equal(eff.Trapped, 1)
	s, _ := nb.TileAt(2)
	is.Equal(s.Top, Black)
	is.Equal(s.Trapped[White], uint8(1))
	is.Equal(s.Trapped[Black], uint8(0))
	is.Equal(nb.OnTrack(White), 1)
	checkPopulation(is, nb)
}

func TestCaptureAccumulatesTrapped(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{4: {Top: Black, Trapped: [NumColors]uint8{1, 1}}, 1: {Top: White}},
		InBase: [NumColors]uint8{4, 4},
		OnTurn: White,
	})
	nb, eff, err := b.Apply(move.New(1, 4, 3), White)
	is.NoErr(err)
	is.True(eff.Captured)
	is.Equal(eff.Trapped, 3)
	s, _ := nb.TileAt(4)
	is.Equal(s, Stack{Top: White, Trapped: [NumColors]uint8{1, 2}})
	_, ok := nb.TileAt(1)
	is.True(!ok)
	checkPopulation(is, nb)
}

func TestSurfaceOnDeparture(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{2: {Top: Black, Trapped: [NumColors]uint8{1, 0}}},
		InBase: [NumColors]uint8{5, 5},
		OnTurn: Black,
	})
	nb, eff, err := b.Apply(move.New(2, 4, 2), Black)
	is.NoErr(err)
	is.True(eff.Surfaced)
	s, _ := nb.TileAt(2)
	is.Equal(s, Stack{Top: White})
	s, _ = nb.TileAt(4)
	is.Equal(s, Stack{Top: Black})
	checkPopulation(is, nb)
}

func TestOwnColorSurfacesFirst(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles: [TrackLen]*Stack{
			3: {Top: White, MovingBackward: true, Trapped: [NumColors]uint8{1, 1}},
		},
		InBase: [NumColors]uint8{4, 5},
		OnTurn: White,
	})
	nb, eff, err := b.Apply(move.New(3, 1, 2), White)
	is.NoErr(err)
	is.True(eff.Surfaced)
	s, _ := nb.TileAt(3)
	is.Equal(s, Stack{Top: White, MovingBackward: true, Trapped: [NumColors]uint8{0, 1}})
	s, _ = nb.TileAt(1)
	is.Equal(s, Stack{Top: White, MovingBackward: true})
	checkPopulation(is, nb)
}

func TestReflection(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{9: {Top: White}, 7: {Top: Black}},
		InBase: [NumColors]uint8{5, 5},
		OnTurn: White,
	})
	l := b.Destination(9, 3)
	is.Equal(l, Landing{To: 8, Backward: true, Reflected: true})

	nb, eff, err := b.Apply(move.New(9, 8, 3), White)
	is.NoErr(err)
	is.True(eff.Reflected)
	s, _ := nb.TileAt(8)
	is.True(s.MovingBackward)

	// Landing exactly on the last tile also turns the piece around.
	l = b.Destination(7, 3)
	is.Equal(l, Landing{To: 10, Backward: true, Reflected: true})

	// once backward, always backward
	nb, _, err = nb.Apply(move.New(7, 10, 3), Black)
	is.NoErr(err)
	nb, _, err = nb.Apply(move.New(8, 3, 5), White)
	is.NoErr(err)
	s, _ = nb.TileAt(3)
	is.True(s.MovingBackward)
	nb, _, err = nb.Apply(move.New(10, 9, 1), Black)
	is.NoErr(err)
	s, _ = nb.TileAt(9)
	is.True(s.MovingBackward)
	checkPopulation(is, nb)
}

func TestExactRemovalBonus(t *testing.T) {
	is := is.New(t)
	p := Position{
		Tiles:  [TrackLen]*Stack{2: {Top: White, MovingBackward: true}},
		InBase: [NumColors]uint8{5, 6},
		OnTurn: White,
	}
	b := mustBoard(t, p)

	nb, eff, err := b.Apply(move.New(2, move.Removed, 3), White)
	is.NoErr(err)
	is.True(eff.Removed)
	is.True(eff.BonusTurn)
	is.Equal(nb.CurrentPlayer(), White)
	is.Equal(nb.RemovedCount(White), 1)
	checkPopulation(is, nb)

	nb, eff, err = b.Apply(move.New(2, move.Removed, 4), White)
	is.NoErr(err)
	is.True(eff.Removed)
	is.True(!eff.BonusTurn)
	is.Equal(nb.CurrentPlayer(), Black)

	noBonus, err := NewFromPosition(p, Rules{FirstPlayer: White})
	is.NoErr(err)
	nb, eff, err = noBonus.Apply(move.New(2, move.Removed, 3), White)
	is.NoErr(err)
	is.True(!eff.BonusTurn)
	is.Equal(nb.CurrentPlayer(), Black)
}

func TestGameOver(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:   [TrackLen]*Stack{0: {Top: White, MovingBackward: true}},
		InBase:  [NumColors]uint8{0, 6},
		Removed: [NumColors]uint8{5, 0},
		OnTurn:  White,
	})
	nb, eff, err := b.Apply(move.New(0, move.Removed, 2), White)
	is.NoErr(err)
	is.True(eff.GameOver)
	is.Equal(eff.Winner, White)
	w, over := nb.Winner()
	is.True(over)
	is.Equal(w, White)
	is.Equal(nb.RemovedCount(White), 6)

	_, _, err = nb.Apply(move.New(move.Base, 0, 1), Black)
	is.True(errors.Is(err, ErrGameOver))
}

func TestLandOnOwnOriginAfterReflection(t *testing.T) {
	is := is.New(t)
	// A trapped black piece surfaces when white leaves 9, and white comes
	// straight back to recapture it.
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{9: {Top: White, Trapped: [NumColors]uint8{0, 1}}},
		InBase: [NumColors]uint8{5, 5},
		OnTurn: White,
	})
	is.True(b.CanLand(White, 9, 9))
	nb, eff, err := b.Apply(move.New(9, 9, 2), White)
	is.NoErr(err)
	is.True(eff.Surfaced)
	is.True(eff.Captured)
	s, _ := nb.TileAt(9)
	is.Equal(s, Stack{Top: White, MovingBackward: true, Trapped: [NumColors]uint8{0, 1}})
	checkPopulation(is, nb)

	// With a white piece underneath, white would surface and block.
	b = mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{9: {Top: White, Trapped: [NumColors]uint8{1, 0}}},
		InBase: [NumColors]uint8{4, 6},
		OnTurn: White,
	})
	is.True(!b.CanLand(White, 9, 9))
	_, _, err = b.Apply(move.New(9, 9, 2), White)
	is.True(errors.Is(err, ErrBlocked))
}

func TestIllegalMovesLeaveBoardUntouched(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{2: {Top: White}, 4: {Top: White}, 6: {Top: Black}},
		InBase: [NumColors]uint8{4, 5},
		OnTurn: White,
	})
	before := b.Hash()
	cases := []struct {
		m      move.Move
		player Color
		reason error
	}{
		{move.New(2, 4, 2), Black, ErrNotOnTurn},
		{move.New(2, 4, 2), White, ErrBlocked},
		{move.New(2, 5, 2), White, ErrWrongDestination},
		{move.New(6, 8, 2), White, ErrNoPiece},
		{move.New(3, 5, 2), White, ErrNoPiece},
		{move.New(20, 22, 2), White, ErrNoPiece},
		{move.New(move.Removed, 1, 2), White, ErrNoPiece},
		{move.New(2, 8, 6), White, ErrBadDistance},
		{move.New(2, 2, 0), White, ErrBadDistance},
	}
	for _, tc := range cases {
		nb, _, err := b.Apply(tc.m, tc.player)
		is.True(nb == nil)
		var ime *IllegalMoveError
		is.True(errors.As(err, &ime))
		is.Equal(ime.Move, tc.m)
		is.True(errors.Is(err, tc.reason))
	}
	is.Equal(b.Hash(), before)
}

func TestPass(t *testing.T) {
	is := is.New(t)
	b := New()
	_, err := b.Pass(Black)
	is.True(errors.Is(err, ErrNotOnTurn))
	nb, err := b.Pass(White)
	is.NoErr(err)
	is.Equal(nb.CurrentPlayer(), Black)
	is.Equal(b.CurrentPlayer(), White)
}

func TestInvalidColorControlsNothing(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{2: {Top: White}, 6: {Top: Black}},
		InBase: [NumColors]uint8{5, 5},
		OnTurn: White,
	})
	for _, c := range []Color{NumColors, 3, 255} {
		is.True(!c.Valid())
		is.True(!b.Controls(c, move.Base))
		is.True(!b.Controls(c, 2))
		is.True(!b.Controls(c, 6))
		_, _, err := b.Apply(move.New(move.Base, 1, 2), c)
		is.True(errors.Is(err, ErrNotOnTurn))
		_, err = b.Pass(c)
		is.True(errors.Is(err, ErrNotOnTurn))
	}
	is.True(White.Valid())
	is.True(Black.Valid())
}

func TestEffectsString(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{2: {Top: White}},
		InBase: [NumColors]uint8{5, 6},
		OnTurn: Black,
	})
	_, eff, err := b.Apply(move.New(move.Base, 2, 3), Black)
	is.NoErr(err)
	is.True(!eff.GameOver)
	// the zero Winner must not show up while the game goes on
	is.Equal(eff.String(), "captured (1 underneath)")

	is.Equal(Effects{}.String(), "")
	is.Equal(Effects{Removed: true, GameOver: true, Winner: Black}.String(),
		"bore off; black wins")
}

func TestNewFromPositionRejectsBadPopulation(t *testing.T) {
	is := is.New(t)
	_, err := NewFromPosition(Position{
		Tiles:  [TrackLen]*Stack{2: {Top: White}},
		InBase: [NumColors]uint8{6, 6},
	}, DefaultRules())
	is.True(errors.Is(err, ErrBadPosition))

	_, err = NewFromPosition(Position{
		InBase: [NumColors]uint8{6, 6},
		OnTurn: Color(4),
	}, DefaultRules())
	is.True(errors.Is(err, ErrBadPosition))
}

func TestPositionRoundTrip(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles:  [TrackLen]*Stack{3: {Top: Black, MovingBackward: true, Trapped: [NumColors]uint8{2, 0}}},
		InBase:  [NumColors]uint8{4, 4},
		Removed: [NumColors]uint8{0, 1},
		OnTurn:  Black,
	})
	b2, err := NewFromPosition(b.Position(), DefaultRules())
	is.NoErr(err)
	is.True(b.Equals(b2))
	is.Equal(b.Hash(), b2.Hash())
}

func TestHashDistinguishesPositions(t *testing.T) {
	is := is.New(t)
	b := New()
	nb, _, err := b.Apply(move.New(move.Base, 0, 1), White)
	is.NoErr(err)
	is.True(b.Hash() != nb.Hash())
	is.Equal(b.Hash(), New().Hash())
}

func TestParseColor(t *testing.T) {
	is := is.New(t)
	for in, c := range map[string]Color{"w": White, "White": White, "B": Black, "black": Black} {
		got, err := ParseColor(in)
		is.NoErr(err)
		is.Equal(got, c)
	}
	_, err := ParseColor("red")
	is.True(err != nil)
	is.Equal(White.Opponent(), Black)
	is.Equal(Black.Opponent(), White)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, Position{
		Tiles: [TrackLen]*Stack{
			1: {Top: White},
			2: {Top: Black, Trapped: [NumColors]uint8{1, 0}},
			5: {Top: White, MovingBackward: true},
		},
		InBase:  [NumColors]uint8{2, 5},
		Removed: [NumColors]uint8{1, 0},
		OnTurn:  Black,
	})
	expected := "   BBBBB_  off: 0\n" +
		" 0 _\n" +
		" 1 ^W\n" +
		" 2 vB(under: 1w, 0b)\n" +
		" 3 _\n" +
		" 4 _\n" +
		" 5 vW\n" +
		" 6 _\n" +
		" 7 _\n" +
		" 8 _\n" +
		" 9 _\n" +
		"10 _\n" +
		"   WW____  off: 1\n" +
		"black to move\n"
	is.Equal(b.ToDisplayText(), expected)
}
