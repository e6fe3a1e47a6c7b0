// Package board holds the authoritative state of a Puluc game: the track,
// each side's base and removed pools, and whose turn it is. Apply is the
// only way to change it.
package board

import (
	"fmt"

	"github.com/domino14/puluc/move"
)

const (
	// TrackLen is the number of tiles on the track.
	TrackLen = 11
	// LastTile is the far end of the track where pieces turn around.
	LastTile = TrackLen - 1
	// RemovalPosition is the spot just before tile 0. A returning piece
	// that reaches it, or goes past it, leaves the track.
	RemovalPosition = -1
	// PiecesPerColor is how many pieces each side starts with.
	PiecesPerColor = 6
)

// Rules are the game-level options that a board carries with it.
type Rules struct {
	FirstPlayer Color
	// ExactRemovalBonus grants another turn to a player whose piece lands
	// exactly on the removal position.
	ExactRemovalBonus bool
}

func DefaultRules() Rules {
	return Rules{FirstPlayer: White, ExactRemovalBonus: true}
}

type slot struct {
	occupied bool
	stack    Stack
}

// Board is a Puluc position. It is a plain value; Copy is cheap.
type Board struct {
	tiles   [TrackLen]slot
	inBase  [NumColors]uint8
	removed [NumColors]uint8
	onTurn  Color
	rules   Rules
}

// New returns a board for a fresh game with the default rules.
func New() *Board {
	return NewWithRules(DefaultRules())
}

func NewWithRules(r Rules) *Board {
	b := &Board{rules: r, onTurn: r.FirstPlayer}
	b.inBase[White] = PiecesPerColor
	b.inBase[Black] = PiecesPerColor
	return b
}

// Position is an exported description of a board, used to set up
// arbitrary positions.
type Position struct {
	Tiles   [TrackLen]*Stack
	InBase  [NumColors]uint8
	Removed [NumColors]uint8
	OnTurn  Color
}

// NewFromPosition builds a board from p, checking that every piece is
// accounted for.
func NewFromPosition(p Position, r Rules) (*Board, error) {
	if !p.OnTurn.Valid() {
		return nil, fmt.Errorf("%w: bad player on turn %v", ErrBadPosition, p.OnTurn)
	}
	b := &Board{rules: r, onTurn: p.OnTurn, inBase: p.InBase, removed: p.Removed}
	for i, s := range p.Tiles {
		if s == nil {
			continue
		}
		if !s.Top.Valid() {
			return nil, fmt.Errorf("%w: bad color on tile %d", ErrBadPosition, i)
		}
		b.tiles[i] = slot{occupied: true, stack: *s}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Position returns a description of the board that NewFromPosition accepts.
func (b *Board) Position() Position {
	p := Position{InBase: b.inBase, Removed: b.removed, OnTurn: b.onTurn}
	for i := range b.tiles {
		if b.tiles[i].occupied {
			s := b.tiles[i].stack
			p.Tiles[i] = &s
		}
	}
	return p
}

// Validate checks the population invariant for both colors.
func (b *Board) Validate() error {
	for _, c := range []Color{White, Black} {
		total := int(b.inBase[c]) + b.OnTrack(c) + int(b.removed[c])
		if total != PiecesPerColor {
			return fmt.Errorf("%w: %v has %d pieces, expected %d",
				ErrBadPosition, c, total, PiecesPerColor)
		}
	}
	return nil
}

func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// TileAt returns the stack on tile i, if any. Out-of-range indexes are
// reported as empty.
func (b *Board) TileAt(i int) (Stack, bool) {
	if i < 0 || i >= TrackLen || !b.tiles[i].occupied {
		return Stack{}, false
	}
	return b.tiles[i].stack, true
}

func (b *Board) BaseCount(c Color) int {
	return int(b.inBase[c])
}

func (b *Board) RemovedCount(c Color) int {
	return int(b.removed[c])
}

func (b *Board) CurrentPlayer() Color {
	return b.onTurn
}

func (b *Board) Rules() Rules {
	return b.rules
}

// OnTrack counts the pieces of c on the track, trapped ones included.
func (b *Board) OnTrack(c Color) int {
	n := 0
	for i := range b.tiles {
		if b.tiles[i].occupied {
			n += b.tiles[i].stack.Count(c)
		}
	}
	return n
}

// Winner returns the color that has removed all of its pieces.
func (b *Board) Winner() (Color, bool) {
	for _, c := range []Color{White, Black} {
		if b.removed[c] >= PiecesPerColor {
			return c, true
		}
	}
	return White, false
}

func (b *Board) GameOver() bool {
	_, over := b.Winner()
	return over
}

// Controls reports whether player has the top piece at loc. For the base,
// it reports whether player has any piece left to enter. An invalid
// color controls nothing.
func (b *Board) Controls(player Color, loc move.Location) bool {
	switch {
	case !player.Valid():
		return false
	case loc == move.Base:
		return b.inBase[player] > 0
	case loc.IsTile() && int(loc) < TrackLen:
		s := b.tiles[loc]
		return s.occupied && s.stack.Top == player
	}
	return false
}

// Pass hands the turn to the other player. A turn controller calls it when
// there are no legal moves for the roll.
func (b *Board) Pass(player Color) (*Board, error) {
	if player != b.onTurn {
		return nil, &IllegalMoveError{Player: player, Pass: true, Reason: ErrNotOnTurn}
	}
	if b.GameOver() {
		return nil, &IllegalMoveError{Player: player, Pass: true, Reason: ErrGameOver}
	}
	nb := b.Copy()
	nb.onTurn = player.Opponent()
	return nb, nil
}
