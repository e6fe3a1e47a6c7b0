package move

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a place a piece can move from or to. Tiles are numbered
// 0 through 10 along the track; the negative values are off-track pools.
type Location int8

const (
	// Base is the pool of pieces that have not entered the track.
	Base Location = -1
	// Removed is where pieces go after completing their circuit.
	Removed Location = -2
)

func (l Location) IsTile() bool {
	return l >= 0
}

func (l Location) String() string {
	switch l {
	case Base:
		return "base"
	case Removed:
		return "off"
	}
	return strconv.Itoa(int(l))
}

// ParseLocation is the inverse of Location.String.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base", "b":
		return Base, nil
	case "off", "removed":
		return Removed, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad location %q: %w", s, err)
	}
	if i < 0 || i > 127 {
		return 0, fmt.Errorf("bad location %q: out of range", s)
	}
	return Location(i), nil
}

// Move is a single piece movement for the player on turn. It doesn't know
// whose move it is; the board supplies the player when it is applied.
type Move struct {
	From     Location
	To       Location
	Distance uint8
}

func New(from, to Location, distance uint8) Move {
	return Move{From: from, To: to, Distance: distance}
}

// Key identifies a move for deduplication. Two moves with the same
// endpoints are interchangeable no matter which piece makes them.
func (m Move) Key() [2]Location {
	return [2]Location{m.From, m.To}
}

func (m Move) Enters() bool {
	return m.From == Base
}

func (m Move) Removes() bool {
	return m.To == Removed
}

// ShortDescription is what gets shown to users and logs.
func (m Move) ShortDescription() string {
	return m.From.String() + "->" + m.To.String()
}

func (m Move) String() string {
	return fmt.Sprintf("<move %s dist: %d>", m.ShortDescription(), m.Distance)
}
