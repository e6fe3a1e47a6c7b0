package board

import (
	"fmt"
	"strings"
)

// Color is one of the two sides. White is the zero value and moves first
// unless the rules say otherwise.
type Color uint8

const (
	White Color = iota
	Black
)

// NumColors is the number of sides in a game.
const NumColors = 2

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Letter is the single-character form used in displays and positions.
func (c Color) Letter() byte {
	if c == Black {
		return 'B'
	}
	return 'W'
}

func (c Color) Opponent() Color {
	return 1 - c
}

// Valid reports whether c is one of the two player colors.
func (c Color) Valid() bool {
	return c == White || c == Black
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	}
	return White, fmt.Errorf("unknown color %q", s)
}
