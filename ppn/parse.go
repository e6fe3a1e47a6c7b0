// Package ppn reads and writes Puluc positions in a compact one-line form:
//
//	<tiles> <whiteBase>/<blackBase> <whiteRemoved>/<blackRemoved> <onturn>
//
// Tiles are 11 slash-separated tokens, 0 through 10. A token is "-" for an
// empty tile, otherwise W or B, then ' if the piece is heading back, then
// optionally (w,b) with the counts of trapped white and black pieces.
// A new game is "-/-/-/-/-/-/-/-/-/-/- 6/6 0/0 w".
package ppn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/puluc/board"
)

const StartingPosition = "-/-/-/-/-/-/-/-/-/-/- 6/6 0/0 w"

// Parse returns the board described by s.
func Parse(s string, rules board.Rules) (*board.Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return nil, errors.New("must have 4 space-separated fields")
	}
	tiles := strings.Split(fields[0], "/")
	if len(tiles) != board.TrackLen {
		return nil, fmt.Errorf("expected %d tiles, got %d", board.TrackLen, len(tiles))
	}
	var p board.Position
	var err error
	for i, tok := range tiles {
		p.Tiles[i], err = parseTile(tok)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
	}
	if p.InBase, err = parsePair(fields[1], "/"); err != nil {
		return nil, fmt.Errorf("base counts: %w", err)
	}
	if p.Removed, err = parsePair(fields[2], "/"); err != nil {
		return nil, fmt.Errorf("removed counts: %w", err)
	}
	if p.OnTurn, err = board.ParseColor(fields[3]); err != nil {
		return nil, err
	}
	return board.NewFromPosition(p, rules)
}

func parseTile(tok string) (*board.Stack, error) {
	if tok == "-" {
		return nil, nil
	}
	if tok == "" {
		return nil, errors.New("empty token")
	}
	s := &board.Stack{}
	switch tok[0] {
	case 'W', 'w':
		s.Top = board.White
	case 'B', 'b':
		s.Top = board.Black
	default:
		return nil, fmt.Errorf("unknown piece %q", tok[0])
	}
	rest := tok[1:]
	if strings.HasPrefix(rest, "'") {
		s.MovingBackward = true
		rest = rest[1:]
	}
	if rest == "" {
		return s, nil
	}
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, fmt.Errorf("badly formatted trapped counts %q", rest)
	}
	trapped, err := parsePair(rest[1:len(rest)-1], ",")
	if err != nil {
		return nil, err
	}
	s.Trapped = trapped
	return s, nil
}

// parsePair reads a white/black pair of counts.
func parsePair(s, sep string) ([board.NumColors]uint8, error) {
	var pair [board.NumColors]uint8
	parts := strings.Split(s, sep)
	if len(parts) != board.NumColors {
		return pair, fmt.Errorf("expected two counts in %q", s)
	}
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return pair, err
		}
		pair[i] = uint8(n)
	}
	return pair, nil
}

// Format writes b in the form Parse reads.
func Format(b *board.Board) string {
	p := b.Position()
	toks := make([]string, board.TrackLen)
	for i, s := range p.Tiles {
		if s == nil {
			toks[i] = "-"
			continue
		}
		var sb strings.Builder
		sb.WriteByte(s.Top.Letter())
		if s.MovingBackward {
			sb.WriteByte('\'')
		}
		if s.TrappedTotal() > 0 {
			fmt.Fprintf(&sb, "(%d,%d)", s.Trapped[board.White], s.Trapped[board.Black])
		}
		toks[i] = sb.String()
	}
	return fmt.Sprintf("%s %d/%d %d/%d %c", strings.Join(toks, "/"),
		p.InBase[board.White], p.InBase[board.Black],
		p.Removed[board.White], p.Removed[board.Black],
		strings.ToLower(string(p.OnTurn.Letter()))[0])
}
