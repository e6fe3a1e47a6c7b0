package board

import "github.com/cespare/xxhash"

// Hash returns a 64-bit key for the position, rules excluded. Equal
// positions always hash equal.
func (b *Board) Hash() uint64 {
	var buf [TrackLen*4 + 2*NumColors + 1]byte
	for i, t := range b.tiles {
		if !t.occupied {
			continue
		}
		flags := byte(1)
		if t.stack.MovingBackward {
			flags |= 2
		}
		buf[i*4] = flags
		buf[i*4+1] = byte(t.stack.Top)
		buf[i*4+2] = t.stack.Trapped[White]
		buf[i*4+3] = t.stack.Trapped[Black]
	}
	off := TrackLen * 4
	buf[off] = b.inBase[White]
	buf[off+1] = b.inBase[Black]
	buf[off+2] = b.removed[White]
	buf[off+3] = b.removed[Black]
	buf[off+4] = byte(b.onTurn)
	return xxhash.Sum64(buf[:])
}
