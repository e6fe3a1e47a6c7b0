// Package roll models the four throwing sticks used in Puluc. Each stick
// lands on its marked or unmarked face; the number of marked faces is the
// move distance, and a throw with no marked faces counts as five.
package roll

import (
	"crypto/sha256"
	"fmt"

	"lukechampine.com/frand"
)

const (
	// NumSticks is how many binary sticks make up a throw.
	NumSticks = 4
	// MaxDistance is the largest distance a throw can produce.
	MaxDistance = 5
)

// Source supplies the randomness for a throw. A *frand.RNG satisfies it.
type Source interface {
	Uint64n(n uint64) uint64
}

// NewSource returns the production randomness source. An empty seed uses
// frand's process-wide entropy; any other seed gives a reproducible stream.
// frand wants exactly 32 bytes of seed, so arbitrary seeds are hashed down.
func NewSource(seed []byte) Source {
	if len(seed) == 0 {
		return frand.New()
	}
	key := sha256.Sum256(seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// Roll is the result of one throw: the raw stick values plus the distance
// derived from them.
type Roll struct {
	values   [NumSticks]uint8
	distance uint8
}

// FromValues builds a Roll from raw stick values. Values other than 1 are
// counted as unmarked.
func FromValues(values [NumSticks]uint8) Roll {
	var d uint8
	for _, v := range values {
		if v == 1 {
			d++
		}
	}
	if d == 0 {
		d = MaxDistance
	}
	return Roll{values: values, distance: d}
}

func (r Roll) Distance() uint8 {
	return r.distance
}

func (r Roll) Values() [NumSticks]uint8 {
	return r.values
}

func (r Roll) String() string {
	return fmt.Sprintf("Roll: %d, (%d,%d,%d,%d)", r.distance,
		r.values[0], r.values[1], r.values[2], r.values[3])
}

// Engine throws sticks using an injected Source.
type Engine struct {
	src Source
}

func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Roll throws all four sticks.
func (e *Engine) Roll() Roll {
	var values [NumSticks]uint8
	for i := range values {
		values[i] = uint8(e.src.Uint64n(2))
	}
	return FromValues(values)
}
