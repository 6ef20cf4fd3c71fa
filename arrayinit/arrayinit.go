package arrayinit

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultThreshold is the crossover length measured for the pre-sized
// strategy. It is a performance knob, not a correctness boundary.
const DefaultThreshold = 65536

var ErrInvalidLength = errors.New("invalid length")
var ErrLengthOutOfRange = errors.New("length out of range")

type Strategy uint8

const (
	// BuildResize starts from an empty slice and then sets its length.
	BuildResize Strategy = iota
	// PreSized allocates the target length directly.
	PreSized
)

func (s Strategy) String() string {
	switch s {
	case BuildResize:
		return "build-resize"
	case PreSized:
		return "pre-sized"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// Policy decides which strategy serves a given length.
type Policy struct {
	Threshold int
}

var DefaultPolicy = Policy{Threshold: DefaultThreshold}

func (p Policy) StrategyFor(length int) Strategy {
	if length > p.Threshold {
		return PreSized
	}
	return BuildResize
}

// Init returns an Array of the requested length where every position is
// empty, using DefaultPolicy to pick the allocation strategy.
func Init[T any](length int) (*Array[T], error) {
	return Alloc[T](DefaultPolicy, length)
}

func Alloc[T any](p Policy, length int) (*Array[T], error) {
	return AllocWith[T](p.StrategyFor(length), length)
}

// AllocWith allocates with an explicit strategy. Both strategies return
// equivalent arrays.
func AllocWith[T any](s Strategy, length int) (a *Array[T], err error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	// make panics when the length cannot be addressed
	defer func() {
		if r := recover(); r != nil {
			a = nil
			err = fmt.Errorf("%w: %d: %v", ErrLengthOutOfRange, length, r)
		}
	}()

	if s == PreSized {
		return &Array[T]{
			slots: make([]slot[T], length),
		}, nil
	}

	slots := make([]slot[T], 0)
	slots = slices.Grow(slots, length)[:length]
	return &Array[T]{
		slots: slots,
	}, nil
}
