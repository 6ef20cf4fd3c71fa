package arrayinit

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Array is a fixed length sequence whose positions may be empty.
// It is not safe for concurrent mutation.
type Array[T any] struct {
	slots []slot[T]
}

type slot[T any] struct {
	state slotState
	value T
}

type slotState uint8

const (
	slotEmpty slotState = iota
	slotDefined
)

func (a *Array[T]) Len() int {
	return len(a.slots)
}

// Has reports whether position i holds a value.
func (a *Array[T]) Has(i int) bool {
	if i < 0 || i >= len(a.slots) {
		return false
	}
	return a.slots[i].state == slotDefined
}

func (a *Array[T]) Get(i int) (T, bool) {
	if !a.Has(i) {
		var zero T
		return zero, false
	}
	return a.slots[i].value, true
}

func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.slots) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(a.slots))
	}

	a.slots[i].value = v
	a.slots[i].state = slotDefined
	return nil
}

// Delete turns position i back into an empty one.
func (a *Array[T]) Delete(i int) {
	if !a.Has(i) {
		return
	}

	var zero T
	a.slots[i].value = zero
	a.slots[i].state = slotEmpty
}

// Defined counts the positions holding a value.
func (a *Array[T]) Defined() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].state == slotDefined {
			n++
		}
	}
	return n
}

// Range calls f for every defined position in ascending order, skipping
// empty ones. It stops when f returns false.
func (a *Array[T]) Range(f func(i int, v T) bool) {
	for i := range a.slots {
		if a.slots[i].state != slotDefined {
			continue
		}
		if !f(i, a.slots[i].value) {
			return
		}
	}
}
