package vector

import (
	"github.com/pkg/errors"
)

// arrayPtr exclusively owns a contiguous block of slots. It has no notion of
// size: every slot in the block is storage, live or not.
type arrayPtr[T any] struct {
	data []T
}

func newArrayPtr[T any](sz int) (arrayPtr[T], error) {
	if sz < 0 {
		return arrayPtr[T]{}, errors.Wrapf(ErrAllocation, "negative slot count %d", sz)
	}

	if sz == 0 {
		return arrayPtr[T]{}, nil
	}

	var (
		data []T
		err  error
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Wrapf(ErrAllocation, "%d slots: %v", sz, r)
			}
		}()

		data = make([]T, sz)
	}()

	if err != nil {
		return arrayPtr[T]{}, err
	}

	return arrayPtr[T]{
		data: data,
	}, nil
}

// get returns the whole block, nil when nothing is allocated.
func (o *arrayPtr[T]) get() []T {
	return o.data
}

func (o *arrayPtr[T]) at(index int) *T {
	return &o.data[index]
}

func (o *arrayPtr[T]) len() int {
	return len(o.data)
}

func (o *arrayPtr[T]) swap(other *arrayPtr[T]) {
	o.data, other.data = other.data, o.data
}

// release hands the block over to the caller and leaves o empty.
func (o *arrayPtr[T]) release() arrayPtr[T] {
	released := arrayPtr[T]{
		data: o.data,
	}

	o.reset()

	return released
}

func (o *arrayPtr[T]) reset() {
	o.data = nil
}
