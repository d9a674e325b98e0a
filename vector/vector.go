package vector

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Vector is a growable array that owns one contiguous buffer. Slots in
// [0, Size()) are live, slots in [Size(), Capacity()) are kept as storage
// for later growth.
//
// Positions returned by Insert and Erase, as well as pointers returned by
// Index and At, are invalidated by any operation that reallocates or shifts
// elements. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	ptr  arrayPtr[T]
	size int

	traits   Traits[T]
	transfer transferFunc[T]
	logger   *zap.Logger
}

type Option[T any] func(*Vector[T])

func WithTraits[T any](traits Traits[T]) Option[T] {
	return func(o *Vector[T]) {
		o.traits = traits
	}
}

func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(o *Vector[T]) {
		o.logger = logger
	}
}

// New returns an empty vector. It does not allocate.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{
		traits: ValueTraits[T]{},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(v)
	}

	v.transfer = transferOf(v.traits)

	return v
}

// NewSized returns a vector of sz default elements.
func NewSized[T any](sz int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)

	ptr, err := newArrayPtr[T](sz)
	if err != nil {
		return nil, err
	}

	v.fillDefault(ptr.get())

	v.ptr = ptr
	v.size = sz

	return v, nil
}

// NewFilled returns a vector of sz copies of value.
func NewFilled[T any](sz int, value T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)

	if !v.traits.CanCopy() {
		return nil, ErrNotCopyable
	}

	ptr, err := newArrayPtr[T](sz)
	if err != nil {
		return nil, err
	}

	data := ptr.get()
	for i := range data {
		if err := v.traits.Copy(&data[i], &value); err != nil {
			return nil, err
		}
	}

	v.ptr = ptr
	v.size = sz

	return v, nil
}

// FromList returns a vector holding items in order. Items are relocated with
// the vector's transfer policy, so move-only elements are left moved-from in
// the caller's slice.
func FromList[T any](items []T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)

	ptr, err := newArrayPtr[T](len(items))
	if err != nil {
		return nil, err
	}

	if err := v.transfer.forward(ptr.get(), items); err != nil {
		return nil, err
	}

	v.ptr = ptr
	v.size = len(items)

	return v, nil
}

// NewReserved returns an empty vector with storage for capacity elements.
func NewReserved[T any](capacity int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)

	ptr, err := newArrayPtr[T](capacity)
	if err != nil {
		return nil, err
	}

	v.ptr = ptr

	return v, nil
}

// Clone returns a deep copy of o. The copy has no spare capacity.
func (o *Vector[T]) Clone() (*Vector[T], error) {
	if !o.traits.CanCopy() {
		return nil, ErrNotCopyable
	}

	ptr, err := newArrayPtr[T](o.size)
	if err != nil {
		return nil, err
	}

	dst, src := ptr.get(), o.Data()
	for i := range src {
		if err := o.traits.Copy(&dst[i], &src[i]); err != nil {
			return nil, err
		}
	}

	return &Vector[T]{
		ptr:      ptr,
		size:     o.size,
		traits:   o.traits,
		transfer: o.transfer,
		logger:   o.logger,
	}, nil
}

// Move returns a vector that owns o's buffer. o is left empty with no
// capacity. No element is copied or moved.
func (o *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{
		ptr:      o.ptr.release(),
		size:     o.size,
		traits:   o.traits,
		transfer: o.transfer,
		logger:   o.logger,
	}

	o.size = 0

	return moved
}

// Assign replaces the content of o with a deep copy of rhs. When copying
// fails o is left untouched.
func (o *Vector[T]) Assign(rhs *Vector[T]) error {
	if o == rhs {
		return nil
	}

	tmp, err := rhs.Clone()
	if err != nil {
		return err
	}

	o.Swap(tmp)

	return nil
}

// MoveFrom takes over the buffer of rhs, rhs is left empty with no capacity.
func (o *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if o == rhs {
		return
	}

	o.ptr = rhs.ptr.release()
	o.size = rhs.size
	rhs.size = 0
}

// Swap exchanges buffers and sizes of o and other.
func (o *Vector[T]) Swap(other *Vector[T]) {
	o.ptr.swap(&other.ptr)
	o.size, other.size = other.size, o.size
}

func Swap[T any](lhs, rhs *Vector[T]) {
	lhs.Swap(rhs)
}

func (o *Vector[T]) Size() int {
	return o.size
}

func (o *Vector[T]) Capacity() int {
	return o.ptr.len()
}

func (o *Vector[T]) IsEmpty() bool {
	return o.size == 0
}

func (o *Vector[T]) Begin() int {
	return 0
}

func (o *Vector[T]) End() int {
	return o.size
}

// Data returns the live elements. The slice shares o's storage and is only
// valid until the next reallocation.
func (o *Vector[T]) Data() []T {
	data := o.ptr.get()
	if data == nil {
		return nil
	}

	return data[:o.size]
}

// Index returns the element at index without checking it against Size.
func (o *Vector[T]) Index(index int) *T {
	return o.ptr.at(index)
}

// At returns the element at index or ErrIndexOutOfRange.
func (o *Vector[T]) At(index int) (*T, error) {
	if index < 0 || index >= o.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, o.size)
	}

	return o.ptr.at(index), nil
}

// Range calls fn for every live element in order until fn returns false.
func (o *Vector[T]) Range(fn func(index int, item *T) bool) {
	data := o.Data()

	for i := range data {
		if !fn(i, &data[i]) {
			return
		}
	}
}

func (o *Vector[T]) Clear() {
	o.size = 0
}

func (o *Vector[T]) PopBack() {
	if o.size == 0 {
		return
	}

	o.size--
}

// PushBack appends a copy of item.
func (o *Vector[T]) PushBack(item T) error {
	if !o.traits.CanCopy() {
		return ErrNotCopyable
	}

	return o.pushBack(func(dst *T) error {
		return o.traits.Copy(dst, &item)
	})
}

// PushBackMove appends *item by moving it.
func (o *Vector[T]) PushBackMove(item *T) error {
	return o.pushBack(func(dst *T) error {
		return o.traits.Move(dst, item)
	})
}

func (o *Vector[T]) pushBack(place func(dst *T) error) error {
	if o.size < o.Capacity() {
		if err := place(o.ptr.at(o.size)); err != nil {
			return err
		}

		o.size++

		return nil
	}

	capacity, err := o.nextCapacity()
	if err != nil {
		return err
	}

	ptr, err := newArrayPtr[T](capacity)
	if err != nil {
		return err
	}

	// The new element goes first: if it fails, the current buffer was never
	// touched.
	if err := place(ptr.at(o.size)); err != nil {
		return err
	}

	if err := o.relocate(ptr.get()[:o.size], o.Data()); err != nil {
		return err
	}

	o.grow(&ptr)
	o.size++

	return nil
}

// Insert puts a copy of item at pos and returns its position. pos must be
// within [Begin(), End()].
func (o *Vector[T]) Insert(pos int, item T) (int, error) {
	if !o.traits.CanCopy() {
		return 0, ErrNotCopyable
	}

	return o.insert(pos, func(dst *T) error {
		return o.traits.Copy(dst, &item)
	})
}

// InsertMove moves *item to pos and returns its position.
func (o *Vector[T]) InsertMove(pos int, item *T) (int, error) {
	return o.insert(pos, func(dst *T) error {
		return o.traits.Move(dst, item)
	})
}

func (o *Vector[T]) insert(pos int, place func(dst *T) error) (int, error) {
	if pos < 0 || pos > o.size {
		return 0, errors.Wrapf(ErrPositionOutOfRange, "insert at %d, size %d", pos, o.size)
	}

	if o.size < o.Capacity() {
		var tmp T

		if err := place(&tmp); err != nil {
			return 0, err
		}

		data := o.ptr.get()

		if err := o.transfer.backward(data[pos+1:o.size+1], data[pos:o.size]); err != nil {
			o.logger.Debug("vector: shift failed",
				zap.Int("position", pos),
				zap.Int("size", o.size),
				zap.Error(err),
			)

			return 0, err
		}

		data[pos] = tmp
		o.size++

		return pos, nil
	}

	capacity, err := o.nextCapacity()
	if err != nil {
		return 0, err
	}

	ptr, err := newArrayPtr[T](capacity)
	if err != nil {
		return 0, err
	}

	if err := place(ptr.at(pos)); err != nil {
		return 0, err
	}

	dst, src := ptr.get(), o.Data()

	if err := o.relocate(dst[:pos], src[:pos]); err != nil {
		return 0, err
	}

	if err := o.relocate(dst[pos+1:o.size+1], src[pos:]); err != nil {
		return 0, err
	}

	o.grow(&ptr)
	o.size++

	return pos, nil
}

// Erase removes the element at pos and returns pos, which now holds the
// following element or equals End(). pos must be within [Begin(), End()).
func (o *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= o.size {
		return 0, errors.Wrapf(ErrPositionOutOfRange, "erase at %d, size %d", pos, o.size)
	}

	data := o.ptr.get()

	if err := o.transfer.forward(data[pos:o.size-1], data[pos+1:o.size]); err != nil {
		o.logger.Debug("vector: shift failed",
			zap.Int("position", pos),
			zap.Int("size", o.size),
			zap.Error(err),
		)

		return 0, err
	}

	o.size--

	return pos, nil
}

// Reserve makes room for at least capacity elements. It never shrinks.
func (o *Vector[T]) Reserve(capacity int) error {
	if capacity <= o.Capacity() {
		return nil
	}

	ptr, err := newArrayPtr[T](capacity)
	if err != nil {
		return err
	}

	if err := o.relocate(ptr.get()[:o.size], o.Data()); err != nil {
		return err
	}

	o.grow(&ptr)

	return nil
}

// Resize changes the number of live elements. Newly exposed elements get the
// default value. Within the current capacity no reallocation happens.
func (o *Vector[T]) Resize(sz int) error {
	if sz < 0 {
		return errors.Wrapf(ErrAllocation, "negative size %d", sz)
	}

	if sz <= o.Capacity() {
		if sz > o.size {
			o.fillDefault(o.ptr.get()[o.size:sz])
		}

		o.size = sz

		return nil
	}

	ptr, err := newArrayPtr[T](sz)
	if err != nil {
		return err
	}

	if err := o.relocate(ptr.get()[:o.size], o.Data()); err != nil {
		return err
	}

	o.fillDefault(ptr.get()[o.size:])

	o.grow(&ptr)
	o.size = sz

	return nil
}

func (o *Vector[T]) nextCapacity() (int, error) {
	capacity := o.Capacity()

	switch {
	case capacity == 0:
		return 1, nil
	case capacity > math.MaxInt/2:
		return 0, errors.Wrapf(ErrAllocation, "capacity %d cannot double", capacity)
	}

	return capacity * 2, nil
}

func (o *Vector[T]) relocate(dst, src []T) error {
	err := o.transfer.forward(dst, src)
	if err != nil {
		o.logger.Debug("vector: transfer failed",
			zap.Int("size", o.size),
			zap.Int("capacity", o.Capacity()),
			zap.Error(err),
		)
	}

	return err
}

// grow installs ptr as the new buffer. The old block is dropped.
func (o *Vector[T]) grow(ptr *arrayPtr[T]) {
	o.logger.Debug("vector: reallocate",
		zap.Int("size", o.size),
		zap.Int("capacity", o.Capacity()),
		zap.Int("new_capacity", ptr.len()),
	)

	o.ptr.swap(ptr)
	ptr.reset()
}

func (o *Vector[T]) fillDefault(data []T) {
	for i := range data {
		data[i] = o.traits.Default()
	}
}
