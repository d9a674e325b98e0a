package vector

var (
	_ Traits[int] = ValueTraits[int]{}
	_ Traits[int] = (*FuncTraits[int])(nil)
)

// Traits describes how a vector creates, copies and moves its elements.
// A vector resolves its transfer policy from Traits once, at construction.
type Traits[T any] interface {
	// Default returns the value used for slots exposed by NewSized and Resize.
	Default() T
	// Copy assigns a copy of *src to *dst. *src must stay intact.
	Copy(dst, src *T) error
	// Move assigns *src to *dst and may leave *src in a moved-from state.
	Move(dst, src *T) error
	// CanCopy reports whether Copy is supported at all.
	CanCopy() bool
	// NoThrowMove reports whether Move never returns an error.
	NoThrowMove() bool
}

// ValueTraits treats T as a plain value: zero default, copy and move are
// assignment.
type ValueTraits[T any] struct{}

func (ValueTraits[T]) Default() T {
	var zero T

	return zero
}

func (ValueTraits[T]) Copy(dst, src *T) error {
	*dst = *src

	return nil
}

func (ValueTraits[T]) Move(dst, src *T) error {
	*dst = *src

	return nil
}

func (ValueTraits[T]) CanCopy() bool {
	return true
}

func (ValueTraits[T]) NoThrowMove() bool {
	return true
}

// FuncTraits builds Traits out of functions. A nil CopyFn disables copying,
// a nil MoveFn falls back to assignment and never fails, a nil New yields
// the zero value.
type FuncTraits[T any] struct {
	New     func() T
	CopyFn  func(dst, src *T) error
	MoveFn  func(dst, src *T) error
	NoThrow bool
}

func (o *FuncTraits[T]) Default() T {
	if o.New == nil {
		var zero T

		return zero
	}

	return o.New()
}

func (o *FuncTraits[T]) Copy(dst, src *T) error {
	if o.CopyFn == nil {
		return ErrNotCopyable
	}

	return o.CopyFn(dst, src)
}

func (o *FuncTraits[T]) Move(dst, src *T) error {
	if o.MoveFn == nil {
		*dst = *src

		return nil
	}

	return o.MoveFn(dst, src)
}

func (o *FuncTraits[T]) CanCopy() bool {
	return o.CopyFn != nil
}

func (o *FuncTraits[T]) NoThrowMove() bool {
	return o.NoThrow || o.MoveFn == nil
}

type transferFunc[T any] func(dst, src *T) error

// transferOf picks how elements are relocated between slots. Moving is used
// when it cannot fail or when there is no other way; otherwise elements are
// copied so the source stays intact if a copy fails.
func transferOf[T any](traits Traits[T]) transferFunc[T] {
	if !traits.CanCopy() || traits.NoThrowMove() {
		return traits.Move
	}

	return traits.Copy
}

// forward relocates src into dst left to right. len(dst) must be >= len(src).
func (fn transferFunc[T]) forward(dst, src []T) error {
	for i := range src {
		if err := fn(&dst[i], &src[i]); err != nil {
			return err
		}
	}

	return nil
}

// backward relocates src into dst right to left, so dst may overlap the
// tail of src.
func (fn transferFunc[T]) backward(dst, src []T) error {
	for i := len(src) - 1; i >= 0; i-- {
		if err := fn(&dst[i], &src[i]); err != nil {
			return err
		}
	}

	return nil
}
