package vector

import (
	"github.com/stretchr/testify/mock"
)

var (
	_ Traits[int] = (*mockTraits)(nil)
)

// mockTraits records every element operation. Copy and Move are matched on
// the source value and perform a plain assignment unless the expectation
// returns an error.
type mockTraits struct {
	mock.Mock
}

func (m *mockTraits) Default() int {
	args := m.Called()

	return args.Int(0)
}

func (m *mockTraits) Copy(dst, src *int) error {
	args := m.Called(*src)

	if err := args.Error(0); err != nil {
		return err
	}

	*dst = *src

	return nil
}

func (m *mockTraits) Move(dst, src *int) error {
	args := m.Called(*src)

	if err := args.Error(0); err != nil {
		return err
	}

	*dst = *src

	return nil
}

func (m *mockTraits) CanCopy() bool {
	args := m.Called()

	return args.Bool(0)
}

func (m *mockTraits) NoThrowMove() bool {
	args := m.Called()

	return args.Bool(0)
}

func newMockTraits(canCopy, noThrowMove bool) *mockTraits {
	traits := &mockTraits{}
	traits.On("CanCopy").Return(canCopy).Maybe()
	traits.On("NoThrowMove").Return(noThrowMove).Maybe()

	return traits
}
