package server

import (
	"context"
	"time"

	"github.com/7phs/simplevector/internal/config"
	"github.com/7phs/simplevector/internal/storages"
	"github.com/stretchr/testify/mock"
)

var (
	_ storages.Storages = (*mockStorages)(nil)
	_ config.Config     = (*mockConfig)(nil)
)

type mockConfig struct{}

func (o *mockConfig) Port() int {
	return 0
}

func (o *mockConfig) LogLevel() config.LogLevel {
	return config.LogLevelDebug
}

func (o *mockConfig) Maintenance() time.Duration {
	return time.Minute
}

func (o *mockConfig) Reserve() int {
	return 0
}

func (o *mockConfig) MaxItems() int {
	return 0
}

func (o *mockConfig) MaxRecord() int {
	return 0
}

type mockStorages struct {
	mock.Mock
}

func (m *mockStorages) ID() string {
	return "mock-storages"
}

func (m *mockStorages) Push(body []byte) (int, error) {
	args := m.Called(body)

	return args.Int(0), args.Error(1)
}

func (m *mockStorages) Insert(pos int, body []byte) (int, error) {
	args := m.Called(pos, body)

	return args.Int(0), args.Error(1)
}

func (m *mockStorages) Get(index int) ([]byte, error) {
	args := m.Called(index)

	body, _ := args.Get(0).([]byte)

	return body, args.Error(1)
}

func (m *mockStorages) Erase(pos int) error {
	args := m.Called(pos)

	return args.Error(0)
}

func (m *mockStorages) Pop() {
	m.Called()
}

func (m *mockStorages) List() [][]byte {
	args := m.Called()

	return args.Get(0).([][]byte)
}

func (m *mockStorages) Digest() uint64 {
	args := m.Called()

	return args.Get(0).(uint64)
}

func (m *mockStorages) Stats() storages.Stats {
	args := m.Called()

	return args.Get(0).(storages.Stats)
}

func (m *mockStorages) Clean(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
