package storages

import (
	"time"

	"github.com/7phs/simplevector/internal/config"
)

var (
	_ config.Config = (*mockConfig)(nil)
)

type mockConfig struct {
	Res       int
	Items     int
	RecordLen int
}

func (o *mockConfig) Port() int {
	return 0
}

func (o *mockConfig) LogLevel() config.LogLevel {
	return config.LogLevelDebug
}

func (o *mockConfig) Maintenance() time.Duration {
	return 0
}

func (o *mockConfig) Reserve() int {
	return o.Res
}

func (o *mockConfig) MaxItems() int {
	return o.Items
}

func (o *mockConfig) MaxRecord() int {
	return o.RecordLen
}
