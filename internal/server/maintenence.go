package server

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Maintenance interface {
	ID() string
	Clean(ctx context.Context) error
}

type GroupMaintenance struct {
	logger          *zap.Logger
	maintenanceList []Maintenance
}

func NewGroupMaintenance(logger *zap.Logger, m ...Maintenance) GroupMaintenance {
	return GroupMaintenance{
		logger:          logger,
		maintenanceList: m,
	}
}

// Start runs every maintenance on each tick until ctx is done.
func (o *GroupMaintenance) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		err := o.Run(ctx)
		if err != nil {
			o.logger.Error("failed to maintain",
				zap.Error(err),
			)
		}
	}
}

// Run cleans all members concurrently and returns the first failure.
func (o *GroupMaintenance) Run(ctx context.Context) error {
	var wg errgroup.Group

	for i := 0; i < len(o.maintenanceList); i++ {
		m := o.maintenanceList[i]

		wg.Go(func() error {
			o.logger.Debug("clean: start",
				zap.String("id", m.ID()),
			)

			start := time.Now()

			err := m.Clean(ctx)
			if err != nil {
				o.logger.Error("failed to clean",
					zap.String("id", m.ID()),
					zap.Error(err),
				)

				return err
			}

			o.logger.Debug("clean: finish",
				zap.Duration("duration", time.Since(start)),
				zap.String("id", m.ID()),
			)

			return nil
		})
	}

	return wg.Wait()
}
