package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunSweeper discards idle tables every interval until ctx is cancelled
func (s *TableStore) RunSweeper(ctx context.Context, interval, maxIdle time.Duration, log *zap.Logger) {
	if interval <= 0 || maxIdle <= 0 {
		log.Info("table sweeper disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(maxIdle); removed > 0 {
				log.Info("swept idle tables",
					zap.Int("removed", removed),
					zap.Int("remaining", s.Len()),
				)
			}
		}
	}
}
