package cron

import (
	"context"
	"log/slog"
	"time"
)

type revocationList interface {
	PurgeRevoked(now time.Time) int
}

// RegisterTokenPurge drops expired entries from the token revocation list.
func RegisterTokenPurge(scheduler *Scheduler, revoked revocationList) {
	scheduler.AddJob("purge_revoked_tokens", 15*time.Minute, func(ctx context.Context) error {
		if n := revoked.PurgeRevoked(time.Now()); n > 0 {
			slog.Info("purged revoked tokens", "count", n)
		}
		return nil
	})
}
