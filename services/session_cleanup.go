package services

import (
	"context"
	"log/slog"
	"time"
)

const sessionCleanupInterval = time.Hour

// StartSessionCleanup runs a background loop that purges long-expired
// dashboard sessions. Stops when ctx is cancelled.
func StartSessionCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Session cleanup stopped")
				return
			case <-ticker.C:
				cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				count, err := CleanupExpiredSessions(cleanupCtx)
				cancel()
				if err != nil {
					slog.Error("Failed to cleanup expired sessions", "error", err)
				} else if count > 0 {
					slog.Info("Cleaned up expired sessions", "count", count)
				}
			}
		}
	}()

	slog.Info("Session cleanup started", "interval", sessionCleanupInterval.String())
}
