// Package refresh reloads the record store when a snapshot refresh signal
// arrives on the message bus, so a long-lived dashboard picks up new export
// files without a restart.
package refresh

import (
	"context"

	"go.uber.org/zap"

	"restaurant-dashboard/internal/common/mq"
	"restaurant-dashboard/internal/store"
)

// Run consumes the refresh queue until ctx is cancelled. Every delivery
// triggers one atomic reload; a failed reload is logged and acknowledged,
// leaving the previous snapshot in place.
func Run(ctx context.Context, client *mq.Client, st *store.Store, lg *zap.Logger) error {
	deliveries, err := client.Consume(mq.RefreshQueue, "dashboard", 1)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			if err := st.Reload(ctx); err != nil {
				lg.Error("snapshot_reload_failed", zap.Error(err))
			}
			_ = d.Ack(false)
		}
	}
}
