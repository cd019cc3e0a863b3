package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/asglabs/mission-control/internal/infrastructure/notify"
)

// channelLedgerUpdated carries the payload-less "ledger changed" broadcast.
// Observers always re-query, so the message body is irrelevant.
const channelLedgerUpdated = "timekeeper:updated"

// Notifier publishes ledger change notifications to Redis pub/sub.
// Publishing is best-effort: a failure is logged, never surfaced, matching
// the ledger's availability-over-durability contract.
type Notifier struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewNotifier(client *redis.Client, logger zerolog.Logger) *Notifier {
	return &Notifier{client: client, logger: logger}
}

// NotifyChanged broadcasts one payload-less change signal.
func (n *Notifier) NotifyChanged(ctx context.Context) {
	if err := n.client.Publish(ctx, channelLedgerUpdated, "").Err(); err != nil {
		n.logger.Warn().Err(err).Msg("ledger change publish failed")
	}
}

// Bridge subscribes to the change channel and forwards every message into
// the in-process hub, so local observers see both local and remote
// mutations through one path. Runs until ctx is cancelled.
func Bridge(ctx context.Context, client *redis.Client, hub *notify.Hub, logger zerolog.Logger) {
	sub := client.Subscribe(ctx, channelLedgerUpdated)
	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					logger.Warn().Msg("ledger change subscription closed")
					return
				}
				hub.Publish()
			}
		}
	}()
}
