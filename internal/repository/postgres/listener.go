package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"

	"pizzapos-backend/internal/logger"
)

// notifyChannel is the NOTIFY channel the database triggers fire on for any
// insert or update to ledger_entries, products, stock_items, app_users or
// app_config (see db/schema.sql).
const notifyChannel = "pos_changes"

// ChangeFeed bridges Postgres LISTEN/NOTIFY to a refresh callback. Delivery
// is at-least-once and unordered; the callback must be idempotent, which a
// full replica refresh is.
type ChangeFeed struct {
	listener *pq.Listener
	handler  func()
}

func NewChangeFeed(conninfo string, handler func()) (*ChangeFeed, error) {
	l := pq.NewListener(conninfo, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Error("Change feed connection event", "event", ev, "error", err)
		}
	})
	if err := l.Listen(notifyChannel); err != nil {
		l.Close()
		return nil, err
	}
	return &ChangeFeed{listener: l, handler: handler}, nil
}

// Run pumps notifications into the handler until the context is cancelled.
// A nil notification signals a listener reconnect; the handler runs then too,
// since changes may have been missed while disconnected.
func (f *ChangeFeed) Run(ctx context.Context) {
	defer f.listener.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case <-f.listener.Notify:
			f.handler()
		case <-time.After(90 * time.Second):
			if err := f.listener.Ping(); err != nil {
				logger.Warn("Change feed ping failed", "error", err)
			}
		}
	}
}
