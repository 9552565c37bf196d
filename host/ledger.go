// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"context"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/event"
	"github.com/ava-labs/convertervm/state"
)

// Event is implemented by the events of every contract kind.
type Event interface {
	GetTypeID() uint8
}

// Log is an event together with the contract that emitted it.
type Log struct {
	Contract codec.Address `json:"contract"`
	Name     string        `json:"name"`
	Event    Event         `json:"event"`
}

// Ledger hosts tokens, registries and converters on top of [state.Database].
// Invocations are serialized and either commit completely or leave no
// trace.
type Ledger struct {
	log  logging.Logger
	db   state.Database
	subs []event.Subscription[Log]

	lock sync.Mutex
}

func New(log logging.Logger, db state.Database, subs ...event.Subscription[Log]) *Ledger {
	return &Ledger{
		log:  log,
		db:   db,
		subs: subs,
	}
}

// Invoke runs [fn] as one atomic invocation. If [fn] fails, its writes and
// events are dropped. Otherwise the writes are committed and the events are
// returned and delivered to every subscriber in emission order.
func (l *Ledger) Invoke(ctx context.Context, fn func(*Tx) error) ([]Log, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	tx := newTx(l, state.NewSimpleMutable(l.db))
	if err := fn(tx); err != nil {
		tx.abort()
		l.log.Debug("invocation reverted", zap.Error(err))
		return nil, err
	}
	keys := tx.mu.Len()
	if err := tx.mu.Commit(ctx); err != nil {
		tx.abort()
		return nil, err
	}
	logs := tx.events.Drain()
	l.log.Debug("invocation committed",
		zap.Int("keys", keys),
		zap.Int("events", len(logs)),
	)
	for _, log := range logs {
		if err := event.NotifyAll(ctx, log, l.subs...); err != nil {
			l.log.Warn("subscriber failed",
				zap.Stringer("contract", log.Contract),
				zap.String("event", log.Name),
				zap.Error(err),
			)
		}
	}
	return logs, nil
}

// Query runs [fn] against the committed state. Anything [fn] writes or
// emits is dropped.
func (l *Ledger) Query(_ context.Context, fn func(*Tx) error) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	tx := newTx(l, state.NewSimpleMutable(l.db))
	defer tx.abort()
	return fn(tx)
}

// Close closes every subscriber. The database is owned by the caller.
func (l *Ledger) Close() error {
	return event.CloseAll(l.subs...)
}
