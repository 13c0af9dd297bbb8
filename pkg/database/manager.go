package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
	"gorm.io/gorm"

	"restaurant-inventory/domain"
)

const DefaultPoolSize = 10

var ErrClosed = errors.New("connection manager is closed")

// Pool wait outcomes reported to the Observer.
const (
	WaitAdmitted  = "admitted"
	WaitTimedOut  = "timeout"
	WaitCancelled = "cancelled"
)

type (
	// Observer receives pool admission measurements.
	Observer interface {
		ObservePoolWait(wait time.Duration, outcome string)
	}

	Options struct {
		PoolSize       int
		AcquireTimeout time.Duration
		Observer       Observer
	}

	// Manager owns the bounded connection pool. Callers are admitted in FIFO
	// order; a caller that waits longer than AcquireTimeout fails with
	// domain.ErrPoolTimeout instead of queueing forever.
	Manager struct {
		db             *gorm.DB
		slots          *semaphore.Weighted
		acquireTimeout time.Duration
		observer       Observer
		closed         chan struct{}
	}
)

func NewManager(db *gorm.DB, opts Options) (*Manager, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	size := opts.PoolSize
	if size <= 0 {
		size = DefaultPoolSize
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(size)
	sqlDB.SetMaxIdleConns(size)

	return &Manager{
		db:             db,
		slots:          semaphore.NewWeighted(int64(size)),
		acquireTimeout: opts.AcquireTimeout,
		observer:       opts.Observer,
		closed:         make(chan struct{}),
	}, nil
}

// Do runs fn on a pooled connection. Once admitted the work is detached from
// ctx cancellation: it either completes or fails on its own.
func (m *Manager) Do(ctx context.Context, fn func(db *gorm.DB) error) error {
	release, err := m.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return fn(m.db.WithContext(context.WithoutCancel(ctx)))
}

// Transaction reserves one session for the whole of fn. It commits when fn
// returns nil and rolls back otherwise; the session is released either way.
func (m *Manager) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	release, err := m.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return m.db.WithContext(context.WithoutCancel(ctx)).Transaction(fn)
}

// DB exposes the raw handle for migrations and tooling.
func (m *Manager) DB() *gorm.DB {
	return m.db
}

func (m *Manager) Close() error {
	select {
	case <-m.closed:
		return nil
	default:
		close(m.closed)
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (m *Manager) acquire(ctx context.Context) (func(), error) {
	select {
	case <-m.closed:
		return nil, ErrClosed
	default:
	}

	waitCtx := ctx
	if m.acquireTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, m.acquireTimeout)
		defer cancel()
	}

	start := time.Now()
	err := m.slots.Acquire(waitCtx, 1)

	// only our own acquire deadline counts as a pool timeout; the caller's
	// context ending first is a cancellation
	outcome := WaitAdmitted
	if err != nil {
		outcome = WaitCancelled
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			outcome = WaitTimedOut
		}
	}
	if m.observer != nil {
		m.observer.ObservePoolWait(time.Since(start), outcome)
	}
	switch outcome {
	case WaitTimedOut:
		return nil, domain.NewFailure(domain.KindPoolTimeout, "", err)
	case WaitCancelled:
		return nil, err
	}

	return func() { m.slots.Release(1) }, nil
}
