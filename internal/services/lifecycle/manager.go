package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// StopFunc releases one component. It should return once ctx is done.
type StopFunc func(ctx context.Context) error

type component struct {
	name string
	stop StopFunc
}

// Manager stops the components of the task list server in the reverse order
// they were started, all within one grace period.
type Manager struct {
	grace time.Duration
	log   *zap.Logger

	mu         sync.Mutex
	components []component
	stopped    bool
}

func New(grace time.Duration, log *zap.Logger) *Manager {
	if grace <= 0 {
		grace = 15 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{grace: grace, log: log}
}

// Register records a started component. Components registered after Shutdown
// are stopped right away.
func (m *Manager) Register(name string, stop StopFunc) {
	if stop == nil {
		return
	}
	m.mu.Lock()
	if !m.stopped {
		m.components = append(m.components, component{name: name, stop: stop})
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	m.log.Warn("component registered after shutdown", zap.String("component", name))
	ctx, cancel := context.WithTimeout(context.Background(), m.grace)
	defer cancel()
	_ = m.stopOne(ctx, component{name: name, stop: stop})
}

// Shutdown stops every registered component, last registered first. Each one
// runs even if an earlier one failed; the failures are joined. Calling it
// again does nothing.
func (m *Manager) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, m.grace)
	defer cancel()

	m.mu.Lock()
	pending := m.components
	m.components = nil
	m.stopped = true
	m.mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		if err := m.stopOne(ctx, pending[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WatchSignals returns a context that is cancelled on SIGINT or SIGTERM, or
// when the returned cancel func is called.
func (m *Manager) WatchSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			m.log.Info("shutdown signal received", zap.Stringer("signal", sig))
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

func (m *Manager) stopOne(ctx context.Context, c component) error {
	started := time.Now()
	err := c.stop(ctx)
	fields := []zap.Field{zap.String("component", c.name), zap.Duration("took", time.Since(started))}
	if err != nil {
		m.log.Error("component stop failed", append(fields, zap.Error(err))...)
		return err
	}
	m.log.Info("component stopped", fields...)
	return nil
}
