package lifecycle

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestShutdownStopsInReverseOrder(t *testing.T) {
	m := New(time.Second, zaptest.NewLogger(t))

	var order []string
	for _, name := range []string{"store", "http_server"} {
		name := name
		m.Register(name, func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}
	m.Register("ignored", nil)

	require.NoError(t, m.Shutdown(context.Background()))
	require.Equal(t, []string{"http_server", "store"}, order)

	require.NoError(t, m.Shutdown(context.Background()))
	require.Len(t, order, 2)
}

func TestShutdownJoinsErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := New(0, zap.New(core))
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	ran := 0
	m.Register("a", func(context.Context) error { ran++; return errA })
	m.Register("ok", func(context.Context) error { ran++; return nil })
	m.Register("b", func(context.Context) error { ran++; return errB })

	err := m.Shutdown(context.Background())
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	require.Equal(t, 3, ran)
	require.Equal(t, 2, logs.FilterMessage("component stop failed").Len())
	require.Equal(t, 1, logs.FilterMessage("component stopped").Len())
}

func TestShutdownAppliesGracePeriod(t *testing.T) {
	m := New(20*time.Millisecond, nil)
	m.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	require.ErrorIs(t, m.Shutdown(context.Background()), context.DeadlineExceeded)
}

func TestRegisterAfterShutdownStopsImmediately(t *testing.T) {
	m := New(time.Second, nil)
	require.NoError(t, m.Shutdown(context.Background()))

	stopped := false
	m.Register("late", func(context.Context) error { stopped = true; return nil })
	require.True(t, stopped)
}

func TestWatchSignalsCancelsOnSIGTERM(t *testing.T) {
	m := New(time.Second, zaptest.NewLogger(t))
	ctx, cancel := m.WatchSignals(context.Background())
	defer cancel()

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled after SIGTERM")
	}
}

func TestWatchSignalsFollowsParent(t *testing.T) {
	m := New(time.Second, nil)
	parent, stop := context.WithCancel(context.Background())
	ctx, cancel := m.WatchSignals(parent)
	defer cancel()

	stop()
	<-ctx.Done()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}
