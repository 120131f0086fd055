package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockService struct {
	started atomic.Bool
	stopped atomic.Bool
	startFn func() error
	done    chan struct{}
	once    sync.Once
	onStop  func()
}

func newMockService() *mockService {
	return &mockService{done: make(chan struct{})}
}

func (m *mockService) Start() error {
	m.started.Store(true)
	if m.startFn != nil {
		return m.startFn()
	}
	<-m.done
	return nil
}

func (m *mockService) Stop() {
	m.stopped.Store(true)
	if m.onStop != nil {
		m.onStop()
	}
	m.once.Do(func() { close(m.done) })
}

func runAsync(lc *Lifecycle, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()
	return done
}

func TestLifecycleStartsAndStopsServices(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	svc1 := newMockService()
	svc2 := newMockService()
	lc.Add("svc1", svc1)
	lc.Add("svc2", svc2)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(lc, ctx)

	require.Eventually(t, func() bool { return svc1.started.Load() && svc2.started.Load() },
		2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}
	assert.True(t, svc1.stopped.Load())
	assert.True(t, svc2.stopped.Load())
}

func TestLifecycleStopsInReverseOrder(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	var mu sync.Mutex
	var order []string
	for _, name := range []string{"storage", "grpc", "sweep"} {
		svc := newMockService()
		svc.onStop = func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
		lc.Add(name, svc)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(lc, ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []string{"sweep", "grpc", "storage"}, order)
}

func TestLifecycleReturnsServiceFailure(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	healthy := newMockService()
	failing := newMockService()
	failing.startFn = func() error { return errors.New("address in use") }
	lc.Add("healthy", healthy)
	lc.Add("failing", failing)

	select {
	case err := <-runAsync(lc, context.Background()):
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failing")
		assert.Contains(t, err.Error(), "address in use")
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not react to the failure")
	}
	assert.True(t, healthy.stopped.Load())
}

func TestLifecycleEarlyExitIsAFailure(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	quitter := newMockService()
	quitter.startFn = func() error { return nil }
	lc.Add("quitter", quitter)

	err := <-runAsync(lc, context.Background())
	assert.ErrorIs(t, err, ErrServiceExited)
}

func TestContextService(t *testing.T) {
	var ran atomic.Bool
	svc := ContextService(context.Background(), func(ctx context.Context) {
		ran.Store(true)
		<-ctx.Done()
	})
	done := make(chan error, 1)
	go func() { done <- svc.Start() }()
	require.Eventually(t, ran.Load, time.Second, 5*time.Millisecond)
	svc.Stop()
	assert.NoError(t, <-done)
}

func TestFuncService(t *testing.T) {
	started := false
	stopped := false

	svc := &FuncService{
		StartFn: func() error {
			started = true
			return nil
		},
		StopFn: func() {
			stopped = true
		},
	}

	err := svc.Start()
	assert.NoError(t, err)
	assert.True(t, started)

	svc.Stop()
	assert.True(t, stopped)
}
