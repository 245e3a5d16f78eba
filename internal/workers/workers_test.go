// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int64
}

func (m *countingWorker) Run(context.Context) {
	m.runCount.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := New(w1, w2, w3)
	ws.Run(context.Background())
	ws.Wait()

	for i, w := range []*countingWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_Wait_BlocksUntilContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	blocking := WorkerFunc(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
	})

	ws := New(blocking)
	ws.Run(ctx)
	<-started

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned while the worker was still running")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after context cancel")
	}
}

func TestWorkers_Run_Concurrent(t *testing.T) {
	var mu sync.Mutex
	running := 0
	peak := 0

	slow := func(context.Context) {
		mu.Lock()
		running++
		if running > peak {
			peak = running
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()
	}

	ws := New(WorkerFunc(slow), WorkerFunc(slow), WorkerFunc(slow))
	ws.Run(context.Background())
	ws.Wait()

	mu.Lock()
	defer mu.Unlock()
	if peak < 2 {
		t.Errorf("expected workers to overlap, peak concurrency was %d", peak)
	}
}

func TestWorkerFunc_Adapts(t *testing.T) {
	called := false
	var w Worker = WorkerFunc(func(context.Context) { called = true })

	w.Run(context.Background())

	if !called {
		t.Error("WorkerFunc did not invoke the wrapped function")
	}
}
