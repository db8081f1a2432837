package structlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closeWithin(t *testing.T, svc *Service, limit time.Duration) {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- svc.Close()
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(limit):
		t.Fatal("Close() timed out - WaitGroup was leaked!")
	}
}

// TestWaitGroupLeakWithPanickingSink tests that the WaitGroup is released
// when the sink panics mid-write.
func TestWaitGroupLeakWithPanickingSink(t *testing.T) {
	svc := New(
		WithSink(SinkFunc(func(*Event) { panic("sink failure") })),
		WithShutdownTimeout(5*time.Second, false),
	)

	for i := 0; i < 10; i++ {
		svc.Error("write {N}", i)
	}
	assert.EqualValues(t, 0, svc.activeOps.Load())
	closeWithin(t, svc, 2*time.Second)
}

// TestWaitGroupLeakWithFailedBinding tests that a binding failure releases
// the WaitGroup.
func TestWaitGroupLeakWithFailedBinding(t *testing.T) {
	svc, sink := newCaptureService(WithShutdownTimeout(5*time.Second, false))

	svc.Information("{Bad}", exploding{})
	svc.ForContext("Ctx", 1, false).Information("{Bad}", exploding{})

	assert.Empty(t, sink.Events())
	assert.EqualValues(t, 0, svc.activeOps.Load())
	closeWithin(t, svc, 2*time.Second)
}

// TestWaitGroupBalanceWithMultipleOperations ensures that the WaitGroup
// counter stays balanced through various logging operations
func TestWaitGroupBalanceWithMultipleOperations(t *testing.T) {
	l, _ := newFileLogger(t, "debug")

	l.Information("test 1")
	l.ErrorErr(assert.AnError, "test 2")
	l.Warning("test {N}", 3)
	l.Debug("test {@N}", []int{4})
	l.ForContext("test", "context", false).Information("test from context logger")

	assert.EqualValues(t, 0, l.activeOps.Load(), "activeOps should be 0 after all operations complete")
	closeWithin(t, l, 100*time.Millisecond)
}

// TestWaitGroupWithConcurrentLoggingAndShutdown tests the race condition
// where logging happens concurrently with shutdown
func TestWaitGroupWithConcurrentLoggingAndShutdown(t *testing.T) {
	l, _ := newFileLogger(t, "debug")

	stopLogging := make(chan struct{})
	stopped := make(chan struct{}, 5)
	for i := 0; i < 5; i++ {
		go func(id int) {
			defer func() { stopped <- struct{}{} }()
			for {
				select {
				case <-stopLogging:
					return
				default:
					l.Information("concurrent log from {Goroutine}", id)
					time.Sleep(time.Millisecond)
				}
			}
		}(i)
	}

	time.Sleep(50 * time.Millisecond)

	// close while the writers are still running, then stop them
	closeWithin(t, l, 3*time.Second)
	close(stopLogging)
	for i := 0; i < 5; i++ {
		<-stopped
	}

	require.EqualValues(t, 0, l.activeOps.Load(), "No operations should be leaked")
}
