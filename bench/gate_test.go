package bench

import (
	"sync"
	"testing"
	"time"
)

func TestStartGateHoldsUntilRelease(t *testing.T) {
	g := NewStartGate()

	started := make(chan struct{})
	passed := make(chan struct{})

	go func() {
		close(started)
		g.Wait()
		close(passed)
	}()

	<-started

	select {
	case <-passed:
		t.Fatal("waiter passed the gate before release")
	case <-time.After(20 * time.Millisecond):
	}

	g.Release()

	select {
	case <-passed:
	case <-time.After(time.Second):
		t.Fatal("waiter did not pass the gate after release")
	}
}

func TestStartGateReleasesAllWaiters(t *testing.T) {
	g := NewStartGate()

	const waiters = 8

	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Wait()
		}()
	}

	g.Release()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("not all waiters passed the gate after release")
	}
}

func TestStartGateLateWaiter(t *testing.T) {
	g := NewStartGate()
	g.Release()

	// A waiter arriving after the release must not block.
	g.Wait()
}
