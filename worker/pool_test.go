package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"screen-qna/region"
)

func TestPool_RunsJobAndInvokesCallback(t *testing.T) {
	p := New(1, func(ctx context.Context, rect region.Rect) (Result, error) {
		return Result{Question: "What?", Answer: "That", Formatted: "Answer: That"}, nil
	})
	defer p.Close()

	done := make(chan Result, 1)
	ok := p.Submit(context.Background(), region.Rect{X2: 10, Y2: 10}, func(res Result, err error) {
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		done <- res
	})
	if !ok {
		t.Fatal("Submit rejected on idle pool")
	}

	select {
	case res := <-done:
		if res.Formatted != "Answer: That" {
			t.Errorf("Unexpected result %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Callback never invoked")
	}
}

func TestPool_BackpressureDropsWhenBusy(t *testing.T) {
	block := make(chan struct{})
	var once sync.Once
	p := New(1, func(ctx context.Context, rect region.Rect) (Result, error) {
		<-block
		return Result{}, nil
	})
	defer func() {
		once.Do(func() { close(block) })
		p.Close()
	}()

	cb := func(Result, error) {}
	if !p.Submit(context.Background(), region.Rect{}, cb) {
		t.Fatal("First submit should be accepted")
	}
	// Worker is blocked; the 1-slot queue takes one more, then drops.
	p.Submit(context.Background(), region.Rect{}, cb)
	accepted := 0
	for i := 0; i < 5; i++ {
		if p.Submit(context.Background(), region.Rect{}, cb) {
			accepted++
		}
	}
	if accepted != 0 {
		t.Errorf("Expected strict backpressure, %d extra jobs accepted", accepted)
	}
	once.Do(func() { close(block) })
}

func TestPool_DeadlineReturnsTimeout(t *testing.T) {
	release := make(chan struct{})
	p := New(1, func(ctx context.Context, rect region.Rect) (Result, error) {
		<-release
		return Result{}, nil
	})
	defer func() {
		close(release)
		p.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	errCh := make(chan error, 1)
	p.Submit(ctx, region.Rect{}, func(res Result, err error) { errCh <- err })

	select {
	case err := <-errCh:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Expected DeadlineExceeded, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Callback never invoked after deadline")
	}
}
