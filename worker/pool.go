package worker

import (
	"context"
	"log"
	"sync"

	"screen-qna/region"
)

// Result is the outcome of one capture->recognize->ask->format run.
type Result struct {
	Source    string // raw recognized text
	Question  string
	Answer    string // raw reply from the answer service
	Formatted string
}

// RunFunc executes the pipeline for one selected rectangle.
type RunFunc func(ctx context.Context, rect region.Rect) (Result, error)

// ResultCallback is invoked on completion (from a worker goroutine).
// Callers should pass a closure that posts back into their own loop safely.
type ResultCallback func(res Result, err error)

// Pool is a fixed-size pipeline worker pool with a 1-slot input queue
// (strict back-pressure).
type Pool struct {
	jobs chan job
	run  RunFunc
	wg   sync.WaitGroup
}

type job struct {
	ctx  context.Context
	rect region.Rect
	cb   ResultCallback
}

// New creates a worker pool. Size defaults to 1 when size<=0; the pipeline
// is serial by design, so a single worker is the norm. Queue is 1 slot.
func New(size int, run RunFunc) *Pool {
	if size <= 0 {
		size = 1
	}
	p := &Pool{jobs: make(chan job, 1), run: run}
	p.start(size)
	return p
}

func (p *Pool) start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				log.Printf("Worker: starting pipeline for rect %+v", j.rect)
				res, err := p.runWithContext(j.ctx, j.rect)
				log.Printf("Worker: pipeline completed, err=%v", err)
				j.cb(res, err)
			}
		}()
	}
}

// Submit enqueues a job if the single-slot queue is free. Returns false if dropped.
func (p *Pool) Submit(ctx context.Context, rect region.Rect, cb ResultCallback) bool {
	select {
	case p.jobs <- job{ctx: ctx, rect: rect, cb: cb}:
		return true
	default:
		return false
	}
}

// Close stops the pool after draining current work.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}

// runWithContext honors a ctx deadline around the pipeline. The pipeline's
// blocking stages are not interruptible mid-flight, so on timeout the
// underlying run continues in the background and its result is discarded.
func (p *Pool) runWithContext(ctx context.Context, rect region.Rect) (Result, error) {
	if _, ok := ctx.Deadline(); !ok {
		return p.run(ctx, rect)
	}
	resCh := make(chan struct {
		res Result
		err error
	}, 1)
	go func() {
		res, err := p.run(ctx, rect)
		resCh <- struct {
			res Result
			err error
		}{res, err}
	}()
	select {
	case r := <-resCh:
		return r.res, r.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
