package dirsize

import (
	"context"
	"sync"
	"sync/atomic"
)

// SizeFunc computes the total size of a directory.
type SizeFunc func(ctx context.Context, path string) (int64, error)

// Result is delivered to the callback of a request.
type Result struct {
	Path string
	Size int64
	Err  error
}

type request struct {
	ctx      context.Context
	path     string
	callback func(Result)
}

// WorkerPool computes folder sizes on a fixed number of goroutines.
type WorkerPool struct {
	workers  int
	sizeFunc SizeFunc
	requests chan request
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	closed   atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers
func NewWorkerPool(workers int, sizeFunc SizeFunc) *WorkerPool {
	if workers <= 0 {
		workers = 2
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		workers:  workers,
		sizeFunc: sizeFunc,
		requests: make(chan request, workers*2),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case req := <-p.requests:
			p.process(req)
		}
	}
}

func (p *WorkerPool) process(req request) {
	ctx, cancel := context.WithCancel(req.ctx)
	defer cancel()
	stop := context.AfterFunc(p.ctx, cancel)
	defer stop()

	result := Result{Path: req.path}
	if err := ctx.Err(); err != nil {
		result.Err = err
	} else {
		result.Size, result.Err = p.sizeFunc(ctx, req.path)
	}
	if req.callback != nil {
		req.callback(result)
	}
}

// Submit queues a size calculation for path.
// Returns false if the pool is closed or the queue is full.
// The callback runs on a worker goroutine.
func (p *WorkerPool) Submit(ctx context.Context, path string, callback func(Result)) bool {
	if p.closed.Load() {
		return false
	}
	select {
	case p.requests <- request{ctx: ctx, path: path, callback: callback}:
		return true
	case <-p.ctx.Done():
		return false
	default:
		return false
	}
}

// Close cancels running calculations and waits for the workers to exit.
// It is safe to call Close more than once.
func (p *WorkerPool) Close() {
	if p.closed.Swap(true) {
		return
	}
	p.cancel()
	p.wg.Wait()
}
