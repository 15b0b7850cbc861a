// Package parallel provides the worker pool used for parallel candidate
// exploration. Search tasks spawn further tasks (each branch produces two
// child candidates), so the pool must never deadlock on submission from
// inside a task: when the queue is saturated, Submit runs the task on the
// submitting goroutine instead of blocking.
package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool manages a fixed set of goroutines that execute search tasks.
// Tasks may submit new tasks; Wait returns once every submitted task and
// all of its transitively spawned tasks have finished.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	taskWg       sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a pool with the specified number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// worker is the main worker loop that processes tasks from the channel.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				task()
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit schedules a task for execution. If the queue is full the task
// runs synchronously on the caller's goroutine; a task that submits its
// own children therefore always makes progress even when every worker is
// busy.
func (wp *WorkerPool) Submit(task func()) {
	wp.taskWg.Add(1)
	wrapped := func() {
		defer wp.taskWg.Done()
		task()
	}
	select {
	case wp.taskChan <- wrapped:
	default:
		wrapped()
	}
}

// Wait blocks until every submitted task, including tasks spawned by
// other tasks, has completed.
func (wp *WorkerPool) Wait() {
	wp.taskWg.Wait()
}

// Shutdown stops the workers. It does not wait for queued tasks; call
// Wait first for a graceful drain.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}
