// SPDX-FileCopyrightText: 2025 Intel Corporation
// SPDX-License-Identifier: Apache-2.0

// Package taskqueue runs closures one at a time on a dedicated goroutine.
// Producers on the real-time path use TryPush and never block; control-plane
// producers use Push.
//
// A task runs on the consumer goroutine, so it must neither Push (the queue may
// be full and only the consumer frees room) nor Stop (Stop waits for the
// consumer). Tasks that enqueue follow-up work use TryPush.
package taskqueue

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/omec-project/nrmac/logger"
	"github.com/omec-project/nrmac/util"
)

const DefaultSize = 1024

var (
	ErrStopped = errors.New("task queue stopped")
	ErrFull    = errors.New("task queue full")
)

type Task func()

type Queue struct {
	name  string
	tasks chan Task

	// closed and the tasks channel close are guarded by mu
	mu       sync.RWMutex
	closed   bool
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	started  atomic.Bool
	dropped  atomic.Uint64
}

func New(name string, size int) *Queue {
	if size <= 0 {
		size = DefaultSize
	}
	return &Queue{
		name:   name,
		tasks:  make(chan Task, size),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the consumer. Calling it more than once has no effect.
func (q *Queue) Start() {
	if !q.started.CompareAndSwap(false, true) {
		return
	}
	go q.run()
}

func (q *Queue) run() {
	defer close(q.done)
	logger.QueueLog.Infof("task queue %s started", q.name)
	for task := range q.tasks {
		q.exec(task)
	}
	logger.QueueLog.Infof("task queue %s stopped", q.name)
}

func (q *Queue) exec(task Task) {
	defer util.RecoverWithLog(logger.QueueLog)
	task()
}

// Push enqueues task, waiting for room if the queue is full. It must not be
// called from a task: a full queue would never drain.
func (q *Queue) Push(task Task) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrStopped
	}
	select {
	case q.tasks <- task:
		return nil
	case <-q.stopCh:
		return ErrStopped
	}
}

// TryPush enqueues task without blocking. A task that does not fit is dropped.
func (q *Queue) TryPush(task Task) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrStopped
	}
	select {
	case q.tasks <- task:
		return nil
	default:
		n := q.dropped.Add(1)
		logger.QueueLog.Errorf("task queue %s full, task dropped (total dropped: %d)", q.name, n)
		return ErrFull
	}
}

// Stop refuses new tasks, runs the ones already queued and waits for the
// consumer to exit. It is safe to call more than once, but not from a task.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		close(q.stopCh)
		q.mu.Lock()
		q.closed = true
		close(q.tasks)
		q.mu.Unlock()
	})
	if q.started.Load() {
		<-q.done
	}
}

// Dropped returns the number of tasks rejected by TryPush because the queue was full
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Len returns the number of queued tasks
func (q *Queue) Len() int {
	return len(q.tasks)
}
