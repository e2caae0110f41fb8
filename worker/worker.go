package worker

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// Pool runs jobs on a fixed set of goroutines. A job that panics is reported to Sentry and logged, and
// the goroutine that ran it moves on to the next job.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
	log   *logrus.Entry

	panics atomic.Int32
}

// New starts a pool of n workers. n <= 0 uses one worker per CPU. log may be nil.
func New(n int, log *logrus.Entry) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n), log: log}
	p.wg.Add(n)
	for range n {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.queue {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		p.panics.Add(1)
		if hub := sentry.CurrentHub(); hub.Client() != nil {
			hub.Recover(r)
			hub.Flush(2 * time.Second)
		}
		if p.log != nil {
			p.log.WithField("panic", r).Error("worker job panicked")
		}
	}()
	f()
}

// Submit queues f, blocking while every worker is busy and the queue is full. Submitting to a closed pool
// panics.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// Close stops accepting jobs and waits for the queued ones to finish.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}

// Panics returns how many jobs panicked so far.
func (p *Pool) Panics() int {
	return int(p.panics.Load())
}
