package internal

import (
	"log/slog"
	"slices"
	"sync"
)

// Runtime is one logical thread of control: continuations scheduled on it run one at a time, in order.
type Runtime struct {
	mu   sync.Mutex
	idle *sync.Cond

	scheduler *Scheduler

	// rejection handlers, see OnError
	catchers []func(error)

	log     *slog.Logger
	metrics *metrics
}

func NewRuntime() *Runtime {
	cfg, m := loadConfig()

	r := &Runtime{
		scheduler: NewScheduler(),
		log:       cfg.logger(),
		metrics:   m,
	}
	r.idle = sync.NewCond(&r.mu)

	return r
}

// Schedule queues fn behind every task already scheduled on this runtime.
func (r *Runtime) Schedule(fn func()) {
	r.mu.Lock()
	start := r.scheduler.Schedule(fn)
	r.mu.Unlock()

	if start {
		go r.drain()
	}
}

func (r *Runtime) drain() {
	gid := getGID()

	// futures created by tasks must land on this runtime
	bind(gid, r)
	defer unbind(gid)

	r.metrics.workersActive.Inc()
	defer r.metrics.workersActive.Dec()

	r.mu.Lock()
	r.scheduler.worker = gid
	r.mu.Unlock()

	for {
		r.mu.Lock()
		task, ok := r.scheduler.Next()
		if !ok {
			r.idle.Broadcast()
			r.mu.Unlock()
			return
		}
		r.mu.Unlock()

		r.run(task)
	}
}

func (r *Runtime) run(task func()) {
	defer func() {
		if v := recover(); v != nil {
			r.metrics.taskPanics.Inc()
			r.Report(&PanicError{Value: v})
		}
	}()

	r.metrics.tasksExecuted.Inc()
	task()
}

// Batch runs fn and holds back every task it schedules until the outermost batch returns.
func (r *Runtime) Batch(fn func()) {
	r.mu.Lock()
	r.scheduler.BeginBatch()
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		start := r.scheduler.EndBatch()
		r.mu.Unlock()

		if start {
			go r.drain()
		}
	}()

	fn()
}

// Settle blocks until the queue is empty and no task is running.
// Work waiting on an external producer does not keep the runtime busy.
func (r *Runtime) Settle() {
	gid := getGID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scheduler.running && r.scheduler.worker == gid {
		panic(ErrBlockingInTask)
	}
	if r.scheduler.IsBatching() {
		panic(ErrSettleInBatch)
	}

	for !r.scheduler.Idle() {
		r.idle.Wait()
	}
}

// InTask reports whether the caller is the goroutine currently draining this runtime.
func (r *Runtime) InTask() bool {
	gid := getGID()

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.scheduler.running && r.scheduler.worker == gid
}

// OnError registers fn to receive rejections nothing else handled.
// Without any handler they are logged.
func (r *Runtime) OnError(fn func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.catchers = append(r.catchers, fn)
}

// Report hands an unhandled rejection to the registered handlers, or logs it.
func (r *Runtime) Report(err error) {
	r.metrics.unhandled.Inc()

	r.mu.Lock()
	catchers := slices.Clone(r.catchers)
	r.mu.Unlock()

	if len(catchers) == 0 {
		r.log.Error("unhandled rejection", slog.Any("error", err))
		return
	}

	for _, catcher := range catchers {
		catcher(err)
	}
}
