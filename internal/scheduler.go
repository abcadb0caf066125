package internal

// Scheduler tracks the queue and worker state of one runtime.
// It is not safe for concurrent use; the owning Runtime holds its lock around every call.
type Scheduler struct {
	queue *TaskQueue

	// each nested batch increases the depth by 1
	// if depth > 0, no worker is started until the outermost batch is complete
	batchDepth int

	running bool

	// goroutine id of the draining worker, valid while running
	worker int64
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		queue: NewTaskQueue(),
	}
}

// Schedule queues fn and reports whether the caller must start a worker.
func (s *Scheduler) Schedule(fn func()) bool {
	s.queue.Enqueue(fn)
	return s.claim()
}

// Next pops the next task for the worker. When the queue is empty the worker is released.
func (s *Scheduler) Next() (func(), bool) {
	fn, ok := s.queue.Dequeue()
	if !ok {
		s.running = false
		s.worker = 0
	}

	return fn, ok
}

func (s *Scheduler) BeginBatch() {
	s.batchDepth++
}

// EndBatch closes one batch level and reports whether the caller must start a worker.
func (s *Scheduler) EndBatch() bool {
	s.batchDepth--
	return s.claim()
}

func (s *Scheduler) IsBatching() bool {
	return s.batchDepth > 0
}

func (s *Scheduler) Idle() bool {
	return !s.running && s.queue.Len() == 0
}

func (s *Scheduler) claim() bool {
	if s.running || s.batchDepth > 0 || s.queue.Len() == 0 {
		return false
	}

	s.running = true
	return true
}
