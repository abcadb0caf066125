package internal

// TaskQueue is a FIFO of scheduled continuations.
type TaskQueue struct {
	tasks []func()
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{
		tasks: make([]func(), 0),
	}
}

func (q *TaskQueue) Enqueue(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Dequeue pops the oldest task.
func (q *TaskQueue) Dequeue() (func(), bool) {
	if len(q.tasks) == 0 {
		return nil, false
	}

	fn := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]

	if len(q.tasks) == 0 {
		q.tasks = q.tasks[:0:0]
	}

	return fn, true
}

func (q *TaskQueue) Len() int {
	return len(q.tasks)
}
