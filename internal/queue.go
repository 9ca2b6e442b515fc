package internal

// JobQueue holds deferred watch jobs until the next Flush. Jobs run in
// FIFO order and are not deduplicated: one trigger, one job.
type JobQueue struct {
	jobs []func()
}

func NewJobQueue() *JobQueue {
	return &JobQueue{
		jobs: make([]func(), 0),
	}
}

func (q *JobQueue) Enqueue(job func()) {
	q.jobs = append(q.jobs, job)
}

func (q *JobQueue) Drain() {
	for len(q.jobs) > 0 {
		jobs := q.jobs
		q.jobs = nil

		for _, job := range jobs {
			job()
		}
	}
}
