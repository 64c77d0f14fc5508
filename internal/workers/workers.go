package workers

// Workers aggregates background workers so the server can start and stop
// them as a unit.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers. Order matters:
// workers are started in the order given and stopped in reverse.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop gracefully stops every worker in reverse start order, draining
// queued work.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
