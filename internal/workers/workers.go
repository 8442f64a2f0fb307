package workers

// Workers starts a fixed set of background workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers collects the workers to run. Nil entries are skipped so callers
// can pass optional workers without branching.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
