package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its id to a shared slice on Run.
type recordingWorker struct {
	id    int
	order *[]int
}

func (w *recordingWorker) Run() {
	*w.order = append(*w.order, w.id)
}

func TestWorkers_Run_InRegistrationOrder(t *testing.T) {
	var order []int

	ws := NewWorkers(
		&recordingWorker{id: 1, order: &order},
		&recordingWorker{id: 2, order: &order},
		&recordingWorker{id: 3, order: &order},
	)
	ws.Run()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Run_SkipsNilWorkers(t *testing.T) {
	var order []int

	ws := NewWorkers(nil, &recordingWorker{id: 1, order: &order}, nil)

	assert.NotPanics(t, ws.Run)
	assert.Equal(t, []int{1}, order)
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, NewWorkers().Run)
}
