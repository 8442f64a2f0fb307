// Package workers runs the application's background workers. The client
// registers its offline flush job here; the aggregate starts every worker
// with a single call so the binaries do not track them individually.
package workers

// Worker is one background process. Run starts it and returns immediately;
// implementations spawn their own goroutines and expose their own stop
// mechanism.
type Worker interface {
	Run()
}
