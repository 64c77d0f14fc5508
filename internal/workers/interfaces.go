// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, the bounded worker pool that keeps bcrypt
// hashing off the request-accept path, and the queue worker that delivers
// welcome email in the background.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to spawn
// goroutines internally and return. Stop requests a graceful shutdown and
// blocks until in-flight work has drained.
type Worker interface {
	Run()
	Stop()
}
