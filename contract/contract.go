//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"
)

// CancelFunc invalidates a scheduled task. Calling it after the task
// has fired, or calling it twice, is a no-op.
type CancelFunc func()

// Scheduler abstracts deferred execution. The engine simulates network
// acknowledgements with timers behind this interface; a production
// transport replaces them with real callbacks, and tests drive a manual
// clock, without touching the transition logic on either side.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) CancelFunc
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// for logging and supervision purposes.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
