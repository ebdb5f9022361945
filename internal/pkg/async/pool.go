// Package async provides a small worker pool for fanning out independent
// named computations and joining their results.
package async

import (
	"context"
	"sync"
)

// Task is a named unit of work.
type Task struct {
	Name string
	Run  func(ctx context.Context) (interface{}, error)
}

// Result carries a task's outcome, keyed by the task name.
type Result struct {
	Name string
	Data interface{}
	Err  error
}

// Pool executes tasks on a fixed number of workers.
type Pool struct {
	workerCount int
}

// NewPool creates a pool with the given number of workers; values below 1
// fall back to a single worker.
func NewPool(workerCount int) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Pool{workerCount: workerCount}
}

// Execute runs all tasks and returns their results keyed by name. A
// cancelled context stops feeding workers; results gathered so far are
// returned.
func (p *Pool) Execute(ctx context.Context, tasks []Task) map[string]Result {
	taskCh := make(chan Task)
	resultCh := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < p.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				data, err := task.Run(ctx)
				resultCh <- Result{Name: task.Name, Data: data, Err: err}
			}
		}()
	}

	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make(map[string]Result, len(tasks))
	for i := 0; i < len(tasks); i++ {
		select {
		case result := <-resultCh:
			results[result.Name] = result
		case <-ctx.Done():
			return results
		}
	}

	wg.Wait()
	close(resultCh)

	return results
}
