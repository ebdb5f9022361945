package async_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepulse/internal/pkg/async"
)

func TestExecuteRunsAllTasks(t *testing.T) {
	tasks := make([]async.Task, 0, 8)
	for i := 0; i < 8; i++ {
		n := i
		tasks = append(tasks, async.Task{
			Name: fmt.Sprintf("task-%d", n),
			Run: func(ctx context.Context) (interface{}, error) {
				return n * 2, nil
			},
		})
	}

	pool := async.NewPool(3)
	results := pool.Execute(context.Background(), tasks)
	require.Len(t, results, 8)

	for i := 0; i < 8; i++ {
		result, ok := results[fmt.Sprintf("task-%d", i)]
		require.True(t, ok)
		require.NoError(t, result.Err)
		assert.Equal(t, i*2, result.Data)
	}
}

func TestExecuteCollectsErrors(t *testing.T) {
	wantErr := errors.New("boom")
	tasks := []async.Task{
		{Name: "ok", Run: func(ctx context.Context) (interface{}, error) { return "fine", nil }},
		{Name: "bad", Run: func(ctx context.Context) (interface{}, error) { return nil, wantErr }},
	}

	pool := async.NewPool(2)
	results := pool.Execute(context.Background(), tasks)
	require.Len(t, results, 2)
	assert.NoError(t, results["ok"].Err)
	assert.ErrorIs(t, results["bad"].Err, wantErr)
}

func TestNewPoolClampsWorkerCount(t *testing.T) {
	pool := async.NewPool(0)
	results := pool.Execute(context.Background(), []async.Task{
		{Name: "only", Run: func(ctx context.Context) (interface{}, error) { return 1, nil }},
	})
	require.Len(t, results, 1)
	assert.Equal(t, 1, results["only"].Data)
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := []async.Task{
		{Name: "slow", Run: func(ctx context.Context) (interface{}, error) {
			time.Sleep(50 * time.Millisecond)
			return nil, nil
		}},
	}

	pool := async.NewPool(1)
	results := pool.Execute(ctx, tasks)
	assert.LessOrEqual(t, len(results), 1)
}
