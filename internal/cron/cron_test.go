package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeCleaner struct {
	calls atomic.Int32
	days  atomic.Int32
	err   error
}

func (f *fakeCleaner) CleanupOldLogs(days int) (int64, error) {
	f.calls.Add(1)
	f.days.Store(int32(days))
	return 3, f.err
}

func TestStartCleanupTask_RunsImmediatelyAndOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleaner := &fakeCleaner{}

	StartCleanupTask(ctx, cleaner, 30, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(30), cleaner.days.Load())

	cancel()
	time.Sleep(30 * time.Millisecond)
	stopped := cleaner.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, cleaner.calls.Load())
}

func TestStartCleanupTask_Disabled(t *testing.T) {
	cleaner := &fakeCleaner{}
	StartCleanupTask(context.Background(), cleaner, 0, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, cleaner.calls.Load())
}

func TestStartCleanupTask_KeepsRunningAfterErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleaner := &fakeCleaner{err: errors.New("db unavailable")}

	StartCleanupTask(ctx, cleaner, 7, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return cleaner.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}
