package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerFiresOnce(t *testing.T) {
	s := newTaskScheduler()
	var fired atomic.Int32

	s.Schedule("task", time.Millisecond, func() { fired.Add(1) })

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
	assert.False(t, s.Pending("task"))
}

func TestScheduleReplacesSameName(t *testing.T) {
	s := newTaskScheduler()
	var first, second atomic.Int32

	s.Schedule("task", 5*time.Millisecond, func() { first.Add(1) })
	s.Schedule("task", 5*time.Millisecond, func() { second.Add(1) })

	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

func TestCancelStopsPendingTask(t *testing.T) {
	s := newTaskScheduler()
	var fired atomic.Int32

	s.Schedule("task", 10*time.Millisecond, func() { fired.Add(1) })
	assert.True(t, s.Pending("task"))
	s.Cancel("task")
	assert.False(t, s.Pending("task"))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestCancelAllStopsEverything(t *testing.T) {
	s := newTaskScheduler()
	var fired atomic.Int32

	s.Schedule("a", 10*time.Millisecond, func() { fired.Add(1) })
	s.Schedule("b", 10*time.Millisecond, func() { fired.Add(1) })
	s.CancelAll()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.False(t, s.Pending("a"))
	assert.False(t, s.Pending("b"))
}

func TestIndependentNamesDoNotInterfere(t *testing.T) {
	s := newTaskScheduler()
	var a, b atomic.Int32

	s.Schedule("a", time.Millisecond, func() { a.Add(1) })
	s.Schedule("b", time.Millisecond, func() { b.Add(1) })

	require.Eventually(t, func() bool { return a.Load() == 1 && b.Load() == 1 }, time.Second, time.Millisecond)
}
