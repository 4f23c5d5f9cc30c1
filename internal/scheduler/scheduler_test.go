package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/scheduler"
)

func noopSweep(ctx context.Context) error {
	return nil
}

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler("campaigns", zap.NewNop(), 100*time.Millisecond, noopSweep)
			},
			expectedError: nil,
		},
		{
			name: "already running",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler("campaigns", zap.NewNop(), 100*time.Millisecond, noopSweep)
				err := s.Start(context.Background())
				assert.NoError(t, err)
				return s
			},
			expectedError: scheduler.ErrSchedulerAlreadyRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			defer func() {
				if s.IsRunning() {
					_ = s.Stop()
				}
			}()

			err := s.Start(context.Background())
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestScheduler_Stop(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler("expiry", zap.NewNop(), 100*time.Millisecond, noopSweep)
				err := s.Start(context.Background())
				assert.NoError(t, err)
				return s
			},
			expectedError: nil,
		},
		{
			name: "not running",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler("expiry", zap.NewNop(), 100*time.Millisecond, noopSweep)
			},
			expectedError: scheduler.ErrSchedulerNotRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			err := s.Stop()
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestScheduler_SweepExecution(t *testing.T) {
	tests := []struct {
		name         string
		sweepFunc    func(context.Context) error
		interval     time.Duration
		testDuration time.Duration
		minCalls     int
		maxCalls     int
	}{
		{
			name:         "sweep runs repeatedly",
			sweepFunc:    noopSweep,
			interval:     50 * time.Millisecond,
			testDuration: 250 * time.Millisecond,
			minCalls:     5,
			maxCalls:     7,
		},
		{
			name: "failing sweep keeps the loop alive",
			sweepFunc: func(ctx context.Context) error {
				return errors.New("sweep error")
			},
			interval:     50 * time.Millisecond,
			testDuration: 150 * time.Millisecond,
			minCalls:     3,
			maxCalls:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			callCount := 0
			sweepFunc := func(ctx context.Context) error {
				mu.Lock()
				callCount++
				mu.Unlock()
				return tt.sweepFunc(ctx)
			}

			s := scheduler.NewScheduler("campaigns", zap.NewNop(), tt.interval, sweepFunc)
			err := s.Start(context.Background())
			assert.NoError(t, err)
			time.Sleep(tt.testDuration)

			err = s.Stop()
			assert.NoError(t, err)

			mu.Lock()
			defer mu.Unlock()
			assert.GreaterOrEqual(t, callCount, tt.minCalls)
			assert.LessOrEqual(t, callCount, tt.maxCalls)
		})
	}
}

func TestScheduler_ContextCancellation(t *testing.T) {
	var mu sync.Mutex
	sweepCalls := 0
	sweepFunc := func(ctx context.Context) error {
		mu.Lock()
		sweepCalls++
		mu.Unlock()
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := scheduler.NewScheduler("expiry", zap.NewNop(), 50*time.Millisecond, sweepFunc)

	err := s.Start(ctx)
	assert.NoError(t, err)
	assert.True(t, s.IsRunning())

	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	callsBeforeCancel := sweepCalls
	mu.Unlock()
	assert.GreaterOrEqual(t, callsBeforeCancel, 2)

	cancel()

	time.Sleep(100 * time.Millisecond)
	assert.False(t, s.IsRunning())

	mu.Lock()
	finalCalls := sweepCalls
	mu.Unlock()
	assert.LessOrEqual(t, finalCalls-callsBeforeCancel, 1)
}

func TestScheduler_ConcurrentStart(t *testing.T) {
	s := scheduler.NewScheduler("campaigns", zap.NewNop(), 50*time.Millisecond, noopSweep)

	done := make(chan bool)
	startErrors := make(chan error, 10)

	for i := 0; i < 5; i++ {
		go func() {
			if err := s.Start(context.Background()); err != nil && !errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
				startErrors <- err
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		<-done
	}

	assert.True(t, s.IsRunning())
	assert.Len(t, startErrors, 0)

	err := s.Stop()
	assert.NoError(t, err)
}
