package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/waselhq/wasel/internal/greenapi"
	"github.com/waselhq/wasel/internal/repository"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"

	componentConnected    = "connected"
	componentDisconnected = "disconnected"
	sweepRunning          = "running"
	sweepStopped          = "stopped"
)

type healthService struct {
	repo              repository.Repository
	redisClient       *redis.Client
	provider          greenapi.Client
	campaignScheduler SchedulerService
	expiryScheduler   SchedulerService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	provider greenapi.Client,
	campaignScheduler SchedulerService,
	expiryScheduler SchedulerService,
) HealthService {
	return &healthService{
		repo:              repo,
		redisClient:       redisClient,
		provider:          provider,
		campaignScheduler: campaignScheduler,
		expiryScheduler:   expiryScheduler,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: StatusHealthy,
	}

	if s.campaignScheduler.IsRunning() {
		status.CampaignSweepStatus = sweepRunning
	} else {
		status.CampaignSweepStatus = sweepStopped
	}
	if s.expiryScheduler.IsRunning() {
		status.ExpirySweepStatus = sweepRunning
	} else {
		status.ExpirySweepStatus = sweepStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.provider.BreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerCounts = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerCounts = "No requests yet"
	}

	if status.DatabaseStatus != componentConnected || status.RedisStatus != componentConnected {
		status.Status = StatusUnhealthy
	}

	// An open breaker means the provider is rejecting sends, but the API
	// itself still works.
	if state == greenapi.BreakerOpen && status.Status == StatusHealthy {
		status.Status = StatusDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() string {
	if err := s.repo.Ping(); err != nil {
		return componentDisconnected
	}
	return componentConnected
}

func (s *healthService) checkRedisHealth() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return componentDisconnected
	}
	return componentConnected
}
