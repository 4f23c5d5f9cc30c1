package service_test

import (
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/waselhq/wasel/internal/greenapi"
	"github.com/waselhq/wasel/internal/repository/mocks"
	"github.com/waselhq/wasel/internal/service"
	servicemocks "github.com/waselhq/wasel/internal/service/mocks"
)

// The fixture's Redis client points at a closed port, so these tests
// exercise the unhealthy reporting path for the cache.
func TestHealthService_GetHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockRepo.EXPECT().Ping().Return(nil)

	campaignScheduler := servicemocks.NewMockSchedulerService(ctrl)
	campaignScheduler.EXPECT().IsRunning().Return(true)
	expiryScheduler := servicemocks.NewMockSchedulerService(ctrl)
	expiryScheduler.EXPECT().IsRunning().Return(false)

	provider := &stubProvider{
		breakerState:    greenapi.BreakerOpen,
		breakerRequests: 10,
		breakerFailures: 6,
	}
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:9999"})

	svc := service.NewHealthService(mockRepo, redisClient, provider, campaignScheduler, expiryScheduler)
	health := svc.GetHealth()
	require.NotNil(t, health)

	assert.Equal(t, service.StatusUnhealthy, health.Status)
	assert.Equal(t, "connected", health.DatabaseStatus)
	assert.Equal(t, "disconnected", health.RedisStatus)
	assert.Equal(t, "running", health.CampaignSweepStatus)
	assert.Equal(t, "stopped", health.ExpirySweepStatus)
	assert.Equal(t, greenapi.BreakerOpen, health.CircuitBreakerState)
	assert.Equal(t, "Requests: 10, Failures: 6 (60.0%)", health.CircuitBreakerCounts)
}
