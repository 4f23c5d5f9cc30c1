package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/config"
	"github.com/waselhq/wasel/internal/greenapi"
	"github.com/waselhq/wasel/internal/repository"
)

type Service struct {
	Campaign          CampaignService
	Instance          InstanceService
	CampaignScheduler SchedulerService
	ExpiryScheduler   SchedulerService
	Health            HealthService
	Dispatcher        *Dispatcher
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	provider greenapi.Client,
	logger *zap.Logger,
) *Service {
	resolver := NewResolver(repo, logger)
	dispatcher := NewDispatcher(&cfg.Dispatch, repo, provider, logger)
	campaignService := NewCampaignService(repo, redisClient, resolver, dispatcher, logger)
	instanceService := NewInstanceService(repo, provider, logger)
	campaignScheduler := NewCampaignSchedulerService(cfg, campaignService, logger)
	expiryScheduler := NewExpirySchedulerService(cfg, instanceService, logger)
	healthService := NewHealthService(repo, redisClient, provider, campaignScheduler, expiryScheduler)

	return &Service{
		Campaign:          campaignService,
		Instance:          instanceService,
		CampaignScheduler: campaignScheduler,
		ExpiryScheduler:   expiryScheduler,
		Health:            healthService,
		Dispatcher:        dispatcher,
	}
}
