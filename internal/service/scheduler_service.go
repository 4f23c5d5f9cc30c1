package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/config"
	"github.com/waselhq/wasel/internal/scheduler"
)

type campaignSchedulerService struct {
	scheduler       *scheduler.Scheduler
	campaignService CampaignService
	logger          *zap.Logger
}

// NewCampaignSchedulerService builds the sweep that dispatches scheduled
// campaigns whose send time has arrived.
func NewCampaignSchedulerService(
	cfg *config.Config,
	campaignService CampaignService,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.Scheduler.CampaignIntervalMinutes) * time.Minute

	svc := &campaignSchedulerService{
		campaignService: campaignService,
		logger:          logger,
	}

	svc.scheduler = scheduler.NewScheduler("campaigns", logger, interval, svc.sweep)
	return svc
}

func (s *campaignSchedulerService) Start() error {
	return s.scheduler.Start(context.Background())
}

func (s *campaignSchedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *campaignSchedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *campaignSchedulerService) sweep(_ context.Context) error {
	return s.campaignService.SendDue(time.Now())
}

type expirySchedulerService struct {
	scheduler       *scheduler.Scheduler
	instanceService InstanceService
	logger          *zap.Logger
}

// NewExpirySchedulerService builds the sweep that classifies instance
// expiry and marks instances past their expiry date.
func NewExpirySchedulerService(
	cfg *config.Config,
	instanceService InstanceService,
	logger *zap.Logger,
) SchedulerService {
	interval := time.Duration(cfg.Scheduler.ExpiryIntervalMinutes) * time.Minute

	svc := &expirySchedulerService{
		instanceService: instanceService,
		logger:          logger,
	}

	svc.scheduler = scheduler.NewScheduler("expiry", logger, interval, svc.sweep)
	return svc
}

func (s *expirySchedulerService) Start() error {
	return s.scheduler.Start(context.Background())
}

func (s *expirySchedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *expirySchedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *expirySchedulerService) sweep(_ context.Context) error {
	_, err := s.instanceService.SweepExpired(time.Now())
	return err
}
