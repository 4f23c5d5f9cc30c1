package service

import (
	"time"

	"github.com/waselhq/wasel/internal/greenapi"
	"github.com/waselhq/wasel/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// CampaignService manages campaign lifecycle and dispatch.
type CampaignService interface {
	Create(merchantID int64, input CreateCampaignInput) (*models.Campaign, error)
	List(merchantID int64) ([]*models.Campaign, error)
	Get(id, merchantID int64) (*models.Campaign, error)
	Update(id, merchantID int64, input UpdateCampaignInput) error

	// SoftDelete hides a campaign by forcing the failed status. Campaigns
	// already sending or completed cannot be deleted.
	SoftDelete(id, merchantID int64) error

	// Send validates preconditions, atomically moves the campaign into
	// sending and detaches the recipient fan-out. It returns as soon as
	// the dispatch is accepted.
	Send(id, merchantID int64) (*SendResult, error)

	GetStats(merchantID int64) (*CampaignStats, error)
	GetTimelineData(merchantID int64, days int) ([]TimelinePoint, error)
	GetReport(id, merchantID int64) (*CampaignReport, error)

	// FilterCustomers previews an audience. It runs the exact resolution
	// used by Send, so a previewed count matches a subsequent dispatch
	// against unchanged data.
	FilterCustomers(merchantID int64, criteria FilterCriteria) (*FilterResult, error)

	// SendDue dispatches scheduled campaigns whose time has passed.
	SendDue(now time.Time) error
}

// InstanceService manages channel instance lifecycle.
type InstanceService interface {
	Register(merchantID int64, input RegisterInstanceInput) (*models.WhatsAppInstance, error)
	List(merchantID int64) ([]*models.WhatsAppInstance, error)
	GetPrimary(merchantID int64) (*models.WhatsAppInstance, error)
	Update(id, merchantID int64, input UpdateInstanceInput) (*models.WhatsAppInstance, error)
	SetPrimary(id, merchantID int64) error
	Delete(id, merchantID int64) error
	TestConnection(input TestConnectionInput) *greenapi.StateCheck
	GetStats(merchantID int64) (*models.InstanceStats, error)
	GetExpiring(merchantID int64, now time.Time) (*models.ExpiringInstances, error)

	// SweepExpired classifies all instances and stores the expired state
	// for those past their expiry date.
	SweepExpired(now time.Time) (*ExpirySweep, error)
}

// SchedulerService controls one background sweep loop.
type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

// HealthService reports component health.
type HealthService interface {
	GetHealth() *HealthStatus
}
