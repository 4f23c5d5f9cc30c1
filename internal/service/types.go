package service

import (
	"time"

	"github.com/waselhq/wasel/internal/greenapi"
	"github.com/waselhq/wasel/internal/models"
)

// CreateCampaignInput carries the fields of a new campaign. A future
// ScheduledAt puts the campaign into the scheduled state.
type CreateCampaignInput struct {
	Name           string     `json:"name"`
	Message        string     `json:"message"`
	ImageURL       *string    `json:"image_url,omitempty"`
	TargetAudience *string    `json:"target_audience,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
}

// UpdateCampaignInput carries pre-send edits; nil fields are unchanged.
type UpdateCampaignInput struct {
	Name           *string    `json:"name,omitempty"`
	Message        *string    `json:"message,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
	TargetAudience *string    `json:"target_audience,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
}

// SendResult acknowledges that a dispatch was started. Delivery outcomes
// are observable later through the report and stats endpoints only.
type SendResult struct {
	Accepted        bool `json:"accepted"`
	TotalRecipients int  `json:"total_recipients"`
}

// CampaignStats aggregates completed campaigns for one merchant.
// ReadRate is a heuristic: the provider exposes no read receipts, so it is
// approximated as 75% of the delivery rate and must be labeled as such.
type CampaignStats struct {
	TotalCampaigns     int     `json:"total_campaigns"`
	CompletedCampaigns int     `json:"completed_campaigns"`
	TotalSent          int     `json:"total_sent"`
	DeliveryRate       float64 `json:"delivery_rate"`
	ReadRate           float64 `json:"read_rate"`
	ReadRateEstimated  bool    `json:"read_rate_estimated"`
}

// TimelinePoint is one day of campaign volume. Delivered mirrors Sent and
// Read is the same 75% heuristic as in CampaignStats.
type TimelinePoint struct {
	Date      string `json:"date"`
	Sent      int    `json:"sent"`
	Delivered int    `json:"delivered"`
	Read      int    `json:"read"`
}

// CampaignReport bundles a campaign with its full delivery log.
type CampaignReport struct {
	Campaign *models.Campaign          `json:"campaign"`
	Logs     []*models.CampaignLog     `json:"logs"`
	Stats    *models.CampaignLogStats  `json:"stats"`
}

// FilterResult is the audience preview: the matching customers and their
// count, produced by the same resolution used at send time.
type FilterResult struct {
	Customers []*models.Conversation `json:"customers"`
	Count     int                    `json:"count"`
}

// RegisterInstanceInput registers or refreshes a channel instance.
// Connected marks the instance active with a connection timestamp, as a
// successful pairing flow does; otherwise it starts pending.
type RegisterInstanceInput struct {
	InstanceID  string     `json:"instance_id"`
	Token       string     `json:"token"`
	APIURL      *string    `json:"api_url,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsPrimary   bool       `json:"is_primary,omitempty"`
	Connected   bool       `json:"connected,omitempty"`
}

// UpdateInstanceInput carries instance edits; nil fields are unchanged.
type UpdateInstanceInput struct {
	Token       *string                `json:"token,omitempty"`
	APIURL      *string                `json:"api_url,omitempty"`
	PhoneNumber *string                `json:"phone_number,omitempty"`
	Status      *models.InstanceStatus `json:"status,omitempty"`
	ExpiresAt   *time.Time             `json:"expires_at,omitempty"`
}

// TestConnectionInput addresses a provider instance directly, without
// requiring it to be registered first.
type TestConnectionInput struct {
	InstanceID string  `json:"instance_id"`
	Token      string  `json:"token"`
	APIURL     *string `json:"api_url,omitempty"`
}

// ExpirySweep summarizes one run of the expiration check.
type ExpirySweep struct {
	Expiring7Days int `json:"expiring_7_days"`
	Expiring3Days int `json:"expiring_3_days"`
	Expiring1Day  int `json:"expiring_1_day"`
	Expired       int `json:"expired"`
}

// HealthStatus reports component health for the health endpoint.
type HealthStatus struct {
	Status               string                `json:"status"`
	DatabaseStatus       string                `json:"database_status"`
	RedisStatus          string                `json:"redis_status"`
	CampaignSweepStatus  string                `json:"campaign_sweep_status"`
	ExpirySweepStatus    string                `json:"expiry_sweep_status"`
	CircuitBreakerState  greenapi.BreakerState `json:"circuit_breaker_state"`
	CircuitBreakerCounts string                `json:"circuit_breaker_counts"`
}
