package repository

import (
	"time"

	"github.com/waselhq/wasel/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Campaign returns campaign repository
	Campaign() CampaignRepository

	// CampaignLog returns delivery log repository
	CampaignLog() CampaignLogRepository

	// Instance returns channel instance repository
	Instance() InstanceRepository

	// Conversation returns conversation repository
	Conversation() ConversationRepository

	// Order returns order repository
	Order() OrderRepository

	// Merchant returns merchant repository
	Merchant() MerchantRepository
}

// CampaignUpdate carries the mutable campaign fields; nil means unchanged.
type CampaignUpdate struct {
	Name           *string
	Message        *string
	ImageURL       *string
	TargetAudience *string
	ScheduledAt    *time.Time
	Status         *models.CampaignStatus
}

// CampaignRepository interface defines campaign operations.
type CampaignRepository interface {
	Create(campaign *models.Campaign) (*models.Campaign, error)
	GetByID(id int64) (*models.Campaign, error)
	GetByMerchantID(merchantID int64) ([]*models.Campaign, error)
	Update(id int64, update CampaignUpdate) error

	// BeginDispatch conditionally moves the campaign into sending and sets
	// total_recipients in a single statement. It reports false when the
	// campaign was already sending or completed, so two concurrent send
	// calls can never both win.
	BeginDispatch(id int64, totalRecipients int) (bool, error)

	// FinishDispatch records the final sent count and marks the campaign
	// completed.
	FinishDispatch(id int64, sentCount int) error

	// MarkFailed forces the campaign into the terminal failed state.
	MarkFailed(id int64) error

	// GetDue returns scheduled campaigns whose send time has passed.
	GetDue(now time.Time) ([]*models.Campaign, error)
}

// CampaignLogRepository interface defines delivery log operations.
// The log is append-only; there is deliberately no update method.
type CampaignLogRepository interface {
	Append(log *models.CampaignLog) error
	GetByCampaignID(campaignID int64) ([]*models.CampaignLog, error)
	GetStats(campaignID int64) (*models.CampaignLogStats, error)
}

// InstanceUpdate carries the mutable instance fields; nil means unchanged.
type InstanceUpdate struct {
	Token       *string
	APIURL      *string
	PhoneNumber *string
	Status      *models.InstanceStatus
	ConnectedAt *time.Time
	LastSyncAt  *time.Time
	ExpiresAt   *time.Time
	Metadata    *string
}

// InstanceRepository interface defines channel instance operations.
type InstanceRepository interface {
	Create(instance *models.WhatsAppInstance) (*models.WhatsAppInstance, error)
	GetByID(id int64) (*models.WhatsAppInstance, error)

	// GetByInstanceID looks up by the provider-side identifier; returns
	// (nil, nil) when no instance carries it.
	GetByInstanceID(instanceID string) (*models.WhatsAppInstance, error)
	GetByMerchantID(merchantID int64) ([]*models.WhatsAppInstance, error)

	// GetPrimary returns the merchant's active primary instance, or
	// (nil, nil) when the merchant has none.
	GetPrimary(merchantID int64) (*models.WhatsAppInstance, error)
	Update(id int64, update InstanceUpdate) error

	// SetPrimary clears the primary flag on all of the merchant's
	// instances and sets it on the given one, as one transaction.
	SetPrimary(id, merchantID int64) error
	Delete(id int64) error
	CountActive(merchantID int64) (int, error)

	// GetActiveWithExpiry returns active instances that carry an expiry
	// timestamp, for expiration classification.
	GetActiveWithExpiry() ([]*models.WhatsAppInstance, error)
	MarkExpired(id int64) error
}

// ConversationRepository interface defines conversation reads.
type ConversationRepository interface {
	GetByMerchantID(merchantID int64) ([]*models.Conversation, error)
}

// OrderRepository interface defines order reads.
type OrderRepository interface {
	GetByMerchantID(merchantID int64) ([]*models.Order, error)
}

// MerchantRepository interface defines merchant reads.
type MerchantRepository interface {
	GetByID(id int64) (*models.Merchant, error)
}
