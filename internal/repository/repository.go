// Package repository provides PostgreSQL persistence for campaigns,
// delivery logs, channel instances and the audience tables they read.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db           *sqlx.DB
	campaign     CampaignRepository
	campaignLog  CampaignLogRepository
	instance     InstanceRepository
	conversation ConversationRepository
	order        OrderRepository
	merchant     MerchantRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:           db,
		campaign:     NewCampaignRepository(db),
		campaignLog:  NewCampaignLogRepository(db),
		instance:     NewInstanceRepository(db),
		conversation: NewConversationRepository(db),
		order:        NewOrderRepository(db),
		merchant:     NewMerchantRepository(db),
	}
}

// Campaign returns the campaign repository.
func (r *repositoryImpl) Campaign() CampaignRepository {
	return r.campaign
}

// CampaignLog returns the delivery log repository.
func (r *repositoryImpl) CampaignLog() CampaignLogRepository {
	return r.campaignLog
}

// Instance returns the channel instance repository.
func (r *repositoryImpl) Instance() InstanceRepository {
	return r.instance
}

// Conversation returns the conversation repository.
func (r *repositoryImpl) Conversation() ConversationRepository {
	return r.conversation
}

// Order returns the order repository.
func (r *repositoryImpl) Order() OrderRepository {
	return r.order
}

// Merchant returns the merchant repository.
func (r *repositoryImpl) Merchant() MerchantRepository {
	return r.merchant
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
