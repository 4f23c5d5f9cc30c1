// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
)

// Campaign represents a bulk-send job owned by a merchant.
type Campaign struct {
	ID              int64          `db:"id" json:"id"`
	MerchantID      int64          `db:"merchant_id" json:"merchant_id"`
	Name            string         `db:"name" json:"name"`
	Message         string         `db:"message" json:"message"`
	ImageURL        sql.NullString `db:"image_url" json:"image_url,omitempty"`
	TargetAudience  sql.NullString `db:"target_audience" json:"target_audience,omitempty"`
	Status          CampaignStatus `db:"status" json:"status"`
	ScheduledAt     sql.NullTime   `db:"scheduled_at" json:"scheduled_at,omitempty"`
	SentCount       int            `db:"sent_count" json:"sent_count"`
	TotalRecipients int            `db:"total_recipients" json:"total_recipients"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// Editable reports whether the campaign may still be modified. A campaign
// that is being dispatched or has finished dispatching is frozen.
func (c *Campaign) Editable() bool {
	return c.Status != CampaignStatusSending && c.Status != CampaignStatusCompleted
}
