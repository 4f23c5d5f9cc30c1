package models

import (
	"database/sql"
	"time"
)

type DeliveryStatus string

const (
	DeliveryStatusSuccess DeliveryStatus = "success"
	DeliveryStatusFailed  DeliveryStatus = "failed"
	DeliveryStatusPending DeliveryStatus = "pending"
)

// CampaignLog is one per-recipient delivery attempt. Rows are append-only:
// a resend always creates new rows, never updates existing ones.
type CampaignLog struct {
	ID            int64          `db:"id" json:"id"`
	CampaignID    int64          `db:"campaign_id" json:"campaign_id"`
	CustomerID    sql.NullInt64  `db:"customer_id" json:"customer_id,omitempty"`
	CustomerPhone string         `db:"customer_phone" json:"customer_phone"`
	CustomerName  sql.NullString `db:"customer_name" json:"customer_name,omitempty"`
	Status        DeliveryStatus `db:"status" json:"status"`
	ErrorMessage  sql.NullString `db:"error_message" json:"error_message,omitempty"`
	SentAt        time.Time      `db:"sent_at" json:"sent_at"`
}

// CampaignLogStats aggregates delivery outcomes for one campaign.
type CampaignLogStats struct {
	Total       int `db:"total" json:"total"`
	Success     int `db:"success" json:"success"`
	Failed      int `db:"failed" json:"failed"`
	Pending     int `db:"pending" json:"pending"`
	SuccessRate int `json:"success_rate"`
}
