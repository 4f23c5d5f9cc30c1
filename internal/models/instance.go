package models

import (
	"database/sql"
	"time"
)

type InstanceStatus string

const (
	InstanceStatusPending  InstanceStatus = "pending"
	InstanceStatusActive   InstanceStatus = "active"
	InstanceStatusInactive InstanceStatus = "inactive"
	InstanceStatusExpired  InstanceStatus = "expired"
)

// WhatsAppInstance is one connected WhatsApp channel. InstanceID is the
// provider-side identifier and is unique across all merchants.
type WhatsAppInstance struct {
	ID          int64          `db:"id" json:"id"`
	MerchantID  int64          `db:"merchant_id" json:"merchant_id"`
	InstanceID  string         `db:"instance_id" json:"instance_id"`
	Token       string         `db:"token" json:"-"`
	APIURL      string         `db:"api_url" json:"api_url"`
	PhoneNumber sql.NullString `db:"phone_number" json:"phone_number,omitempty"`
	Status      InstanceStatus `db:"status" json:"status"`
	IsPrimary   bool           `db:"is_primary" json:"is_primary"`
	ConnectedAt sql.NullTime   `db:"connected_at" json:"connected_at,omitempty"`
	LastSyncAt  sql.NullTime   `db:"last_sync_at" json:"last_sync_at,omitempty"`
	ExpiresAt   sql.NullTime   `db:"expires_at" json:"expires_at,omitempty"`
	Metadata    sql.NullString `db:"metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// ExpiringInstances partitions active instances by how close their
// expiry date is. An instance lands in exactly one bucket.
type ExpiringInstances struct {
	Expiring7Days []*WhatsAppInstance `json:"expiring_7_days"`
	Expiring3Days []*WhatsAppInstance `json:"expiring_3_days"`
	Expiring1Day  []*WhatsAppInstance `json:"expiring_1_day"`
	Expired       []*WhatsAppInstance `json:"expired"`
}

// InstanceStats summarizes a merchant's instances by status.
type InstanceStats struct {
	Total    int               `json:"total"`
	Active   int               `json:"active"`
	Inactive int               `json:"inactive"`
	Expired  int               `json:"expired"`
	Primary  *WhatsAppInstance `json:"primary,omitempty"`
}
