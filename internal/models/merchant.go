package models

import "time"

type MerchantStatus string

const (
	MerchantStatusActive    MerchantStatus = "active"
	MerchantStatusSuspended MerchantStatus = "suspended"
	MerchantStatusPending   MerchantStatus = "pending"
)

// Merchant is the owning tenant of campaigns and channel instances.
// Only the business state is read here; account management lives elsewhere.
type Merchant struct {
	ID           int64          `db:"id" json:"id"`
	BusinessName string         `db:"business_name" json:"business_name"`
	Status       MerchantStatus `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
