package models

import (
	"database/sql"
	"time"
)

// Conversation is a merchant's chat history with one customer. It is the
// source of campaign recipients and carries the activity/purchase signals
// used by audience filters.
type Conversation struct {
	ID             int64          `db:"id" json:"id"`
	MerchantID     int64          `db:"merchant_id" json:"merchant_id"`
	CustomerPhone  string         `db:"customer_phone" json:"customer_phone"`
	CustomerName   sql.NullString `db:"customer_name" json:"customer_name,omitempty"`
	PurchaseCount  int            `db:"purchase_count" json:"purchase_count"`
	LastActivityAt time.Time      `db:"last_activity_at" json:"last_activity_at"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// Order is a stored purchase. Items is a JSON-encoded list of line items;
// only the product ids are read here, for product-based audience filters.
type Order struct {
	ID            int64     `db:"id" json:"id"`
	MerchantID    int64     `db:"merchant_id" json:"merchant_id"`
	CustomerPhone string    `db:"customer_phone" json:"customer_phone"`
	Items         string    `db:"items" json:"items"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// OrderItem is one line of an order's Items payload.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity,omitempty"`
}

// Recipient is a resolved campaign target. Derived at send time, never
// persisted.
type Recipient struct {
	Phone          string
	Name           string
	ConversationID sql.NullInt64
}
