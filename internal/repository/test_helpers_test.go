package repository_test

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

func insertTestMerchant(db *sqlx.DB, businessName, status string) (int64, error) {
	var id int64
	query := `
		INSERT INTO merchants (business_name, status)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := db.QueryRow(query, businessName, status).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test merchant: %w", err)
	}

	return id, nil
}

func insertTestConversation(db *sqlx.DB, merchantID int64, phone, name string, purchaseCount int, lastActivityAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO conversations (merchant_id, customer_phone, customer_name, purchase_count, last_activity_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := db.QueryRow(query, merchantID, phone, name, purchaseCount, lastActivityAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test conversation: %w", err)
	}

	return id, nil
}

func insertTestOrder(db *sqlx.DB, merchantID int64, phone, items string) (int64, error) {
	var id int64
	query := `
		INSERT INTO orders (merchant_id, customer_phone, items)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := db.QueryRow(query, merchantID, phone, items).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test order: %w", err)
	}

	return id, nil
}

func insertTestCampaign(db *sqlx.DB, merchantID int64, name, status string, scheduledAt *time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO campaigns (merchant_id, name, message, status, scheduled_at)
		VALUES ($1, $2, 'test message', $3, $4)
		RETURNING id
	`

	if err := db.QueryRow(query, merchantID, name, status, scheduledAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test campaign: %w", err)
	}

	return id, nil
}

func insertTestInstance(db *sqlx.DB, merchantID int64, instanceID, status string, isPrimary bool, expiresAt *time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO whatsapp_instances (merchant_id, instance_id, token, status, is_primary, expires_at)
		VALUES ($1, $2, 'test-token', $3, $4, $5)
		RETURNING id
	`

	if err := db.QueryRow(query, merchantID, instanceID, status, isPrimary, expiresAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test instance: %w", err)
	}

	return id, nil
}

func campaignStatus(db *sqlx.DB, id int64) (string, error) {
	var status string
	err := db.Get(&status, "SELECT status FROM campaigns WHERE id = $1", id)
	return status, err
}

func ptr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
