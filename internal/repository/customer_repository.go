package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/waselhq/wasel/internal/models"
)

// ErrMerchantNotFound is returned when a merchant id has no row.
var ErrMerchantNotFound = errors.New("merchant not found")

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// GetByMerchantID retrieves all conversations for a merchant.
func (r *conversationRepository) GetByMerchantID(merchantID int64) ([]*models.Conversation, error) {
	query := `
		SELECT id, merchant_id, customer_phone, customer_name, purchase_count,
			last_activity_at, created_at, updated_at
		FROM conversations
		WHERE merchant_id = $1
		ORDER BY last_activity_at DESC
	`

	var conversations []*models.Conversation
	err := r.db.Select(&conversations, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}

	return conversations, nil
}

type orderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// GetByMerchantID retrieves all orders for a merchant.
func (r *orderRepository) GetByMerchantID(merchantID int64) ([]*models.Order, error) {
	query := `
		SELECT id, merchant_id, customer_phone, items, created_at
		FROM orders
		WHERE merchant_id = $1
		ORDER BY created_at DESC
	`

	var orders []*models.Order
	err := r.db.Select(&orders, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

type merchantRepository struct {
	db *sqlx.DB
}

func NewMerchantRepository(db *sqlx.DB) MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// GetByID retrieves one merchant.
func (r *merchantRepository) GetByID(id int64) (*models.Merchant, error) {
	query := `
		SELECT id, business_name, status, created_at, updated_at
		FROM merchants
		WHERE id = $1
	`

	var merchant models.Merchant
	err := r.db.Get(&merchant, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}

	return &merchant, nil
}
