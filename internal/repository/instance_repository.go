package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/waselhq/wasel/internal/models"
)

// ErrInstanceNotFound is returned when an instance id has no row.
var ErrInstanceNotFound = errors.New("instance not found")

type instanceRepository struct {
	db *sqlx.DB
}

func NewInstanceRepository(db *sqlx.DB) InstanceRepository {
	return &instanceRepository{
		db: db,
	}
}

const instanceColumns = `id, merchant_id, instance_id, token, api_url, phone_number,
		status, is_primary, connected_at, last_sync_at, expires_at, metadata,
		created_at, updated_at`

// Create inserts a new channel instance and returns the stored row.
func (r *instanceRepository) Create(instance *models.WhatsAppInstance) (*models.WhatsAppInstance, error) {
	query := `
		INSERT INTO whatsapp_instances (merchant_id, instance_id, token, api_url,
			phone_number, status, is_primary, connected_at, expires_at, metadata,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING ` + instanceColumns

	now := time.Now()
	var created models.WhatsAppInstance
	err := r.db.Get(&created, query,
		instance.MerchantID, instance.InstanceID, instance.Token, instance.APIURL,
		instance.PhoneNumber, instance.Status, instance.IsPrimary,
		instance.ConnectedAt, instance.ExpiresAt, instance.Metadata, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}

	return &created, nil
}

// GetByID retrieves one instance.
func (r *instanceRepository) GetByID(id int64) (*models.WhatsAppInstance, error) {
	query := `SELECT ` + instanceColumns + ` FROM whatsapp_instances WHERE id = $1`

	var instance models.WhatsAppInstance
	err := r.db.Get(&instance, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}

	return &instance, nil
}

// GetByInstanceID looks up by the globally unique provider identifier.
func (r *instanceRepository) GetByInstanceID(instanceID string) (*models.WhatsAppInstance, error) {
	query := `SELECT ` + instanceColumns + ` FROM whatsapp_instances WHERE instance_id = $1`

	var instance models.WhatsAppInstance
	err := r.db.Get(&instance, query, instanceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get instance by provider id: %w", err)
	}

	return &instance, nil
}

// GetByMerchantID retrieves all of a merchant's instances, primary first.
func (r *instanceRepository) GetByMerchantID(merchantID int64) ([]*models.WhatsAppInstance, error) {
	query := `SELECT ` + instanceColumns + `
		FROM whatsapp_instances
		WHERE merchant_id = $1
		ORDER BY is_primary DESC, created_at DESC`

	var instances []*models.WhatsAppInstance
	err := r.db.Select(&instances, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get instances by merchant: %w", err)
	}

	return instances, nil
}

// GetPrimary retrieves the merchant's active primary instance, if any.
func (r *instanceRepository) GetPrimary(merchantID int64) (*models.WhatsAppInstance, error) {
	query := `SELECT ` + instanceColumns + `
		FROM whatsapp_instances
		WHERE merchant_id = $1
		  AND is_primary = TRUE
		  AND status = $2`

	var instance models.WhatsAppInstance
	err := r.db.Get(&instance, query, merchantID, models.InstanceStatusActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get primary instance: %w", err)
	}

	return &instance, nil
}

// Update applies the non-nil fields of the update to the instance row.
func (r *instanceRepository) Update(id int64, update InstanceUpdate) error {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Token != nil {
		add("token", *update.Token)
	}
	if update.APIURL != nil {
		add("api_url", *update.APIURL)
	}
	if update.PhoneNumber != nil {
		add("phone_number", *update.PhoneNumber)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}
	if update.ConnectedAt != nil {
		add("connected_at", *update.ConnectedAt)
	}
	if update.LastSyncAt != nil {
		add("last_sync_at", *update.LastSyncAt)
	}
	if update.ExpiresAt != nil {
		add("expires_at", *update.ExpiresAt)
	}
	if update.Metadata != nil {
		add("metadata", *update.Metadata)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE whatsapp_instances SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update instance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrInstanceNotFound
	}

	return nil
}

// SetPrimary clears every primary flag the merchant holds and sets the
// target in the same transaction, so no reader ever sees zero or two
// primaries.
func (r *instanceRepository) SetPrimary(id, merchantID int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now()

	_, err = tx.Exec(`
		UPDATE whatsapp_instances
		SET is_primary = FALSE, updated_at = $2
		WHERE merchant_id = $1`, merchantID, now)
	if err != nil {
		return fmt.Errorf("failed to clear primary flags: %w", err)
	}

	result, err := tx.Exec(`
		UPDATE whatsapp_instances
		SET is_primary = TRUE, updated_at = $3
		WHERE id = $1 AND merchant_id = $2`, id, merchantID, now)
	if err != nil {
		return fmt.Errorf("failed to set primary flag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrInstanceNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit set primary: %w", err)
	}

	return nil
}

// Delete removes the instance row.
func (r *instanceRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM whatsapp_instances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete instance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrInstanceNotFound
	}

	return nil
}

// CountActive counts the merchant's active instances.
func (r *instanceRepository) CountActive(merchantID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM whatsapp_instances WHERE merchant_id = $1 AND status = $2`

	err := r.db.Get(&count, query, merchantID, models.InstanceStatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to count active instances: %w", err)
	}

	return count, nil
}

// GetActiveWithExpiry retrieves active instances carrying an expiry date.
func (r *instanceRepository) GetActiveWithExpiry() ([]*models.WhatsAppInstance, error) {
	query := `SELECT ` + instanceColumns + `
		FROM whatsapp_instances
		WHERE status = $1
		  AND expires_at IS NOT NULL
		ORDER BY expires_at ASC`

	var instances []*models.WhatsAppInstance
	err := r.db.Select(&instances, query, models.InstanceStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get instances with expiry: %w", err)
	}

	return instances, nil
}

// MarkExpired stores the expired classification.
func (r *instanceRepository) MarkExpired(id int64) error {
	query := `UPDATE whatsapp_instances SET status = $2, updated_at = $3 WHERE id = $1`

	_, err := r.db.Exec(query, id, models.InstanceStatusExpired, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark instance expired: %w", err)
	}

	return nil
}
