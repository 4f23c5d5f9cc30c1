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

// ErrCampaignNotFound is returned when a campaign id has no row.
var ErrCampaignNotFound = errors.New("campaign not found")

type campaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

const campaignColumns = `id, merchant_id, name, message, image_url, target_audience,
		status, scheduled_at, sent_count, total_recipients, created_at, updated_at`

// Create inserts a new campaign and returns the stored row.
func (r *campaignRepository) Create(campaign *models.Campaign) (*models.Campaign, error) {
	query := `
		INSERT INTO campaigns (merchant_id, name, message, image_url, target_audience,
			status, scheduled_at, sent_count, total_recipients, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, $8, $8)
		RETURNING ` + campaignColumns

	now := time.Now()
	var created models.Campaign
	err := r.db.Get(&created, query,
		campaign.MerchantID, campaign.Name, campaign.Message,
		campaign.ImageURL, campaign.TargetAudience, campaign.Status,
		campaign.ScheduledAt, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return &created, nil
}

// GetByID retrieves one campaign.
func (r *campaignRepository) GetByID(id int64) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	var campaign models.Campaign
	err := r.db.Get(&campaign, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return &campaign, nil
}

// GetByMerchantID retrieves all campaigns owned by a merchant, newest first.
func (r *campaignRepository) GetByMerchantID(merchantID int64) ([]*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE merchant_id = $1
		ORDER BY created_at DESC`

	var campaigns []*models.Campaign
	err := r.db.Select(&campaigns, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns by merchant: %w", err)
	}

	return campaigns, nil
}

// Update applies the non-nil fields of the update to the campaign row.
func (r *campaignRepository) Update(id int64, update CampaignUpdate) error {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Message != nil {
		add("message", *update.Message)
	}
	if update.ImageURL != nil {
		add("image_url", *update.ImageURL)
	}
	if update.TargetAudience != nil {
		add("target_audience", *update.TargetAudience)
	}
	if update.ScheduledAt != nil {
		add("scheduled_at", *update.ScheduledAt)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE campaigns SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

// BeginDispatch performs the draft/scheduled -> sending transition as a
// conditional write. The WHERE clause is the whole point: a campaign that
// is already sending or completed is left untouched and false is reported.
func (r *campaignRepository) BeginDispatch(id int64, totalRecipients int) (bool, error) {
	query := `
		UPDATE campaigns
		SET status = $2,
		    total_recipients = $3,
		    updated_at = $4
		WHERE id = $1
		  AND status NOT IN ($5, $6)
	`

	result, err := r.db.Exec(query, id,
		models.CampaignStatusSending, totalRecipients, time.Now(),
		models.CampaignStatusSending, models.CampaignStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to begin dispatch: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows == 1, nil
}

// FinishDispatch records the aggregate outcome and completes the campaign.
func (r *campaignRepository) FinishDispatch(id int64, sentCount int) error {
	query := `
		UPDATE campaigns
		SET status = $2,
		    sent_count = $3,
		    updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, models.CampaignStatusCompleted, sentCount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to finish dispatch: %w", err)
	}

	return nil
}

// MarkFailed forces the terminal failed state.
func (r *campaignRepository) MarkFailed(id int64) error {
	query := `UPDATE campaigns SET status = $2, updated_at = $3 WHERE id = $1`

	_, err := r.db.Exec(query, id, models.CampaignStatusFailed, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark campaign failed: %w", err)
	}

	return nil
}

// GetDue returns scheduled campaigns whose scheduled_at has passed.
func (r *campaignRepository) GetDue(now time.Time) ([]*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE status = $1
		  AND scheduled_at IS NOT NULL
		  AND scheduled_at <= $2
		ORDER BY scheduled_at ASC`

	var campaigns []*models.Campaign
	err := r.db.Select(&campaigns, query, models.CampaignStatusScheduled, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due campaigns: %w", err)
	}

	return campaigns, nil
}
