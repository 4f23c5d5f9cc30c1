package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/waselhq/wasel/internal/models"
)

type campaignLogRepository struct {
	db *sqlx.DB
}

func NewCampaignLogRepository(db *sqlx.DB) CampaignLogRepository {
	return &campaignLogRepository{
		db: db,
	}
}

// Append inserts one delivery attempt row. The log is append-only;
// duplicate recipients across resends are expected and preserved.
func (r *campaignLogRepository) Append(log *models.CampaignLog) error {
	query := `
		INSERT INTO campaign_logs (campaign_id, customer_id, customer_phone,
			customer_name, status, error_message, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		log.CampaignID, log.CustomerID, log.CustomerPhone,
		log.CustomerName, log.Status, log.ErrorMessage, log.SentAt)
	if err != nil {
		return fmt.Errorf("failed to append campaign log: %w", err)
	}

	return nil
}

// GetByCampaignID retrieves the full delivery log, newest attempt first.
func (r *campaignLogRepository) GetByCampaignID(campaignID int64) ([]*models.CampaignLog, error) {
	query := `
		SELECT id, campaign_id, customer_id, customer_phone, customer_name,
			status, error_message, sent_at
		FROM campaign_logs
		WHERE campaign_id = $1
		ORDER BY sent_at DESC
	`

	var logs []*models.CampaignLog
	err := r.db.Select(&logs, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign logs: %w", err)
	}

	return logs, nil
}

// GetStats aggregates outcome counts for one campaign.
func (r *campaignLogRepository) GetStats(campaignID int64) (*models.CampaignLogStats, error) {
	query := `
		SELECT COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = $2) AS success,
			COUNT(*) FILTER (WHERE status = $3) AS failed,
			COUNT(*) FILTER (WHERE status = $4) AS pending
		FROM campaign_logs
		WHERE campaign_id = $1
	`

	var stats models.CampaignLogStats
	err := r.db.Get(&stats, query, campaignID,
		models.DeliveryStatusSuccess, models.DeliveryStatusFailed, models.DeliveryStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign log stats: %w", err)
	}

	if stats.Total > 0 {
		stats.SuccessRate = int(float64(stats.Success)/float64(stats.Total)*100 + 0.5)
	}

	return &stats, nil
}
