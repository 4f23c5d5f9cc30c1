package repository_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waselhq/wasel/internal/models"
	"github.com/waselhq/wasel/internal/repository"
)

func TestCampaignLogRepository_AppendAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCampaignLogRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)
	campaignID, err := insertTestCampaign(db, merchantID, "Launch", "sending", nil)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	entries := []*models.CampaignLog{
		{
			CampaignID:    campaignID,
			CustomerPhone: "12025550101",
			CustomerName:  sql.NullString{String: "Alice", Valid: true},
			Status:        models.DeliveryStatusSuccess,
			SentAt:        base,
		},
		{
			CampaignID:    campaignID,
			CustomerPhone: "12025550102",
			Status:        models.DeliveryStatusFailed,
			ErrorMessage:  sql.NullString{String: "provider timeout: request timed out", Valid: true},
			SentAt:        base.Add(time.Minute),
		},
		{
			CampaignID:    campaignID,
			CustomerPhone: "12025550103",
			Status:        models.DeliveryStatusSuccess,
			SentAt:        base.Add(2 * time.Minute),
		},
	}
	for _, entry := range entries {
		require.NoError(t, repo.Append(entry))
	}

	logs, err := repo.GetByCampaignID(campaignID)
	require.NoError(t, err)
	require.Len(t, logs, 3)

	// Newest first.
	assert.Equal(t, "12025550103", logs[0].CustomerPhone)
	assert.Equal(t, "12025550102", logs[1].CustomerPhone)
	assert.Equal(t, "12025550101", logs[2].CustomerPhone)

	assert.Equal(t, "Alice", logs[2].CustomerName.String)
	assert.True(t, logs[1].ErrorMessage.Valid)
	assert.False(t, logs[0].ErrorMessage.Valid)
}

func TestCampaignLogRepository_GetStats(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCampaignLogRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)
	campaignID, err := insertTestCampaign(db, merchantID, "Launch", "sending", nil)
	require.NoError(t, err)

	statuses := []models.DeliveryStatus{
		models.DeliveryStatusSuccess,
		models.DeliveryStatusSuccess,
		models.DeliveryStatusFailed,
		models.DeliveryStatusPending,
	}
	for i, status := range statuses {
		require.NoError(t, repo.Append(&models.CampaignLog{
			CampaignID:    campaignID,
			CustomerPhone: "1202555010" + string(rune('0'+i)),
			Status:        status,
			SentAt:        time.Now(),
		}))
	}

	stats, err := repo.GetStats(campaignID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Success)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 50, stats.SuccessRate)
}

func TestCampaignLogRepository_GetStats_Empty(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewCampaignLogRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)
	campaignID, err := insertTestCampaign(db, merchantID, "Quiet", "draft", nil)
	require.NoError(t, err)

	stats, err := repo.GetStats(campaignID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.SuccessRate)
}
