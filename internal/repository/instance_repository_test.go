package repository_test

import (
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waselhq/wasel/internal/models"
	"github.com/waselhq/wasel/internal/repository"
)

func TestInstanceRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInstanceRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)

	created, err := repo.Create(&models.WhatsAppInstance{
		MerchantID: merchantID,
		InstanceID: "1101000001",
		Token:      "secret",
		Status:     models.InstanceStatusPending,
		IsPrimary:  true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.GetByInstanceID("1101000001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, merchantID, got.MerchantID)

	// Unknown provider ids are a nil result, not an error.
	got, err = repo.GetByInstanceID("9999999999")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = repo.GetByID(created.ID + 999)
	assert.ErrorIs(t, err, repository.ErrInstanceNotFound)
}

func TestInstanceRepository_GetPrimary(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInstanceRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)

	// Primary but not active: not usable as a send channel.
	_, err = insertTestInstance(db, merchantID, "1101000001", "pending", true, nil)
	require.NoError(t, err)

	got, err := repo.GetPrimary(merchantID)
	require.NoError(t, err)
	assert.Nil(t, got)

	activeID, err := insertTestInstance(db, merchantID, "1101000002", "active", false, nil)
	require.NoError(t, err)
	require.NoError(t, repo.SetPrimary(activeID, merchantID))

	got, err = repo.GetPrimary(merchantID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, activeID, got.ID)
}

func TestInstanceRepository_SetPrimary(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInstanceRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)
	otherMerchantID, err := insertTestMerchant(db, "Shop B", "active")
	require.NoError(t, err)

	firstID, err := insertTestInstance(db, merchantID, "1101000001", "active", true, nil)
	require.NoError(t, err)
	secondID, err := insertTestInstance(db, merchantID, "1101000002", "active", false, nil)
	require.NoError(t, err)
	otherID, err := insertTestInstance(db, otherMerchantID, "2202000001", "active", true, nil)
	require.NoError(t, err)

	require.NoError(t, repo.SetPrimary(secondID, merchantID))

	// At most one primary per merchant, and the switch demoted the old one.
	instances, err := repo.GetByMerchantID(merchantID)
	require.NoError(t, err)
	primaries := 0
	for _, instance := range instances {
		if instance.IsPrimary {
			primaries++
			assert.Equal(t, secondID, instance.ID)
		}
	}
	assert.Equal(t, 1, primaries)

	first, err := repo.GetByID(firstID)
	require.NoError(t, err)
	assert.False(t, first.IsPrimary)

	// Another merchant's primary is untouched.
	other, err := repo.GetByID(otherID)
	require.NoError(t, err)
	assert.True(t, other.IsPrimary)

	// Targeting another merchant's instance changes nothing.
	err = repo.SetPrimary(otherID, merchantID)
	assert.ErrorIs(t, err, repository.ErrInstanceNotFound)
}

func TestInstanceRepository_Update(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInstanceRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)
	id, err := insertTestInstance(db, merchantID, "1101000001", "pending", false, nil)
	require.NoError(t, err)

	status := models.InstanceStatusActive
	now := time.Now()
	err = repo.Update(id, repository.InstanceUpdate{
		Status:      &status,
		PhoneNumber: ptr("12025550101"),
		ConnectedAt: &now,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.InstanceStatusActive, got.Status)
	assert.Equal(t, "12025550101", got.PhoneNumber.String)
	assert.True(t, got.ConnectedAt.Valid)

	err = repo.Update(id+999, repository.InstanceUpdate{Status: &status})
	assert.ErrorIs(t, err, repository.ErrInstanceNotFound)
}

func TestInstanceRepository_CountActive(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInstanceRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)

	_, err = insertTestInstance(db, merchantID, "1101000001", "active", true, nil)
	require.NoError(t, err)
	_, err = insertTestInstance(db, merchantID, "1101000002", "active", false, nil)
	require.NoError(t, err)
	_, err = insertTestInstance(db, merchantID, "1101000003", "expired", false, nil)
	require.NoError(t, err)

	count, err := repo.CountActive(merchantID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInstanceRepository_ExpirySweep(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInstanceRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)

	now := time.Now()
	expiredID, err := insertTestInstance(db, merchantID, "1101000001", "active", true, timePtr(now.Add(-time.Hour)))
	require.NoError(t, err)
	soonID, err := insertTestInstance(db, merchantID, "1101000002", "active", false, timePtr(now.Add(48*time.Hour)))
	require.NoError(t, err)
	// No expiry date: excluded from classification.
	_, err = insertTestInstance(db, merchantID, "1101000003", "active", false, nil)
	require.NoError(t, err)
	// Not active: excluded as well.
	_, err = insertTestInstance(db, merchantID, "1101000004", "inactive", false, timePtr(now.Add(-time.Hour)))
	require.NoError(t, err)

	withExpiry, err := repo.GetActiveWithExpiry()
	require.NoError(t, err)
	require.Len(t, withExpiry, 2)
	// Ordered soonest first.
	assert.Equal(t, expiredID, withExpiry[0].ID)
	assert.Equal(t, soonID, withExpiry[1].ID)

	require.NoError(t, repo.MarkExpired(expiredID))

	got, err := repo.GetByID(expiredID)
	require.NoError(t, err)
	assert.Equal(t, models.InstanceStatusExpired, got.Status)

	// The expired instance drops out of the next sweep's input.
	withExpiry, err = repo.GetActiveWithExpiry()
	require.NoError(t, err)
	require.Len(t, withExpiry, 1)
	assert.Equal(t, soonID, withExpiry[0].ID)
}

func TestInstanceRepository_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewInstanceRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)
	id, err := insertTestInstance(db, merchantID, "1101000001", "active", false, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))
	assert.ErrorIs(t, repo.Delete(id), repository.ErrInstanceNotFound)
}
