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

func TestRepository_Ping(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)
	assert.NoError(t, repo.Ping())

	require.NotNil(t, repo.Campaign())
	require.NotNil(t, repo.CampaignLog())
	require.NotNil(t, repo.Instance())
	require.NotNil(t, repo.Conversation())
	require.NotNil(t, repo.Order())
	require.NotNil(t, repo.Merchant())
}

func TestConversationRepository_GetByMerchantID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewConversationRepository(db)

	merchantA, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)
	merchantB, err := insertTestMerchant(db, "Shop B", "active")
	require.NoError(t, err)

	now := time.Now()
	_, err = insertTestConversation(db, merchantA, "12025550101", "Alice", 3, now)
	require.NoError(t, err)
	_, err = insertTestConversation(db, merchantA, "12025550102", "", 0, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	_, err = insertTestConversation(db, merchantB, "12025550101", "Other Alice", 1, now)
	require.NoError(t, err)

	conversations, err := repo.GetByMerchantID(merchantA)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	for _, c := range conversations {
		assert.Equal(t, merchantA, c.MerchantID)
	}
}

func TestOrderRepository_GetByMerchantID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewOrderRepository(db)

	merchantID, err := insertTestMerchant(db, "Shop A", "active")
	require.NoError(t, err)

	_, err = insertTestOrder(db, merchantID, "12025550101", `[{"productId":7,"quantity":2}]`)
	require.NoError(t, err)

	orders, err := repo.GetByMerchantID(merchantID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "12025550101", orders[0].CustomerPhone)
	assert.Contains(t, orders[0].Items, `"productId":7`)
}

func TestMerchantRepository_GetByID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewMerchantRepository(db)

	id, err := insertTestMerchant(db, "Shop A", "suspended")
	require.NoError(t, err)

	merchant, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Shop A", merchant.BusinessName)
	assert.Equal(t, models.MerchantStatusSuspended, merchant.Status)

	_, err = repo.GetByID(id + 999)
	assert.ErrorIs(t, err, repository.ErrMerchantNotFound)
}
