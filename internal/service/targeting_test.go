package service_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/models"
	"github.com/waselhq/wasel/internal/repository/mocks"
	"github.com/waselhq/wasel/internal/service"
)

func TestParseTargetAudience(t *testing.T) {
	tests := []struct {
		name         string
		raw          sql.NullString
		wantErr      bool
		wantAll      bool
		wantExplicit []string
		wantCriteria bool
	}{
		{
			name:    "absent payload targets everyone",
			raw:     sql.NullString{},
			wantAll: true,
		},
		{
			name:    "empty string targets everyone",
			raw:     sql.NullString{String: "   ", Valid: true},
			wantAll: true,
		},
		{
			name:         "array is an explicit phone list",
			raw:          sql.NullString{String: `["12025550101","12025550102"]`, Valid: true},
			wantExplicit: []string{"12025550101", "12025550102"},
		},
		{
			name:         "empty array is explicit, not everyone",
			raw:          sql.NullString{String: `[]`, Valid: true},
			wantExplicit: []string{},
		},
		{
			name:         "object is filter criteria",
			raw:          sql.NullString{String: `{"lastActivityDays":30,"purchaseCountMin":2}`, Valid: true},
			wantCriteria: true,
		},
		{
			name:    "scalar is malformed",
			raw:     sql.NullString{String: `42`, Valid: true},
			wantErr: true,
		},
		{
			name:    "truncated array is malformed",
			raw:     sql.NullString{String: `["1202555`, Valid: true},
			wantErr: true,
		},
		{
			name:    "object with wrong field type is malformed",
			raw:     sql.NullString{String: `{"lastActivityDays":"thirty"}`, Valid: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audience, err := service.ParseTargetAudience(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, service.ErrMalformedAudience))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAll, audience.All())
			if tt.wantExplicit != nil {
				assert.Equal(t, tt.wantExplicit, audience.Explicit)
			}
			if tt.wantCriteria {
				require.NotNil(t, audience.Criteria)
			}
		})
	}
}

func conversation(id int64, phone, name string, purchases int, lastActivity time.Time) *models.Conversation {
	return &models.Conversation{
		ID:             id,
		MerchantID:     1,
		CustomerPhone:  phone,
		CustomerName:   sql.NullString{String: name, Valid: name != ""},
		PurchaseCount:  purchases,
		LastActivityAt: lastActivity,
	}
}

func TestResolver_Resolve_Explicit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockConvRepo := mocks.NewMockConversationRepository(ctrl)
	mockRepo.EXPECT().Conversation().Return(mockConvRepo).AnyTimes()

	now := time.Now()
	mockConvRepo.EXPECT().GetByMerchantID(int64(1)).Return([]*models.Conversation{
		conversation(10, "12025550101", "Alice", 3, now),
	}, nil)

	resolver := service.NewResolver(mockRepo, zap.NewNop())
	recipients, err := resolver.Resolve(1, &service.TargetAudience{
		Explicit: []string{"12025550101", "  ", "12025559999"},
	}, now)

	require.NoError(t, err)
	require.Len(t, recipients, 2)

	// Known phone is enriched from its conversation.
	assert.Equal(t, "12025550101", recipients[0].Phone)
	assert.Equal(t, "Alice", recipients[0].Name)
	assert.Equal(t, int64(10), recipients[0].ConversationID.Int64)

	// Unknown phone is still a valid target.
	assert.Equal(t, "12025559999", recipients[1].Phone)
	assert.Empty(t, recipients[1].Name)
	assert.False(t, recipients[1].ConversationID.Valid)
}

func TestResolver_Resolve_All(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockConvRepo := mocks.NewMockConversationRepository(ctrl)
	mockRepo.EXPECT().Conversation().Return(mockConvRepo).AnyTimes()

	now := time.Now()
	mockConvRepo.EXPECT().GetByMerchantID(int64(1)).Return([]*models.Conversation{
		conversation(1, "12025550101", "Alice", 0, now),
		conversation(2, "", "Phoneless", 0, now),
		conversation(3, "12025550103", "", 5, now),
	}, nil)

	resolver := service.NewResolver(mockRepo, zap.NewNop())
	recipients, err := resolver.Resolve(1, &service.TargetAudience{}, now)

	require.NoError(t, err)
	require.Len(t, recipients, 2)
	assert.Equal(t, "12025550101", recipients[0].Phone)
	assert.Equal(t, "12025550103", recipients[1].Phone)
}

func TestResolver_Criteria_AndSemantics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockConvRepo := mocks.NewMockConversationRepository(ctrl)
	mockRepo.EXPECT().Conversation().Return(mockConvRepo).AnyTimes()

	now := time.Now()
	recent := now.AddDate(0, 0, -5)
	stale := now.AddDate(0, 0, -90)

	mockConvRepo.EXPECT().GetByMerchantID(int64(1)).Return([]*models.Conversation{
		conversation(1, "12025550101", "RecentBuyer", 4, recent),
		conversation(2, "12025550102", "RecentBrowser", 0, recent),
		conversation(3, "12025550103", "StaleBuyer", 4, stale),
		conversation(4, "12025550104", "HeavyBuyer", 20, recent),
	}, nil)

	days := 30
	minPurchases := 2
	maxPurchases := 10

	resolver := service.NewResolver(mockRepo, zap.NewNop())
	recipients, err := resolver.Resolve(1, &service.TargetAudience{
		Criteria: &service.FilterCriteria{
			LastActivityDays: &days,
			PurchaseCountMin: &minPurchases,
			PurchaseCountMax: &maxPurchases,
		},
	}, now)

	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, "12025550101", recipients[0].Phone)
}

func TestResolver_Criteria_ProductFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockConvRepo := mocks.NewMockConversationRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockRepo.EXPECT().Conversation().Return(mockConvRepo).AnyTimes()
	mockRepo.EXPECT().Order().Return(mockOrderRepo).AnyTimes()

	now := time.Now()
	mockConvRepo.EXPECT().GetByMerchantID(int64(1)).Return([]*models.Conversation{
		conversation(1, "12025550101", "Alice", 2, now),
		conversation(2, "12025550102", "Bob", 2, now),
		conversation(3, "12025550103", "Carol", 2, now),
	}, nil)
	mockOrderRepo.EXPECT().GetByMerchantID(int64(1)).Return([]*models.Order{
		{ID: 1, MerchantID: 1, CustomerPhone: "12025550101", Items: `[{"productId":7,"quantity":1}]`},
		{ID: 2, MerchantID: 1, CustomerPhone: "12025550102", Items: `[{"productId":8,"quantity":1}]`},
		// Unparseable items are skipped, not fatal.
		{ID: 3, MerchantID: 1, CustomerPhone: "12025550103", Items: `not json`},
	}, nil)

	resolver := service.NewResolver(mockRepo, zap.NewNop())
	recipients, err := resolver.Resolve(1, &service.TargetAudience{
		Criteria: &service.FilterCriteria{ProductIDs: []int64{7}},
	}, now)

	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, "12025550101", recipients[0].Phone)
}

// Preview and send-time resolution share one evaluator, so the preview
// count equals the number of recipients a send would produce.
func TestResolver_PreviewMatchesResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockConvRepo := mocks.NewMockConversationRepository(ctrl)
	mockRepo.EXPECT().Conversation().Return(mockConvRepo).AnyTimes()

	now := time.Now()
	conversations := []*models.Conversation{
		conversation(1, "12025550101", "Alice", 5, now.AddDate(0, 0, -2)),
		conversation(2, "12025550102", "Bob", 1, now.AddDate(0, 0, -2)),
		conversation(3, "12025550103", "Carol", 5, now.AddDate(0, 0, -60)),
	}
	mockConvRepo.EXPECT().GetByMerchantID(int64(1)).Return(conversations, nil).Times(2)

	days := 7
	minPurchases := 2
	criteria := service.FilterCriteria{
		LastActivityDays: &days,
		PurchaseCountMin: &minPurchases,
	}

	resolver := service.NewResolver(mockRepo, zap.NewNop())

	previewed, err := resolver.FilterConversations(1, criteria, now)
	require.NoError(t, err)

	resolved, err := resolver.Resolve(1, &service.TargetAudience{Criteria: &criteria}, now)
	require.NoError(t, err)

	assert.Equal(t, len(previewed), len(resolved))
	require.Len(t, resolved, 1)
	assert.Equal(t, "12025550101", resolved[0].Phone)
}
