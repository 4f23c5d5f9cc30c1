package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/models"
	"github.com/waselhq/wasel/internal/repository"
)

// readRateFraction approximates read receipts as a fixed share of
// delivered messages. The provider exposes none, so stats label this as
// an estimate rather than a real signal.
const readRateFraction = 0.75

const statsCacheTTL = time.Minute

type campaignService struct {
	repo        repository.Repository
	redisClient *redis.Client
	resolver    *Resolver
	dispatcher  *Dispatcher
	logger      *zap.Logger
}

func NewCampaignService(
	repo repository.Repository,
	redisClient *redis.Client,
	resolver *Resolver,
	dispatcher *Dispatcher,
	logger *zap.Logger,
) CampaignService {
	return &campaignService{
		repo:        repo,
		redisClient: redisClient,
		resolver:    resolver,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// Create stores a new campaign. Only active merchants may create one; a
// future scheduled time puts it into the scheduled state.
func (s *campaignService) Create(merchantID int64, input CreateCampaignInput) (*models.Campaign, error) {
	merchant, err := s.repo.Merchant().GetByID(merchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Status != models.MerchantStatusActive {
		return nil, ErrMerchantNotActive
	}

	campaign := &models.Campaign{
		MerchantID: merchantID,
		Name:       input.Name,
		Message:    input.Message,
		Status:     models.CampaignStatusDraft,
	}
	if input.ImageURL != nil {
		campaign.ImageURL = sql.NullString{String: *input.ImageURL, Valid: true}
	}
	if input.TargetAudience != nil {
		if _, err := ParseTargetAudience(sql.NullString{String: *input.TargetAudience, Valid: true}); err != nil {
			return nil, err
		}
		campaign.TargetAudience = sql.NullString{String: *input.TargetAudience, Valid: true}
	}
	if input.ScheduledAt != nil {
		campaign.ScheduledAt = sql.NullTime{Time: *input.ScheduledAt, Valid: true}
		campaign.Status = models.CampaignStatusScheduled
	}

	created, err := s.repo.Campaign().Create(campaign)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Campaign created",
		zap.Int64("campaignID", created.ID),
		zap.Int64("merchantID", merchantID),
		zap.String("status", string(created.Status)))

	return created, nil
}

// List returns the merchant's campaigns.
func (s *campaignService) List(merchantID int64) ([]*models.Campaign, error) {
	return s.repo.Campaign().GetByMerchantID(merchantID)
}

// Get returns one campaign after an ownership check.
func (s *campaignService) Get(id, merchantID int64) (*models.Campaign, error) {
	return s.getOwned(id, merchantID)
}

// Update applies pre-send edits. Campaigns that are sending or completed
// are frozen.
func (s *campaignService) Update(id, merchantID int64, input UpdateCampaignInput) error {
	campaign, err := s.getOwned(id, merchantID)
	if err != nil {
		return err
	}
	if !campaign.Editable() {
		return ErrCampaignNotEditable
	}

	if input.TargetAudience != nil {
		if _, err := ParseTargetAudience(sql.NullString{String: *input.TargetAudience, Valid: true}); err != nil {
			return err
		}
	}

	return s.repo.Campaign().Update(id, repository.CampaignUpdate{
		Name:           input.Name,
		Message:        input.Message,
		ImageURL:       input.ImageURL,
		TargetAudience: input.TargetAudience,
		ScheduledAt:    input.ScheduledAt,
	})
}

// SoftDelete hides the campaign by forcing the failed status.
func (s *campaignService) SoftDelete(id, merchantID int64) error {
	campaign, err := s.getOwned(id, merchantID)
	if err != nil {
		return err
	}
	if !campaign.Editable() {
		return ErrCampaignNotEditable
	}

	return s.repo.Campaign().MarkFailed(id)
}

// Send checks preconditions in order, each rejecting without mutation:
// campaign must be editable, the merchant needs an active primary
// instance, and the audience must resolve to at least one recipient.
// The status flip and recipient count are then one conditional write, so
// a concurrent Send on the same campaign loses cleanly. The fan-out runs
// detached; the caller only gets the acceptance.
func (s *campaignService) Send(id, merchantID int64) (*SendResult, error) {
	campaign, err := s.getOwned(id, merchantID)
	if err != nil {
		return nil, err
	}
	if !campaign.Editable() {
		return nil, ErrCampaignNotEditable
	}

	instance, err := s.repo.Instance().GetPrimary(merchantID)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, ErrNoActiveInstance
	}

	audience, err := ParseTargetAudience(campaign.TargetAudience)
	if err != nil {
		return nil, err
	}
	recipients, err := s.resolver.Resolve(merchantID, audience, time.Now())
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	accepted, err := s.repo.Campaign().BeginDispatch(id, len(recipients))
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, ErrCampaignNotEditable
	}

	s.dispatcher.Dispatch(context.Background(), DispatchJob{
		Campaign:   campaign,
		Instance:   instance,
		Recipients: recipients,
	})

	s.logger.Info("Campaign dispatch accepted",
		zap.Int64("campaignID", id),
		zap.Int("recipients", len(recipients)))

	return &SendResult{
		Accepted:        true,
		TotalRecipients: len(recipients),
	}, nil
}

// GetStats aggregates completed campaigns, with a short-lived Redis cache
// in front of the computation.
func (s *campaignService) GetStats(merchantID int64) (*CampaignStats, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("campaign_stats:%d", merchantID)

	if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var stats CampaignStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	campaigns, err := s.repo.Campaign().GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}

	stats := &CampaignStats{
		TotalCampaigns:    len(campaigns),
		ReadRateEstimated: true,
	}
	totalRecipients := 0
	for _, c := range campaigns {
		if c.Status != models.CampaignStatusCompleted {
			continue
		}
		stats.CompletedCampaigns++
		stats.TotalSent += c.SentCount
		totalRecipients += c.TotalRecipients
	}

	if totalRecipients > 0 {
		stats.DeliveryRate = roundRate(float64(stats.TotalSent) / float64(totalRecipients) * 100)
		stats.ReadRate = roundRate(stats.DeliveryRate * readRateFraction)
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.redisClient.Set(ctx, cacheKey, payload, statsCacheTTL).Err(); err != nil {
			s.logger.Warn("Failed to cache campaign stats", zap.Error(err))
		}
	}

	return stats, nil
}

// GetTimelineData buckets completed campaign volume by day for the last
// N days. Delivered mirrors sent and read uses the same fixed fraction
// as GetStats; both are estimates.
func (s *campaignService) GetTimelineData(merchantID int64, days int) ([]TimelinePoint, error) {
	if days < 1 {
		days = 30
	}
	if days > 365 {
		days = 365
	}

	campaigns, err := s.repo.Campaign().GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}

	const dateLayout = "2006-01-02"
	today := time.Now()
	points := make([]TimelinePoint, days)
	index := make(map[string]*TimelinePoint, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -(days - 1 - i)).Format(dateLayout)
		points[i] = TimelinePoint{Date: date}
		index[date] = &points[i]
	}

	for _, c := range campaigns {
		if c.Status != models.CampaignStatusCompleted {
			continue
		}
		point, ok := index[c.CreatedAt.Format(dateLayout)]
		if !ok {
			continue
		}
		point.Sent += c.SentCount
		point.Delivered += c.SentCount
		point.Read += int(math.Round(float64(c.SentCount) * readRateFraction))
	}

	return points, nil
}

// GetReport returns the campaign with its delivery log and counts.
func (s *campaignService) GetReport(id, merchantID int64) (*CampaignReport, error) {
	campaign, err := s.getOwned(id, merchantID)
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.CampaignLog().GetByCampaignID(id)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.CampaignLog().GetStats(id)
	if err != nil {
		return nil, err
	}

	return &CampaignReport{
		Campaign: campaign,
		Logs:     logs,
		Stats:    stats,
	}, nil
}

// FilterCustomers previews an audience with the shared resolver.
func (s *campaignService) FilterCustomers(merchantID int64, criteria FilterCriteria) (*FilterResult, error) {
	customers, err := s.resolver.FilterConversations(merchantID, criteria, time.Now())
	if err != nil {
		return nil, err
	}

	return &FilterResult{
		Customers: customers,
		Count:     len(customers),
	}, nil
}

// SendDue dispatches scheduled campaigns whose time has passed. A
// campaign that fails its send preconditions is marked failed so the
// sweep does not retry it forever.
func (s *campaignService) SendDue(now time.Time) error {
	due, err := s.repo.Campaign().GetDue(now)
	if err != nil {
		return fmt.Errorf("failed to get due campaigns: %w", err)
	}

	for _, campaign := range due {
		if _, err := s.Send(campaign.ID, campaign.MerchantID); err != nil {
			// Not editable means another sender took the campaign
			// between the due query and here; it is theirs now.
			if errors.Is(err, ErrCampaignNotEditable) {
				s.logger.Info("Scheduled campaign already taken",
					zap.Int64("campaignID", campaign.ID))
				continue
			}
			s.logger.Warn("Scheduled campaign failed preconditions",
				zap.Int64("campaignID", campaign.ID),
				zap.Error(err))
			if markErr := s.repo.Campaign().MarkFailed(campaign.ID); markErr != nil {
				s.logger.Error("Failed to mark scheduled campaign failed",
					zap.Int64("campaignID", campaign.ID),
					zap.Error(markErr))
			}
		}
	}

	return nil
}

func (s *campaignService) getOwned(id, merchantID int64) (*models.Campaign, error) {
	campaign, err := s.repo.Campaign().GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign.MerchantID != merchantID {
		return nil, ErrNotOwned
	}
	return campaign, nil
}

func roundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}
