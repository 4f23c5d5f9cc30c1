package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/greenapi"
	"github.com/waselhq/wasel/internal/models"
	"github.com/waselhq/wasel/internal/repository"
)

type instanceService struct {
	repo     repository.Repository
	provider greenapi.Client
	logger   *zap.Logger
}

func NewInstanceService(repo repository.Repository, provider greenapi.Client, logger *zap.Logger) InstanceService {
	return &instanceService{
		repo:     repo,
		provider: provider,
		logger:   logger,
	}
}

// Register creates a channel instance or refreshes the merchant's own
// record for the same provider id. A provider id held by a different
// merchant is a conflict: provider ids are globally unique.
func (s *instanceService) Register(merchantID int64, input RegisterInstanceInput) (*models.WhatsAppInstance, error) {
	existing, err := s.repo.Instance().GetByInstanceID(input.InstanceID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.MerchantID != merchantID {
		return nil, ErrInstanceIDInUse
	}

	if existing != nil {
		update := repository.InstanceUpdate{
			Token:       &input.Token,
			APIURL:      input.APIURL,
			PhoneNumber: input.PhoneNumber,
			ExpiresAt:   input.ExpiresAt,
		}
		if input.Connected {
			status := models.InstanceStatusActive
			now := time.Now()
			update.Status = &status
			update.ConnectedAt = &now
		}
		if err := s.repo.Instance().Update(existing.ID, update); err != nil {
			return nil, err
		}
		return s.repo.Instance().GetByID(existing.ID)
	}

	instance := &models.WhatsAppInstance{
		MerchantID: merchantID,
		InstanceID: input.InstanceID,
		Token:      input.Token,
		Status:     models.InstanceStatusPending,
	}
	if input.APIURL != nil {
		instance.APIURL = *input.APIURL
	}
	if input.PhoneNumber != nil {
		instance.PhoneNumber = sql.NullString{String: *input.PhoneNumber, Valid: true}
	}
	if input.ExpiresAt != nil {
		instance.ExpiresAt = sql.NullTime{Time: *input.ExpiresAt, Valid: true}
	}
	if input.Connected {
		instance.Status = models.InstanceStatusActive
		instance.ConnectedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	// A merchant's first instance becomes the default send channel. A
	// requested primary flag on a later instance is never written at
	// insert time: the row goes in unflagged and the atomic switch below
	// moves the flag, so no reader sees two primaries.
	others, err := s.repo.Instance().GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}
	instance.IsPrimary = len(others) == 0

	created, err := s.repo.Instance().Create(instance)
	if err != nil {
		return nil, err
	}

	if input.IsPrimary && !instance.IsPrimary {
		if err := s.repo.Instance().SetPrimary(created.ID, merchantID); err != nil {
			return nil, err
		}
		return s.repo.Instance().GetByID(created.ID)
	}

	s.logger.Info("Instance registered",
		zap.Int64("id", created.ID),
		zap.Int64("merchantID", merchantID),
		zap.String("instanceID", created.InstanceID),
		zap.String("status", string(created.Status)))

	return created, nil
}

// List returns the merchant's instances, primary first.
func (s *instanceService) List(merchantID int64) ([]*models.WhatsAppInstance, error) {
	return s.repo.Instance().GetByMerchantID(merchantID)
}

// GetPrimary returns the merchant's active primary instance, or nil.
func (s *instanceService) GetPrimary(merchantID int64) (*models.WhatsAppInstance, error) {
	return s.repo.Instance().GetPrimary(merchantID)
}

// Update applies edits to an owned instance and returns the fresh row.
func (s *instanceService) Update(id, merchantID int64, input UpdateInstanceInput) (*models.WhatsAppInstance, error) {
	if _, err := s.getOwned(id, merchantID); err != nil {
		return nil, err
	}

	err := s.repo.Instance().Update(id, repository.InstanceUpdate{
		Token:       input.Token,
		APIURL:      input.APIURL,
		PhoneNumber: input.PhoneNumber,
		Status:      input.Status,
		ExpiresAt:   input.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Instance().GetByID(id)
}

// SetPrimary designates the instance as the merchant's default channel.
// The repository performs clear-all-set-one atomically.
func (s *instanceService) SetPrimary(id, merchantID int64) error {
	if _, err := s.getOwned(id, merchantID); err != nil {
		return err
	}

	if err := s.repo.Instance().SetPrimary(id, merchantID); err != nil {
		return err
	}

	s.logger.Info("Primary instance changed",
		zap.Int64("id", id),
		zap.Int64("merchantID", merchantID))

	return nil
}

// Delete removes an instance. The merchant's only active instance cannot
// be deleted while it is primary, which would leave no send channel.
func (s *instanceService) Delete(id, merchantID int64) error {
	instance, err := s.getOwned(id, merchantID)
	if err != nil {
		return err
	}

	if instance.IsPrimary {
		count, err := s.repo.Instance().CountActive(merchantID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrSoleActiveInstance
		}
	}

	return s.repo.Instance().Delete(id)
}

// TestConnection queries the provider's state endpoint for arbitrary
// credentials. Expected provider failures come back as a classified
// result, never as an error.
func (s *instanceService) TestConnection(input TestConnectionInput) *greenapi.StateCheck {
	creds := greenapi.Credentials{
		InstanceID: input.InstanceID,
		Token:      input.Token,
	}
	if input.APIURL != nil {
		creds.APIURL = *input.APIURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	check := s.provider.GetState(ctx, creds)

	// A successful check refreshes the stored record's phone number and
	// sync timestamp when the instance is registered.
	if check.Connected() {
		if stored, err := s.repo.Instance().GetByInstanceID(input.InstanceID); err == nil && stored != nil {
			now := time.Now()
			update := repository.InstanceUpdate{LastSyncAt: &now}
			if check.PhoneNumber != "" {
				update.PhoneNumber = &check.PhoneNumber
			}
			if err := s.repo.Instance().Update(stored.ID, update); err != nil {
				s.logger.Warn("Failed to record connection test result",
					zap.Int64("id", stored.ID),
					zap.Error(err))
			}
		}
	}

	return check
}

// GetStats summarizes the merchant's instances by status.
func (s *instanceService) GetStats(merchantID int64) (*models.InstanceStats, error) {
	instances, err := s.repo.Instance().GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}

	stats := &models.InstanceStats{Total: len(instances)}
	for _, instance := range instances {
		switch instance.Status {
		case models.InstanceStatusActive:
			stats.Active++
		case models.InstanceStatusInactive:
			stats.Inactive++
		case models.InstanceStatusExpired:
			stats.Expired++
		}
		if instance.IsPrimary {
			stats.Primary = instance
		}
	}

	return stats, nil
}

// GetExpiring buckets the merchant's active instances by time left.
func (s *instanceService) GetExpiring(merchantID int64, now time.Time) (*models.ExpiringInstances, error) {
	all, err := s.classifyExpiring(now)
	if err != nil {
		return nil, err
	}

	filter := func(instances []*models.WhatsAppInstance) []*models.WhatsAppInstance {
		kept := make([]*models.WhatsAppInstance, 0, len(instances))
		for _, instance := range instances {
			if instance.MerchantID == merchantID {
				kept = append(kept, instance)
			}
		}
		return kept
	}

	return &models.ExpiringInstances{
		Expiring7Days: filter(all.Expiring7Days),
		Expiring3Days: filter(all.Expiring3Days),
		Expiring1Day:  filter(all.Expiring1Day),
		Expired:       filter(all.Expired),
	}, nil
}

// SweepExpired classifies all instances and marks those past expiry.
// Bucketing itself is read-only; only the expired bucket gets writes.
func (s *instanceService) SweepExpired(now time.Time) (*ExpirySweep, error) {
	buckets, err := s.classifyExpiring(now)
	if err != nil {
		return nil, err
	}

	sweep := &ExpirySweep{
		Expiring7Days: len(buckets.Expiring7Days),
		Expiring3Days: len(buckets.Expiring3Days),
		Expiring1Day:  len(buckets.Expiring1Day),
	}

	for _, instance := range buckets.Expired {
		if err := s.repo.Instance().MarkExpired(instance.ID); err != nil {
			s.logger.Error("Failed to mark instance expired",
				zap.Int64("id", instance.ID),
				zap.Error(err))
			continue
		}
		sweep.Expired++
	}

	s.logger.Info("Instance expiry sweep completed",
		zap.Int("expiring7Days", sweep.Expiring7Days),
		zap.Int("expiring3Days", sweep.Expiring3Days),
		zap.Int("expiring1Day", sweep.Expiring1Day),
		zap.Int("expired", sweep.Expired))

	return sweep, nil
}

// classifyExpiring partitions active instances into expiry buckets; an
// instance lands in the tightest bucket it qualifies for.
func (s *instanceService) classifyExpiring(now time.Time) (*models.ExpiringInstances, error) {
	instances, err := s.repo.Instance().GetActiveWithExpiry()
	if err != nil {
		return nil, fmt.Errorf("failed to load instances for classification: %w", err)
	}

	in1Day := now.AddDate(0, 0, 1)
	in3Days := now.AddDate(0, 0, 3)
	in7Days := now.AddDate(0, 0, 7)

	buckets := &models.ExpiringInstances{}
	for _, instance := range instances {
		if !instance.ExpiresAt.Valid {
			continue
		}
		expiry := instance.ExpiresAt.Time
		switch {
		case !expiry.After(now):
			buckets.Expired = append(buckets.Expired, instance)
		case !expiry.After(in1Day):
			buckets.Expiring1Day = append(buckets.Expiring1Day, instance)
		case !expiry.After(in3Days):
			buckets.Expiring3Days = append(buckets.Expiring3Days, instance)
		case !expiry.After(in7Days):
			buckets.Expiring7Days = append(buckets.Expiring7Days, instance)
		}
	}

	return buckets, nil
}

func (s *instanceService) getOwned(id, merchantID int64) (*models.WhatsAppInstance, error) {
	instance, err := s.repo.Instance().GetByID(id)
	if err != nil {
		return nil, err
	}
	if instance.MerchantID != merchantID {
		return nil, ErrNotOwned
	}
	return instance, nil
}
