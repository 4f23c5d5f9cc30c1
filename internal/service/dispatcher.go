package service

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/config"
	"github.com/waselhq/wasel/internal/greenapi"
	"github.com/waselhq/wasel/internal/models"
	"github.com/waselhq/wasel/internal/repository"
)

// DispatchJob is one accepted campaign send: the frozen campaign row, the
// channel instance to send through and the resolved recipient set.
type DispatchJob struct {
	Campaign   *models.Campaign
	Instance   *models.WhatsAppInstance
	Recipients []models.Recipient
}

// Dispatcher executes campaign fan-outs as detached background tasks.
// The caller of Dispatch never waits for delivery; it only learns the
// outcome later through the campaign row and the delivery log.
type Dispatcher struct {
	repo        repository.Repository
	provider    greenapi.Client
	logger      *zap.Logger
	concurrency int
	inflight    sync.WaitGroup
}

func NewDispatcher(cfg *config.DispatchConfig, repo repository.Repository, provider greenapi.Client, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo:        repo,
		provider:    provider,
		logger:      logger,
		concurrency: cfg.Concurrency,
	}
}

// Dispatch starts the fan-out goroutine and returns immediately. The
// spawned task owns its error boundary: whatever happens, it writes a
// terminal campaign status before finishing.
func (d *Dispatcher) Dispatch(ctx context.Context, job DispatchJob) {
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.run(ctx, job)
	}()
}

// Wait blocks until all in-flight dispatches have settled. Used by
// graceful shutdown and by tests; regular callers never need it.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

func (d *Dispatcher) run(ctx context.Context, job DispatchJob) {
	campaignID := job.Campaign.ID

	d.logger.Info("Starting campaign dispatch",
		zap.Int64("campaignID", campaignID),
		zap.Int("recipients", len(job.Recipients)),
		zap.Int("concurrency", d.concurrency))

	var successCount int64

	// Concurrency 0 keeps the historical behavior of issuing every
	// recipient send at once.
	var sem chan struct{}
	if d.concurrency > 0 {
		sem = make(chan struct{}, d.concurrency)
	}

	var wg sync.WaitGroup
	for _, recipient := range job.Recipients {
		wg.Add(1)
		go func(recipient models.Recipient) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			if d.sendOne(ctx, job, recipient) {
				atomic.AddInt64(&successCount, 1)
			}
		}(recipient)
	}
	wg.Wait()

	sent := int(atomic.LoadInt64(&successCount))

	// Terminal status reflects orchestration health, not delivery
	// success: a campaign with zero delivered messages still completes.
	if err := d.repo.Campaign().FinishDispatch(campaignID, sent); err != nil {
		d.logger.Error("Failed to finalize campaign, marking failed",
			zap.Int64("campaignID", campaignID),
			zap.Error(err))
		if failErr := d.repo.Campaign().MarkFailed(campaignID); failErr != nil {
			d.logger.Error("Failed to mark campaign failed",
				zap.Int64("campaignID", campaignID),
				zap.Error(failErr))
		}
		return
	}

	d.logger.Info("Campaign dispatch completed",
		zap.Int64("campaignID", campaignID),
		zap.Int("sent", sent),
		zap.Int("total", len(job.Recipients)))
}

// sendOne performs a single recipient attempt and appends exactly one
// delivery log row. Provider failures are recorded, never propagated, so
// no recipient can abort another's attempt.
func (d *Dispatcher) sendOne(ctx context.Context, job DispatchJob, recipient models.Recipient) bool {
	creds := greenapi.Credentials{
		InstanceID: job.Instance.InstanceID,
		Token:      job.Instance.Token,
		APIURL:     job.Instance.APIURL,
	}

	var err error
	if job.Campaign.ImageURL.Valid && job.Campaign.ImageURL.String != "" {
		err = d.provider.SendImage(ctx, creds, recipient.Phone, job.Campaign.ImageURL.String, job.Campaign.Message)
	} else {
		err = d.provider.SendText(ctx, creds, recipient.Phone, job.Campaign.Message)
	}

	entry := &models.CampaignLog{
		CampaignID:    job.Campaign.ID,
		CustomerID:    recipient.ConversationID,
		CustomerPhone: recipient.Phone,
		SentAt:        time.Now(),
	}
	if recipient.Name != "" {
		entry.CustomerName = sql.NullString{String: recipient.Name, Valid: true}
	}

	if err != nil {
		entry.Status = models.DeliveryStatusFailed
		entry.ErrorMessage = sql.NullString{String: err.Error(), Valid: true}
		d.logger.Warn("Recipient send failed",
			zap.Int64("campaignID", job.Campaign.ID),
			zap.String("phone", recipient.Phone),
			zap.Error(err))
	} else {
		entry.Status = models.DeliveryStatusSuccess
	}

	if appendErr := d.repo.CampaignLog().Append(entry); appendErr != nil {
		d.logger.Error("Failed to append delivery log row",
			zap.Int64("campaignID", job.Campaign.ID),
			zap.String("phone", recipient.Phone),
			zap.Error(appendErr))
	}

	return err == nil
}
