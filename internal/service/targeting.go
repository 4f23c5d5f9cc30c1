package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/waselhq/wasel/internal/models"
	"github.com/waselhq/wasel/internal/repository"
)

// FilterCriteria narrows a merchant's customers. All set predicates must
// hold (AND semantics).
type FilterCriteria struct {
	// LastActivityDays keeps customers whose conversation was active
	// within the window.
	LastActivityDays *int `json:"lastActivityDays,omitempty"`
	// PurchaseCountMin and PurchaseCountMax bound the purchase count,
	// both inclusive.
	PurchaseCountMin *int `json:"purchaseCountMin,omitempty"`
	PurchaseCountMax *int `json:"purchaseCountMax,omitempty"`
	// ProductIDs keeps customers with at least one order containing one
	// of the given products.
	ProductIDs []int64 `json:"productIds,omitempty"`
}

// TargetAudience is the decoded targeting spec stored on a campaign:
// either an explicit phone list, filter criteria, or everyone.
type TargetAudience struct {
	Explicit []string
	Criteria *FilterCriteria
}

// All reports whether the audience is the merchant's whole customer base.
func (a *TargetAudience) All() bool {
	return a.Explicit == nil && a.Criteria == nil
}

// ParseTargetAudience decodes the stored payload. A JSON array of strings
// is an explicit list, a JSON object is filter criteria, and an absent or
// empty payload targets all customers. Anything else is malformed, which
// is distinct from an audience that is valid but matches nobody.
func ParseTargetAudience(raw sql.NullString) (*TargetAudience, error) {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return &TargetAudience{}, nil
	}

	trimmed := strings.TrimSpace(raw.String)
	switch trimmed[0] {
	case '[':
		var phones []string
		if err := json.Unmarshal([]byte(trimmed), &phones); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAudience, err)
		}
		return &TargetAudience{Explicit: phones}, nil
	case '{':
		var criteria FilterCriteria
		if err := json.Unmarshal([]byte(trimmed), &criteria); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAudience, err)
		}
		return &TargetAudience{Criteria: &criteria}, nil
	default:
		return nil, fmt.Errorf("%w: expected a JSON array or object", ErrMalformedAudience)
	}
}

// Resolver turns an audience spec into a concrete recipient list. The same
// filter evaluation backs both the preview endpoint and send-time
// resolution, so previewed counts match what gets dispatched.
type Resolver struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewResolver(repo repository.Repository, logger *zap.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger,
	}
}

// Resolve computes the recipient set for one audience at the given time.
func (r *Resolver) Resolve(merchantID int64, audience *TargetAudience, now time.Time) ([]models.Recipient, error) {
	conversations, err := r.repo.Conversation().GetByMerchantID(merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	if audience.Explicit != nil {
		return r.resolveExplicit(audience.Explicit, conversations), nil
	}

	filtered := conversations
	if audience.Criteria != nil {
		filtered, err = r.applyCriteria(merchantID, *audience.Criteria, conversations, now)
		if err != nil {
			return nil, err
		}
	}

	recipients := make([]models.Recipient, 0, len(filtered))
	for _, c := range filtered {
		if c.CustomerPhone == "" {
			continue
		}
		recipients = append(recipients, recipientFromConversation(c))
	}
	return recipients, nil
}

// FilterConversations evaluates criteria for the preview endpoint.
func (r *Resolver) FilterConversations(merchantID int64, criteria FilterCriteria, now time.Time) ([]*models.Conversation, error) {
	conversations, err := r.repo.Conversation().GetByMerchantID(merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	return r.applyCriteria(merchantID, criteria, conversations, now)
}

// resolveExplicit keeps the listed phones, enriching each with its
// conversation when one exists. Unknown phones are still valid targets.
func (r *Resolver) resolveExplicit(phones []string, conversations []*models.Conversation) []models.Recipient {
	byPhone := make(map[string]*models.Conversation, len(conversations))
	for _, c := range conversations {
		byPhone[c.CustomerPhone] = c
	}

	recipients := make([]models.Recipient, 0, len(phones))
	for _, phone := range phones {
		phone = strings.TrimSpace(phone)
		if phone == "" {
			continue
		}
		if c, ok := byPhone[phone]; ok {
			recipients = append(recipients, recipientFromConversation(c))
			continue
		}
		recipients = append(recipients, models.Recipient{Phone: phone})
	}
	return recipients
}

func (r *Resolver) applyCriteria(merchantID int64, criteria FilterCriteria, conversations []*models.Conversation, now time.Time) ([]*models.Conversation, error) {
	filtered := conversations

	if criteria.LastActivityDays != nil && *criteria.LastActivityDays > 0 {
		cutoff := now.AddDate(0, 0, -*criteria.LastActivityDays)
		filtered = keep(filtered, func(c *models.Conversation) bool {
			return !c.LastActivityAt.Before(cutoff)
		})
	}

	if criteria.PurchaseCountMin != nil {
		filtered = keep(filtered, func(c *models.Conversation) bool {
			return c.PurchaseCount >= *criteria.PurchaseCountMin
		})
	}
	if criteria.PurchaseCountMax != nil {
		filtered = keep(filtered, func(c *models.Conversation) bool {
			return c.PurchaseCount <= *criteria.PurchaseCountMax
		})
	}

	if len(criteria.ProductIDs) > 0 {
		matching, err := r.phonesWithProducts(merchantID, criteria.ProductIDs)
		if err != nil {
			return nil, err
		}
		filtered = keep(filtered, func(c *models.Conversation) bool {
			return matching[c.CustomerPhone]
		})
	}

	return filtered, nil
}

// phonesWithProducts collects customer phones with at least one order
// containing one of the given products. Orders whose stored item list
// does not parse are skipped rather than failing the whole resolution.
func (r *Resolver) phonesWithProducts(merchantID int64, productIDs []int64) (map[string]bool, error) {
	orders, err := r.repo.Order().GetByMerchantID(merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	wanted := make(map[int64]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}

	matching := make(map[string]bool)
	for _, order := range orders {
		var items []models.OrderItem
		if err := json.Unmarshal([]byte(order.Items), &items); err != nil {
			r.logger.Warn("Skipping order with unparseable items",
				zap.Int64("orderID", order.ID),
				zap.Error(err))
			continue
		}
		for _, item := range items {
			if wanted[item.ProductID] {
				matching[order.CustomerPhone] = true
				break
			}
		}
	}
	return matching, nil
}

func keep(conversations []*models.Conversation, pred func(*models.Conversation) bool) []*models.Conversation {
	kept := conversations[:0:0]
	for _, c := range conversations {
		if pred(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

func recipientFromConversation(c *models.Conversation) models.Recipient {
	recipient := models.Recipient{
		Phone:          c.CustomerPhone,
		ConversationID: sql.NullInt64{Int64: c.ID, Valid: true},
	}
	if c.CustomerName.Valid {
		recipient.Name = c.CustomerName.String
	}
	return recipient
}
