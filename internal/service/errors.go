// Package service provides business logic implementation for the application.
package service

import "errors"

// Validation errors: rejected before any state mutation.
var (
	ErrCampaignNotEditable = errors.New("campaign cannot be modified in its current status")
	ErrMalformedAudience   = errors.New("target audience payload is malformed")
	ErrNoRecipients        = errors.New("no recipients match the campaign audience")
	ErrNoActiveInstance    = errors.New("no active primary instance connected")
	ErrSoleActiveInstance  = errors.New("cannot delete the only active instance")
)

// Conflict errors.
var (
	ErrInstanceIDInUse = errors.New("instance id already belongs to another merchant")
)

// Authorization errors. Callers are authenticated upstream; these guard
// cross-tenant access with the merchant id they resolved.
var (
	ErrMerchantNotActive = errors.New("merchant account is not active")
	ErrNotOwned          = errors.New("resource does not belong to the merchant")
)
