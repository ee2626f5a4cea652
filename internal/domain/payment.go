package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the state of a payment intent
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentIntent tracks an external payment-provider reference. Its status
// is updated only by provider webhook events, never by direct user action.
type PaymentIntent struct {
	ID          string        `json:"id"`
	TenantID    string        `json:"tenant_id"`
	CustomerID  string        `json:"customer_id,omitempty"`
	ProviderRef string        `json:"provider_ref"`
	AmountCents int64         `json:"amount_cents"`
	Currency    string        `json:"currency"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewPaymentIntent creates a pending local record for a provider intent
func NewPaymentIntent(tenantID, providerRef string, amountCents int64, currency string) (*PaymentIntent, error) {
	if tenantID == "" {
		return nil, errors.New("tenant_id is required")
	}
	if providerRef == "" {
		return nil, errors.New("provider_ref is required")
	}
	if amountCents <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if currency == "" {
		currency = "usd"
	}

	now := time.Now()
	return &PaymentIntent{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ProviderRef: providerRef,
		AmountCents: amountCents,
		Currency:    currency,
		Status:      PaymentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
