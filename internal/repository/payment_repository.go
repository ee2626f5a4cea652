package repository

import (
	"context"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// PaymentRepository defines payment-intent data access. Status moves
// only through UpdateStatusByProviderRef, driven by provider webhooks.
type PaymentRepository interface {
	// Create persists a new pending payment intent
	Create(ctx context.Context, intent *domain.PaymentIntent) error
	// GetByProviderRef retrieves an intent by provider reference, nil when absent
	GetByProviderRef(ctx context.Context, providerRef string) (*domain.PaymentIntent, error)
	// UpdateStatusByProviderRef sets the status of every intent matching
	// the provider reference and returns the number of rows touched.
	// Zero rows is not an error: webhook delivery is at-least-once and
	// replays must be harmless.
	UpdateStatusByProviderRef(ctx context.Context, providerRef string, status domain.PaymentStatus) (int64, error)
}
