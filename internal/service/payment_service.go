package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/bigrusstattoo/studio/internal/auth"
	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

// ErrSignatureInvalid is returned when a webhook payload fails signature
// verification. The event body is not inspected in that case.
var ErrSignatureInvalid = errors.New("webhook signature invalid")

// PaymentService owns deposit collection and provider webhook ingestion
type PaymentService interface {
	// CreateIntent opens a deposit intent with the provider and records it
	// locally as pending (admin only)
	CreateIntent(ctx context.Context, principal auth.Principal, input *dto.CreatePaymentIntentInput) (*dto.CreatePaymentIntentResponse, error)
	// HandleWebhook verifies and applies a provider event. Unknown event
	// types and unmatched references are acknowledged, not errors.
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error
}

// paymentService implements PaymentService against Stripe
type paymentService struct {
	tenantID string
	cfg      *config.StripeConfig
	repo     repository.PaymentRepository
	log      *logger.Logger
}

// NewPaymentService creates a PaymentService scoped to the resolved tenant
func NewPaymentService(tenantID string, cfg *config.StripeConfig, repo repository.PaymentRepository, log *logger.Logger) PaymentService {
	stripe.Key = cfg.SecretKey
	return &paymentService{
		tenantID: tenantID,
		cfg:      cfg,
		repo:     repo,
		log:      log,
	}
}

// CreateIntent opens a provider payment intent and mirrors it locally
func (s *paymentService) CreateIntent(ctx context.Context, principal auth.Principal, input *dto.CreatePaymentIntentInput) (*dto.CreatePaymentIntentResponse, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(input.AmountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if input.Description != "" {
		params.Description = stripe.String(input.Description)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		s.log.ErrorContext(ctx, "stripe payment intent creation failed", zap.Error(err))
		return nil, err
	}

	intent, err := domain.NewPaymentIntent(s.tenantID, pi.ID, input.AmountCents, currency)
	if err != nil {
		return nil, err
	}
	intent.CustomerID = input.CustomerID
	if err := s.repo.Create(ctx, intent); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "payment intent created",
		zap.String("provider_ref", pi.ID),
		zap.Int64("amount_cents", input.AmountCents),
	)
	return &dto.CreatePaymentIntentResponse{
		ProviderRef:  pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

// HandleWebhook verifies the signature, then applies the event
func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, s.cfg.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		s.log.WarnContext(ctx, "webhook signature verification failed", zap.Error(err))
		return ErrSignatureInvalid
	}

	var status domain.PaymentStatus
	switch event.Type {
	case "payment_intent.succeeded":
		status = domain.PaymentStatusPaid
	case "payment_intent.payment_failed":
		status = domain.PaymentStatusFailed
	default:
		s.log.InfoContext(ctx, "ignoring webhook event", zap.String("type", string(event.Type)))
		return nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		s.log.ErrorContext(ctx, "webhook payload parse failed",
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
		return err
	}

	updated, err := s.repo.UpdateStatusByProviderRef(ctx, pi.ID, status)
	if err != nil {
		return err
	}
	// Zero matches happens on replays and on intents created before the
	// local mirror existed. Acknowledge so the provider stops retrying.
	s.log.InfoContext(ctx, "webhook event applied",
		zap.String("type", string(event.Type)),
		zap.String("provider_ref", pi.ID),
		zap.Int64("updated", updated),
	)
	return nil
}
