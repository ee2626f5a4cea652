package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
)

const testWebhookSecret = "whsec_test_secret"

// signWebhookPayload produces a Stripe-Signature header value for payload
func signWebhookPayload(payload []byte, secret string, at time.Time) string {
	ts := fmt.Sprintf("%d", at.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts + "." + string(payload)))
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func webhookEventPayload(eventType, providerRef string) []byte {
	return []byte(fmt.Sprintf(`{"id":"evt_1","type":%q,"data":{"object":{"id":%q,"object":"payment_intent"}}}`, eventType, providerRef))
}

func newTestPaymentService(repo repository.PaymentRepository) PaymentService {
	cfg := &config.StripeConfig{SecretKey: "sk_test_x", WebhookSecret: testWebhookSecret}
	return NewPaymentService(testTenantID, cfg, repo, logger.NewNop())
}

func seedIntent(t *testing.T, repo *repository.MemoryPaymentRepository, providerRef string) *domain.PaymentIntent {
	t.Helper()
	intent, err := domain.NewPaymentIntent(testTenantID, providerRef, 5000, "usd")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), intent))
	return intent
}

func TestPaymentService_HandleWebhook_Succeeded(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := newTestPaymentService(repo)
	seedIntent(t, repo, "pi_123")

	payload := webhookEventPayload("payment_intent.succeeded", "pi_123")
	sig := signWebhookPayload(payload, testWebhookSecret, time.Now())

	require.NoError(t, svc.HandleWebhook(context.Background(), payload, sig))

	stored, err := repo.GetByProviderRef(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.Status)
}

func TestPaymentService_HandleWebhook_Failed(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := newTestPaymentService(repo)
	seedIntent(t, repo, "pi_456")

	payload := webhookEventPayload("payment_intent.payment_failed", "pi_456")
	sig := signWebhookPayload(payload, testWebhookSecret, time.Now())

	require.NoError(t, svc.HandleWebhook(context.Background(), payload, sig))

	stored, err := repo.GetByProviderRef(context.Background(), "pi_456")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, stored.Status)
}

func TestPaymentService_HandleWebhook_BadSignature(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := newTestPaymentService(repo)
	seedIntent(t, repo, "pi_789")

	payload := webhookEventPayload("payment_intent.succeeded", "pi_789")
	sig := signWebhookPayload(payload, "whsec_wrong_secret", time.Now())

	err := svc.HandleWebhook(context.Background(), payload, sig)
	assert.ErrorIs(t, err, ErrSignatureInvalid)

	// No state change on rejected payloads.
	stored, repoErr := repo.GetByProviderRef(context.Background(), "pi_789")
	require.NoError(t, repoErr)
	assert.Equal(t, domain.PaymentStatusPending, stored.Status)
}

func TestPaymentService_HandleWebhook_StaleTimestamp(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := newTestPaymentService(repo)
	seedIntent(t, repo, "pi_old")

	payload := webhookEventPayload("payment_intent.succeeded", "pi_old")
	sig := signWebhookPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))

	err := svc.HandleWebhook(context.Background(), payload, sig)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestPaymentService_HandleWebhook_UnknownEventType(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := newTestPaymentService(repo)
	seedIntent(t, repo, "pi_123")

	payload := webhookEventPayload("charge.refunded", "pi_123")
	sig := signWebhookPayload(payload, testWebhookSecret, time.Now())

	require.NoError(t, svc.HandleWebhook(context.Background(), payload, sig))

	stored, err := repo.GetByProviderRef(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, stored.Status)
}

func TestPaymentService_HandleWebhook_UnmatchedRef(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := newTestPaymentService(repo)

	payload := webhookEventPayload("payment_intent.succeeded", "pi_unknown")
	sig := signWebhookPayload(payload, testWebhookSecret, time.Now())

	// No local mirror is still a successful ingestion.
	assert.NoError(t, svc.HandleWebhook(context.Background(), payload, sig))
}

func TestPaymentService_HandleWebhook_Replay(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := newTestPaymentService(repo)
	seedIntent(t, repo, "pi_replay")

	payload := webhookEventPayload("payment_intent.succeeded", "pi_replay")
	sig := signWebhookPayload(payload, testWebhookSecret, time.Now())

	require.NoError(t, svc.HandleWebhook(context.Background(), payload, sig))
	require.NoError(t, svc.HandleWebhook(context.Background(), payload, sig))

	stored, err := repo.GetByProviderRef(context.Background(), "pi_replay")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.Status)
}
