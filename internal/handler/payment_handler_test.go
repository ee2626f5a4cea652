package handler

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
	"github.com/bigrusstattoo/studio/internal/repository"
	"github.com/bigrusstattoo/studio/internal/response"
	"github.com/bigrusstattoo/studio/internal/service"
)

const (
	webhookTestTenant = "tenant-1"
	webhookTestSecret = "whsec_handler_test"
)

func signStripePayload(payload []byte, secret string) string {
	ts := fmt.Sprintf("%d", time.Now().Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts + "." + string(payload)))
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func newWebhookFixture(t *testing.T) (*gin.Engine, *repository.MemoryPaymentRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryPaymentRepository()
	svc := service.NewPaymentService(webhookTestTenant,
		&config.StripeConfig{SecretKey: "sk_test_x", WebhookSecret: webhookTestSecret},
		repo, logger.NewNop())

	r := gin.New()
	r.POST("/api/v1/payments/webhook", NewPaymentHandler(svc).Webhook)
	return r, repo
}

func seedWebhookIntent(t *testing.T, repo *repository.MemoryPaymentRepository, ref string) {
	t.Helper()
	intent, err := domain.NewPaymentIntent(webhookTestTenant, ref, 10000, "usd")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), intent))
}

func postWebhook(r *gin.Engine, payload []byte, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if sig != "" {
		req.Header.Set("Stripe-Signature", sig)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_Webhook_Succeeded(t *testing.T) {
	r, repo := newWebhookFixture(t)
	seedWebhookIntent(t, repo, "pi_ok")

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_ok","object":"payment_intent"}}}`)
	w := postWebhook(r, payload, signStripePayload(payload, webhookTestSecret))

	assert.Equal(t, http.StatusOK, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)

	stored, err := repo.GetByProviderRef(context.Background(), "pi_ok")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.Status)
}

func TestPaymentHandler_Webhook_BadSignature(t *testing.T) {
	r, repo := newWebhookFixture(t)
	seedWebhookIntent(t, repo, "pi_sig")

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_sig","object":"payment_intent"}}}`)
	w := postWebhook(r, payload, signStripePayload(payload, "whsec_wrong"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, response.ErrCodeSignatureInvalid, body.Error.Code)

	// No side effects on rejected payloads.
	stored, err := repo.GetByProviderRef(context.Background(), "pi_sig")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, stored.Status)
}

func TestPaymentHandler_Webhook_MissingSignature(t *testing.T) {
	r, repo := newWebhookFixture(t)
	seedWebhookIntent(t, repo, "pi_nosig")

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_nosig","object":"payment_intent"}}}`)
	w := postWebhook(r, payload, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_Webhook_UnknownEventAcknowledged(t *testing.T) {
	r, _ := newWebhookFixture(t)

	payload := []byte(`{"id":"evt_1","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`)
	w := postWebhook(r, payload, signStripePayload(payload, webhookTestSecret))

	assert.Equal(t, http.StatusOK, w.Code)
}
