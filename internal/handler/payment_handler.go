package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/middleware"
	"github.com/bigrusstattoo/studio/internal/response"
	"github.com/bigrusstattoo/studio/internal/service"
)

// webhookMaxBody caps webhook payload reads, per Stripe's guidance
const webhookMaxBody = int64(65536)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent opens a deposit payment intent
// POST /api/v1/payments/intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.paymentService.CreateIntent(c.Request.Context(), middleware.Principal(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Forbidden(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.UpstreamFailure(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// Webhook ingests provider events. The raw body is needed for signature
// verification, so this route must not run through any body-parsing
// middleware.
// POST /api/v1/payments/webhook
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, webhookMaxBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Unable to read payload"))
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if err := h.paymentService.HandleWebhook(c.Request.Context(), payload, sigHeader); err != nil {
		if errors.Is(err, service.ErrSignatureInvalid) {
			c.JSON(http.StatusBadRequest, response.SignatureInvalid(""))
			return
		}
		// Non-2xx makes the provider retry the delivery.
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.WebhookAck{Received: true}))
}
