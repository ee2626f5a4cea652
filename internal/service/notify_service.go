package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/logger"
)

// NotifyKind selects the outbound channel
type NotifyKind string

const (
	NotifyKindSMS  NotifyKind = "sms"
	NotifyKindCall NotifyKind = "call"
)

// SendResult reports the outcome of a dispatch attempt. Dispatch never
// fails the caller: business operations that trigger a notification must
// proceed whether or not the message went out.
type SendResult struct {
	Success     bool   `json:"success"`
	ProviderRef string `json:"provider_ref,omitempty"`
	Error       string `json:"error,omitempty"`
}

// NotifyService defines outbound SMS/voice dispatch
type NotifyService interface {
	// Send dispatches a message and always returns a result object
	Send(ctx context.Context, kind NotifyKind, to, message string) *SendResult
}

// twilioNotifyService implements NotifyService using Twilio
type twilioNotifyService struct {
	client *twilio.RestClient
	from   string
	log    *logger.Logger
}

// NewNotifyService creates a Twilio-backed NotifyService. With unset
// credentials every Send reports "not configured" without network I/O.
func NewNotifyService(cfg *config.TwilioConfig, log *logger.Logger) NotifyService {
	if !cfg.Configured() {
		return &twilioNotifyService{log: log}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &twilioNotifyService{
		client: client,
		from:   cfg.FromNumber,
		log:    log,
	}
}

// Send dispatches an SMS or voice call
func (s *twilioNotifyService) Send(ctx context.Context, kind NotifyKind, to, message string) *SendResult {
	if s.client == nil {
		return &SendResult{Success: false, Error: "not configured"}
	}

	switch kind {
	case NotifyKindSMS:
		return s.sendSMS(ctx, to, message)
	case NotifyKindCall:
		return s.placeCall(ctx, to, message)
	default:
		return &SendResult{Success: false, Error: fmt.Sprintf("unknown notification kind %q", kind)}
	}
}

func (s *twilioNotifyService) sendSMS(ctx context.Context, to, message string) *SendResult {
	params := &api.CreateMessageParams{}
	params.SetBody(message)
	params.SetFrom(s.from)
	params.SetTo(to)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.ErrorContext(ctx, "twilio sms send failed",
			zap.String("to", to),
			zap.Error(err),
		)
		return &SendResult{Success: false, Error: err.Error()}
	}
	if resp.Sid == nil {
		s.log.ErrorContext(ctx, "twilio sms send returned no sid", zap.String("to", to))
		return &SendResult{Success: false, Error: "no message sid returned"}
	}

	s.log.InfoContext(ctx, "sms sent",
		zap.String("to", to),
		zap.String("sid", *resp.Sid),
	)
	return &SendResult{Success: true, ProviderRef: *resp.Sid}
}

func (s *twilioNotifyService) placeCall(ctx context.Context, to, message string) *SendResult {
	params := &api.CreateCallParams{}
	params.SetTwiml(sayTwiml(message))
	params.SetFrom(s.from)
	params.SetTo(to)

	resp, err := s.client.Api.CreateCall(params)
	if err != nil {
		s.log.ErrorContext(ctx, "twilio call failed",
			zap.String("to", to),
			zap.Error(err),
		)
		return &SendResult{Success: false, Error: err.Error()}
	}
	if resp.Sid == nil {
		s.log.ErrorContext(ctx, "twilio call returned no sid", zap.String("to", to))
		return &SendResult{Success: false, Error: "no call sid returned"}
	}

	s.log.InfoContext(ctx, "call placed",
		zap.String("to", to),
		zap.String("sid", *resp.Sid),
	)
	return &SendResult{Success: true, ProviderRef: *resp.Sid}
}

// sayTwiml wraps a message in a minimal voice response document
func sayTwiml(message string) string {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(message))
	return fmt.Sprintf("<Response><Say>%s</Say></Response>", escaped.String())
}
