package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/logger"
)

func TestNotifyService_NotConfigured(t *testing.T) {
	svc := NewNotifyService(&config.TwilioConfig{}, logger.NewNop())

	result := svc.Send(context.Background(), NotifyKindSMS, "+15550001111", "hello")
	assert.False(t, result.Success)
	assert.Equal(t, "not configured", result.Error)

	result = svc.Send(context.Background(), NotifyKindCall, "+15550001111", "hello")
	assert.False(t, result.Success)
	assert.Equal(t, "not configured", result.Error)
}

func TestSayTwiml_EscapesMessage(t *testing.T) {
	out := sayTwiml(`Reschedule for <tomorrow> & call us`)
	assert.Equal(t, "<Response><Say>Reschedule for &lt;tomorrow&gt; &amp; call us</Say></Response>", out)
}
