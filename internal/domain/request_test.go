package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewAppointmentRequest(t *testing.T) {
	tests := []struct {
		name        string
		tenantID    string
		reqName     string
		phone       string
		description string
		wantErr     bool
	}{
		{
			name:        "valid request",
			tenantID:    "tenant-123",
			reqName:     "Jamie",
			phone:       "+15551234567",
			description: "forearm piece",
			wantErr:     false,
		},
		{
			name:     "missing tenant_id",
			tenantID: "",
			reqName:  "Jamie",
			phone:    "+15551234567",
			wantErr:  true,
		},
		{
			name:     "missing name",
			tenantID: "tenant-123",
			reqName:  "",
			phone:    "+15551234567",
			wantErr:  true,
		},
		{
			name:     "missing phone",
			tenantID: "tenant-123",
			reqName:  "Jamie",
			phone:    "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewAppointmentRequest(tt.tenantID, tt.reqName, tt.phone, tt.description)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if req.ID == "" {
				t.Error("Expected request ID to be set")
			}
			if req.Status != RequestStatusPending {
				t.Errorf("Expected status pending, got %s", req.Status)
			}
			if req.LastContactedAt != nil {
				t.Error("Expected last_contacted_at to be unset")
			}
		})
	}
}

func TestParseRequestStatus(t *testing.T) {
	for _, valid := range []string{"pending", "contacting", "scheduled", "waitlisted", "declined"} {
		if _, err := ParseRequestStatus(valid); err != nil {
			t.Errorf("Expected %q to parse, got %v", valid, err)
		}
	}

	if _, err := ParseRequestStatus("archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestAppointmentRequest_Activate(t *testing.T) {
	req, _ := NewAppointmentRequest("tenant-123", "Jamie", "+15551234567", "sleeve")

	if err := req.Activate(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Status != RequestStatusContacting {
		t.Errorf("Expected status contacting, got %s", req.Status)
	}
	if req.LastContactedAt == nil {
		t.Fatal("Expected last_contacted_at to be stamped")
	}

	// A second activate re-stamps the contact time rather than failing.
	first := *req.LastContactedAt
	time.Sleep(time.Millisecond)
	if err := req.Activate(); err != nil {
		t.Fatalf("Unexpected error on second activate: %v", err)
	}
	if req.Status != RequestStatusContacting {
		t.Errorf("Expected status contacting after double activate, got %s", req.Status)
	}
	if req.LastContactedAt.Before(first) {
		t.Error("Expected second last_contacted_at >= first")
	}
}

func TestAppointmentRequest_Activate_FromWaitlisted(t *testing.T) {
	req, _ := NewAppointmentRequest("tenant-123", "Jamie", "+15551234567", "sleeve")
	req.Status = RequestStatusWaitlisted

	if err := req.Activate(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Status != RequestStatusContacting {
		t.Errorf("Expected status contacting, got %s", req.Status)
	}
}

func TestAppointmentRequest_Activate_FromTerminal(t *testing.T) {
	for _, status := range []RequestStatus{RequestStatusScheduled, RequestStatusDeclined} {
		req, _ := NewAppointmentRequest("tenant-123", "Jamie", "+15551234567", "sleeve")
		req.Status = status

		if err := req.Activate(); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Expected ErrInvalidTransition from %s, got %v", status, err)
		}
	}
}

func TestAppointmentRequest_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{RequestStatusPending, RequestStatusContacting, true},
		{RequestStatusContacting, RequestStatusScheduled, true},
		{RequestStatusContacting, RequestStatusWaitlisted, true},
		{RequestStatusContacting, RequestStatusDeclined, true},
		{RequestStatusWaitlisted, RequestStatusContacting, true},
		{RequestStatusScheduled, RequestStatusContacting, false},
		{RequestStatusDeclined, RequestStatusContacting, false},
		{RequestStatusScheduled, RequestStatusDeclined, false},
	}

	for _, tt := range tests {
		req := &AppointmentRequest{Status: tt.from}
		if got := req.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAppointment_CreatedOn(t *testing.T) {
	now := time.Now()
	appt := &Appointment{CreatedAt: now}

	if !appt.CreatedOn(now) {
		t.Error("Expected appointment created now to flag as same-day")
	}
	if appt.CreatedOn(now.AddDate(0, 0, -1)) {
		t.Error("Expected appointment not to flag for yesterday")
	}
}

func TestNewPaymentIntent(t *testing.T) {
	tests := []struct {
		name        string
		tenantID    string
		providerRef string
		amount      int64
		wantErr     bool
	}{
		{"valid", "tenant-123", "pi_123", 5000, false},
		{"missing tenant", "", "pi_123", 5000, true},
		{"missing provider ref", "tenant-123", "", 5000, true},
		{"zero amount", "tenant-123", "pi_123", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pi, err := NewPaymentIntent(tt.tenantID, tt.providerRef, tt.amount, "usd")
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if pi.Status != PaymentStatusPending {
				t.Errorf("Expected status pending, got %s", pi.Status)
			}
		})
	}
}
