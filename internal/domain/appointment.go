package domain

import (
	"time"
)

// Appointment is a scheduled booking for an artist
type Appointment struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	CustomerID string     `json:"customer_id,omitempty"`
	ArtistID   string     `json:"artist_id"`
	Title      string     `json:"title"`
	StartTime  time.Time  `json:"start_time"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// CreatedOn reports whether the appointment was created on the given
// calendar day. Used for the same-day dashboard notification flag, which
// is always derived at read time and never persisted.
func (a *Appointment) CreatedOn(day time.Time) bool {
	y1, m1, d1 := a.CreatedAt.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AvailabilityBlock marks a span of time an artist is unavailable
type AvailabilityBlock struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	ArtistID  string     `json:"artist_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Reason    string     `json:"reason,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
