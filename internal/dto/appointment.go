package dto

import (
	"time"

	"github.com/bigrusstattoo/studio/internal/domain"
)

// AppointmentResponse is the API shape of an appointment
type AppointmentResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id,omitempty"`
	ArtistID   string    `json:"artist_id"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAppointmentResponse converts a domain appointment to its API shape
func NewAppointmentResponse(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         appt.ID,
		CustomerID: appt.CustomerID,
		ArtistID:   appt.ArtistID,
		Title:      appt.Title,
		StartTime:  appt.StartTime,
		CreatedAt:  appt.CreatedAt,
	}
}

// AppointmentNotification flags an appointment that was booked today.
// Derived at read time, never stored.
type AppointmentNotification struct {
	AppointmentID string `json:"appointment_id"`
	Title         string `json:"title"`
	Message       string `json:"message"`
}

// ArtistAppointmentsResponse is the artist dashboard payload
type ArtistAppointmentsResponse struct {
	Appointments  []*AppointmentResponse     `json:"appointments"`
	Notifications []*AppointmentNotification `json:"notifications"`
}
