package domain

import (
	"time"
)

// Customer is a contact/person entity owning appointment requests and
// appointments. Deleting a customer never cascades to their history.
type Customer struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CustomerDetail is a customer with their request and appointment history
type CustomerDetail struct {
	Customer     *Customer             `json:"customer"`
	Requests     []*AppointmentRequest `json:"requests"`
	Appointments []*Appointment        `json:"appointments"`
}
