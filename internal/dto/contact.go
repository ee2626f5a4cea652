package dto

// ContactInput is an admin-triggered outbound SMS or call
type ContactInput struct {
	Type    string `json:"type" binding:"required,oneof=sms call"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactResponse reports the dispatch outcome
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	CallSID string `json:"call_sid,omitempty"`
	Error   string `json:"error,omitempty"`
}
