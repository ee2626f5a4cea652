package dto

// CreatePaymentIntentInput starts a deposit collection flow
type CreatePaymentIntentInput struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Currency    string `json:"currency"`
	CustomerID  string `json:"customer_id"`
	Description string `json:"description"`
}

// CreatePaymentIntentResponse carries the client secret back to the UI
type CreatePaymentIntentResponse struct {
	ProviderRef  string `json:"provider_ref"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// WebhookAck is the acknowledgement body for provider webhooks
type WebhookAck struct {
	Received bool `json:"received"`
}
