package response

type PaymentSessionResponse struct {
	TransactionID       string `json:"transactionId"`
	SessionID           string `json:"sessionId"`
	SessionKey          string `json:"sessionKey"`
	AuthenticationLimit int    `json:"authenticationLimit"`
}

type WebhookAckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
