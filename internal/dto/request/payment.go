package request

type CreatePaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid"`
	PackageID string  `json:"package_id" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

// WebhookPayload is the gateway callback contract: exactly these two fields,
// anything else is malformed.
type WebhookPayload struct {
	Order *struct {
		ID string `json:"id"`
	} `json:"order"`
	Result *struct {
		Status string `json:"status"`
	} `json:"result"`
}
