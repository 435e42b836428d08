package response_models

type CreateCheckoutResponse struct {
	SessionID    string `json:"session_id"`
	Amount       int64  `json:"amount"`
	PaymentURL   string `json:"url"`
	ProviderName string `json:"provider"`
}

type VerifySessionResponse struct {
	Paid      bool `json:"paid"`
	IsPremium bool `json:"is_premium"`
}

// PlanResponse is one purchasable offer as shown on the paywall.
type PlanResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceMinor  int64  `json:"price_minor"`
	Currency    string `json:"currency"`
}
