package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	IsPremium bool   `json:"is_premium"`
}

type AccountResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsPremium   bool   `json:"is_premium"`
}
