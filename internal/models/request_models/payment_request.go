package request_models

type CreateCheckoutRequest struct {
	PlanCode string `json:"plan_id" binding:"omitempty,oneof=starter lifetime"`
}

type VerifySessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
