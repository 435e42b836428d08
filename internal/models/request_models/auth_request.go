package request_models

type SendOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	// Mode "login" only sends a code to known emails; "signup" creates the
	// profile on verify.
	Mode string `json:"mode" binding:"omitempty,oneof=login signup"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}
