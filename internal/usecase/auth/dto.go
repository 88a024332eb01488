package auth

// LoginRequest carries the credential tuple. JSON field names follow the
// legacy client contract.
type LoginRequest struct {
	Number   string `json:"Int_number" validate:"required"`
	Code     string `json:"Int_code" validate:"required"`
	Password string `json:"Int_pass" validate:"required"`
}

// LoginResponse is the legacy login payload: the token plus the identity
// fields the mobile client displays.
type LoginResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	Number  string  `json:"Int_number"`
	Code    string  `json:"Int_code"`
	Type    *string `json:"Int_type"`
	Branch  *string `json:"Int_Branch"`
}
