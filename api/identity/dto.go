package identity

// TokenRequest carries the operator key.
type TokenRequest struct {
	Key string `json:"key" binding:"required"`
}

// TokenResponse carries a signed operator token.
type TokenResponse struct {
	Token string `json:"token"`
}
