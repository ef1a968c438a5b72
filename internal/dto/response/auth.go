package response

type AuthResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	Customer    CustomerResponse `json:"customer"`
}
