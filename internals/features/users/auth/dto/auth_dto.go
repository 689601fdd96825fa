package dto

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=instrutor encarregado admin"`

	// Dados do registro de instrutor criado junto com o user.
	Telefone     *string  `json:"telefone" validate:"omitempty,max=20"`
	Congregacao  string   `json:"congregacao" validate:"required,min=2,max=120"`
	Instrumentos []string `json:"instrumentos" validate:"omitempty,dive,min=2,max=80"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
