package dto

// RegisterRequest creates a user or admin account.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Firstname   string `json:"firstname" validate:"required"`
	Address     string `json:"address"`
	CompanyName string `json:"companyName"`
	GSTNumber   string `json:"gstNumber"`
}

// LoginRequest authenticates by email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the account shape returned by auth endpoints.
type AuthUser struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Firstname   string  `json:"firstname"`
	Role        string  `json:"role"`
	Address     *string `json:"address,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
	GSTNumber   *string `json:"gstNumber,omitempty"`
}

// LoginResult carries the account and its freshly minted token pair.
type LoginResult struct {
	User         AuthUser `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}
