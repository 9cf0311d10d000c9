package domain

import "time"

// UserRole controls authorization for back-office routes.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// User is an account created via public signup or admin registration.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Firstname    *string   `json:"firstname"`
	Role         UserRole  `json:"role"`
	Address      *string   `json:"address"`
	CompanyName  *string   `json:"companyName"`
	GSTNumber    *string   `json:"gstNumber,omitempty"`
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary is the reduced user shape embedded in other resources.
type UserSummary struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Firstname *string `json:"firstname"`
}

// Summary projects the embeddable fields.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Firstname: u.Firstname}
}
