package api

import "github.com/actionunit/aumcli/internal/client/models"

// LoginRequest is the phone-number credential exchanged for tokens.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10"`
}

// AuthResponse is the login payload: token pair plus the authenticated user.
type AuthResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *models.User `json:"user"`
}

// SignupRequest creates a church together with its first admin user.
type SignupRequest struct {
	ChurchName  string `json:"church_name" validate:"required"`
	WelfareName string `json:"welfare_name" validate:"required"`
	Location    string `json:"location,omitempty"`
	ChurchEmail string `json:"church_email,omitempty" validate:"omitempty,email"`
	WelfareMomo string `json:"welfare_momo,omitempty"`
	ChurchMomo  string `json:"church_momo,omitempty"`
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,min=10"`
	Gender      string `json:"gender,omitempty"`
}

// SignupResponse acknowledges account creation. The token pair is issued but
// the app still routes new accounts through login.
type SignupResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Tokens  TokenPair    `json:"tokens"`
}

// TokenPair is an access/refresh token couple.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse carries the replacement access token only; the refresh
// token stays valid until the session ends.
type RefreshResponse struct {
	Access string `json:"access"`
}

// UsersResponse is the role-management listing.
type UsersResponse struct {
	Users []models.RoleUser `json:"users"`
}

// UserResponse is a single role-management row, returned after an update.
type UserResponse struct {
	User    models.RoleUser `json:"user"`
	Message string          `json:"message,omitempty"`
}
