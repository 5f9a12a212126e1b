// Package models defines client-side data models for the welfare client.
package models

import (
	"encoding/json"
)

// RoleFlags is the set of capabilities a user holds. The flags are
// independent booleans, not an ordered enum: a user may hold zero, one, or
// all of them at once.
type RoleFlags struct {
	IsMember       bool `json:"is_member"`
	IsWelfareAdmin bool `json:"is_welfare_admin"`
	IsChurchAdmin  bool `json:"is_church_admin"`
}

// Church is the congregation a user or resource belongs to.
type Church struct {
	ID          int64  `json:"id"`
	Name        string `json:"name,omitempty"`
	WelfareName string `json:"welfare_name,omitempty"`
	Location    string `json:"location,omitempty"`
	Email       string `json:"email,omitempty"`
}

// User is the authenticated account. Immutable for the lifetime of a
// session except through the role-management endpoints.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Roles       RoleFlags `json:"-"`
	Church      *Church   `json:"church,omitempty"`
}

// userWire mirrors the backend's user payload. The login response carries a
// single "role" string while the role-management endpoints return the three
// booleans; both forms fold into RoleFlags.
type userWire struct {
	ID             json.Number `json:"id"`
	Name           string      `json:"name"`
	PhoneNumber    string      `json:"phone_number"`
	Role           string      `json:"role"`
	IsMember       bool        `json:"is_member"`
	IsWelfareAdmin bool        `json:"is_welfare_admin"`
	IsChurchAdmin  bool        `json:"is_church_admin"`
	Church         *Church     `json:"church"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var w userWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	u.ID = w.ID.String()
	u.Name = w.Name
	u.PhoneNumber = w.PhoneNumber
	u.Church = w.Church
	u.Roles = RoleFlags{
		IsMember:       w.IsMember,
		IsWelfareAdmin: w.IsWelfareAdmin,
		IsChurchAdmin:  w.IsChurchAdmin,
	}

	// Fold the legacy single-role string into the flag set.
	switch w.Role {
	case "is_member":
		u.Roles.IsMember = true
	case "is_welfare_admin":
		u.Roles.IsWelfareAdmin = true
	case "is_church_admin":
		u.Roles.IsChurchAdmin = true
	}

	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	w := struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		PhoneNumber    string  `json:"phone_number"`
		IsMember       bool    `json:"is_member"`
		IsWelfareAdmin bool    `json:"is_welfare_admin"`
		IsChurchAdmin  bool    `json:"is_church_admin"`
		Church         *Church `json:"church,omitempty"`
	}{
		ID:             u.ID,
		Name:           u.Name,
		PhoneNumber:    u.PhoneNumber,
		IsMember:       u.Roles.IsMember,
		IsWelfareAdmin: u.Roles.IsWelfareAdmin,
		IsChurchAdmin:  u.Roles.IsChurchAdmin,
		Church:         u.Church,
	}
	return json.Marshal(w)
}

// Session is the tuple held for the authenticated lifetime of the app.
// Invariant: AccessToken and User are both present or both absent.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}
