// Package services contains the application services of the welfare client.
// This file defines the auth session manager: login gated on connectivity,
// local logout, the one-shot token refresh, and session bootstrap at start.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/actionunit/aumcli/internal/client/api"
	"github.com/actionunit/aumcli/internal/client/models"
	"github.com/actionunit/aumcli/internal/common"
	"github.com/actionunit/aumcli/internal/logging"
)

// AuthAPI is the slice of the API client the session manager calls. All
// three endpoints are unauthenticated by contract.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.SignupResponse, error)
	RefreshToken(ctx context.Context, refresh string) (*api.RefreshResponse, error)
}

// SessionStore is the store surface the session manager mutates.
type SessionStore interface {
	AccessToken() string
	RefreshToken() string
	CurrentUser() *models.User
	Save(ctx context.Context, sess models.Session) error
	SetAccessToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Connectivity gates network-dependent operations.
type Connectivity interface {
	IsOnline(ctx context.Context) bool
}

// Router receives the navigation side effects of login and logout. The
// presentation layer owns what a route means.
type Router interface {
	Navigate(route string)
}

// Notifier receives the user-facing messages the core extracts. The
// presentation layer owns how they are shown.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// AuthService is the session state machine: anonymous <-> authenticated.
type AuthService interface {
	Login(ctx context.Context, phoneNumber string) (*models.User, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.SignupResponse, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Bootstrap(ctx context.Context) *models.User
	IsAuthenticated() bool
	IsMember() bool
	IsWelfareAdmin() bool
	IsChurchAdmin() bool
}

type authService struct {
	client   AuthAPI
	store    SessionStore
	net      Connectivity
	router   Router
	notifier Notifier
	log      logging.Logger
}

// NewAuthService constructs an AuthService with all collaborators injected.
func NewAuthService(client AuthAPI, store SessionStore, net Connectivity, router Router, notifier Notifier, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		store:    store,
		net:      net,
		router:   router,
		notifier: notifier,
		log:      log,
	}
}

// Login exchanges a phone number for a session. Offline, it fails before
// any HTTP call is made. On success the session is persisted atomically and
// the app navigates home; on failure a human-readable message is surfaced
// and the state stays anonymous.
func (a *authService) Login(ctx context.Context, phoneNumber string) (*models.User, error) {
	if !a.net.IsOnline(ctx) {
		a.notifier.Error("Internet connection required for login")
		return nil, common.ErrOffline
	}

	resp, err := a.client.Login(ctx, api.LoginRequest{PhoneNumber: phoneNumber})
	if err != nil {
		a.notifier.Error(api.ExtractMessage(err))
		return nil, fmt.Errorf("login: %w", err)
	}

	sess := models.Session{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		User:         resp.User,
	}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	a.log.Info(ctx, "login succeeded", "user_id", resp.User.ID)
	a.router.Navigate(common.RouteHome)
	return resp.User, nil
}

// Signup creates a church plus its first admin user. New accounts are
// routed through login afterwards.
func (a *authService) Signup(ctx context.Context, req api.SignupRequest) (*api.SignupResponse, error) {
	if !a.net.IsOnline(ctx) {
		a.notifier.Error("Internet connection required for signup")
		return nil, common.ErrOffline
	}

	resp, err := a.client.Signup(ctx, req)
	if err != nil {
		a.notifier.Error(api.ExtractMessage(err))
		return nil, fmt.Errorf("signup: %w", err)
	}

	a.notifier.Success("Church account created successfully!")
	a.router.Navigate(common.RouteLogin)
	return resp, nil
}

// Logout is a local operation: it clears the store and navigates to login.
// No network call is needed for it to succeed.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	a.router.Navigate(common.RouteLogin)
	return nil
}

// Refresh performs the one-shot token refresh. Missing prerequisites
// (offline, no refresh token) or any refresh failure demote the session to
// anonymous via Logout; the refresh is never retried.
func (a *authService) Refresh(ctx context.Context) error {
	refresh := a.store.RefreshToken()
	if refresh == "" {
		if err := a.Logout(ctx); err != nil {
			return err
		}
		return common.ErrNoRefreshToken
	}
	if !a.net.IsOnline(ctx) {
		if err := a.Logout(ctx); err != nil {
			return err
		}
		return common.ErrOffline
	}

	resp, err := a.client.RefreshToken(ctx, refresh)
	if err != nil {
		a.log.Warn(ctx, "token refresh failed, logging out", "err", err)
		if lerr := a.Logout(ctx); lerr != nil {
			return lerr
		}
		return fmt.Errorf("refresh: %w", err)
	}

	return a.store.SetAccessToken(ctx, resp.Access)
}

// Bootstrap inspects the rehydrated session at startup. An access token
// that is already expired triggers one silent refresh attempt; a failed
// refresh has already demoted the session by the time this returns.
func (a *authService) Bootstrap(ctx context.Context) *models.User {
	user := a.store.CurrentUser()
	if user == nil {
		return nil
	}

	if tokenExpired(a.store.AccessToken()) {
		a.log.Info(ctx, "stored access token expired, refreshing", "user_id", user.ID)
		if err := a.Refresh(ctx); err != nil {
			return nil
		}
	}

	return a.store.CurrentUser()
}

func (a *authService) IsAuthenticated() bool {
	return a.store.AccessToken() != ""
}

func (a *authService) IsMember() bool {
	u := a.store.CurrentUser()
	return u != nil && u.Roles.IsMember
}

func (a *authService) IsWelfareAdmin() bool {
	u := a.store.CurrentUser()
	return u != nil && u.Roles.IsWelfareAdmin
}

func (a *authService) IsChurchAdmin() bool {
	u := a.store.CurrentUser()
	return u != nil && u.Roles.IsChurchAdmin
}

// tokenExpired inspects the access token's exp claim without verifying the
// signature; verification is the backend's job. Unparseable tokens count as
// expired, a token without exp does not.
func tokenExpired(token string) bool {
	if token == "" {
		return true
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
