package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/actionunit/aumcli/internal/client/api"
	"github.com/actionunit/aumcli/internal/client/models"
	"github.com/actionunit/aumcli/internal/common"
	"github.com/actionunit/aumcli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeAuthAPI struct {
	loginResp *api.AuthResponse
	loginErr  error
	loginN    int

	signupResp *api.SignupResponse
	signupErr  error

	refreshResp *api.RefreshResponse
	refreshErr  error
	refreshN    int
}

func (f *fakeAuthAPI) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	f.loginN++
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Signup(ctx context.Context, req api.SignupRequest) (*api.SignupResponse, error) {
	return f.signupResp, f.signupErr
}

func (f *fakeAuthAPI) RefreshToken(ctx context.Context, refresh string) (*api.RefreshResponse, error) {
	f.refreshN++
	return f.refreshResp, f.refreshErr
}

type fakeStore struct {
	access  string
	refresh string
	user    *models.User
	saveErr error
	clearN  int
}

func (f *fakeStore) AccessToken() string       { return f.access }
func (f *fakeStore) RefreshToken() string      { return f.refresh }
func (f *fakeStore) CurrentUser() *models.User { return f.user }

func (f *fakeStore) Save(ctx context.Context, sess models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.access = sess.AccessToken
	f.refresh = sess.RefreshToken
	f.user = sess.User
	return nil
}

func (f *fakeStore) SetAccessToken(ctx context.Context, token string) error {
	if f.user == nil {
		return nil
	}
	f.access = token
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.clearN++
	f.access, f.refresh, f.user = "", "", nil
	return nil
}

type fakeNet struct{ online bool }

func (f *fakeNet) IsOnline(ctx context.Context) bool { return f.online }

type fakeRouter struct{ routes []string }

func (f *fakeRouter) Navigate(route string) { f.routes = append(f.routes, route) }

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Success(msg string) { f.successes = append(f.successes, msg) }
func (f *fakeNotifier) Error(msg string)   { f.errors = append(f.errors, msg) }

type fixture struct {
	api      *fakeAuthAPI
	store    *fakeStore
	net      *fakeNet
	router   *fakeRouter
	notifier *fakeNotifier
	svc      AuthService
}

func newFixture(online bool) *fixture {
	f := &fixture{
		api:      &fakeAuthAPI{},
		store:    &fakeStore{},
		net:      &fakeNet{online: online},
		router:   &fakeRouter{},
		notifier: &fakeNotifier{},
	}
	f.svc = NewAuthService(f.api, f.store, f.net, f.router, f.notifier, testLogger())
	return f
}

func testUser() *models.User {
	return &models.User{
		ID:          "5",
		Name:        "Kofi Asante",
		PhoneNumber: "0240000000",
		Roles:       models.RoleFlags{IsMember: true},
	}
}

// makeToken builds an unsigned JWT good enough for expiry inspection.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := func(v any) string {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(data)
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	return fmt.Sprintf("%s.%s.sig", enc(header), enc(claims))
}

func TestLoginOfflineFailsBeforeAnyCall(t *testing.T) {
	f := newFixture(false)

	user, err := f.svc.Login(context.Background(), "0240000000")
	require.ErrorIs(t, err, common.ErrOffline)
	require.Nil(t, user)
	require.Zero(t, f.api.loginN, "no HTTP call may be attempted offline")
	require.Equal(t, []string{"Internet connection required for login"}, f.notifier.errors)
}

func TestLoginSuccess(t *testing.T) {
	f := newFixture(true)
	f.api.loginResp = &api.AuthResponse{Access: "a1", Refresh: "r1", User: testUser()}

	user, err := f.svc.Login(context.Background(), "0240000000")
	require.NoError(t, err)
	require.Equal(t, "5", user.ID)

	require.Equal(t, "a1", f.store.access)
	require.Equal(t, "r1", f.store.refresh)
	require.Equal(t, user, f.store.user)
	require.Equal(t, []string{common.RouteHome}, f.router.routes)
	require.True(t, f.svc.IsAuthenticated())
}

func TestLoginBackendErrorStaysAnonymous(t *testing.T) {
	f := newFixture(true)
	f.api.loginErr = &api.APIError{StatusCode: http.StatusUnauthorized}

	user, err := f.svc.Login(context.Background(), "0240000000")
	require.Error(t, err)
	require.Nil(t, user)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Nil(t, f.store.user)
	require.Empty(t, f.router.routes)
	require.Equal(t, []string{"Invalid credentials. Please try again."}, f.notifier.errors)
}

func TestSignupSuccess(t *testing.T) {
	f := newFixture(true)
	f.api.signupResp = &api.SignupResponse{Message: "created"}

	resp, err := f.svc.Signup(context.Background(), api.SignupRequest{
		ChurchName:  "Grace Chapel",
		WelfareName: "Grace Welfare",
		Name:        "Kofi Asante",
		PhoneNumber: "0240000000",
	})
	require.NoError(t, err)
	require.Equal(t, "created", resp.Message)
	require.Equal(t, []string{"Church account created successfully!"}, f.notifier.successes)
	require.Equal(t, []string{common.RouteLogin}, f.router.routes)
	require.Nil(t, f.store.user, "signup does not log the user in")
}

func TestSignupOffline(t *testing.T) {
	f := newFixture(false)

	resp, err := f.svc.Signup(context.Background(), api.SignupRequest{})
	require.ErrorIs(t, err, common.ErrOffline)
	require.Nil(t, resp)
}

func TestLogoutIsLocal(t *testing.T) {
	f := newFixture(false) // offline must not matter
	f.store.access, f.store.refresh, f.store.user = "a1", "r1", testUser()

	require.NoError(t, f.svc.Logout(context.Background()))
	require.Equal(t, 1, f.store.clearN)
	require.Nil(t, f.store.user)
	require.Equal(t, []string{common.RouteLogin}, f.router.routes)
	require.False(t, f.svc.IsAuthenticated())
}

func TestRefreshWithoutTokenLogsOut(t *testing.T) {
	f := newFixture(true)
	f.store.access, f.store.user = "a1", testUser()

	err := f.svc.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrNoRefreshToken)
	require.Equal(t, 1, f.store.clearN)
	require.Zero(t, f.api.refreshN)
}

func TestRefreshOfflineLogsOut(t *testing.T) {
	f := newFixture(false)
	f.store.access, f.store.refresh, f.store.user = "a1", "r1", testUser()

	err := f.svc.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrOffline)
	require.Equal(t, 1, f.store.clearN)
	require.Zero(t, f.api.refreshN)
}

func TestRefreshFailureLogsOut(t *testing.T) {
	f := newFixture(true)
	f.store.access, f.store.refresh, f.store.user = "a1", "r1", testUser()
	f.api.refreshErr = &api.APIError{StatusCode: http.StatusUnauthorized}

	err := f.svc.Refresh(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, f.api.refreshN, "the refresh is attempted exactly once")
	require.Equal(t, 1, f.store.clearN)
	require.Nil(t, f.store.user)
}

func TestRefreshSuccessSwapsAccessToken(t *testing.T) {
	f := newFixture(true)
	f.store.access, f.store.refresh, f.store.user = "a1", "r1", testUser()
	f.api.refreshResp = &api.RefreshResponse{Access: "a2"}

	require.NoError(t, f.svc.Refresh(context.Background()))
	require.Equal(t, "a2", f.store.access)
	require.Equal(t, "r1", f.store.refresh, "refresh token is untouched")
	require.NotNil(t, f.store.user)
}

func TestBootstrapAnonymous(t *testing.T) {
	f := newFixture(true)
	require.Nil(t, f.svc.Bootstrap(context.Background()))
	require.Zero(t, f.api.refreshN)
}

func TestBootstrapValidToken(t *testing.T) {
	f := newFixture(true)
	f.store.user = testUser()
	f.store.access = makeToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})

	user := f.svc.Bootstrap(context.Background())
	require.NotNil(t, user)
	require.Zero(t, f.api.refreshN, "a live token needs no refresh")
}

func TestBootstrapExpiredTokenRefreshes(t *testing.T) {
	f := newFixture(true)
	f.store.user = testUser()
	f.store.refresh = "r1"
	f.store.access = makeToken(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()})
	f.api.refreshResp = &api.RefreshResponse{Access: "a2"}

	user := f.svc.Bootstrap(context.Background())
	require.NotNil(t, user)
	require.Equal(t, 1, f.api.refreshN)
	require.Equal(t, "a2", f.store.access)
}

func TestBootstrapExpiredTokenRefreshFails(t *testing.T) {
	f := newFixture(true)
	f.store.user = testUser()
	f.store.refresh = "r1"
	f.store.access = makeToken(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()})
	f.api.refreshErr = &api.APIError{StatusCode: http.StatusUnauthorized}

	require.Nil(t, f.svc.Bootstrap(context.Background()))
	require.Equal(t, 1, f.store.clearN)
}

func TestRoleChecks(t *testing.T) {
	f := newFixture(true)
	require.False(t, f.svc.IsMember())
	require.False(t, f.svc.IsWelfareAdmin())
	require.False(t, f.svc.IsChurchAdmin())

	f.store.user = &models.User{
		ID:    "7",
		Roles: models.RoleFlags{IsMember: true, IsChurchAdmin: true},
	}
	require.True(t, f.svc.IsMember())
	require.False(t, f.svc.IsWelfareAdmin())
	require.True(t, f.svc.IsChurchAdmin())
}

func TestTokenExpired(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "empty", token: "", want: true},
		{name: "garbage", token: "not-a-jwt", want: true},
		{name: "no exp claim", token: makeToken(t, map[string]any{"sub": "5"}), want: false},
		{name: "future exp", token: makeToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()}), want: false},
		{name: "past exp", token: makeToken(t, map[string]any{"exp": time.Now().Add(-time.Minute).Unix()}), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tokenExpired(tt.token))
		})
	}
}
