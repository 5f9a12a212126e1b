// Package transport implements the auth middleware wrapped around every
// outgoing HTTP request: bearer-token injection plus the one-shot
// refresh-and-retry on 401.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/actionunit/aumcli/internal/client/api"
	"github.com/actionunit/aumcli/internal/common"
	"github.com/actionunit/aumcli/internal/logging"
)

// TokenSource is the slice of the session store the transport needs: token
// reads are synchronous and infallible, the access-token write lands on the
// persistent store.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
	SetAccessToken(ctx context.Context, token string) error
}

// maxRetries bounds the retry loop: one refresh, one replay, never more.
const maxRetries = 1

// Transport is an http.RoundTripper that attaches the bearer token to
// authenticated calls and, on a 401 with a refresh token on hand, performs
// exactly one refresh followed by exactly one replay of the original
// request. The three unauthenticated auth endpoints pass through untouched.
type Transport struct {
	base          http.RoundTripper
	tokens        TokenSource
	baseURL       string
	log           logging.Logger
	onAuthFailure func(ctx context.Context)
}

// New builds a Transport over base (http.DefaultTransport when nil).
func New(baseURL string, tokens TokenSource, base http.RoundTripper, log logging.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:    base,
		tokens:  tokens,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// OnAuthFailure registers the forced-logout hook invoked when the refresh
// attempt itself fails. The session manager wires its Logout here.
func (t *Transport) OnAuthFailure(fn func(ctx context.Context)) {
	t.onAuthFailure = fn
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if api.IsUnauthenticatedPath(req.URL.Path) {
		return t.base.RoundTrip(req)
	}

	token := t.tokens.AccessToken()

	for attempt := 0; ; attempt++ {
		resp, err := t.send(req, token, attempt > 0)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusUnauthorized || attempt >= maxRetries {
			return resp, nil
		}

		refresh := t.tokens.RefreshToken()
		if refresh == "" {
			return resp, nil
		}

		newToken, rerr := t.refreshAccessToken(req.Context(), refresh)
		if rerr != nil {
			discard(resp)
			t.log.Warn(req.Context(), "token refresh failed, forcing logout", "err", rerr)
			if t.onAuthFailure != nil {
				t.onAuthFailure(req.Context())
			}
			// The caller gets the refresh error, not the original 401.
			return nil, rerr
		}

		if err := t.tokens.SetAccessToken(req.Context(), newToken); err != nil {
			t.log.Warn(req.Context(), "persisting refreshed access token failed", "err", err)
		}

		discard(resp)
		token = newToken
	}
}

// send issues one attempt. The original request is never mutated; a clone
// carries the auth header and a fresh request id. Replays rebuild the body
// from GetBody.
func (t *Transport) send(req *http.Request, token string, replay bool) (*http.Response, error) {
	r := req.Clone(req.Context())
	if replay && req.Body != nil {
		if req.GetBody == nil {
			return nil, errors.New("request body cannot be replayed")
		}
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		r.Body = body
	}

	if token != "" {
		r.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}
	r.Header.Set(common.RequestIDHeader, uuid.NewString())

	return t.base.RoundTrip(r)
}

// refreshAccessToken performs the single refresh call, through the base
// round tripper so it can never re-enter the retry logic.
func (t *Transport) refreshAccessToken(ctx context.Context, refresh string) (string, error) {
	payload, err := json.Marshal(api.RefreshRequest{Refresh: refresh})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+api.PathTokenRefresh, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &api.APIError{StatusCode: resp.StatusCode, Body: data}
	}

	var out api.RefreshResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", common.ErrUnauthorized
	}
	return out.Access, nil
}

// discard drains and closes a response that will not be returned, so the
// underlying connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

var _ http.RoundTripper = (*Transport)(nil)
