package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPProberAnyResponseMeansConnected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPProber(srv.URL)
	connected, ctype, err := p.Probe(context.Background())
	require.NoError(t, err)
	require.True(t, connected, "an error status still proves the network path")
	require.Equal(t, string(ConnectionUnknown), ctype)
}

func TestHTTPProberTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	p := NewHTTPProber(srv.URL)
	connected, _, err := p.Probe(context.Background())
	require.Error(t, err)
	require.False(t, connected)
}
