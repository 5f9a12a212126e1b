package network

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/actionunit/aumcli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeProber struct {
	connected bool
	ctype     string
	err       error
	calls     int
}

func (f *fakeProber) Probe(ctx context.Context) (bool, string, error) {
	f.calls++
	return f.connected, f.ctype, f.err
}

func TestParseConnectionType(t *testing.T) {
	tests := []struct {
		in   string
		want ConnectionType
	}{
		{"wifi", ConnectionWifi},
		{"cellular", ConnectionCellular},
		{"none", ConnectionNone},
		{"unknown", ConnectionUnknown},
		{"", ConnectionUnknown},
		{"ethernet", ConnectionUnknown},
		{"4g", ConnectionUnknown},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseConnectionType(tt.in), "input %q", tt.in)
	}
}

func TestMonitorStartsOptimistic(t *testing.T) {
	m := NewMonitor(&fakeProber{}, testLogger())

	st := m.CurrentStatus()
	require.True(t, st.Connected)
	require.Equal(t, ConnectionUnknown, st.ConnectionType)
}

func TestIsOnline(t *testing.T) {
	p := &fakeProber{connected: true, ctype: "wifi"}
	m := NewMonitor(p, testLogger())

	require.True(t, m.IsOnline(context.Background()))

	p.connected = false
	require.False(t, m.IsOnline(context.Background()))
}

func TestIsOnlineFalseOnProbeError(t *testing.T) {
	p := &fakeProber{connected: true, err: errors.New("dns failure")}
	m := NewMonitor(p, testLogger())

	require.False(t, m.IsOnline(context.Background()))
}

func TestRefreshUpdatesAndCoerces(t *testing.T) {
	p := &fakeProber{connected: true, ctype: "ethernet"}
	m := NewMonitor(p, testLogger())

	st := m.Refresh(context.Background())
	require.True(t, st.Connected)
	require.Equal(t, ConnectionUnknown, st.ConnectionType, "foreign types are coerced, never passed through")

	p.ctype = "cellular"
	st = m.Refresh(context.Background())
	require.Equal(t, ConnectionCellular, st.ConnectionType)
	require.Equal(t, st, m.CurrentStatus())
}

func TestRefreshKeepsCacheOnProbeError(t *testing.T) {
	p := &fakeProber{connected: true, ctype: "wifi"}
	m := NewMonitor(p, testLogger())
	m.Refresh(context.Background())

	p.err = errors.New("timeout")
	st := m.Refresh(context.Background())
	require.True(t, st.Connected)
	require.Equal(t, ConnectionWifi, st.ConnectionType)
}

func TestSubscribeReplaysAndPublishesChanges(t *testing.T) {
	p := &fakeProber{connected: true, ctype: "wifi"}
	m := NewMonitor(p, testLogger())

	ch := m.Subscribe()
	require.Equal(t, Status{Connected: true, ConnectionType: ConnectionUnknown}, <-ch)

	m.Refresh(context.Background())
	require.Equal(t, Status{Connected: true, ConnectionType: ConnectionWifi}, <-ch)

	// Same status again: no duplicate publication.
	m.Refresh(context.Background())
	select {
	case st := <-ch:
		t.Fatalf("unexpected publication: %+v", st)
	default:
	}

	p.connected = false
	p.ctype = "none"
	m.Refresh(context.Background())
	require.Equal(t, Status{Connected: false, ConnectionType: ConnectionNone}, <-ch)
}

func TestSubscribeKeepsLatestWhenLagging(t *testing.T) {
	p := &fakeProber{connected: true, ctype: "wifi"}
	m := NewMonitor(p, testLogger())

	ch := m.Subscribe()

	m.Refresh(context.Background())
	p.connected = false
	p.ctype = "none"
	m.Refresh(context.Background())

	// The subscriber never drained the initial replay; it still sees the
	// latest transition first.
	require.Equal(t, Status{Connected: false, ConnectionType: ConnectionNone}, <-ch)
}
