package network

import (
	"context"
	"sync"
	"time"

	"github.com/actionunit/aumcli/internal/logging"
)

// Monitor caches the last known Status and publishes transitions. The
// initial status is optimistic ({connected, unknown}) so a cold start never
// blocks on the first probe.
type Monitor struct {
	prober Prober
	log    logging.Logger

	mu     sync.RWMutex
	status Status
	subs   []chan Status
}

func NewMonitor(prober Prober, log logging.Logger) *Monitor {
	return &Monitor{
		prober: prober,
		log:    log,
		status: Status{Connected: true, ConnectionType: ConnectionUnknown},
	}
}

// CurrentStatus returns the cached status synchronously, no I/O.
func (m *Monitor) CurrentStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// IsOnline queries live reachability. A probe failure reads as offline:
// for the purpose of gating network operations, unknown is not good enough.
func (m *Monitor) IsOnline(ctx context.Context) bool {
	connected, _, err := m.prober.Probe(ctx)
	if err != nil {
		m.log.Warn(ctx, "connectivity probe failed", "err", err)
		return false
	}
	return connected
}

// Refresh probes on demand, updates the cache, and publishes on change.
// On probe failure the cached value is returned untouched.
func (m *Monitor) Refresh(ctx context.Context) Status {
	connected, rawType, err := m.prober.Probe(ctx)
	if err != nil {
		m.log.Warn(ctx, "connectivity refresh failed", "err", err)
		return m.CurrentStatus()
	}

	next := Status{Connected: connected, ConnectionType: ParseConnectionType(rawType)}
	m.update(ctx, next)
	return next
}

// Subscribe returns a channel of status changes; the last known value is
// replayed immediately.
func (m *Monitor) Subscribe() <-chan Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan Status, 1)
	ch <- m.status
	m.subs = append(m.subs, ch)
	return ch
}

// Watch probes every interval until ctx is done, publishing transitions.
func (m *Monitor) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			m.Refresh(probeCtx)
			cancel()
		case <-ctx.Done():
			return
		}
	}
}

func (m *Monitor) update(ctx context.Context, next Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if next == m.status {
		return
	}
	m.log.Info(ctx, "connectivity changed", "connected", next.Connected, "type", string(next.ConnectionType))
	m.status = next

	for _, ch := range m.subs {
		select {
		case ch <- next:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- next
		}
	}
}
