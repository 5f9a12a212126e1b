package network

import (
	"context"
	"net/http"
	"time"
)

// Prober queries live reachability. The connection type is returned as the
// raw platform string; the Monitor owns coercion into the bounded
// vocabulary.
type Prober interface {
	Probe(ctx context.Context) (connected bool, connectionType string, err error)
}

// HTTPProber reaches for the backend itself: any HTTP response at all, even
// an error status, proves the network path; only a transport failure means
// offline. The connection type is not observable this way and reports
// unknown.
type HTTPProber struct {
	url string
	hc  *http.Client
}

func NewHTTPProber(url string) *HTTPProber {
	return &HTTPProber{
		url: url,
		hc:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *HTTPProber) Probe(ctx context.Context) (bool, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false, "", err
	}

	resp, err := p.hc.Do(req)
	if err != nil {
		return false, "", err
	}
	_ = resp.Body.Close()

	return true, string(ConnectionUnknown), nil
}
