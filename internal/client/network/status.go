// Package network abstracts "is the device online right now" behind a
// probe, with a cached last-known status and a change stream.
package network

// ConnectionType is the bounded classification vocabulary. Whatever the
// platform reports is coerced into one of these four values before it
// leaves this package.
type ConnectionType string

const (
	ConnectionWifi     ConnectionType = "wifi"
	ConnectionCellular ConnectionType = "cellular"
	ConnectionNone     ConnectionType = "none"
	ConnectionUnknown  ConnectionType = "unknown"
)

// ParseConnectionType coerces a platform-reported string into the bounded
// vocabulary; anything foreign becomes unknown, never propagated verbatim.
func ParseConnectionType(s string) ConnectionType {
	switch ConnectionType(s) {
	case ConnectionWifi, ConnectionCellular, ConnectionNone, ConnectionUnknown:
		return ConnectionType(s)
	default:
		return ConnectionUnknown
	}
}

// Status is a point-in-time connectivity snapshot. Superseded on every
// change; no history is kept.
type Status struct {
	Connected      bool
	ConnectionType ConnectionType
}
