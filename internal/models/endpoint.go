package models

import "fmt"

// BrokerEndpoint identifies one nsqd process by the address it broadcasts
// through the lookup directory. Identity is the (host, port) pair.
type BrokerEndpoint struct {
	Host     string
	HTTPPort int
}

// Addr returns the host:port form used both for deduplication and for
// building the stats URL.
func (e BrokerEndpoint) Addr() string {
	return fmt.Sprintf("%s:%d", e.Host, e.HTTPPort)
}
