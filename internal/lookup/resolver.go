package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nsqtop/internal/models"
	"nsqtop/internal/shared/loggers"
	"nsqtop/internal/shared/metrics"
)

const defaultRequestTimeout = 2 * time.Second

// nodesResponse is the wire shape of nsqlookupd's /nodes endpoint.
type nodesResponse struct {
	Producers []producer `json:"producers"`
}

type producer struct {
	BroadcastAddress string `json:"broadcast_address"`
	HTTPPort         int    `json:"http_port"`
}

type Resolver interface {
	// Resolve queries every configured lookupd address for the active broker
	// set and returns the deduplicated endpoints. A failing address is skipped
	// as long as at least one address answered; only a total failure returns
	// an error.
	Resolve(ctx context.Context) ([]models.BrokerEndpoint, error)
}

type resolver struct {
	addresses []string
	client    *http.Client
}

// NewResolver creates a Resolver over the given lookupd base addresses
// (scheme included). timeout bounds each /nodes request; zero selects the
// default of 2s.
func NewResolver(addresses []string, timeout time.Duration) Resolver {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &resolver{
		addresses: addresses,
		client:    &http.Client{Timeout: timeout},
	}
}

func (r *resolver) Resolve(ctx context.Context) ([]models.BrokerEndpoint, error) {
	logger := loggers.Ctx(ctx)

	var producers []producer
	var failures []string

	for _, address := range r.addresses {
		found, err := r.queryNodes(ctx, address)
		if err != nil {
			logger.Debug().
				Str(loggers.FieldLookupd, address).
				Err(err).
				Msg("lookupd query failed")
			metricLookupRequestsTotal.WithLabelValues(address, codeLookupRequestFailed).Inc()
			failures = append(failures, fmt.Sprintf("failed to query %s: %v", address, err))
			continue
		}
		metricLookupRequestsTotal.WithLabelValues(address, metrics.ValueNoError).Inc()
		producers = append(producers, found...)
	}

	if len(producers) == 0 && len(failures) > 0 {
		return nil, errAllLookupsFailed(failures)
	}

	return dedupe(producers), nil
}

func (r *resolver) queryNodes(ctx context.Context, address string) ([]producer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address+"/nodes", nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var nodes nodesResponse
	if err := json.NewDecoder(resp.Body).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	return nodes.Producers, nil
}

// dedupe collapses producers reported by more than one lookupd to a single
// endpoint, keyed on (host, port).
func dedupe(producers []producer) []models.BrokerEndpoint {
	seen := make(map[string]bool, len(producers))
	endpoints := make([]models.BrokerEndpoint, 0, len(producers))
	for _, p := range producers {
		endpoint := models.BrokerEndpoint{Host: p.BroadcastAddress, HTTPPort: p.HTTPPort}
		if seen[endpoint.Addr()] {
			continue
		}
		seen[endpoint.Addr()] = true
		endpoints = append(endpoints, endpoint)
	}
	return endpoints
}
