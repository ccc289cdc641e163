package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"nsqtop/internal/models"
	"nsqtop/internal/shared/loggers"
	"nsqtop/internal/shared/metrics"
)

const (
	defaultRequestTimeout = 2 * time.Second
	maxConcurrentFetches  = 16
)

// statsEnvelope covers both wire shapes of nsqd's /stats endpoint: older
// versions return topics at the top level, newer ones nest them under
// "data".
type statsEnvelope struct {
	Topics []models.TopicStats `json:"topics"`
	Data   *struct {
		Topics []models.TopicStats `json:"topics"`
	} `json:"data"`
}

func (e *statsEnvelope) document() models.StatsDocument {
	if e.Data != nil {
		return models.StatsDocument{Topics: e.Data.Topics}
	}
	return models.StatsDocument{Topics: e.Topics}
}

type Fetcher interface {
	// FetchAll retrieves the stats document of every endpoint in parallel.
	// Brokers that time out, refuse the connection or return a malformed body
	// are skipped: transient node churn is expected operational noise, not an
	// error. The result may be empty.
	FetchAll(ctx context.Context, endpoints []models.BrokerEndpoint) []models.StatsDocument
}

type fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher. timeout bounds each per-broker request; zero
// selects the default of 2s.
func NewFetcher(timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &fetcher{client: &http.Client{Timeout: timeout}}
}

func (f *fetcher) FetchAll(ctx context.Context, endpoints []models.BrokerEndpoint) []models.StatsDocument {
	logger := loggers.Ctx(ctx)

	var mu sync.Mutex
	documents := make([]models.StatsDocument, 0, len(endpoints))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentFetches)

	for _, endpoint := range endpoints {
		endpoint := endpoint
		group.Go(func() error {
			document, err := f.fetchOne(groupCtx, endpoint)
			if err != nil {
				logger.Debug().
					Str(loggers.FieldBroker, endpoint.Addr()).
					Err(err).
					Msg("broker stats fetch skipped")
				metricStatsFetchTotal.WithLabelValues(codeStatsFetchFailed).Inc()
				return nil
			}
			metricStatsFetchTotal.WithLabelValues(metrics.ValueNoError).Inc()
			mu.Lock()
			documents = append(documents, document)
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait only joins the fan-out.
	_ = group.Wait()

	return documents
}

func (f *fetcher) fetchOne(ctx context.Context, endpoint models.BrokerEndpoint) (models.StatsDocument, error) {
	url := fmt.Sprintf("http://%s/stats?format=json", endpoint.Addr())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.StatsDocument{}, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return models.StatsDocument{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.StatsDocument{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var envelope statsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return models.StatsDocument{}, fmt.Errorf("invalid json: %w", err)
	}

	return envelope.document(), nil
}
