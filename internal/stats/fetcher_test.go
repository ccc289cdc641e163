package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsqtop/internal/models"
)

func brokerServer(t *testing.T, body string) models.BrokerEndpoint {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats", r.URL.Path)
		require.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return endpointFor(t, server)
}

func endpointFor(t *testing.T, server *httptest.Server) models.BrokerEndpoint {
	t.Helper()
	hostPort := strings.TrimPrefix(server.URL, "http://")
	host, portStr, found := strings.Cut(hostPort, ":")
	require.True(t, found)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return models.BrokerEndpoint{Host: host, HTTPPort: port}
}

const flatStats = `{"topics":[{"topic_name":"orders","channels":[
	{"channel_name":"billing","depth":3,"backend_depth":1,"in_flight_count":2,"message_count":10}]}]}`

const nestedStats = `{"status_code":200,"data":{"topics":[{"topic_name":"clicks","channels":[
	{"channel_name":"archive","depth":5,"backend_depth":0,"in_flight_count":0,"message_count":7}]}]}}`

func TestFetcher_NormalizesBothStatsShapes(t *testing.T) {
	t.Parallel()

	flat := brokerServer(t, flatStats)
	nested := brokerServer(t, nestedStats)

	documents := NewFetcher(time.Second).FetchAll(context.Background(),
		[]models.BrokerEndpoint{flat, nested})

	require.Len(t, documents, 2)

	topics := make(map[string]models.TopicStats)
	for _, document := range documents {
		require.Len(t, document.Topics, 1)
		topics[document.Topics[0].TopicName] = document.Topics[0]
	}
	require.Contains(t, topics, "orders")
	require.Contains(t, topics, "clicks")
	assert.Equal(t, int64(10), topics["orders"].Channels[0].MessageCount)
	assert.Equal(t, int64(7), topics["clicks"].Channels[0].MessageCount)
}

func TestFetcher_SkipsFailingBrokersSilently(t *testing.T) {
	t.Parallel()

	healthy := brokerServer(t, flatStats)

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	downEndpoint := endpointFor(t, down)
	down.Close()

	malformed := brokerServer(t, `{"topics": "nope"`)

	documents := NewFetcher(time.Second).FetchAll(context.Background(),
		[]models.BrokerEndpoint{downEndpoint, healthy, malformed})

	require.Len(t, documents, 1)
	assert.Equal(t, "orders", documents[0].Topics[0].TopicName)
}

func TestFetcher_AbsentOptionalFieldsDefaultToZero(t *testing.T) {
	t.Parallel()

	// Older nsqd versions omit message_count on some channel entries.
	endpoint := brokerServer(t, `{"topics":[{"topic_name":"orders","channels":[
		{"channel_name":"billing","depth":3,"backend_depth":1,"in_flight_count":2}]}]}`)

	documents := NewFetcher(time.Second).FetchAll(context.Background(),
		[]models.BrokerEndpoint{endpoint})

	require.Len(t, documents, 1)
	channel := documents[0].Topics[0].Channels[0]
	assert.Equal(t, int64(0), channel.MessageCount)
	assert.Equal(t, int64(3), channel.Depth)
}

func TestFetcher_EmptyEndpointSet(t *testing.T) {
	t.Parallel()

	documents := NewFetcher(time.Second).FetchAll(context.Background(), nil)

	assert.Empty(t, documents)
}
