package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/election/internal/adapters/repository"
	"github.com/vncsmyrnk/election/internal/adapters/repository/sqlite"
	"github.com/vncsmyrnk/election/internal/config"
	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/fixtures"
	"github.com/vncsmyrnk/election/internal/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Env: config.EnvLocal,
		HTTP: config.HTTPConfig{
			Addr:            "127.0.0.1:0",
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "election.db"))
	require.NoError(t, err)
	store := repository.NewSQLiteStore(db)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(ctx))
	return store
}

func newSeededServer(t *testing.T) (*httptest.Server, *repository.Store) {
	t.Helper()
	store := newStore(t)

	f, err := fixtures.Sample()
	require.NoError(t, err)
	require.NoError(t, f.Insert(context.Background(), store.Elections, store.PollingStations))

	srv := httptest.NewServer(New(store, logger.Discard(), testConfig()).Handler())
	t.Cleanup(srv.Close)
	return srv, store
}

func get(t *testing.T, url string, into any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if into != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}
	return resp.StatusCode
}

func TestPollingStationsScenario(t *testing.T) {
	srv, _ := newSeededServer(t)

	var list domain.PollingStationListResponse
	require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/elections/1/polling_stations", &list))
	require.Len(t, list.PollingStations, 2)

	names := make([]string, 0, len(list.PollingStations))
	for _, ps := range list.PollingStations {
		assert.Equal(t, int64(1), ps.ElectionID)
		names = append(names, ps.Name)
	}
	assert.Contains(t, names, `Stembureau "Op Rolletjes"`)

	assert.Equal(t, http.StatusNotFound, get(t, srv.URL+"/api/elections/1234/polling_stations", nil))

	var station domain.PollingStation
	require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/polling_stations/1", &station))
	assert.Equal(t, int64(1), station.ID)
	assert.Equal(t, `Stembureau "Op Rolletjes"`, station.Name)
}

func TestListingIsRepeatable(t *testing.T) {
	srv, _ := newSeededServer(t)

	var first, second domain.PollingStationListResponse
	require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/elections/1/polling_stations", &first))
	require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/elections/1/polling_stations", &second))
	assert.Equal(t, first, second)
}

func TestElectionWithoutPollingStations(t *testing.T) {
	srv, _ := newSeededServer(t)

	resp, err := http.Get(srv.URL + "/api/elections/2/polling_stations")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, `[]`, string(body["polling_stations"]))
}

func TestPollingStationFieldsRoundTrip(t *testing.T) {
	srv, _ := newSeededServer(t)

	resp, err := http.Get(srv.URL + "/api/polling_stations/2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name":"Basisschool «De Ünïcørn» café 日本"`)

	var station domain.PollingStation
	require.NoError(t, json.Unmarshal(raw, &station))
	assert.Equal(t, "Basisschool «De Ünïcørn» café 日本", station.Name)
	assert.Nil(t, station.NumberOfVoters)
	require.NotNil(t, station.HouseNumberAddition)
	assert.Equal(t, "b", *station.HouseNumberAddition)
	require.NotNil(t, station.PollingStationType)
	assert.Equal(t, domain.PollingStationTypeSpecial, *station.PollingStationType)
}

func TestSavedNameIsReturnedVerbatim(t *testing.T) {
	srv, store := newSeededServer(t)

	name := `Stembureau «Zuid» café Ünïcødé 日本 "q"`
	station := domain.PollingStation{
		ElectionID: 2,
		Name:       name,
		Number:     1,
		Street:     "Dorpsstraat",
		PostalCode: "1234 AB",
		Locality:   "Juinen",
	}
	require.NoError(t, store.PollingStations.Save(context.Background(), &station))

	var got domain.PollingStation
	require.Equal(t, http.StatusOK, get(t, fmt.Sprintf("%s/api/polling_stations/%d", srv.URL, station.ID), &got))
	assert.Equal(t, []byte(name), []byte(got.Name))

	var list domain.PollingStationListResponse
	require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/elections/2/polling_stations", &list))
	require.Len(t, list.PollingStations, 1)
	assert.Equal(t, name, list.PollingStations[0].Name)
}

func TestNotFoundAndMalformed(t *testing.T) {
	srv, _ := newSeededServer(t)

	tests := []struct {
		path string
		want int
	}{
		{"/api/polling_stations/9999", http.StatusNotFound},
		{"/api/elections/9999", http.StatusNotFound},
		{"/api/elections/abc/polling_stations", http.StatusBadRequest},
		{"/api/polling_stations/abc", http.StatusBadRequest},
		{"/api/polling_stations/99999999999999999999", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, get(t, srv.URL+tt.path, nil))
		})
	}
}

func TestElectionDetails(t *testing.T) {
	srv, _ := newSeededServer(t)

	var elections domain.ElectionListResponse
	require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/elections", &elections))
	assert.Len(t, elections.Elections, 2)

	var details domain.ElectionDetailsResponse
	require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/elections/1", &details))
	assert.Equal(t, "2024-11-30", details.Election.ElectionDate.String())
	assert.Len(t, details.PollingStations, 2)
}

func TestStorageFailure(t *testing.T) {
	srv, store := newSeededServer(t)
	require.NoError(t, store.Close())

	assert.Equal(t, http.StatusInternalServerError, get(t, srv.URL+"/api/elections/1/polling_stations", nil))
	assert.Equal(t, http.StatusInternalServerError, get(t, srv.URL+"/api/polling_stations/1", nil))
	assert.Equal(t, http.StatusServiceUnavailable, get(t, srv.URL+"/health", nil))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	store := newStore(t)
	a := New(store, logger.Discard(), testConfig())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/health", ln.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
