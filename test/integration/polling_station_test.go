package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/election/internal/core/domain"
)

func (a *TestApp) get(t *testing.T, path string, into any) int {
	t.Helper()
	resp, err := a.Client.Get(a.Server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if into != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}
	return resp.StatusCode
}

// TestPollingStationFlow lists the stations of a seeded election, checks an
// unknown election and fetches a single station.
func TestPollingStationFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	var list domain.PollingStationListResponse
	require.Equal(t, http.StatusOK, app.get(t, "/api/elections/1/polling_stations", &list))
	require.Len(t, list.PollingStations, 2)
	assert.Equal(t, `Stembureau "Op Rolletjes"`, list.PollingStations[0].Name)
	assert.Equal(t, "Basisschool «De Ünïcørn» café 日本", list.PollingStations[1].Name)

	assert.Equal(t, http.StatusNotFound, app.get(t, "/api/elections/1234/polling_stations", nil))
	assert.Equal(t, http.StatusBadRequest, app.get(t, "/api/elections/abc/polling_stations", nil))

	var empty domain.PollingStationListResponse
	require.Equal(t, http.StatusOK, app.get(t, "/api/elections/2/polling_stations", &empty))
	assert.NotNil(t, empty.PollingStations)
	assert.Empty(t, empty.PollingStations)

	var station domain.PollingStation
	require.Equal(t, http.StatusOK, app.get(t, "/api/polling_stations/1", &station))
	assert.Equal(t, int64(1), station.ID)
	assert.Equal(t, `Stembureau "Op Rolletjes"`, station.Name)
	require.NotNil(t, station.PollingStationType)
	assert.Equal(t, domain.PollingStationTypeMobile, *station.PollingStationType)

	assert.Equal(t, http.StatusNotFound, app.get(t, "/api/polling_stations/9999", nil))
}

func TestElectionFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	var elections domain.ElectionListResponse
	require.Equal(t, http.StatusOK, app.get(t, "/api/elections", &elections))
	require.Len(t, elections.Elections, 2)
	assert.Equal(t, "2024-11-30", elections.Elections[0].ElectionDate.String())

	var details domain.ElectionDetailsResponse
	require.Equal(t, http.StatusOK, app.get(t, "/api/elections/1", &details))
	assert.Equal(t, "Municipal Election", details.Election.Name)
	assert.Len(t, details.PollingStations, 2)
}

// TestSaveAfterExplicitIDs checks that generated ids continue after the
// ones inserted by the fixtures.
func TestSaveAfterExplicitIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)
	ctx := context.Background()

	station := domain.PollingStation{
		ElectionID: 2,
		Name:       "Buurthuis",
		Number:     1,
		Street:     "Dorpsstraat",
		PostalCode: "1234 AB",
		Locality:   "Juinen",
	}
	require.NoError(t, app.Store.PollingStations.Save(ctx, &station))
	assert.Equal(t, int64(3), station.ID)

	var got domain.PollingStation
	require.Equal(t, http.StatusOK, app.get(t, fmt.Sprintf("/api/polling_stations/%d", station.ID), &got))
	assert.Equal(t, "Buurthuis", got.Name)
	assert.Nil(t, got.PollingStationType)

	var list domain.PollingStationListResponse
	require.Equal(t, http.StatusOK, app.get(t, "/api/elections/2/polling_stations", &list))
	assert.Len(t, list.PollingStations, 1)
}

func TestRepositoryAbsence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)
	ctx := context.Background()

	_, found, err := app.Store.Elections.FindByID(ctx, 1234)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = app.Store.PollingStations.FindByID(ctx, 1234)
	require.NoError(t, err)
	assert.False(t, found)

	stations, err := app.Store.PollingStations.ListByElection(ctx, 1234)
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestMigratorReleasesConnection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)
	ctx := context.Background()

	m, release, err := app.Store.Migrator(ctx)
	require.NoError(t, err)

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)
	assert.Equal(t, 1, app.Store.DB.Stats().InUse)

	require.NoError(t, release())
	assert.Equal(t, 0, app.Store.DB.Stats().InUse)
	require.NoError(t, app.Store.Ping(ctx))
}
