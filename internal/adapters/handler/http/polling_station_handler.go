package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/core/ports"
)

type PollingStationHandler struct {
	service ports.PollingStationService
	logger  *slog.Logger
}

func NewPollingStationHandler(service ports.PollingStationService, logger *slog.Logger) *PollingStationHandler {
	return &PollingStationHandler{
		service: service,
		logger:  logger,
	}
}

// ListPollingStations godoc
// @Summary      Lists the polling stations of an election
// @Description  Returns every polling station of the election ordered by number. An election without polling stations yields an empty list.
// @Tags         polling_stations
// @Produce      json
// @Param        election_id  path      int  true  "Election ID"
// @Success      200          {object}  domain.PollingStationListResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      404          {object}  ErrorResponse
// @Failure      500          {object}  ErrorResponse
// @Router       /api/elections/{election_id}/polling_stations [get]
func (h *PollingStationHandler) ListPollingStations(w http.ResponseWriter, r *http.Request) {
	electionID, err := parseID(r, "election_id")
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	stations, err := h.service.ListForElection(r.Context(), electionID)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, domain.NewPollingStationListResponse(stations))
}

// GetPollingStation godoc
// @Summary      Gets a polling station
// @Tags         polling_stations
// @Produce      json
// @Param        polling_station_id  path      int  true  "Polling station ID"
// @Success      200                 {object}  domain.PollingStation
// @Failure      400                 {object}  ErrorResponse
// @Failure      404                 {object}  ErrorResponse
// @Failure      500                 {object}  ErrorResponse
// @Router       /api/polling_stations/{polling_station_id} [get]
func (h *PollingStationHandler) GetPollingStation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "polling_station_id")
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	station, err := h.service.GetPollingStation(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, station)
}
