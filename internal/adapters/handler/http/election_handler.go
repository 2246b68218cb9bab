package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/core/ports"
)

type ElectionHandler struct {
	service ports.ElectionService
	logger  *slog.Logger
}

func NewElectionHandler(service ports.ElectionService, logger *slog.Logger) *ElectionHandler {
	return &ElectionHandler{
		service: service,
		logger:  logger,
	}
}

// ListElections godoc
// @Summary      Lists all elections
// @Tags         elections
// @Produce      json
// @Success      200  {object}  domain.ElectionListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/elections [get]
func (h *ElectionHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	elections, err := h.service.ListElections(r.Context())
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, domain.ElectionListResponse{Elections: elections})
}

// GetElection godoc
// @Summary      Gets an election with its polling stations
// @Tags         elections
// @Produce      json
// @Param        election_id  path      int  true  "Election ID"
// @Success      200          {object}  domain.ElectionDetailsResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      404          {object}  ErrorResponse
// @Failure      500          {object}  ErrorResponse
// @Router       /api/elections/{election_id} [get]
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "election_id")
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	details, err := h.service.GetElectionDetails(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, details)
}
