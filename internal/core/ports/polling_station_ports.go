package ports

//go:generate mockgen -source=polling_station_ports.go -destination=mocks/mock_polling_station_ports.go -package=mocks

import (
	"context"

	"github.com/vncsmyrnk/election/internal/core/domain"
)

type PollingStationRepository interface {
	// FindByID looks the station up by its own id, regardless of election.
	FindByID(ctx context.Context, id int64) (domain.PollingStation, bool, error)
	// ListByElection returns an empty slice when the election has no stations
	// or does not exist; it does not check the election itself.
	ListByElection(ctx context.Context, electionID int64) ([]domain.PollingStation, error)
	Save(ctx context.Context, station *domain.PollingStation) error
}

type PollingStationService interface {
	ListForElection(ctx context.Context, electionID int64) ([]domain.PollingStation, error)
	GetPollingStation(ctx context.Context, id int64) (domain.PollingStation, error)
}
