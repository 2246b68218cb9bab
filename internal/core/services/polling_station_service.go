package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/core/ports"
)

type pollingStationService struct {
	electionRepo       ports.ElectionRepository
	pollingStationRepo ports.PollingStationRepository
}

func NewPollingStationService(electionRepo ports.ElectionRepository, pollingStationRepo ports.PollingStationRepository) ports.PollingStationService {
	return &pollingStationService{
		electionRepo:       electionRepo,
		pollingStationRepo: pollingStationRepo,
	}
}

// ListForElection returns ErrElectionNotFound when the election itself does
// not exist. An existing election without stations yields an empty slice.
func (s *pollingStationService) ListForElection(ctx context.Context, electionID int64) ([]domain.PollingStation, error) {
	var (
		found    bool
		stations []domain.PollingStation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		_, found, err = s.electionRepo.FindByID(gctx, electionID)
		if err != nil {
			return fmt.Errorf("failed to get election %d: %w", electionID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stations, err = s.pollingStationRepo.ListByElection(gctx, electionID)
		if err != nil {
			return fmt.Errorf("failed to list polling stations for election %d: %w", electionID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !found {
		return nil, domain.ErrElectionNotFound
	}
	if stations == nil {
		stations = []domain.PollingStation{}
	}
	return stations, nil
}

func (s *pollingStationService) GetPollingStation(ctx context.Context, id int64) (domain.PollingStation, error) {
	station, found, err := s.pollingStationRepo.FindByID(ctx, id)
	if err != nil {
		return domain.PollingStation{}, fmt.Errorf("failed to get polling station %d: %w", id, err)
	}
	if !found {
		return domain.PollingStation{}, domain.ErrPollingStationNotFound
	}
	return station, nil
}
