package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/core/ports"
)

type electionService struct {
	electionRepo       ports.ElectionRepository
	pollingStationRepo ports.PollingStationRepository
}

func NewElectionService(electionRepo ports.ElectionRepository, pollingStationRepo ports.PollingStationRepository) ports.ElectionService {
	return &electionService{
		electionRepo:       electionRepo,
		pollingStationRepo: pollingStationRepo,
	}
}

func (s *electionService) ListElections(ctx context.Context) ([]domain.Election, error) {
	elections, err := s.electionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	if elections == nil {
		elections = []domain.Election{}
	}
	return elections, nil
}

func (s *electionService) GetElectionDetails(ctx context.Context, id int64) (domain.ElectionDetailsResponse, error) {
	var (
		election domain.Election
		found    bool
		stations []domain.PollingStation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		election, found, err = s.electionRepo.FindByID(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to get election %d: %w", id, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stations, err = s.pollingStationRepo.ListByElection(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to list polling stations for election %d: %w", id, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.ElectionDetailsResponse{}, err
	}

	if !found {
		return domain.ElectionDetailsResponse{}, domain.ErrElectionNotFound
	}
	if stations == nil {
		stations = []domain.PollingStation{}
	}
	return domain.ElectionDetailsResponse{
		Election:        election,
		PollingStations: stations,
	}, nil
}
