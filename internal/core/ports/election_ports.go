package ports

//go:generate mockgen -source=election_ports.go -destination=mocks/mock_election_ports.go -package=mocks

import (
	"context"

	"github.com/vncsmyrnk/election/internal/core/domain"
)

type ElectionRepository interface {
	// FindByID reports found=false, with a nil error, when no election has the id.
	FindByID(ctx context.Context, id int64) (domain.Election, bool, error)
	List(ctx context.Context) ([]domain.Election, error)
	Save(ctx context.Context, election *domain.Election) error
}

type ElectionService interface {
	ListElections(ctx context.Context) ([]domain.Election, error)
	GetElectionDetails(ctx context.Context, id int64) (domain.ElectionDetailsResponse, error)
}
