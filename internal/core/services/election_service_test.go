package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/core/ports/mocks"
)

func sampleElection() domain.Election {
	return domain.Election{
		ID:             1,
		Name:           "Municipal Election",
		Location:       "Heemdamseburg",
		NumberOfVoters: 100,
		Category:       domain.ElectionCategoryMunicipal,
		ElectionDate:   domain.NewDate(2024, time.November, 30),
		NominationDate: domain.NewDate(2024, time.November, 1),
		Status:         domain.ElectionStatusDataEntryInProgress,
	}
}

func TestListElections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	electionRepo := mocks.NewMockElectionRepository(ctrl)
	stationRepo := mocks.NewMockPollingStationRepository(ctrl)
	svc := NewElectionService(electionRepo, stationRepo)
	ctx := context.Background()

	t.Run("returns elections", func(t *testing.T) {
		electionRepo.EXPECT().List(ctx).Return([]domain.Election{sampleElection()}, nil)

		elections, err := svc.ListElections(ctx)
		require.NoError(t, err)
		assert.Len(t, elections, 1)
	})

	t.Run("empty store", func(t *testing.T) {
		electionRepo.EXPECT().List(ctx).Return(nil, nil)

		elections, err := svc.ListElections(ctx)
		require.NoError(t, err)
		assert.NotNil(t, elections)
		assert.Empty(t, elections)
	})

	t.Run("storage error", func(t *testing.T) {
		electionRepo.EXPECT().List(ctx).Return(nil, errStorage)

		_, err := svc.ListElections(ctx)
		require.ErrorIs(t, err, errStorage)
	})
}

func TestGetElectionDetails(t *testing.T) {
	t.Run("election with stations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		electionRepo := mocks.NewMockElectionRepository(ctrl)
		stationRepo := mocks.NewMockPollingStationRepository(ctrl)
		electionRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(sampleElection(), true, nil)
		stationRepo.EXPECT().ListByElection(gomock.Any(), int64(1)).Return(sampleStations(), nil)

		details, err := NewElectionService(electionRepo, stationRepo).GetElectionDetails(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, sampleElection(), details.Election)
		assert.Equal(t, sampleStations(), details.PollingStations)
	})

	t.Run("unknown election", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		electionRepo := mocks.NewMockElectionRepository(ctrl)
		stationRepo := mocks.NewMockPollingStationRepository(ctrl)
		electionRepo.EXPECT().FindByID(gomock.Any(), int64(1234)).Return(domain.Election{}, false, nil)
		stationRepo.EXPECT().ListByElection(gomock.Any(), int64(1234)).Return(nil, nil).MaxTimes(1)

		_, err := NewElectionService(electionRepo, stationRepo).GetElectionDetails(context.Background(), 1234)
		require.ErrorIs(t, err, domain.ErrElectionNotFound)
	})
}
