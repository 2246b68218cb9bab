package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/core/ports"
)

const pollingStationColumns = `id, election_id, name, number, number_of_voters, polling_station_type,
	street, house_number, house_number_addition, postal_code, locality`

type pollingStationRepository struct {
	db *sql.DB
}

func NewPollingStationRepository(db *sql.DB) ports.PollingStationRepository {
	return &pollingStationRepository{db: db}
}

func (r *pollingStationRepository) FindByID(ctx context.Context, id int64) (domain.PollingStation, bool, error) {
	query := `SELECT ` + pollingStationColumns + ` FROM polling_stations WHERE id = ?`

	station, err := scanPollingStation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PollingStation{}, false, nil
		}
		return domain.PollingStation{}, false, fmt.Errorf("failed to get polling station: %w", err)
	}
	return station, true, nil
}

func (r *pollingStationRepository) ListByElection(ctx context.Context, electionID int64) ([]domain.PollingStation, error) {
	query := `
		SELECT ` + pollingStationColumns + `
		FROM polling_stations
		WHERE election_id = ?
		ORDER BY number, id
	`
	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list polling stations: %w", err)
	}
	defer rows.Close()

	stations := []domain.PollingStation{}
	for rows.Next() {
		station, err := scanPollingStation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan polling station: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polling stations: %w", err)
	}
	return stations, nil
}

func (r *pollingStationRepository) Save(ctx context.Context, station *domain.PollingStation) error {
	query := `
		INSERT INTO polling_stations (id, election_id, name, number, number_of_voters, polling_station_type,
			street, house_number, house_number_addition, postal_code, locality)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		nullableID(station.ID), station.ElectionID, station.Name, station.Number, nullableInt(station.NumberOfVoters),
		nullableString(station.PollingStationType), station.Street, station.HouseNumber,
		nullableString(station.HouseNumberAddition), station.PostalCode, station.Locality,
	)
	if err != nil {
		return fmt.Errorf("failed to insert polling station: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read polling station id: %w", err)
	}
	station.ID = id
	return nil
}

func scanPollingStation(row rowScanner) (domain.PollingStation, error) {
	var ps domain.PollingStation
	err := row.Scan(
		&ps.ID, &ps.ElectionID, &ps.Name, &ps.Number, &ps.NumberOfVoters, &ps.PollingStationType,
		&ps.Street, &ps.HouseNumber, &ps.HouseNumberAddition, &ps.PostalCode, &ps.Locality,
	)
	return ps, err
}
