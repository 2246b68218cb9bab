package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/core/ports"
)

const electionColumns = `id, name, location, number_of_voters, category, election_date, nomination_date, status`

type electionRepository struct {
	db *sql.DB
}

func NewElectionRepository(db *sql.DB) ports.ElectionRepository {
	return &electionRepository{db: db}
}

func (r *electionRepository) FindByID(ctx context.Context, id int64) (domain.Election, bool, error) {
	query := `SELECT ` + electionColumns + ` FROM elections WHERE id = ?`

	election, err := scanElection(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Election{}, false, nil
		}
		return domain.Election{}, false, fmt.Errorf("failed to get election: %w", err)
	}
	return election, true, nil
}

func (r *electionRepository) List(ctx context.Context) ([]domain.Election, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+electionColumns+` FROM elections ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	defer rows.Close()

	elections := []domain.Election{}
	for rows.Next() {
		election, err := scanElection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, election)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating elections: %w", err)
	}
	return elections, nil
}

// Save keeps an explicit ID; a zero ID is assigned by SQLite.
func (r *electionRepository) Save(ctx context.Context, election *domain.Election) error {
	query := `
		INSERT INTO elections (id, name, location, number_of_voters, category, election_date, nomination_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		nullableID(election.ID), election.Name, election.Location, election.NumberOfVoters, string(election.Category),
		election.ElectionDate.String(), election.NominationDate.String(), string(election.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to insert election: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read election id: %w", err)
	}
	election.ID = id
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanElection(row rowScanner) (domain.Election, error) {
	var e domain.Election
	err := row.Scan(
		&e.ID, &e.Name, &e.Location, &e.NumberOfVoters, &e.Category,
		&e.ElectionDate, &e.NominationDate, &e.Status,
	)
	return e, err
}

// nullableID lets INTEGER PRIMARY KEY pick the next rowid for unsaved records.
func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func nullableInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullableString[T ~string](v *T) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*v), Valid: true}
}
