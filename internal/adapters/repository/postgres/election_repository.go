package postgres

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
	return &electionRepository{
		db: db,
	}
}

func (r *electionRepository) FindByID(ctx context.Context, id int64) (domain.Election, bool, error) {
	query := `SELECT ` + electionColumns + ` FROM elections WHERE id = $1`

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
	query := `SELECT ` + electionColumns + ` FROM elections ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
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

// Save inserts the election. A zero ID lets the database assign one; an
// explicit ID (fixtures) is kept and the identity sequence moved past it.
func (r *electionRepository) Save(ctx context.Context, election *domain.Election) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if election.ID == 0 {
		query := `
			INSERT INTO elections (name, location, number_of_voters, category, election_date, nomination_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		err = tx.QueryRowContext(ctx, query,
			election.Name, election.Location, election.NumberOfVoters, election.Category,
			election.ElectionDate, election.NominationDate, election.Status,
		).Scan(&election.ID)
		if err != nil {
			return fmt.Errorf("failed to insert election: %w", err)
		}
	} else {
		query := `
			INSERT INTO elections (id, name, location, number_of_voters, category, election_date, nomination_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		_, err = tx.ExecContext(ctx, query,
			election.ID, election.Name, election.Location, election.NumberOfVoters, election.Category,
			election.ElectionDate, election.NominationDate, election.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert election: %w", err)
		}
		if err := syncIdentity(ctx, tx, "elections"); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
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

func syncIdentity(ctx context.Context, tx *sql.Tx, table string) error {
	query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))`, table)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to sync %s identity: %w", table, err)
	}
	return nil
}
