package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/models"
	"github.com/google/uuid"
)

type nextOfKinRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNextOfKinRepository constructs a [NextOfKinRepository] backed by db.
func NewNextOfKinRepository(db *DB, logger *logger.Logger) NextOfKinRepository {
	logger.Debug().Msg("creating next of kin repository")
	return &nextOfKinRepository{
		db:     db,
		logger: logger,
	}
}

// ListNextOfKin returns the user's next of kin, primary first.
func (r *nextOfKinRepository) ListNextOfKin(ctx context.Context, userID uuid.UUID) ([]models.NextOfKin, error) {
	return listNextOfKinWith(ctx, r.db, userID)
}

// CreateNextOfKin locks the owning user row, reads the current records, lets
// prepare decide what to insert and inserts it, all in one transaction. The
// row lock serializes concurrent creations for the same user; the partial
// unique index on primary records backs it up.
func (r *nextOfKinRepository) CreateNextOfKin(ctx context.Context, userID uuid.UUID, prepare PrepareNextOfKinFunc) (models.NextOfKin, error) {
	log := logger.FromContext(ctx)

	var created models.NextOfKin
	err := r.db.inTx(ctx, "*nextOfKinRepository.CreateNextOfKin", func(tx *sql.Tx) error {
		var lockedID uuid.UUID
		if err := tx.QueryRowContext(ctx, lockUserRow, userID).Scan(&lockedID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUserNotFound
			}
			log.Err(err).Str("func", "*nextOfKinRepository.CreateNextOfKin").Msg("error locking user row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		existing, err := listNextOfKinWith(ctx, tx, userID)
		if err != nil {
			return err
		}

		kin, err := prepare(existing)
		if err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, createNextOfKin,
			userID, kin.FullName, kin.Relationship, kin.Email, kin.PhoneNumber,
			kin.Address, kin.City, kin.Country, kin.Nationality, kin.IDNumber, kin.IsPrimary,
		)
		created, err = scanNextOfKin(row)
		if err != nil {
			if isUniqueViolation(err, nextOfKinPrimaryIndex) {
				return ErrPrimaryNextOfKinExists
			}
			log.Err(err).Str("func", "*nextOfKinRepository.CreateNextOfKin").Msg("error inserting next of kin")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		return models.NextOfKin{}, err
	}

	return created, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listNextOfKinWith(ctx context.Context, q queryer, userID uuid.UUID) ([]models.NextOfKin, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, listNextOfKin, userID)
	if err != nil {
		log.Err(err).Str("func", "listNextOfKin").Msg("error selecting next of kin")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.NextOfKin, 0, models.MaxNextOfKin)
	for rows.Next() {
		kin, err := scanNextOfKin(rows)
		if err != nil {
			log.Err(err).Str("func", "listNextOfKin").Msg("error scanning next of kin")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, kin)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "listNextOfKin").Msg("error iterating next of kin")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
