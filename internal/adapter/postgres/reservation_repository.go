package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"restaurant-reservations/internal/domain"
	"restaurant-reservations/internal/interfaces"
)

type reservationRepository struct {
	db DB
}

func NewReservationRepository(db DB) interfaces.ReservationRepository {
	return &reservationRepository{db: db}
}

// Allocate finds the lowest-numbered free table for the slip's branch
// and hold window and inserts the slip, all in one transaction. Locking
// the branch row serializes allocations per branch, so two racing
// requests can never claim the same table.
func (r *reservationRepository) Allocate(ctx context.Context, slip *domain.ReservationSlip, window domain.HoldWindow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Internal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	var branchID int64
	err = tx.QueryRow(ctx, "SELECT id FROM branches WHERE id = $1 FOR UPDATE", slip.BranchID).Scan(&branchID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound("branch")
	}
	if err != nil {
		return classifyTxError(err)
	}

	from, to := window.Bounds(slip.ArrivalAt)

	var tableNumber int
	err = tx.QueryRow(ctx, `
		SELECT t.table_number
		FROM branch_tables t
		WHERE t.branch_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM reservation_slips r
			WHERE r.branch_id = t.branch_id
			  AND r.table_number = t.table_number
			  AND r.status IN ('pending', 'seated')
			  AND r.arrival_at BETWEEN $2 AND $3
		  )
		ORDER BY t.table_number
		LIMIT 1
	`, slip.BranchID, from, to).Scan(&tableNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Unavailable("no table available for the requested time")
	}
	if err != nil {
		return classifyTxError(err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO reservation_slips
			(branch_id, customer_name, phone_number, party_size, arrival_at, notes, table_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`,
		slip.BranchID, slip.CustomerName, slip.Phone, slip.PartySize,
		slip.ArrivalAt, slip.Notes, tableNumber, domain.ReservationPending,
	).Scan(&slip.ID, &slip.CreatedAt)
	if err != nil {
		return classifyTxError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return classifyTxError(err)
	}

	slip.TableNumber = tableNumber
	slip.Status = domain.ReservationPending
	return nil
}

func (r *reservationRepository) Exists(ctx context.Context, reservationID int64) error {
	var id int64
	err := r.db.QueryRow(ctx, "SELECT id FROM reservation_slips WHERE id = $1", reservationID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound("reservation")
	}
	if err != nil {
		return domain.Internal("failed to check reservation", err)
	}
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, reservationID int64) (*domain.ReservationSlip, error) {
	var slip domain.ReservationSlip
	err := r.db.QueryRow(ctx, `
		SELECT id, branch_id, customer_name, phone_number, party_size, arrival_at,
		       notes, table_number, status, created_at
		FROM reservation_slips
		WHERE id = $1
	`, reservationID).Scan(
		&slip.ID, &slip.BranchID, &slip.CustomerName, &slip.Phone, &slip.PartySize,
		&slip.ArrivalAt, &slip.Notes, &slip.TableNumber, &slip.Status, &slip.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("reservation")
	}
	if err != nil {
		return nil, domain.Internal("failed to load reservation", err)
	}
	return &slip, nil
}

// classifyTxError maps serialization failures and deadlocks to Conflict
// so the caller can retry; anything else is internal.
func classifyTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return domain.Conflict("allocation raced with a concurrent reservation")
		}
	}
	return domain.Internal("reservation allocation failed", err)
}
