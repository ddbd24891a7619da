package query

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, parking_spot_id, start_time, duration_hours,
	total_cost_cents, status, created_at, ended_at`

func scanReservation(row interface{ Scan(dest ...any) error }) (Reservation, error) {
	var r Reservation
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.ParkingSpotID,
		&r.StartTime,
		&r.DurationHours,
		&r.TotalCostCents,
		&r.Status,
		&r.CreatedAt,
		&r.EndedAt,
	)
	return r, err
}

type CreateReservationParams struct {
	UserID         int64
	ParkingSpotID  int64
	StartTime      string
	DurationHours  int32
	TotalCostCents int64
	Status         string
	CreatedAt      time.Time
}

const createReservation = `INSERT INTO reservations
	(user_id, parking_spot_id, start_time, duration_hours, total_cost_cents, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createReservation,
		arg.UserID,
		arg.ParkingSpotID,
		arg.StartTime,
		arg.DurationHours,
		arg.TotalCostCents,
		arg.Status,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const getReservationByIDForUpdate = `SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
FOR UPDATE`

func (q *Queries) GetReservationByIDForUpdate(ctx context.Context, db DBTX, id int64) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByIDForUpdate, id))
}

type CompleteReservationParams struct {
	ID      int64
	Status  string
	EndedAt time.Time
}

const completeReservation = `UPDATE reservations
SET status = $2, ended_at = $3
WHERE id = $1
  AND status = 'active'`

func (q *Queries) CompleteReservation(ctx context.Context, db DBTX, arg CompleteReservationParams) (int64, error) {
	tag, err := db.Exec(ctx, completeReservation, arg.ID, arg.Status, arg.EndedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ReservationDetailRow struct {
	ID             int64
	UserID         int64
	ParkingSpotID  int64
	SpotName       string
	SpotAddress    string
	StartTime      string
	DurationHours  int32
	TotalCostCents int64
	Status         string
	CreatedAt      pgtype.Timestamptz
	EndedAt        pgtype.Timestamptz
}

func scanReservationDetail(row interface{ Scan(dest ...any) error }) (ReservationDetailRow, error) {
	var r ReservationDetailRow
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.ParkingSpotID,
		&r.SpotName,
		&r.SpotAddress,
		&r.StartTime,
		&r.DurationHours,
		&r.TotalCostCents,
		&r.Status,
		&r.CreatedAt,
		&r.EndedAt,
	)
	return r, err
}

const reservationDetailSelect = `SELECT r.id, r.user_id, r.parking_spot_id, p.name, p.address,
	r.start_time, r.duration_hours, r.total_cost_cents, r.status, r.created_at, r.ended_at
FROM reservations r
JOIN parking_spots p ON p.id = r.parking_spot_id`

const getReservationDetail = reservationDetailSelect + `
WHERE r.id = $1`

func (q *Queries) GetReservationDetail(ctx context.Context, db DBTX, id int64) (ReservationDetailRow, error) {
	return scanReservationDetail(db.QueryRow(ctx, getReservationDetail, id))
}

type ListReservationsByUserParams struct {
	UserID int64
	Limit  int32
	Offset int32
}

const listReservationsByUser = reservationDetailSelect + `
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2 OFFSET $3`

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, arg ListReservationsByUserParams) ([]ReservationDetailRow, error) {
	rows, err := db.Query(ctx, listReservationsByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ReservationDetailRow
	for rows.Next() {
		r, err := scanReservationDetail(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countActiveReservationsBySpot = `SELECT count(*) FROM reservations
WHERE parking_spot_id = $1 AND status = 'active'`

func (q *Queries) CountActiveReservationsBySpot(ctx context.Context, db DBTX, spotID int64) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countActiveReservationsBySpot, spotID).Scan(&n)
	return n, err
}
