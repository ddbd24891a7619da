package query

import (
	"context"
)

const spotColumns = `id, name, address, latitude, longitude, total_spots, occupied_spots,
	price_per_hour_cents, is_active, created_at, updated_at`

func scanSpot(row interface{ Scan(dest ...any) error }) (ParkingSpot, error) {
	var s ParkingSpot
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.Latitude,
		&s.Longitude,
		&s.TotalSpots,
		&s.OccupiedSpots,
		&s.PricePerHourCents,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

const listActiveSpots = `SELECT ` + spotColumns + `
FROM parking_spots
WHERE is_active = true
ORDER BY id`

func (q *Queries) ListActiveSpots(ctx context.Context, db DBTX) ([]ParkingSpot, error) {
	rows, err := db.Query(ctx, listActiveSpots)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ParkingSpot
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getSpotByID = `SELECT ` + spotColumns + `
FROM parking_spots
WHERE id = $1`

func (q *Queries) GetSpotByID(ctx context.Context, db DBTX, id int64) (ParkingSpot, error) {
	return scanSpot(db.QueryRow(ctx, getSpotByID, id))
}

// Row lock: concurrent commits on the same spot queue here until the holder finishes.
const getSpotByIDForUpdate = `SELECT ` + spotColumns + `
FROM parking_spots
WHERE id = $1
FOR UPDATE`

func (q *Queries) GetSpotByIDForUpdate(ctx context.Context, db DBTX, id int64) (ParkingSpot, error) {
	return scanSpot(db.QueryRow(ctx, getSpotByIDForUpdate, id))
}

const incrementSpotOccupancy = `UPDATE parking_spots
SET occupied_spots = occupied_spots + 1, updated_at = now()
WHERE id = $1
  AND is_active = true
  AND occupied_spots < total_spots`

// IncrementSpotOccupancy returns the number of rows changed; zero means no capacity was left.
func (q *Queries) IncrementSpotOccupancy(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, incrementSpotOccupancy, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const decrementSpotOccupancy = `UPDATE parking_spots
SET occupied_spots = occupied_spots - 1, updated_at = now()
WHERE id = $1
  AND occupied_spots > 0`

func (q *Queries) DecrementSpotOccupancy(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, decrementSpotOccupancy, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type CreateSpotParams struct {
	Name              string
	Address           string
	Latitude          float64
	Longitude         float64
	TotalSpots        int32
	OccupiedSpots     int32
	PricePerHourCents int64
	IsActive          bool
}

const createSpot = `INSERT INTO parking_spots
	(name, address, latitude, longitude, total_spots, occupied_spots, price_per_hour_cents, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (q *Queries) CreateSpot(ctx context.Context, db DBTX, arg CreateSpotParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createSpot,
		arg.Name,
		arg.Address,
		arg.Latitude,
		arg.Longitude,
		arg.TotalSpots,
		arg.OccupiedSpots,
		arg.PricePerHourCents,
		arg.IsActive,
	).Scan(&id)
	return id, err
}

const countSpots = `SELECT count(*) FROM parking_spots`

func (q *Queries) CountSpots(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countSpots).Scan(&n)
	return n, err
}
