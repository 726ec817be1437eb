package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// ShiftRepository reads shift assignments and their geofences. Shift
// scheduling itself lives outside this service; this is the read contract it
// supplies.
type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository instantiates the repository.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	const query = `
        SELECT id, provider_id, location, geofence_latitude, geofence_longitude, geofence_radius_meters, starts_at, ends_at, created_at, updated_at
        FROM shifts WHERE id=$1`

	var shift domain.Shift
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.ProviderID,
		&shift.Location,
		&shift.Geofence.Center.Latitude,
		&shift.Geofence.Center.Longitude,
		&shift.Geofence.RadiusMeters,
		&shift.StartsAt,
		&shift.EndsAt,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &shift, nil
}
