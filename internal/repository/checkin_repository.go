package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// CheckInRepository maintains the latest check-in state per
// (shift, staff user). Writes are atomic upserts against that natural key.
type CheckInRepository interface {
	UpsertLatest(ctx context.Context, checkin *domain.GeofenceCheckIn) error
	GetLatest(ctx context.Context, shiftID, staffUserID string) (*domain.GeofenceCheckIn, error)
}

type checkInRepository struct {
	pool *pgxpool.Pool
}

// NewCheckInRepository instantiates the repository.
func NewCheckInRepository(pool *pgxpool.Pool) CheckInRepository {
	return &checkInRepository{pool: pool}
}

func (r *checkInRepository) UpsertLatest(ctx context.Context, checkin *domain.GeofenceCheckIn) error {
	const query = `
        INSERT INTO shift_checkins (shift_id, staff_user_id, reported_latitude, reported_longitude, checked_at, verified, reason, version)
        VALUES ($1,$2,$3,$4,$5,$6,$7,1)
        ON CONFLICT (shift_id, staff_user_id)
        DO UPDATE SET reported_latitude=EXCLUDED.reported_latitude,
                      reported_longitude=EXCLUDED.reported_longitude,
                      checked_at=EXCLUDED.checked_at,
                      verified=EXCLUDED.verified,
                      reason=EXCLUDED.reason,
                      version=shift_checkins.version+1
        RETURNING version`

	return r.pool.QueryRow(ctx, query,
		checkin.ShiftID,
		checkin.StaffUserID,
		checkin.ReportedLatitude,
		checkin.ReportedLongitude,
		checkin.Timestamp,
		checkin.Verified,
		checkin.Reason,
	).Scan(&checkin.Version)
}

func (r *checkInRepository) GetLatest(ctx context.Context, shiftID, staffUserID string) (*domain.GeofenceCheckIn, error) {
	const query = `
        SELECT shift_id, staff_user_id, reported_latitude, reported_longitude, checked_at, verified, reason, version
        FROM shift_checkins WHERE shift_id=$1 AND staff_user_id=$2`

	var checkin domain.GeofenceCheckIn
	if err := r.pool.QueryRow(ctx, query, shiftID, staffUserID).Scan(
		&checkin.ShiftID,
		&checkin.StaffUserID,
		&checkin.ReportedLatitude,
		&checkin.ReportedLongitude,
		&checkin.Timestamp,
		&checkin.Verified,
		&checkin.Reason,
		&checkin.Version,
	); err != nil {
		return nil, err
	}
	return &checkin, nil
}
