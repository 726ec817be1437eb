package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// CheckInAuditRepository stores the append-only log of verification
// attempts, kept for dispute resolution.
type CheckInAuditRepository interface {
	Create(ctx context.Context, audit *domain.CheckInAudit) error
	ListByShift(ctx context.Context, shiftID string) ([]domain.CheckInAudit, error)
}

type checkInAuditRepository struct {
	pool *pgxpool.Pool
}

// NewCheckInAuditRepository builds repository.
func NewCheckInAuditRepository(pool *pgxpool.Pool) CheckInAuditRepository {
	return &checkInAuditRepository{pool: pool}
}

func (r *checkInAuditRepository) Create(ctx context.Context, audit *domain.CheckInAudit) error {
	const query = `
        INSERT INTO shift_checkin_audit (shift_id, staff_user_id, reported_latitude, reported_longitude, distance_meters, verified, reason)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		audit.ShiftID,
		audit.StaffUserID,
		audit.ReportedLatitude,
		audit.ReportedLongitude,
		audit.DistanceMeters,
		audit.Verified,
		audit.Reason,
	).Scan(&audit.ID, &audit.CreatedAt)
}

func (r *checkInAuditRepository) ListByShift(ctx context.Context, shiftID string) ([]domain.CheckInAudit, error) {
	const query = `
        SELECT id, shift_id, staff_user_id, reported_latitude, reported_longitude, distance_meters, verified, reason, created_at
        FROM shift_checkin_audit WHERE shift_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CheckInAudit
	for rows.Next() {
		var audit domain.CheckInAudit
		if err := rows.Scan(
			&audit.ID,
			&audit.ShiftID,
			&audit.StaffUserID,
			&audit.ReportedLatitude,
			&audit.ReportedLongitude,
			&audit.DistanceMeters,
			&audit.Verified,
			&audit.Reason,
			&audit.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, audit)
	}
	return result, rows.Err()
}
