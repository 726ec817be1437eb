package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// CertificateRepository handles persistence for training certificates.
// (user_id, certificate_type) is the natural key; writes are upserts.
type CertificateRepository interface {
	Upsert(ctx context.Context, cert *domain.StaffCertificate) error
	ListByUser(ctx context.Context, userID string) ([]domain.StaffCertificate, error)
}

type certificateRepository struct {
	pool *pgxpool.Pool
}

// NewCertificateRepository instantiates the repository.
func NewCertificateRepository(pool *pgxpool.Pool) CertificateRepository {
	return &certificateRepository{pool: pool}
}

func (r *certificateRepository) Upsert(ctx context.Context, cert *domain.StaffCertificate) error {
	const query = `
        INSERT INTO staff_certificates (user_id, certificate_type, expiry_date)
        VALUES ($1,$2,$3)
        ON CONFLICT (user_id, certificate_type)
        DO UPDATE SET expiry_date=EXCLUDED.expiry_date, updated_at=NOW()
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		cert.UserID,
		cert.CertificateType,
		cert.ExpiryDate,
	).Scan(&cert.CreatedAt, &cert.UpdatedAt)
}

func (r *certificateRepository) ListByUser(ctx context.Context, userID string) ([]domain.StaffCertificate, error) {
	const query = `
        SELECT user_id, certificate_type, expiry_date, created_at, updated_at
        FROM staff_certificates WHERE user_id=$1 ORDER BY certificate_type ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffCertificate
	for rows.Next() {
		var cert domain.StaffCertificate
		if err := rows.Scan(
			&cert.UserID,
			&cert.CertificateType,
			&cert.ExpiryDate,
			&cert.CreatedAt,
			&cert.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, cert)
	}
	return result, rows.Err()
}
