package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// DBSRepository handles persistence for background-check records.
// One record per user; writes are upserts.
type DBSRepository interface {
	Upsert(ctx context.Context, info *domain.DBSInfo) error
	GetByUserID(ctx context.Context, userID string) (*domain.DBSInfo, error)
}

type dbsRepository struct {
	pool *pgxpool.Pool
}

// NewDBSRepository instantiates the repository.
func NewDBSRepository(pool *pgxpool.Pool) DBSRepository {
	return &dbsRepository{pool: pool}
}

func (r *dbsRepository) Upsert(ctx context.Context, info *domain.DBSInfo) error {
	const query = `
        INSERT INTO dbs_records (user_id, certificate_number, surname_on_certificate, dob_on_certificate, certificate_print_date, registered_on_update_service)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (user_id)
        DO UPDATE SET certificate_number=EXCLUDED.certificate_number,
                      surname_on_certificate=EXCLUDED.surname_on_certificate,
                      dob_on_certificate=EXCLUDED.dob_on_certificate,
                      certificate_print_date=EXCLUDED.certificate_print_date,
                      registered_on_update_service=EXCLUDED.registered_on_update_service,
                      updated_at=NOW()
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		info.UserID,
		info.CertificateNumber,
		info.SurnameOnCertificate,
		info.DOBOnCertificate,
		info.CertificatePrintDate,
		info.RegisteredOnUpdateService,
	).Scan(&info.CreatedAt, &info.UpdatedAt)
}

func (r *dbsRepository) GetByUserID(ctx context.Context, userID string) (*domain.DBSInfo, error) {
	const query = `
        SELECT user_id, certificate_number, surname_on_certificate, dob_on_certificate, certificate_print_date, registered_on_update_service, created_at, updated_at
        FROM dbs_records WHERE user_id=$1`

	var info domain.DBSInfo
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&info.UserID,
		&info.CertificateNumber,
		&info.SurnameOnCertificate,
		&info.DOBOnCertificate,
		&info.CertificatePrintDate,
		&info.RegisteredOnUpdateService,
		&info.CreatedAt,
		&info.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &info, nil
}
