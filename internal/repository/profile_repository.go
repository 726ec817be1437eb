package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// ProfileRepository handles persistence for completed staff profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.StaffProfile) error
	GetByUserID(ctx context.Context, userID string) (*domain.StaffProfile, error)
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository instantiates the repository.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.StaffProfile) error {
	const query = `
        INSERT INTO staff_profiles (user_id, first_name, last_name, mobile, date_of_birth, roles, right_to_work, cv_url, agreed_to_terms, experience)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING created_at, updated_at`

	roles := make([]string, 0, len(profile.Roles))
	for _, role := range profile.Roles {
		roles = append(roles, string(role))
	}

	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.FirstName,
		profile.LastName,
		profile.Mobile,
		profile.DateOfBirth,
		roles,
		profile.RightToWork,
		profile.CVURL,
		profile.AgreedToTerms,
		profile.Experience,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.StaffProfile, error) {
	const query = `
        SELECT user_id, first_name, last_name, mobile, date_of_birth, roles, right_to_work, cv_url, agreed_to_terms, experience, created_at, updated_at
        FROM staff_profiles WHERE user_id=$1`

	var profile domain.StaffProfile
	var roles []string
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Mobile,
		&profile.DateOfBirth,
		&roles,
		&profile.RightToWork,
		&profile.CVURL,
		&profile.AgreedToTerms,
		&profile.Experience,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	for _, role := range roles {
		profile.Roles = append(profile.Roles, domain.RoleTag(role))
	}
	return &profile, nil
}
