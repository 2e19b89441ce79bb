package repository

import (
	"context"
	"database/sql"

	"esrs-platform/internal/models"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (email, password_hash, full_name, global_role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		profile.Email,
		profile.PasswordHash,
		profile.FullName,
		profile.GlobalRole,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, global_role, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, global_role, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetAll retrieves all profiles ordered by email
func (r *ProfileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, global_role, created_at, updated_at
		FROM profiles
		ORDER BY email
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.GlobalRole, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// UpdateGlobalRole updates a user's global role
func (r *ProfileRepository) UpdateGlobalRole(ctx context.Context, id uint, role string) error {
	query := `
		UPDATE profiles
		SET global_role = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, role, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *ProfileRepository) scanOne(row *sql.Row) (*models.Profile, error) {
	profile := &models.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.FullName,
		&profile.GlobalRole,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return profile, err
}
