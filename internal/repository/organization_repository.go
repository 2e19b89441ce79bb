package repository

import (
	"context"
	"database/sql"

	"esrs-platform/internal/models"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *sql.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *sql.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organizations (name, sector)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	return r.db.QueryRowContext(ctx, query, org.Name, org.Sector).Scan(&org.ID, &org.CreatedAt)
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*models.Organization, error) {
	query := `
		SELECT id, name, sector, created_at
		FROM organizations
		WHERE id = $1
	`

	org := &models.Organization{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&org.ID, &org.Name, &org.Sector, &org.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return org, err
}

// GetAll retrieves all organizations ordered by name
func (r *OrganizationRepository) GetAll(ctx context.Context) ([]models.Organization, error) {
	query := `
		SELECT id, name, sector, created_at
		FROM organizations
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := []models.Organization{}
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Sector, &org.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

// Delete deletes an organization and, via cascade, its projects
func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM organizations WHERE id = $1`, id)
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
