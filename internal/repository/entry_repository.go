package repository

import (
	"context"
	"database/sql"

	"esrs-platform/internal/models"
)

// EntryRepository handles database operations for datapoint entries
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create creates a new datapoint entry
func (r *EntryRepository) Create(ctx context.Context, entry *models.DataPointEntry) error {
	query := `
		INSERT INTO datapoint_entries
			(project_id, catalog_id, code, label, value, evidence_url, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRowContext(
		ctx,
		query,
		entry.ProjectID,
		entry.CatalogID,
		entry.Code,
		entry.Label,
		entry.Value,
		entry.EvidenceURL,
		entry.Status,
		entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

// GetByID retrieves an entry by ID
func (r *EntryRepository) GetByID(ctx context.Context, id uint) (*models.DataPointEntry, error) {
	query := `
		SELECT id, project_id, catalog_id, code, label, value, evidence_url, status,
		       created_by, created_at, updated_at
		FROM datapoint_entries
		WHERE id = $1
	`

	entry := &models.DataPointEntry{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.ProjectID,
		&entry.CatalogID,
		&entry.Code,
		&entry.Label,
		&entry.Value,
		&entry.EvidenceURL,
		&entry.Status,
		&entry.CreatedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return entry, err
}

// GetByProject retrieves all entries of a project, newest first
func (r *EntryRepository) GetByProject(ctx context.Context, projectID uint) ([]models.DataPointEntry, error) {
	query := `
		SELECT id, project_id, catalog_id, code, label, value, evidence_url, status,
		       created_by, created_at, updated_at
		FROM datapoint_entries
		WHERE project_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.DataPointEntry{}
	for rows.Next() {
		var e models.DataPointEntry
		if err := rows.Scan(
			&e.ID,
			&e.ProjectID,
			&e.CatalogID,
			&e.Code,
			&e.Label,
			&e.Value,
			&e.EvidenceURL,
			&e.Status,
			&e.CreatedBy,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// UpdateStatus updates the workflow status of an entry
func (r *EntryRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	query := `
		UPDATE datapoint_entries
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
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

// CountByStatus returns the entry counts of a project grouped into the
// workflow states.
func (r *EntryRepository) CountByStatus(ctx context.Context, projectID uint) (total, approved, rejected, pending int, err error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Approved'),
			COUNT(*) FILTER (WHERE status = 'Rejected'),
			COUNT(*) FILTER (WHERE status = 'In Progress')
		FROM datapoint_entries
		WHERE project_id = $1
	`

	err = r.db.QueryRowContext(ctx, query, projectID).Scan(&total, &approved, &rejected, &pending)
	return total, approved, rejected, pending, err
}
