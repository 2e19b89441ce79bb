package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"esrs-platform/internal/models"
)

// CatalogRepository handles database operations for the ESRS reference
// catalog
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetByStandardCodes retrieves the datapoints whose stored standard
// code exactly matches one of the given codes, ordered by datapoint
// code. Catalog imports do not always store normalized codes, so an
// empty result here is not final; callers fall back to GetAll plus
// normalized filtering.
func (r *CatalogRepository) GetByStandardCodes(ctx context.Context, codes []string) ([]models.CatalogDatapoint, error) {
	query := `
		SELECT id, standard_code, datapoint_code, label, data_type, disclosure_requirement, is_voluntary
		FROM esrs_catalog
		WHERE standard_code = ANY($1)
		ORDER BY datapoint_code
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(codes))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDatapoints(rows)
}

// GetAll retrieves the full catalog ordered by datapoint code, capped
// at limit rows.
func (r *CatalogRepository) GetAll(ctx context.Context, limit int) ([]models.CatalogDatapoint, error) {
	query := `
		SELECT id, standard_code, datapoint_code, label, data_type, disclosure_requirement, is_voluntary
		FROM esrs_catalog
		ORDER BY datapoint_code
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDatapoints(rows)
}

// GetByID retrieves a datapoint by ID
func (r *CatalogRepository) GetByID(ctx context.Context, id uint) (*models.CatalogDatapoint, error) {
	query := `
		SELECT id, standard_code, datapoint_code, label, data_type, disclosure_requirement, is_voluntary
		FROM esrs_catalog
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByDatapointCode retrieves a datapoint by its code
func (r *CatalogRepository) GetByDatapointCode(ctx context.Context, code string) (*models.CatalogDatapoint, error) {
	query := `
		SELECT id, standard_code, datapoint_code, label, data_type, disclosure_requirement, is_voluntary
		FROM esrs_catalog
		WHERE datapoint_code = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, code))
}

func (r *CatalogRepository) scanOne(row *sql.Row) (*models.CatalogDatapoint, error) {
	dp := &models.CatalogDatapoint{}
	err := row.Scan(
		&dp.ID,
		&dp.StandardCode,
		&dp.DatapointCode,
		&dp.Label,
		&dp.DataType,
		&dp.DisclosureRequirement,
		&dp.IsVoluntary,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return dp, err
}

func scanDatapoints(rows *sql.Rows) ([]models.CatalogDatapoint, error) {
	datapoints := []models.CatalogDatapoint{}
	for rows.Next() {
		var dp models.CatalogDatapoint
		if err := rows.Scan(
			&dp.ID,
			&dp.StandardCode,
			&dp.DatapointCode,
			&dp.Label,
			&dp.DataType,
			&dp.DisclosureRequirement,
			&dp.IsVoluntary,
		); err != nil {
			return nil, err
		}
		datapoints = append(datapoints, dp)
	}

	return datapoints, rows.Err()
}
