package database

import (
	"context"
	"database/sql"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

type StageRepository struct {
	DB *sql.DB
}

func NewStageRepository(db *sql.DB) *StageRepository {
	return &StageRepository{DB: db}
}

func (r *StageRepository) List(ctx context.Context) ([]entity.Stage, error) {
	query := `SELECT slug, label, order_index, created_at FROM pipeline_stages ORDER BY order_index ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := []entity.Stage{}
	for rows.Next() {
		var s entity.Stage
		if err := rows.Scan(&s.Slug, &s.Label, &s.OrderIndex, &s.CreatedAt); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, rows.Err()
}

func (r *StageRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(order_index), -1) FROM pipeline_stages`

	var max int
	if err := r.DB.QueryRowContext(ctx, query).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (r *StageRepository) Insert(ctx context.Context, stage *entity.Stage) error {
	query := `
		INSERT INTO pipeline_stages (slug, label, order_index, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query,
		stage.Slug,
		stage.Label,
		stage.OrderIndex,
		stage.CreatedAt,
	)
	return err
}
