package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, COALESCE(email, ''), COALESCE(phone, ''), value, COALESCE(notes, ''), status, assigned_to, created_at, updated_at`

func (r *LeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

func (r *LeadRepository) ListByAssignee(ctx context.Context, userID string) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE assigned_to = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var l entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Value, &l.Notes,
		&l.Status, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, value, notes, status, assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.Email),
		nullString(lead.Phone),
		lead.Value,
		nullString(lead.Notes),
		lead.Status,
		lead.AssignedTo,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

// UpdateFields builds the SET list from the non-nil patch fields only.
func (r *LeadRepository) UpdateFields(ctx context.Context, id string, patch entity.LeadPatch) error {
	sets := []string{}
	args := []interface{}{}
	arg := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", nullString(*patch.Email))
	}
	if patch.Phone != nil {
		add("phone", nullString(*patch.Phone))
	}
	if patch.Value != nil {
		add("value", *patch.Value)
	}
	if patch.Notes != nil {
		add("notes", nullString(*patch.Notes))
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE leads SET %s WHERE id = $%d", strings.Join(sets, ", "), arg)
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func scanLeads(rows *sql.Rows) ([]entity.Lead, error) {
	leads := []entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		err := rows.Scan(
			&l.ID, &l.Name, &l.Email, &l.Phone, &l.Value, &l.Notes,
			&l.Status, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
