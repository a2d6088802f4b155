package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

var ErrSessionNotFound = errors.New("session not found")

// ProfileRepository resolves session tokens and staff contacts against the
// platform's profiles and sessions tables.
type ProfileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// FindActorByToken maps a live session token to the acting profile.
func (r *ProfileRepository) FindActorByToken(ctx context.Context, token string) (*entity.Actor, error) {
	query := `
		SELECT p.id, p.role
		FROM sessions s
		JOIN profiles p ON p.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > NOW()
	`

	var actor entity.Actor
	err := r.DB.QueryRowContext(ctx, query, token).Scan(&actor.ID, &actor.Role)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

func (r *ProfileRepository) FindEmailByID(ctx context.Context, userID string) (string, error) {
	query := `SELECT COALESCE(email, '') FROM profiles WHERE id = $1`

	var email string
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&email)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
