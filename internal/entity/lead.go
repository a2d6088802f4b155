package entity

import (
	"context"
	"errors"
	"time"
)

// StageSlugNew is the pipeline's entry stage. New leads always land here;
// the registry is not consulted at creation time.
const StageSlugNew = "new"

var ErrLeadNotFound = errors.New("lead not found")

type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Value      float64   `json:"value"`
	Notes      string    `json:"notes,omitempty"`
	Status     string    `json:"status"` // slug of the current pipeline stage
	AssignedTo string    `json:"assigned_to"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeadPatch is a partial field update. Nil fields are left untouched.
// Status is deliberately absent; stage transitions go through MoveLead only.
type LeadPatch struct {
	Name  *string
	Email *string
	Phone *string
	Value *float64
	Notes *string
}

func (p LeadPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Value == nil && p.Notes == nil
}

type LeadRepositoryInterface interface {
	ListAll(ctx context.Context) ([]Lead, error)
	ListByAssignee(ctx context.Context, userID string) ([]Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, lead *Lead) error
	UpdateFields(ctx context.Context, id string, patch LeadPatch) error
	UpdateStatus(ctx context.Context, id, status string) error
}
