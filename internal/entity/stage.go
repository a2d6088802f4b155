package entity

import (
	"context"
	"strings"
	"time"
)

// Stage is a named column on the pipeline board.
type Stage struct {
	Slug       string    `json:"slug"`
	Label      string    `json:"label"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

// Slugify derives the machine key from a display label: lowercased, runs of
// whitespace collapsed to single underscores. The result is not guaranteed
// unique; "New Stage" and "new  stage" both map to "new_stage".
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}

type StageRepositoryInterface interface {
	// List returns all stages ordered ascending by order_index.
	List(ctx context.Context) ([]Stage, error)
	// MaxOrderIndex returns -1 when the registry is empty.
	MaxOrderIndex(ctx context.Context) (int, error)
	Insert(ctx context.Context, stage *Stage) error
}
