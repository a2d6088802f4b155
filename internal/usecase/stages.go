package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

// ListStagesUseCase returns the board columns in display order. Like lead
// listing, a store failure degrades to an empty slice.
type ListStagesUseCase struct {
	Repo entity.StageRepositoryInterface
}

func NewListStagesUseCase(repo entity.StageRepositoryInterface) *ListStagesUseCase {
	return &ListStagesUseCase{Repo: repo}
}

func (uc *ListStagesUseCase) Execute(ctx context.Context) ([]entity.Stage, error) {
	stages, err := uc.Repo.List(ctx)
	if err != nil {
		log.Printf("list stages failed: %v", err)
		return []entity.Stage{}, nil
	}
	if stages == nil {
		stages = []entity.Stage{}
	}
	return stages, nil
}

// AddStageUseCase appends a column at the far right of the board. The derived
// slug is not checked for uniqueness: two labels that slugify to the same key
// yield two stages sharing a slug, each with its own order_index.
type AddStageUseCase struct {
	Repo entity.StageRepositoryInterface
}

func NewAddStageUseCase(repo entity.StageRepositoryInterface) *AddStageUseCase {
	return &AddStageUseCase{Repo: repo}
}

func (uc *AddStageUseCase) Execute(ctx context.Context, actor *entity.Actor, label string) (*entity.Stage, error) {
	if actor == nil {
		return nil, errUnauthenticated()
	}

	if validationErrors := ValidateStageLabel(label); len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}
	label = strings.TrimSpace(label)

	maxIndex, err := uc.Repo.MaxOrderIndex(ctx)
	if err != nil {
		return nil, persistenceError(err)
	}

	stage := &entity.Stage{
		Slug:       entity.Slugify(label),
		Label:      label,
		OrderIndex: maxIndex + 1,
		CreatedAt:  time.Now(),
	}

	if err := uc.Repo.Insert(ctx, stage); err != nil {
		return nil, persistenceError(err)
	}
	return stage, nil
}
