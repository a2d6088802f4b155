package usecase

import (
	"context"
	"log"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

// ListLeadsUseCase returns the leads visible to an actor. Reads never fail
// loudly: a missing actor or a store error degrades to an empty slice so the
// board always renders.
type ListLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, actor *entity.Actor) ([]entity.Lead, error) {
	if actor == nil {
		return []entity.Lead{}, nil
	}

	var (
		leads []entity.Lead
		err   error
	)
	if actor.Elevated() {
		leads, err = uc.Repo.ListAll(ctx)
	} else {
		leads, err = uc.Repo.ListByAssignee(ctx, actor.ID)
	}
	if err != nil {
		log.Printf("list leads failed for actor %s: %v", actor.ID, err)
		return []entity.Lead{}, nil
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}
