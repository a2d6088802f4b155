package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/edhorizon/pipeline-service/internal/entity"
	"github.com/edhorizon/pipeline-service/internal/infra/queue"
)

type CreateLeadInput struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	// Value arrives as form text and is parsed as a float; anything
	// unparseable becomes 0.
	Value string `json:"value,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type LeadEventPublisher interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}

type CreateLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events LeadEventPublisher
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, events LeadEventPublisher) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo, Events: events}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, actor *entity.Actor, input CreateLeadInput) (*entity.Lead, error) {
	if actor == nil {
		return nil, errUnauthenticated()
	}

	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	now := time.Now()
	lead := &entity.Lead{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Value:      parseValue(input.Value),
		Notes:      input.Notes,
		Status:     entity.StageSlugNew,
		AssignedTo: actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, persistenceError(err)
	}

	if uc.Events != nil {
		payload := queue.LeadEventPayload{
			Type:       queue.EventTypeLeadCreated,
			LeadID:     lead.ID,
			LeadName:   lead.Name,
			AssignedTo: lead.AssignedTo,
			ToStage:    lead.Status,
			ActorID:    actor.ID,
			OccurredAt: now,
		}
		go func() {
			if err := uc.Events.PublishLeadEvent(context.Background(), payload); err != nil {
				log.Printf("publish lead.created for %s failed: %v", lead.ID, err)
			}
		}()
	}

	return lead, nil
}
