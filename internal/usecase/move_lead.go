package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/edhorizon/pipeline-service/internal/entity"
	"github.com/edhorizon/pipeline-service/internal/infra/queue"
)

// MovePolicy decides whether an actor may move a given lead.
type MovePolicy func(actor *entity.Actor, lead *entity.Lead) bool

// AllowAuthenticated is the shipped default: any signed-in actor may move any
// lead. The UI only surfaces leads the actor can list, so visibility is the
// effective guard. Kept as an explicit predicate so the policy is testable
// and swappable.
func AllowAuthenticated(actor *entity.Actor, _ *entity.Lead) bool {
	return actor != nil
}

// AllowOwnerOrElevated restricts moves to the lead's assignee and elevated
// roles. Not wired as default; see DESIGN.md.
func AllowOwnerOrElevated(actor *entity.Actor, lead *entity.Lead) bool {
	if actor == nil {
		return false
	}
	return actor.Elevated() || lead.AssignedTo == actor.ID
}

// MoveLeadUseCase is the sole writer of Lead.Status. The target slug is not
// checked against the stage registry; the board renders only known columns,
// so a stray status simply leaves the card unrendered, matching the
// platform's behavior. Stage adjacency is never enforced: reps may jump a
// lead across the whole pipeline.
type MoveLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Policy MovePolicy
	Events LeadEventPublisher

	// Serializes rapid double-drops of the same card. Cross-process
	// writes remain last-write-wins at the store.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMoveLeadUseCase(repo entity.LeadRepositoryInterface, policy MovePolicy, events LeadEventPublisher) *MoveLeadUseCase {
	if policy == nil {
		policy = AllowAuthenticated
	}
	return &MoveLeadUseCase{
		Repo:   repo,
		Policy: policy,
		Events: events,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (uc *MoveLeadUseCase) leadLock(leadID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[leadID]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[leadID] = l
	}
	return l
}

func (uc *MoveLeadUseCase) Execute(ctx context.Context, actor *entity.Actor, leadID, targetSlug string) error {
	if actor == nil {
		return errUnauthenticated()
	}

	l := uc.leadLock(leadID)
	l.Lock()
	defer l.Unlock()

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
		}
		return persistenceError(err)
	}

	if !uc.Policy(actor, lead) {
		return &DomainError{Code: CodeForbidden, Message: "not allowed to move this lead"}
	}

	// Idempotent: dropping a card on its own column writes nothing.
	if lead.Status == targetSlug {
		return nil
	}

	if err := uc.Repo.UpdateStatus(ctx, leadID, targetSlug); err != nil {
		return persistenceError(err)
	}

	if uc.Events != nil {
		payload := queue.LeadEventPayload{
			Type:       queue.EventTypeStageChanged,
			LeadID:     lead.ID,
			LeadName:   lead.Name,
			AssignedTo: lead.AssignedTo,
			FromStage:  lead.Status,
			ToStage:    targetSlug,
			ActorID:    actor.ID,
			OccurredAt: time.Now(),
		}
		go func() {
			if err := uc.Events.PublishLeadEvent(context.Background(), payload); err != nil {
				log.Printf("publish lead.stage_changed for %s failed: %v", lead.ID, err)
			}
		}()
	}

	return nil
}
