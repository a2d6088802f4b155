package board

import (
	"context"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

// Mover applies a stage transition. Satisfied by usecase.MoveLeadUseCase.
type Mover interface {
	Execute(ctx context.Context, actor *entity.Actor, leadID, targetSlug string) error
}

// DragSession holds the transient state of one drag gesture on one board
// instance. The dragged lead id is the payload of the gesture itself;
// the hover slug only drives drop-target highlighting.
type DragSession struct {
	actor *entity.Actor
	mover Mover
	view  View

	draggingLeadID string
	hoverSlug      string
}

func NewDragSession(actor *entity.Actor, mover Mover, view View) *DragSession {
	return &DragSession{actor: actor, mover: mover, view: view}
}

// Start begins a drag with the given lead card.
func (s *DragSession) Start(leadID string) {
	s.draggingLeadID = leadID
}

// Over marks a column as the current drop target.
func (s *DragSession) Over(slug string) {
	s.hoverSlug = slug
}

// Leave clears the drop-target highlight without ending the drag.
func (s *DragSession) Leave() {
	s.hoverSlug = ""
}

// HoverSlug returns the column currently highlighted as a drop target,
// or "" when none.
func (s *DragSession) HoverSlug() string {
	return s.hoverSlug
}

// Dragging reports whether a card is currently held.
func (s *DragSession) Dragging() bool {
	return s.draggingLeadID != ""
}

// Drop releases the card on a column. Dropping a card on the column it came
// from is a no-op; otherwise the move is applied through the mutation
// service. Transient drag state is cleared either way, so a failed move
// leaves the board on its last known-good snapshot.
func (s *DragSession) Drop(ctx context.Context, slug string) error {
	leadID := s.draggingLeadID
	s.draggingLeadID = ""
	s.hoverSlug = ""

	if leadID == "" {
		return nil
	}
	if lead := s.view.FindLead(leadID); lead != nil && lead.Status == slug {
		return nil
	}
	return s.mover.Execute(ctx, s.actor, leadID, slug)
}

// End aborts the drag without a drop. No mutation occurs.
func (s *DragSession) End() {
	s.draggingLeadID = ""
	s.hoverSlug = ""
}
