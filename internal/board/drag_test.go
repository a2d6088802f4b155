package board_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edhorizon/pipeline-service/internal/board"
	"github.com/edhorizon/pipeline-service/internal/entity"
)

type moveCall struct {
	actor      *entity.Actor
	leadID     string
	targetSlug string
}

type fakeMover struct {
	calls []moveCall
	err   error
}

func (m *fakeMover) Execute(_ context.Context, actor *entity.Actor, leadID, targetSlug string) error {
	m.calls = append(m.calls, moveCall{actor, leadID, targetSlug})
	return m.err
}

func newSession(mover board.Mover) (*board.DragSession, *entity.Actor) {
	actor := &entity.Actor{ID: "U1", Role: entity.RoleSales}
	view := board.BuildView(testStages(), []entity.Lead{
		{ID: "L1", Status: "new", AssignedTo: "U1"},
	})
	return board.NewDragSession(actor, mover, view), actor
}

func TestDragDropMovesLead(t *testing.T) {
	mover := &fakeMover{}
	session, actor := newSession(mover)

	session.Start("L1")
	assert.True(t, session.Dragging())

	session.Over("contacted")
	assert.Equal(t, "contacted", session.HoverSlug())

	err := session.Drop(context.Background(), "contacted")
	assert.NoError(t, err)

	assert.Len(t, mover.calls, 1)
	assert.Equal(t, moveCall{actor, "L1", "contacted"}, mover.calls[0])
	assert.Equal(t, "", session.HoverSlug())
	assert.False(t, session.Dragging())
}

func TestDropOnSameColumnIsNoOp(t *testing.T) {
	mover := &fakeMover{}
	session, _ := newSession(mover)

	session.Start("L1")
	err := session.Drop(context.Background(), "new")

	assert.NoError(t, err)
	assert.Empty(t, mover.calls)
}

func TestDropWithoutStartIsNoOp(t *testing.T) {
	mover := &fakeMover{}
	session, _ := newSession(mover)

	assert.NoError(t, session.Drop(context.Background(), "contacted"))
	assert.Empty(t, mover.calls)
}

func TestDragLeaveClearsHoverOnly(t *testing.T) {
	mover := &fakeMover{}
	session, _ := newSession(mover)

	session.Start("L1")
	session.Over("contacted")
	session.Leave()

	assert.Equal(t, "", session.HoverSlug())
	assert.True(t, session.Dragging())
}

func TestDragEndWithoutDrop(t *testing.T) {
	mover := &fakeMover{}
	session, _ := newSession(mover)

	session.Start("L1")
	session.Over("contacted")
	session.End()

	assert.False(t, session.Dragging())
	assert.Equal(t, "", session.HoverSlug())
	assert.Empty(t, mover.calls)
}

func TestDropFailureClearsDragState(t *testing.T) {
	mover := &fakeMover{err: errors.New("store down")}
	session, _ := newSession(mover)

	session.Start("L1")
	err := session.Drop(context.Background(), "contacted")

	assert.Error(t, err)
	// No optimistic change was retained; the session is back at rest.
	assert.False(t, session.Dragging())
	assert.Equal(t, "", session.HoverSlug())
}

func TestAutoScrollerEdges(t *testing.T) {
	s := board.NewAutoScroller(800, 2000)

	// Middle of the viewport: no movement.
	s.Tick(400)
	assert.Equal(t, 0.0, s.ScrollLeft())

	// Right edge zone scrolls forward at fixed speed.
	s.Tick(750)
	assert.Equal(t, 15.0, s.ScrollLeft())
	s.Tick(750)
	assert.Equal(t, 30.0, s.ScrollLeft())

	// Left edge zone scrolls back, clamped at 0.
	s.Tick(50)
	s.Tick(50)
	s.Tick(50)
	assert.Equal(t, 0.0, s.ScrollLeft())
}

func TestAutoScrollerClampsToContent(t *testing.T) {
	s := board.NewAutoScroller(800, 830)

	for i := 0; i < 10; i++ {
		s.Tick(790)
	}
	assert.Equal(t, 30.0, s.ScrollLeft())
}

func TestAutoScrollerNoOverflow(t *testing.T) {
	// Content narrower than the viewport never scrolls.
	s := board.NewAutoScroller(800, 500)
	s.Tick(790)
	assert.Equal(t, 0.0, s.ScrollLeft())
}
