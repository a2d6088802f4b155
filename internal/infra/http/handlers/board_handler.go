package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/edhorizon/pipeline-service/internal/board"
	"github.com/edhorizon/pipeline-service/internal/infra/http/middleware"
	"github.com/edhorizon/pipeline-service/internal/usecase"
)

// BoardHandler serves the assembled board view and drives one drag session
// per actor, so a thin client only reports gestures and never carries
// protocol state itself.
type BoardHandler struct {
	StagesUC *usecase.ListStagesUseCase
	LeadsUC  *usecase.ListLeadsUseCase
	MoveUC   *usecase.MoveLeadUseCase

	mu       sync.Mutex
	sessions map[string]*board.DragSession
}

func NewBoardHandler(
	stagesUC *usecase.ListStagesUseCase,
	leadsUC *usecase.ListLeadsUseCase,
	moveUC *usecase.MoveLeadUseCase,
) *BoardHandler {
	return &BoardHandler{
		StagesUC: stagesUC,
		LeadsUC:  leadsUC,
		MoveUC:   moveUC,
		sessions: make(map[string]*board.DragSession),
	}
}

func (h *BoardHandler) buildView(r *http.Request) (board.View, error) {
	actor := middleware.ActorFromContext(r.Context())

	stages, err := h.StagesUC.Execute(r.Context())
	if err != nil {
		return board.View{}, err
	}
	leads, err := h.LeadsUC.Execute(r.Context(), actor)
	if err != nil {
		return board.View{}, err
	}
	return board.BuildView(stages, leads), nil
}

func (h *BoardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type dragStartRequest struct {
	LeadID string `json:"lead_id"`
}

type dragTargetRequest struct {
	Slug string `json:"slug"`
}

// HandleDragStart snapshots the actor's board and begins a drag with the
// given card.
func (h *BoardHandler) HandleDragStart(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if actor == nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Message: "not authenticated"})
		return
	}

	var req dragStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	view, err := h.buildView(r)
	if err != nil {
		respondError(w, err)
		return
	}

	session := board.NewDragSession(actor, h.MoveUC, view)
	session.Start(req.LeadID)

	h.mu.Lock()
	h.sessions[actor.ID] = session
	h.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) HandleDragOver(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req dragTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	session.Over(req.Slug)
	respondJSON(w, http.StatusOK, map[string]string{"hover": session.HoverSlug()})
}

func (h *BoardHandler) HandleDragLeave(w http.ResponseWriter, r *http.Request) {
	if session, ok := h.session(r); ok {
		session.Leave()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) HandleDrop(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	session, ok := h.session(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req dragTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	err := session.Drop(r.Context(), req.Slug)

	h.mu.Lock()
	delete(h.sessions, actor.ID)
	h.mu.Unlock()

	if err != nil {
		respondError(w, err)
		return
	}
	middleware.RecordStageTransition(req.Slug)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *BoardHandler) HandleDragEnd(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if session, ok := h.session(r); ok {
		session.End()
		h.mu.Lock()
		delete(h.sessions, actor.ID)
		h.mu.Unlock()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) session(r *http.Request) (*board.DragSession, bool) {
	actor := middleware.ActorFromContext(r.Context())
	if actor == nil {
		return nil, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	session, ok := h.sessions[actor.ID]
	return session, ok
}
