package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/edhorizon/pipeline-service/internal/infra/http/middleware"
	"github.com/edhorizon/pipeline-service/internal/usecase"
)

type StageHandler struct {
	ListUC *usecase.ListStagesUseCase
	AddUC  *usecase.AddStageUseCase
}

func NewStageHandler(listUC *usecase.ListStagesUseCase, addUC *usecase.AddStageUseCase) *StageHandler {
	return &StageHandler{ListUC: listUC, AddUC: addUC}
}

func (h *StageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	stages, err := h.ListUC.Execute(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stages)
}

type addStageRequest struct {
	Label string `json:"label"`
}

func (h *StageHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	stage, err := h.AddUC.Execute(r.Context(), actor, req.Label)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordStageAdded()
	respondJSON(w, http.StatusCreated, stage)
}
