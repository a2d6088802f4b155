package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edhorizon/pipeline-service/internal/infra/http/middleware"
	"github.com/edhorizon/pipeline-service/internal/usecase"
)

type LeadHandler struct {
	ListUC      *usecase.ListLeadsUseCase
	CreateUC    *usecase.CreateLeadUseCase
	UpdateUC    *usecase.UpdateLeadFieldsUseCase
	MoveUC      *usecase.MoveLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	listUC *usecase.ListLeadsUseCase,
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadFieldsUseCase,
	moveUC *usecase.MoveLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		ListUC:      listUC,
		CreateUC:    createUC,
		UpdateUC:    updateUC,
		MoveUC:      moveUC,
		rateLimiter: NewRateLimiter(30, time.Minute),
	}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	leads, err := h.ListUC.Execute(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondJSON(w, http.StatusTooManyRequests, errorResponse{
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	lead, err := h.CreateUC.Execute(r.Context(), actor, input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	var input usecase.UpdateLeadFieldsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	if err := h.UpdateUC.Execute(r.Context(), actor, leadID, input); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type moveLeadRequest struct {
	Status string `json:"status"`
}

func (h *LeadHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	var req moveLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid JSON"})
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	if err := h.MoveUC.Execute(r.Context(), actor, leadID, req.Status); err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordStageTransition(req.Status)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
