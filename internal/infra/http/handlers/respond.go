package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/edhorizon/pipeline-service/internal/usecase"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError maps the usecase error taxonomy onto HTTP statuses. Domain
// errors become 4xx with their code; everything else is a 500 with the
// store's message surfaced verbatim.
func respondError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		switch de.Code {
		case usecase.CodeUnauthenticated:
			status = http.StatusUnauthorized
		case usecase.CodeForbidden:
			status = http.StatusForbidden
		case usecase.CodeLeadNotFound:
			status = http.StatusNotFound
		}
		respondJSON(w, status, errorResponse{Code: de.Code, Message: de.Message})
		return
	}
	if te, ok := err.(*usecase.TechnicalError); ok {
		respondJSON(w, http.StatusInternalServerError, errorResponse{Code: te.Code, Message: te.Message})
		return
	}
	respondJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}
