package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/edhorizon/pipeline-service/internal/entity"
	"github.com/edhorizon/pipeline-service/internal/infra/http/handlers"
	"github.com/edhorizon/pipeline-service/internal/infra/http/middleware"
	"github.com/edhorizon/pipeline-service/internal/usecase"
)

func newLeadRouter(repo entity.LeadRepositoryInterface) *chi.Mux {
	h := handlers.NewLeadHandler(
		usecase.NewListLeadsUseCase(repo),
		usecase.NewCreateLeadUseCase(repo, nil),
		usecase.NewUpdateLeadFieldsUseCase(repo),
		usecase.NewMoveLeadUseCase(repo, usecase.AllowAuthenticated, nil),
	)

	r := chi.NewRouter()
	r.Get("/leads", h.HandleList)
	r.Post("/leads", h.HandleCreate)
	r.Patch("/leads/{leadId}", h.HandleUpdate)
	r.Post("/leads/{leadId}/move", h.HandleMove)
	return r
}

func withActor(r *http.Request, actor *entity.Actor) *http.Request {
	return r.WithContext(middleware.WithActor(r.Context(), actor))
}

func TestCreateLeadHandlerSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	router := newLeadRouter(mockRepo)

	body, _ := json.Marshal(usecase.CreateLeadInput{Name: "Jane", Value: "150.5"})
	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(body))
	req = withActor(req, &entity.Actor{ID: "U1", Role: entity.RoleSales})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var lead entity.Lead
	json.NewDecoder(w.Body).Decode(&lead)
	assert.Equal(t, "Jane", lead.Name)
	assert.Equal(t, 150.5, lead.Value)
	assert.Equal(t, "new", lead.Status)
	assert.Equal(t, "U1", lead.AssignedTo)
}

func TestCreateLeadHandlerUnauthenticated(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	router := newLeadRouter(mockRepo)

	body, _ := json.Marshal(usecase.CreateLeadInput{Name: "Jane"})
	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListLeadsHandlerAnonymousGetsEmptyList(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	router := newLeadRouter(mockRepo)

	req := httptest.NewRequest("GET", "/leads", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Reads fail closed to an empty collection, not an error.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestMoveLeadHandler(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, "L1").
		Return(&entity.Lead{ID: "L1", Status: "new", AssignedTo: "U1"}, nil)
	mockRepo.On("UpdateStatus", mock.Anything, "L1", "contacted").Return(nil)
	router := newLeadRouter(mockRepo)

	body := []byte(`{"status":"contacted"}`)
	req := httptest.NewRequest("POST", "/leads/L1/move", bytes.NewReader(body))
	req = withActor(req, &entity.Actor{ID: "U1", Role: entity.RoleSales})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertCalled(t, "UpdateStatus", mock.Anything, "L1", "contacted")
}

func TestUpdateLeadHandlerPatchesFields(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	var got entity.LeadPatch
	mockRepo.On("UpdateFields", mock.Anything, "L1", mock.Anything).
		Run(func(args mock.Arguments) {
			got = args.Get(2).(entity.LeadPatch)
		}).Return(nil)
	router := newLeadRouter(mockRepo)

	body := []byte(`{"name":"Jane Doe","value":"300"}`)
	req := httptest.NewRequest("PATCH", "/leads/L1", bytes.NewReader(body))
	req = withActor(req, &entity.Actor{ID: "U1", Role: entity.RoleSales})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane Doe", *got.Name)
	assert.Equal(t, 300.0, *got.Value)
	assert.Nil(t, got.Email)
	assert.Nil(t, got.Notes)
}

func TestLeadHandlerInvalidJSON(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	router := newLeadRouter(mockRepo)

	req := httptest.NewRequest("POST", "/leads", bytes.NewReader([]byte("{not json")))
	req = withActor(req, &entity.Actor{ID: "U1", Role: entity.RoleSales})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
