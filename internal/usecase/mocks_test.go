package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/edhorizon/pipeline-service/internal/entity"
	"github.com/edhorizon/pipeline-service/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListByAssignee(ctx context.Context, userID string) ([]entity.Lead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateFields(ctx context.Context, id string, patch entity.LeadPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockStageRepository
type MockStageRepository struct {
	mock.Mock
}

func (m *MockStageRepository) List(ctx context.Context) ([]entity.Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Stage), args.Error(1)
}

func (m *MockStageRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStageRepository) Insert(ctx context.Context, stage *entity.Stage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

// capturingPublisher collects published events on a channel so tests can
// wait for the async publish.
type capturingPublisher struct {
	events chan queue.LeadEventPayload
}

func newCapturingPublisher() *capturingPublisher {
	return &capturingPublisher{events: make(chan queue.LeadEventPayload, 4)}
}

func (p *capturingPublisher) PublishLeadEvent(_ context.Context, payload queue.LeadEventPayload) error {
	p.events <- payload
	return nil
}
