package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

// UpdateLeadFieldsInput carries a partial edit from the lead card form.
// Nil pointers mean "leave as is".
type UpdateLeadFieldsInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Value *string `json:"value,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// UpdateLeadFieldsUseCase patches lead fields. Authentication is the only
// check here: any signed-in actor may edit any lead it can reach, which is
// the platform's open-editing policy for lead details. Status is not
// editable through this path.
type UpdateLeadFieldsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewUpdateLeadFieldsUseCase(repo entity.LeadRepositoryInterface) *UpdateLeadFieldsUseCase {
	return &UpdateLeadFieldsUseCase{Repo: repo}
}

func (uc *UpdateLeadFieldsUseCase) Execute(ctx context.Context, actor *entity.Actor, leadID string, input UpdateLeadFieldsInput) error {
	if actor == nil {
		return errUnauthenticated()
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return validationFailed([]ValidationError{{"name", "is required"}})
	}

	patch := entity.LeadPatch{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Notes: input.Notes,
	}
	if input.Value != nil {
		v := parseValue(*input.Value)
		patch.Value = &v
	}
	if patch.Empty() {
		return nil
	}

	if err := uc.Repo.UpdateFields(ctx, leadID, patch); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
		}
		return persistenceError(err)
	}
	return nil
}
