package board

import (
	"context"

	"github.com/edhorizon/pipeline-service/internal/entity"
)

// StageAdder appends a stage to the registry. Satisfied by
// usecase.AddStageUseCase.
type StageAdder interface {
	Execute(ctx context.Context, actor *entity.Actor, label string) (*entity.Stage, error)
}

// StageForm is the uncommitted "add stage" input at the right edge of the
// board. The pending label survives a failed submit so the user can retry.
type StageForm struct {
	adder StageAdder

	Label string
}

func NewStageForm(adder StageAdder) *StageForm {
	return &StageForm{adder: adder}
}

func (f *StageForm) SetLabel(label string) {
	f.Label = label
}

// Submit commits the pending label. On success the input is cleared and the
// new stage comes back so the caller can append its column at the far right.
func (f *StageForm) Submit(ctx context.Context, actor *entity.Actor) (*entity.Stage, error) {
	stage, err := f.adder.Execute(ctx, actor, f.Label)
	if err != nil {
		return nil, err
	}
	f.Label = ""
	return stage, nil
}
