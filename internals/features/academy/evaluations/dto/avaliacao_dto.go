package dto

import (
	"time"

	"github.com/google/uuid"

	evaluationModel "ggem_backend/internals/features/academy/evaluations/model"
)

type CreateAvaliacaoRequest struct {
	AlunoID     uuid.UUID  `json:"aluno_id" validate:"required"`
	InstrutorID *uuid.UUID `json:"instrutor_id" validate:"omitempty"` // admin pode lançar por outro instrutor
	FaseID      *uuid.UUID `json:"fase_id" validate:"omitempty"`
	Conteudo    string     `json:"conteudo" validate:"required,min=2,max=255"`
	Resultado   string     `json:"resultado" validate:"required,oneof=aprovado reprovado"`
	Data        time.Time  `json:"data" validate:"required"`
	Observacao  *string    `json:"observacao" validate:"omitempty"`
}

type UpdateAvaliacaoRequest struct {
	Conteudo   *string    `json:"conteudo" validate:"omitempty,min=2,max=255"`
	Resultado  *string    `json:"resultado" validate:"omitempty,oneof=aprovado reprovado"`
	Data       *time.Time `json:"data" validate:"omitempty"`
	FaseID     *uuid.UUID `json:"fase_id" validate:"omitempty"`
	Observacao *string    `json:"observacao" validate:"omitempty"`
}

func (r CreateAvaliacaoRequest) ToModel(instrutorID uuid.UUID) evaluationModel.AvaliacaoModel {
	return evaluationModel.AvaliacaoModel{
		AvaliacaoAlunoID:     r.AlunoID,
		AvaliacaoInstrutorID: instrutorID,
		AvaliacaoFaseID:      r.FaseID,
		AvaliacaoConteudo:    r.Conteudo,
		AvaliacaoResultado:   r.Resultado,
		AvaliacaoData:        r.Data,
		AvaliacaoObservacao:  r.Observacao,
	}
}
