package dto

import (
	"time"

	"github.com/google/uuid"

	sessionModel "ggem_backend/internals/features/academy/sessions/model"
)

type PresencaRequest struct {
	AlunoID       uuid.UUID `json:"aluno_id" validate:"required"`
	Presente      bool      `json:"presente"`
	Justificativa *string   `json:"justificativa" validate:"omitempty,max=255"`
}

type CreateAulaRequest struct {
	InstrutorID *uuid.UUID        `json:"instrutor_id" validate:"omitempty"` // admin pode lançar por outro instrutor
	Data        time.Time         `json:"data" validate:"required"`
	Congregacao string            `json:"congregacao" validate:"required,min=2,max=120"`
	FaseID      *uuid.UUID        `json:"fase_id" validate:"omitempty"`
	Observacao  *string           `json:"observacao" validate:"omitempty"`
	Presencas   []PresencaRequest `json:"presencas" validate:"omitempty,dive"`
}

type UpdateAulaRequest struct {
	Data        *time.Time `json:"data" validate:"omitempty"`
	Congregacao *string    `json:"congregacao" validate:"omitempty,min=2,max=120"`
	FaseID      *uuid.UUID `json:"fase_id" validate:"omitempty"`
	Observacao  *string    `json:"observacao" validate:"omitempty"`
}

func (r CreateAulaRequest) ToModel(instrutorID uuid.UUID) sessionModel.AulaColetivaModel {
	aula := sessionModel.AulaColetivaModel{
		AulaInstrutorID: instrutorID,
		AulaData:        r.Data,
		AulaCongregacao: r.Congregacao,
		AulaFaseID:      r.FaseID,
		AulaObservacao:  r.Observacao,
	}
	for _, p := range r.Presencas {
		aula.Presencas = append(aula.Presencas, sessionModel.PresencaModel{
			PresencaAlunoID:       p.AlunoID,
			PresencaPresente:      p.Presente,
			PresencaJustificativa: p.Justificativa,
		})
	}
	return aula
}
