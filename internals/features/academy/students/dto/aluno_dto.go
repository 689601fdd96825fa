package dto

import (
	"github.com/google/uuid"

	studentModel "ggem_backend/internals/features/academy/students/model"
)

type CreateAlunoRequest struct {
	Nome                  string     `json:"nome" validate:"required,min=3,max=120"`
	Telefone              *string    `json:"telefone" validate:"omitempty,max=20"`
	InstrumentoID         uuid.UUID  `json:"instrumento_id" validate:"required"`
	Nivel                 string     `json:"nivel" validate:"omitempty,oneof=preparatorio rjm culto-oficial oficializado"`
	Congregacao           string     `json:"congregacao" validate:"required,min=2,max=120"`
	InstrutorPrincipalID  uuid.UUID  `json:"instrutor_principal_id" validate:"required"`
	InstrutorSecundarioID *uuid.UUID `json:"instrutor_secundario_id" validate:"omitempty"`
}

type UpdateAlunoRequest struct {
	Nome          *string    `json:"nome" validate:"omitempty,min=3,max=120"`
	Telefone      *string    `json:"telefone" validate:"omitempty,max=20"`
	InstrumentoID *uuid.UUID `json:"instrumento_id" validate:"omitempty"`
	Nivel         *string    `json:"nivel" validate:"omitempty,oneof=preparatorio rjm culto-oficial oficializado"`
	Congregacao   *string    `json:"congregacao" validate:"omitempty,min=2,max=120"`
	Ativo         *bool      `json:"ativo" validate:"omitempty"`
}

// Transferência de instrutor: desbloqueia a exclusão/desativação do
// instrutor atual.
type TransferirAlunoRequest struct {
	InstrutorPrincipalID  *uuid.UUID `json:"instrutor_principal_id" validate:"omitempty"`
	InstrutorSecundarioID *uuid.UUID `json:"instrutor_secundario_id" validate:"omitempty"`
	RemoverSecundario     bool       `json:"remover_secundario"`
}

func (r CreateAlunoRequest) ToModel() studentModel.AlunoModel {
	nivel := r.Nivel
	if nivel == "" {
		nivel = studentModel.NivelPreparatorio
	}
	return studentModel.AlunoModel{
		AlunoNome:                  r.Nome,
		AlunoTelefone:              r.Telefone,
		AlunoInstrumentoID:         r.InstrumentoID,
		AlunoNivel:                 nivel,
		AlunoCongregacao:           r.Congregacao,
		AlunoInstrutorPrincipalID:  r.InstrutorPrincipalID,
		AlunoInstrutorSecundarioID: r.InstrutorSecundarioID,
		AlunoAtivo:                 true,
	}
}
