package dto

import (
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
)

type CreateInstrumentoRequest struct {
	Nome      string `json:"nome" validate:"required,min=2,max=80"`
	Categoria string `json:"categoria" validate:"required,oneof=cordas madeiras metais teclas"`
}

type UpdateInstrumentoRequest struct {
	Nome      *string `json:"nome" validate:"omitempty,min=2,max=80"`
	Categoria *string `json:"categoria" validate:"omitempty,oneof=cordas madeiras metais teclas"`
}

func (r CreateInstrumentoRequest) ToModel() instrumentModel.InstrumentoModel {
	return instrumentModel.InstrumentoModel{
		InstrumentoNome:      r.Nome,
		InstrumentoCategoria: r.Categoria,
	}
}
