package dto

import (
	theoryModel "ggem_backend/internals/features/academy/theory/model"
)

type ConteudoRequest struct {
	Descricao string `json:"descricao" validate:"required,min=2,max=255"`
}

type CreateFaseRequest struct {
	Numero    int               `json:"numero" validate:"required,min=1"`
	Nome      string            `json:"nome" validate:"required,min=2,max=120"`
	Conteudos []ConteudoRequest `json:"conteudos" validate:"omitempty,dive"`
}

type UpdateFaseRequest struct {
	Numero *int    `json:"numero" validate:"omitempty,min=1"`
	Nome   *string `json:"nome" validate:"omitempty,min=2,max=120"`
	// Quando presente, substitui a lista de conteúdos da fase.
	Conteudos *[]ConteudoRequest `json:"conteudos" validate:"omitempty,dive"`
}

func (r CreateFaseRequest) ToModel() theoryModel.FaseTeoricaModel {
	fase := theoryModel.FaseTeoricaModel{
		FaseNumero: r.Numero,
		FaseNome:   r.Nome,
	}
	for i, conteudo := range r.Conteudos {
		fase.Conteudos = append(fase.Conteudos, theoryModel.ConteudoFaseModel{
			ConteudoDescricao: conteudo.Descricao,
			ConteudoOrdem:     i + 1,
		})
	}
	return fase
}
