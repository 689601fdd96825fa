package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	userModel "ggem_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// Update (parcial): campos nil não são alterados.
// nome/email/role/ativo vivem no user; o resto no instrutor.
type UpdateInstrutorRequest struct {
	Nome         *string   `json:"nome" validate:"omitempty,min=3,max=100"`
	Telefone     *string   `json:"telefone" validate:"omitempty,max=20"`
	Congregacao  *string   `json:"congregacao" validate:"omitempty,min=2,max=120"`
	Instrumentos *[]string `json:"instrumentos" validate:"omitempty,dive,min=2,max=80"`
	Ativo        *bool     `json:"ativo" validate:"omitempty"`
	Role         *string   `json:"role" validate:"omitempty,oneof=instrutor encarregado admin"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type InstrutorResponse struct {
	InstrutorID  uuid.UUID `json:"instrutor_id"`
	UserID       uuid.UUID `json:"user_id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Ativo        bool      `json:"ativo"`
	Telefone     *string   `json:"telefone,omitempty"`
	Congregacao  string    `json:"congregacao"`
	Instrumentos []string  `json:"instrumentos"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Payload devolvido quando a exclusão fica bloqueada por alunos ativos.
type ExclusaoBloqueadaResponse struct {
	AlunosPrincipais  int64 `json:"alunos_principais"`
	AlunosSecundarios int64 `json:"alunos_secundarios"`
}

// Resultado da exclusão executada.
type ExclusaoResponse struct {
	Tipo string `json:"tipo"` // "soft" | "hard"
}

func ToInstrutorResponse(m *instructorModel.InstrutorModel, u *userModel.UserModel) InstrutorResponse {
	instrumentos := []string{}
	if len(m.InstrutorInstrumentos) > 0 {
		_ = json.Unmarshal(m.InstrutorInstrumentos, &instrumentos)
	}
	return InstrutorResponse{
		InstrutorID:  m.InstrutorID,
		UserID:       u.ID,
		Nome:         u.UserName,
		Email:        u.Email,
		Role:         u.Role,
		Ativo:        u.IsActive,
		Telefone:     m.InstrutorTelefone,
		Congregacao:  m.InstrutorCongregacao,
		Instrumentos: instrumentos,
		CreatedAt:    m.InstrutorCreatedAt,
		UpdatedAt:    m.InstrutorUpdatedAt,
	}
}
