package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
)

// Níveis de aluno reconhecidos pelo programa mínimo.
const (
	NivelPreparatorio = "preparatorio"
	NivelRJM          = "rjm"
	NivelCultoOficial = "culto-oficial"
	NivelOficializado = "oficializado"
)

// AlunoModel representa a tabela alunos.
// Todo aluno pertence a um instrutor principal; o secundário é opcional.
type AlunoModel struct {
	AlunoID       uuid.UUID `gorm:"column:aluno_id;type:uuid;primaryKey" json:"aluno_id"`
	AlunoNome     string    `gorm:"column:aluno_nome;size:120;not null" json:"aluno_nome"`
	AlunoTelefone *string   `gorm:"column:aluno_telefone;size:20" json:"aluno_telefone,omitempty"`

	AlunoInstrumentoID uuid.UUID `gorm:"column:aluno_instrumento_id;type:uuid;not null;index" json:"aluno_instrumento_id"`
	AlunoNivel         string    `gorm:"column:aluno_nivel;size:30;not null;default:'preparatorio'" json:"aluno_nivel"`
	AlunoCongregacao   string    `gorm:"column:aluno_congregacao;size:120;not null" json:"aluno_congregacao"`

	AlunoInstrutorPrincipalID  uuid.UUID  `gorm:"column:aluno_instrutor_principal_id;type:uuid;not null;index" json:"aluno_instrutor_principal_id"`
	AlunoInstrutorSecundarioID *uuid.UUID `gorm:"column:aluno_instrutor_secundario_id;type:uuid;index" json:"aluno_instrutor_secundario_id,omitempty"`

	AlunoAtivo bool `gorm:"column:aluno_ativo;not null;default:true" json:"aluno_ativo"`

	AlunoCreatedAt time.Time `gorm:"column:aluno_created_at;autoCreateTime" json:"aluno_created_at"`
	AlunoUpdatedAt time.Time `gorm:"column:aluno_updated_at;autoUpdateTime" json:"aluno_updated_at"`

	Instrumento        *instrumentModel.InstrumentoModel `gorm:"foreignKey:AlunoInstrumentoID;references:InstrumentoID" json:"instrumento,omitempty"`
	InstrutorPrincipal *instructorModel.InstrutorModel   `gorm:"foreignKey:AlunoInstrutorPrincipalID;references:InstrutorID" json:"instrutor_principal,omitempty"`
}

func (AlunoModel) TableName() string {
	return "alunos"
}

func (m *AlunoModel) BeforeCreate(tx *gorm.DB) error {
	if m.AlunoID == uuid.Nil {
		m.AlunoID = uuid.New()
	}
	return nil
}
