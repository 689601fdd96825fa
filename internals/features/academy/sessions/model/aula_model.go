package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	studentModel "ggem_backend/internals/features/academy/students/model"
)

// AulaColetivaModel representa a tabela aulas_coletivas.
// A existência de aulas de um instrutor é parte do "histórico" que
// impede o hard delete dele.
type AulaColetivaModel struct {
	AulaID          uuid.UUID  `gorm:"column:aula_id;type:uuid;primaryKey" json:"aula_id"`
	AulaInstrutorID uuid.UUID  `gorm:"column:aula_instrutor_id;type:uuid;not null;index" json:"aula_instrutor_id"`
	AulaData        time.Time  `gorm:"column:aula_data;not null" json:"aula_data"`
	AulaCongregacao string     `gorm:"column:aula_congregacao;size:120;not null" json:"aula_congregacao"`
	AulaFaseID      *uuid.UUID `gorm:"column:aula_fase_id;type:uuid;index" json:"aula_fase_id,omitempty"`
	AulaObservacao  *string    `gorm:"column:aula_observacao;type:text" json:"aula_observacao,omitempty"`

	AulaCreatedAt time.Time `gorm:"column:aula_created_at;autoCreateTime" json:"aula_created_at"`
	AulaUpdatedAt time.Time `gorm:"column:aula_updated_at;autoUpdateTime" json:"aula_updated_at"`

	Instrutor *instructorModel.InstrutorModel `gorm:"foreignKey:AulaInstrutorID;references:InstrutorID" json:"instrutor,omitempty"`
	Presencas []PresencaModel                 `gorm:"foreignKey:PresencaAulaID;references:AulaID;constraint:OnDelete:CASCADE" json:"presencas,omitempty"`
}

func (AulaColetivaModel) TableName() string {
	return "aulas_coletivas"
}

func (m *AulaColetivaModel) BeforeCreate(tx *gorm.DB) error {
	if m.AulaID == uuid.Nil {
		m.AulaID = uuid.New()
	}
	return nil
}

// PresencaModel: presença de um aluno em uma aula coletiva.
type PresencaModel struct {
	PresencaID            uuid.UUID `gorm:"column:presenca_id;type:uuid;primaryKey" json:"presenca_id"`
	PresencaAulaID        uuid.UUID `gorm:"column:presenca_aula_id;type:uuid;not null;index" json:"presenca_aula_id"`
	PresencaAlunoID       uuid.UUID `gorm:"column:presenca_aluno_id;type:uuid;not null;index" json:"presenca_aluno_id"`
	PresencaPresente      bool      `gorm:"column:presenca_presente;not null;default:false" json:"presenca_presente"`
	PresencaJustificativa *string   `gorm:"column:presenca_justificativa;size:255" json:"presenca_justificativa,omitempty"`

	PresencaCreatedAt time.Time `gorm:"column:presenca_created_at;autoCreateTime" json:"presenca_created_at"`

	Aluno *studentModel.AlunoModel `gorm:"foreignKey:PresencaAlunoID;references:AlunoID" json:"aluno,omitempty"`
}

func (PresencaModel) TableName() string {
	return "presencas"
}

func (m *PresencaModel) BeforeCreate(tx *gorm.DB) error {
	if m.PresencaID == uuid.Nil {
		m.PresencaID = uuid.New()
	}
	return nil
}
