package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "ggem_backend/internals/features/academy/students/model"
)

const (
	ResultadoAprovado  = "aprovado"
	ResultadoReprovado = "reprovado"
)

// AvaliacaoModel representa a tabela avaliacoes.
type AvaliacaoModel struct {
	AvaliacaoID          uuid.UUID  `gorm:"column:avaliacao_id;type:uuid;primaryKey" json:"avaliacao_id"`
	AvaliacaoAlunoID     uuid.UUID  `gorm:"column:avaliacao_aluno_id;type:uuid;not null;index" json:"avaliacao_aluno_id"`
	AvaliacaoInstrutorID uuid.UUID  `gorm:"column:avaliacao_instrutor_id;type:uuid;not null;index" json:"avaliacao_instrutor_id"`
	AvaliacaoFaseID      *uuid.UUID `gorm:"column:avaliacao_fase_id;type:uuid;index" json:"avaliacao_fase_id,omitempty"`
	AvaliacaoConteudo    string     `gorm:"column:avaliacao_conteudo;size:255;not null" json:"avaliacao_conteudo"`
	AvaliacaoResultado   string     `gorm:"column:avaliacao_resultado;size:20;not null" json:"avaliacao_resultado"`
	AvaliacaoData        time.Time  `gorm:"column:avaliacao_data;not null" json:"avaliacao_data"`
	AvaliacaoObservacao  *string    `gorm:"column:avaliacao_observacao;type:text" json:"avaliacao_observacao,omitempty"`

	AvaliacaoCreatedAt time.Time `gorm:"column:avaliacao_created_at;autoCreateTime" json:"avaliacao_created_at"`

	Aluno *studentModel.AlunoModel `gorm:"foreignKey:AvaliacaoAlunoID;references:AlunoID" json:"aluno,omitempty"`
}

func (AvaliacaoModel) TableName() string {
	return "avaliacoes"
}

func (m *AvaliacaoModel) BeforeCreate(tx *gorm.DB) error {
	if m.AvaliacaoID == uuid.Nil {
		m.AvaliacaoID = uuid.New()
	}
	return nil
}
