package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FaseTeoricaModel representa a tabela fases_teoricas (MTS/teoria musical).
type FaseTeoricaModel struct {
	FaseID     uuid.UUID `gorm:"column:fase_id;type:uuid;primaryKey" json:"fase_id"`
	FaseNumero int       `gorm:"column:fase_numero;not null;uniqueIndex" json:"fase_numero"`
	FaseNome   string    `gorm:"column:fase_nome;size:120;not null" json:"fase_nome"`

	FaseCreatedAt time.Time `gorm:"column:fase_created_at;autoCreateTime" json:"fase_created_at"`
	FaseUpdatedAt time.Time `gorm:"column:fase_updated_at;autoUpdateTime" json:"fase_updated_at"`

	Conteudos []ConteudoFaseModel `gorm:"foreignKey:ConteudoFaseID;references:FaseID;constraint:OnDelete:CASCADE" json:"conteudos,omitempty"`
}

func (FaseTeoricaModel) TableName() string {
	return "fases_teoricas"
}

func (m *FaseTeoricaModel) BeforeCreate(tx *gorm.DB) error {
	if m.FaseID == uuid.Nil {
		m.FaseID = uuid.New()
	}
	return nil
}

// ConteudoFaseModel: conteúdos ordenados de cada fase.
type ConteudoFaseModel struct {
	ConteudoID        uuid.UUID `gorm:"column:conteudo_id;type:uuid;primaryKey" json:"conteudo_id"`
	ConteudoFaseID    uuid.UUID `gorm:"column:conteudo_fase_id;type:uuid;not null;index" json:"conteudo_fase_id"`
	ConteudoDescricao string    `gorm:"column:conteudo_descricao;size:255;not null" json:"conteudo_descricao"`
	ConteudoOrdem     int       `gorm:"column:conteudo_ordem;not null" json:"conteudo_ordem"`

	ConteudoCreatedAt time.Time `gorm:"column:conteudo_created_at;autoCreateTime" json:"conteudo_created_at"`
}

func (ConteudoFaseModel) TableName() string {
	return "conteudos_fase"
}

func (m *ConteudoFaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ConteudoID == uuid.Nil {
		m.ConteudoID = uuid.New()
	}
	return nil
}
