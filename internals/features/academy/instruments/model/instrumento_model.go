package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categorias usadas no cadastro e no seed do programa mínimo.
const (
	CategoriaCordas    = "cordas"
	CategoriaMadeiras  = "madeiras"
	CategoriaMetais    = "metais"
	CategoriaTeclas    = "teclas"
)

// InstrumentoModel representa a tabela instrumentos.
type InstrumentoModel struct {
	InstrumentoID        uuid.UUID `gorm:"column:instrumento_id;type:uuid;primaryKey" json:"instrumento_id"`
	InstrumentoNome      string    `gorm:"column:instrumento_nome;size:80;not null;uniqueIndex" json:"instrumento_nome"`
	InstrumentoCategoria string    `gorm:"column:instrumento_categoria;size:30;not null" json:"instrumento_categoria"`

	InstrumentoCreatedAt time.Time `gorm:"column:instrumento_created_at;autoCreateTime" json:"instrumento_created_at"`
	InstrumentoUpdatedAt time.Time `gorm:"column:instrumento_updated_at;autoUpdateTime" json:"instrumento_updated_at"`
}

func (InstrumentoModel) TableName() string {
	return "instrumentos"
}

func (m *InstrumentoModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstrumentoID == uuid.Nil {
		m.InstrumentoID = uuid.New()
	}
	return nil
}
