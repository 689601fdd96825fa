package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
)

// Tipos de conteúdo dos itens do programa mínimo.
const (
	TipoConteudoMetodo  = "metodo"
	TipoConteudoHinario = "hinario"
	TipoConteudoTeoria  = "teoria"
	TipoConteudoSolfejo = "solfejo"
	TipoConteudoEscala  = "escala"
)

// ProgramaMinimoModel: requisitos mínimos por (instrumento, nível).
// A tabela inteira é recriada pelo seeder; o catálogo em código é a
// fonte de verdade.
type ProgramaMinimoModel struct {
	ProgramaMinimoID            uuid.UUID `gorm:"column:programa_minimo_id;type:uuid;primaryKey" json:"programa_minimo_id"`
	ProgramaMinimoInstrumentoID uuid.UUID `gorm:"column:programa_minimo_instrumento_id;type:uuid;not null;uniqueIndex:ux_programa_instrumento_nivel" json:"programa_minimo_instrumento_id"`
	ProgramaMinimoNivel         string    `gorm:"column:programa_minimo_nivel;size:30;not null;uniqueIndex:ux_programa_instrumento_nivel" json:"programa_minimo_nivel"`

	ProgramaMinimoCreatedAt time.Time `gorm:"column:programa_minimo_created_at;autoCreateTime" json:"programa_minimo_created_at"`

	Instrumento *instrumentModel.InstrumentoModel `gorm:"foreignKey:ProgramaMinimoInstrumentoID;references:InstrumentoID" json:"instrumento,omitempty"`
	Itens       []ItemProgramaModel               `gorm:"foreignKey:ItemProgramaProgramaID;references:ProgramaMinimoID;constraint:OnDelete:CASCADE" json:"itens,omitempty"`
}

func (ProgramaMinimoModel) TableName() string {
	return "programas_minimos"
}

func (m *ProgramaMinimoModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProgramaMinimoID == uuid.Nil {
		m.ProgramaMinimoID = uuid.New()
	}
	return nil
}

// ItemProgramaModel: item ordenado de um programa mínimo.
type ItemProgramaModel struct {
	ItemProgramaID                   uuid.UUID `gorm:"column:item_programa_id;type:uuid;primaryKey" json:"item_programa_id"`
	ItemProgramaProgramaID           uuid.UUID `gorm:"column:item_programa_programa_id;type:uuid;not null;index" json:"item_programa_programa_id"`
	ItemProgramaTipoConteudo         string    `gorm:"column:item_programa_tipo_conteudo;size:30;not null" json:"item_programa_tipo_conteudo"`
	ItemProgramaDescricao            string    `gorm:"column:item_programa_descricao;size:255;not null" json:"item_programa_descricao"`
	ItemProgramaDescricaoAlternativa *string   `gorm:"column:item_programa_descricao_alternativa;size:255" json:"item_programa_descricao_alternativa,omitempty"`
	ItemProgramaObrigatorio          bool      `gorm:"column:item_programa_obrigatorio;not null;default:true" json:"item_programa_obrigatorio"`
	ItemProgramaOrdem                int       `gorm:"column:item_programa_ordem;not null" json:"item_programa_ordem"`
}

func (ItemProgramaModel) TableName() string {
	return "itens_programa"
}

func (m *ItemProgramaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ItemProgramaID == uuid.Nil {
		m.ItemProgramaID = uuid.New()
	}
	return nil
}
