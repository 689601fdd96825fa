package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "ggem_backend/internals/features/users/user/model"
)

// InstrutorModel representa a tabela instrutores.
// Relação 1:1 com users: apagar o user remove o instrutor em cascata
// (o hard delete do ciclo de vida apaga o user, nunca o instrutor direto).
type InstrutorModel struct {
	InstrutorID          uuid.UUID      `gorm:"column:instrutor_id;type:uuid;primaryKey" json:"instrutor_id"`
	InstrutorUserID      uuid.UUID      `gorm:"column:instrutor_user_id;type:uuid;not null;uniqueIndex" json:"instrutor_user_id"`
	InstrutorTelefone    *string        `gorm:"column:instrutor_telefone;size:20" json:"instrutor_telefone,omitempty"`
	InstrutorCongregacao string         `gorm:"column:instrutor_congregacao;size:120;not null" json:"instrutor_congregacao"`
	InstrutorInstrumentos datatypes.JSON `gorm:"column:instrutor_instrumentos" json:"instrutor_instrumentos,omitempty"`

	InstrutorCreatedAt time.Time `gorm:"column:instrutor_created_at;autoCreateTime" json:"instrutor_created_at"`
	InstrutorUpdatedAt time.Time `gorm:"column:instrutor_updated_at;autoUpdateTime" json:"instrutor_updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:InstrutorUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
}

func (InstrutorModel) TableName() string {
	return "instrutores"
}

func (m *InstrutorModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstrutorID == uuid.Nil {
		m.InstrutorID = uuid.New()
	}
	return nil
}
