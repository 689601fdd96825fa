package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ggem_backend/internals/constants"
)

// UserModel representa a tabela users.
// Todo instrutor possui exatamente um user; o encarregado e os secretários
// também são users (com ou sem registro de instrutor).
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"size:100;not null" json:"user_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'instrutor'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues garante defaults antes do insert
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleInstrutor
	}
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.SetDefaultValues()
	return nil
}
