package service_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ggem_backend/internals/constants"
	database "ggem_backend/internals/databases"
	authModel "ggem_backend/internals/features/users/auth/model"
	"ggem_backend/internals/features/users/auth/service"
	userModel "ggem_backend/internals/features/users/user/model"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrando schema: %v", err)
	}
	return db
}

func criarUser(t *testing.T, db *gorm.DB, ativo bool) *userModel.UserModel {
	t.Helper()
	user := userModel.UserModel{
		UserName: "Instrutor Teste",
		Email:    fmt.Sprintf("%s@ggem.test", strings.ToLower(strings.ReplaceAll(t.Name(), "/", "."))),
		Password: "hash",
		Role:     constants.RoleInstrutor,
		IsActive: ativo,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return &user
}

func TestHashECheckPassword(t *testing.T) {
	hash, err := service.HashPassword("segredo-forte-123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "segredo-forte-123" {
		t.Fatal("senha não pode ser armazenada em claro")
	}
	if !service.CheckPassword(hash, "segredo-forte-123") {
		t.Fatal("senha correta deveria validar")
	}
	if service.CheckPassword(hash, "senha-errada") {
		t.Fatal("senha errada não pode validar")
	}
}

func TestRefreshTokenRotacao(t *testing.T) {
	db := abrirBanco(t)
	user := criarUser(t, db, true)

	raw, err := service.IssueRefreshToken(db, user.ID, nil, nil)
	if err != nil {
		t.Fatalf("emitindo refresh: %v", err)
	}

	// apenas o hash vai para o banco
	var row authModel.RefreshTokenModel
	if err := db.First(&row, "user_id = ?", user.ID).Error; err != nil {
		t.Fatal(err)
	}
	if row.Token == raw {
		t.Fatal("refresh token não pode ser armazenado em claro")
	}

	dono, err := service.ConsumeRefreshToken(db, raw)
	if err != nil {
		t.Fatalf("consumindo refresh: %v", err)
	}
	if dono.ID != user.ID {
		t.Fatalf("dono = %s, quero %s", dono.ID, user.ID)
	}

	// rotação: o mesmo token não vale duas vezes
	if _, err := service.ConsumeRefreshToken(db, raw); !errors.Is(err, service.ErrRefreshInvalido) {
		t.Fatalf("segundo uso: quero ErrRefreshInvalido, veio %v", err)
	}
}

func TestRefreshTokenExpirado(t *testing.T) {
	db := abrirBanco(t)
	user := criarUser(t, db, true)

	raw, err := service.IssueRefreshToken(db, user.ID, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ?", user.ID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := service.ConsumeRefreshToken(db, raw); !errors.Is(err, service.ErrRefreshInvalido) {
		t.Fatalf("quero ErrRefreshInvalido, veio %v", err)
	}
}

func TestRefreshTokenUserInativo(t *testing.T) {
	db := abrirBanco(t)
	user := criarUser(t, db, true)

	raw, err := service.IssueRefreshToken(db, user.ID, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Model(user).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := service.ConsumeRefreshToken(db, raw); !errors.Is(err, service.ErrRefreshInvalido) {
		t.Fatalf("user desativado: quero ErrRefreshInvalido, veio %v", err)
	}
}

func TestRevokeRefreshTokens(t *testing.T) {
	db := abrirBanco(t)
	user := criarUser(t, db, true)

	for i := 0; i < 3; i++ {
		if _, err := service.IssueRefreshToken(db, user.ID, nil, nil); err != nil {
			t.Fatal(err)
		}
	}
	if err := service.RevokeRefreshTokens(db, user.ID); err != nil {
		t.Fatal(err)
	}

	var restantes int64
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ?", user.ID).Count(&restantes).Error; err != nil {
		t.Fatal(err)
	}
	if restantes != 0 {
		t.Fatalf("restantes = %d, quero 0", restantes)
	}
}
