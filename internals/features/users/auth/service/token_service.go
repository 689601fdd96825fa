package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ggem_backend/internals/configs"
	authModel "ggem_backend/internals/features/users/auth/model"
	userModel "ggem_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrRefreshInvalido = errors.New("Refresh token inválido ou expirado")
)

// GenerateAccessToken emite o JWT de acesso com as claims que o
// middleware de auth espera (id, user_name, role, instrutor_id, exp).
func GenerateAccessToken(user *userModel.UserModel, instrutorID *uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"exp":       time.Now().Add(AccessTokenTTL).Unix(),
	}
	if instrutorID != nil {
		claims["instrutor_id"] = instrutorID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func novoRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IssueRefreshToken gera um refresh token novo e persiste apenas o hash.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID, userAgent, ip *string) (string, error) {
	raw, err := novoRefreshToken()
	if err != nil {
		return "", err
	}
	row := authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     hashRefreshToken(raw),
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
		UserAgent: userAgent,
		IP:        ip,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// ConsumeRefreshToken valida e consome (rotação) um refresh token,
// devolvendo o user dono. O token usado é sempre apagado.
func ConsumeRefreshToken(db *gorm.DB, raw string) (*userModel.UserModel, error) {
	var row authModel.RefreshTokenModel
	if err := db.First(&row, "token = ?", hashRefreshToken(raw)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalido
		}
		return nil, err
	}
	// rotação: o token só vale uma vez
	if err := db.Delete(&row).Error; err != nil {
		return nil, err
	}
	if time.Now().After(row.ExpiresAt) {
		return nil, ErrRefreshInvalido
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", row.UserID).Error; err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrRefreshInvalido
	}
	return &user, nil
}

// RevokeRefreshTokens apaga todos os refresh tokens do user (logout global).
func RevokeRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// BlacklistAccessToken invalida um access token até expirar naturalmente.
// expiresAt usa o TTL cheio como teto quando a claim exp não está à mão.
func BlacklistAccessToken(db *gorm.DB, token string, expiresAt time.Time) error {
	if token == "" {
		return nil
	}
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
}
