package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ggem_backend/internals/constants"
	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	instructorService "ggem_backend/internals/features/academy/instructors/service"
	dto "ggem_backend/internals/features/users/auth/dto"
	authService "ggem_backend/internals/features/users/auth/service"
	userModel "ggem_backend/internals/features/users/user/model"
	helper "ggem_backend/internals/helpers"
	helperAuth "ggem_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* ===============================
   REGISTER
   POST /auth/register (admin)
   Cria user + registro de instrutor numa transação.
=================================*/

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	role := req.Role
	if role == "" {
		role = constants.RoleInstrutor
	}

	// unicidade de email
	var existentes int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("LOWER(email) = LOWER(?)", req.Email).
		Count(&existentes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar email")
	}
	if existentes > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email já cadastrado")
	}

	// só existe um encarregado, definido no cadastro
	if role == constants.RoleEncarregado {
		var encarregados int64
		if err := ctl.DB.WithContext(c.Context()).
			Model(&userModel.UserModel{}).
			Where("role = ?", constants.RoleEncarregado).
			Count(&encarregados).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar encarregado")
		}
		if encarregados > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Já existe um encarregado cadastrado")
		}
	}

	// o teto de secretários vale também no cadastro
	if role == constants.RoleAdmin {
		admins, err := instructorService.ContarAdminsAtivos(ctl.DB.WithContext(c.Context()))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar secretários")
		}
		if err := instructorService.AvaliarPromocaoAdmin(constants.RoleInstrutor, role, int(admins)); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	var instrumentos datatypes.JSON
	if len(req.Instrumentos) > 0 {
		raw, err := json.Marshal(req.Instrumentos)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Lista de instrumentos inválida")
		}
		instrumentos = datatypes.JSON(raw)
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	var instrutor instructorModel.InstrutorModel

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		instrutor = instructorModel.InstrutorModel{
			InstrutorUserID:       user.ID,
			InstrutorTelefone:     req.Telefone,
			InstrutorCongregacao:  strings.TrimSpace(req.Congregacao),
			InstrutorInstrumentos: instrumentos,
		}
		return tx.Create(&instrutor).Error
	})
	if err != nil {
		log.Printf("[ERROR] Falha ao cadastrar instrutor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cadastrar instrutor")
	}

	log.Printf("[INFO] ✅ Instrutor cadastrado: %s (%s)", user.UserName, user.Role)
	return helper.JsonCreated(c, "Instrutor cadastrado", fiber.Map{
		"user":      user,
		"instrutor": instrutor,
	})
}

/* ===============================
   LOGIN
   POST /auth/login
=================================*/

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&user, "LOWER(email) = LOWER(?)", strings.TrimSpace(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Conta desativada")
	}
	if !authService.CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	return ctl.emitirTokens(c, &user)
}

/* ===============================
   REFRESH
   POST /auth/refresh (rotação)
=================================*/

func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authService.ConsumeRefreshToken(ctl.DB.WithContext(c.Context()), req.RefreshToken)
	if err != nil {
		if errors.Is(err, authService.ErrRefreshInvalido) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao renovar sessão")
	}
	return ctl.emitirTokens(c, user)
}

/* ===============================
   LOGOUT
   POST /auth/logout (autenticado)
=================================*/

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.Context())
	if err := authService.RevokeRefreshTokens(db, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao encerrar sessão")
	}
	if token := bearerToken(c); token != "" {
		if err := authService.BlacklistAccessToken(db, token,
			time.Now().Add(authService.AccessTokenTTL)); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao encerrar sessão")
		}
	}
	return helper.JsonOK(c, "Sessão encerrada", nil)
}

func (ctl *AuthController) emitirTokens(c *fiber.Ctx, user *userModel.UserModel) error {
	db := ctl.DB.WithContext(c.Context())

	var instrutorID *uuid.UUID
	var instrutor instructorModel.InstrutorModel
	err := db.First(&instrutor, "instrutor_user_id = ?", user.ID).Error
	switch {
	case err == nil:
		instrutorID = &instrutor.InstrutorID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// user sem registro de instrutor (p.ex. secretário puro)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar instrutor")
	}

	access, err := authService.GenerateAccessToken(user, instrutorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir token")
	}

	ua := c.Get(fiber.HeaderUserAgent)
	ip := c.IP()
	refresh, err := authService.IssueRefreshToken(db, user.ID, &ua, &ip)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir refresh token")
	}

	return helper.JsonOK(c, "Login realizado", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(authService.AccessTokenTTL.Seconds()),
	})
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
