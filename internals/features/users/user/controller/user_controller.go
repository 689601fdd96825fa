package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "ggem_backend/internals/features/users/user/model"
	helper "ggem_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===============================
   LIST
   GET /users?role=&ativo=
=================================*/

func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&userModel.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("is_active = ?", ativo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar usuários")
	}

	var users []userModel.UserModel
	if err := q.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}
	return helper.JsonList(c, "", users, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ===============================
   GET BY ID
   GET /users/:id
=================================*/

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de usuário inválido")
	}
	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}
	return helper.JsonOK(c, "", user)
}
