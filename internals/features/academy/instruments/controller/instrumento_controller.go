package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ggem_backend/internals/features/academy/instruments/dto"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
	helper "ggem_backend/internals/helpers"
)

type InstrumentoController struct {
	DB *gorm.DB
}

func NewInstrumentoController(db *gorm.DB) *InstrumentoController {
	return &InstrumentoController{DB: db}
}

var validate = validator.New()

/* ===============================
   LIST
   GET /instrumentos?categoria=
=================================*/

func (ctl *InstrumentoController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&instrumentModel.InstrumentoModel{})
	if cat := strings.TrimSpace(c.Query("categoria")); cat != "" {
		q = q.Where("instrumento_categoria = ?", cat)
	}
	var rows []instrumentModel.InstrumentoModel
	if err := q.Order("instrumento_nome ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar instrumentos")
	}
	return helper.JsonOK(c, "", rows)
}

/* ===============================
   CREATE
   POST /instrumentos
=================================*/

func (ctl *InstrumentoController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstrumentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// nome único (case-insensitive)
	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&instrumentModel.InstrumentoModel{}).
		Where("LOWER(instrumento_nome) = LOWER(?)", strings.TrimSpace(req.Nome)).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar instrumento")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Já existe um instrumento com esse nome")
	}

	row := req.ToModel()
	row.InstrumentoNome = strings.TrimSpace(row.InstrumentoNome)
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar instrumento")
	}
	return helper.JsonCreated(c, "Instrumento criado", row)
}

/* ===============================
   UPDATE
   PUT /instrumentos/:id
=================================*/

func (ctl *InstrumentoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de instrumento inválido")
	}

	var row instrumentModel.InstrumentoModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "instrumento_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instrumento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar instrumento")
	}

	var req dto.UpdateInstrumentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Nome != nil {
		row.InstrumentoNome = strings.TrimSpace(*req.Nome)
	}
	if req.Categoria != nil {
		row.InstrumentoCategoria = *req.Categoria
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar instrumento")
	}
	return helper.JsonUpdated(c, "Instrumento atualizado", row)
}

/* ===============================
   DELETE
   DELETE /instrumentos/:id
   Bloqueado enquanto houver alunos ou programas referenciando.
=================================*/

func (ctl *InstrumentoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de instrumento inválido")
	}

	var emUso int64
	if err := ctl.DB.WithContext(c.Context()).Raw(`
		SELECT
			  (SELECT COUNT(*) FROM alunos WHERE aluno_instrumento_id = @id)
			+ (SELECT COUNT(*) FROM programas_minimos WHERE programa_minimo_instrumento_id = @id)
	`, map[string]interface{}{"id": id}).Scan(&emUso).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar uso do instrumento")
	}
	if emUso > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Instrumento em uso por alunos ou programas mínimos")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&instrumentModel.InstrumentoModel{}, "instrumento_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir instrumento")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Instrumento não encontrado")
	}
	return helper.JsonDeleted(c, "Instrumento excluído", fiber.Map{"instrumento_id": id})
}
