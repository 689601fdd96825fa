package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	instrumentModel "ggem_backend/internals/features/academy/instruments/model"
	dto "ggem_backend/internals/features/academy/students/dto"
	studentModel "ggem_backend/internals/features/academy/students/model"
	helper "ggem_backend/internals/helpers"
)

type AlunoController struct {
	DB *gorm.DB
}

func NewAlunoController(db *gorm.DB) *AlunoController {
	return &AlunoController{DB: db}
}

var validate = validator.New()

func (ctl *AlunoController) instrutorExiste(c *fiber.Ctx, id uuid.UUID) (bool, error) {
	var count int64
	err := ctl.DB.WithContext(c.Context()).
		Model(&instructorModel.InstrutorModel{}).
		Where("instrutor_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

/* ===============================
   LIST
   GET /alunos?instrutor_id=&instrumento_id=&nivel=&ativo=&page=
=================================*/

func (ctl *AlunoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&studentModel.AlunoModel{})
	if id := strings.TrimSpace(c.Query("instrutor_id")); id != "" {
		q = q.Where("aluno_instrutor_principal_id = ? OR aluno_instrutor_secundario_id = ?", id, id)
	}
	if id := strings.TrimSpace(c.Query("instrumento_id")); id != "" {
		q = q.Where("aluno_instrumento_id = ?", id)
	}
	if nivel := strings.TrimSpace(c.Query("nivel")); nivel != "" {
		q = q.Where("aluno_nivel = ?", nivel)
	}
	if ativo := strings.TrimSpace(c.Query("ativo")); ativo != "" {
		q = q.Where("aluno_ativo = ?", ativo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar alunos")
	}

	var rows []studentModel.AlunoModel
	if err := q.Preload("Instrumento").
		Order("aluno_nome ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ===============================
   DETAIL
   GET /alunos/:id
=================================*/

func (ctl *AlunoController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}
	var row studentModel.AlunoModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Instrumento").
		Preload("InstrutorPrincipal").
		First(&row, "aluno_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}
	return helper.JsonOK(c, "", row)
}

/* ===============================
   CREATE
   POST /alunos
=================================*/

func (ctl *AlunoController) Create(c *fiber.Ctx) error {
	var req dto.CreateAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// instrutor principal precisa existir
	if ok, err := ctl.instrutorExiste(c, req.InstrutorPrincipalID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar instrutor")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Instrutor principal não encontrado")
	}
	if req.InstrutorSecundarioID != nil {
		if ok, err := ctl.instrutorExiste(c, *req.InstrutorSecundarioID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar instrutor")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Instrutor secundário não encontrado")
		}
	}

	var instrumento instrumentModel.InstrumentoModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&instrumento, "instrumento_id = ?", req.InstrumentoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Instrumento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar instrumento")
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar aluno")
	}
	return helper.JsonCreated(c, "Aluno cadastrado", row)
}

/* ===============================
   UPDATE
   PUT /alunos/:id
=================================*/

func (ctl *AlunoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}
	var row studentModel.AlunoModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "aluno_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}

	var req dto.UpdateAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Nome != nil {
		updates["aluno_nome"] = strings.TrimSpace(*req.Nome)
	}
	if req.Telefone != nil {
		updates["aluno_telefone"] = req.Telefone
	}
	if req.InstrumentoID != nil {
		updates["aluno_instrumento_id"] = *req.InstrumentoID
	}
	if req.Nivel != nil {
		updates["aluno_nivel"] = *req.Nivel
	}
	if req.Congregacao != nil {
		updates["aluno_congregacao"] = strings.TrimSpace(*req.Congregacao)
	}
	if req.Ativo != nil {
		updates["aluno_ativo"] = *req.Ativo
	}
	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.Context()).
			Model(&row).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar aluno")
		}
	}
	return helper.JsonUpdated(c, "Aluno atualizado", row)
}

/* ===============================
   TRANSFERIR
   PUT /alunos/:id/transferir
   Move o aluno para outro instrutor (principal e/ou secundário).
=================================*/

func (ctl *AlunoController) Transferir(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}
	var row studentModel.AlunoModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "aluno_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}

	var req dto.TransferirAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.InstrutorPrincipalID == nil && req.InstrutorSecundarioID == nil && !req.RemoverSecundario {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe o instrutor de destino")
	}

	updates := map[string]interface{}{}
	if req.InstrutorPrincipalID != nil {
		if ok, err := ctl.instrutorExiste(c, *req.InstrutorPrincipalID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar instrutor")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Instrutor de destino não encontrado")
		}
		updates["aluno_instrutor_principal_id"] = *req.InstrutorPrincipalID
	}
	if req.RemoverSecundario {
		updates["aluno_instrutor_secundario_id"] = nil
	} else if req.InstrutorSecundarioID != nil {
		if ok, err := ctl.instrutorExiste(c, *req.InstrutorSecundarioID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar instrutor")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Instrutor de destino não encontrado")
		}
		updates["aluno_instrutor_secundario_id"] = *req.InstrutorSecundarioID
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&row).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao transferir aluno")
	}
	return helper.JsonUpdated(c, "Aluno transferido", row)
}

/* ===============================
   DELETE
   DELETE /alunos/:id
   Aluno nunca é apagado: o histórico de presenças/avaliações referencia
   a linha. A exclusão desativa.
=================================*/

func (ctl *AlunoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}
	res := ctl.DB.WithContext(c.Context()).
		Model(&studentModel.AlunoModel{}).
		Where("aluno_id = ?", id).
		Update("aluno_ativo", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao desativar aluno")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}
	return helper.JsonDeleted(c, "Aluno desativado", fiber.Map{"aluno_id": id})
}
