package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	dto "ggem_backend/internals/features/academy/sessions/dto"
	sessionModel "ggem_backend/internals/features/academy/sessions/model"
	helper "ggem_backend/internals/helpers"
	helperAuth "ggem_backend/internals/helpers/auth"
)

type AulaController struct {
	DB *gorm.DB
}

func NewAulaController(db *gorm.DB) *AulaController {
	return &AulaController{DB: db}
}

var validate = validator.New()

// podeMexer: admin-equivalente ou dono da aula.
func (ctl *AulaController) podeMexer(c *fiber.Ctx, aula *sessionModel.AulaColetivaModel) (bool, error) {
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return false, err
	}
	if helperAuth.IsAdminEquivalent(role) {
		return true, nil
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return false, err
	}
	var dono instructorModel.InstrutorModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&dono, "instrutor_id = ?", aula.AulaInstrutorID).Error; err != nil {
		return false, err
	}
	return helperAuth.IsOwner(userID, dono.InstrutorUserID), nil
}

/* ===============================
   LIST
   GET /aulas?instrutor_id=&congregacao=&page=
=================================*/

func (ctl *AulaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&sessionModel.AulaColetivaModel{})
	if id := strings.TrimSpace(c.Query("instrutor_id")); id != "" {
		q = q.Where("aula_instrutor_id = ?", id)
	}
	if cong := strings.TrimSpace(c.Query("congregacao")); cong != "" {
		q = q.Where("LOWER(aula_congregacao) = LOWER(?)", cong)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar aulas")
	}

	var rows []sessionModel.AulaColetivaModel
	if err := q.Preload("Presencas").
		Order("aula_data DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar aulas")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ===============================
   GET BY ID
   GET /aulas/:id
=================================*/

func (ctl *AulaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aula inválido")
	}
	var aula sessionModel.AulaColetivaModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Presencas").Preload("Presencas.Aluno").Preload("Instrutor").
		First(&aula, "aula_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aula não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aula")
	}
	return helper.JsonOK(c, "", aula)
}

/* ===============================
   CREATE
   POST /aulas
   Instrutor lança a própria aula; admin pode lançar por qualquer um.
=================================*/

func (ctl *AulaController) Create(c *fiber.Ctx) error {
	var req dto.CreateAulaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var instrutorID uuid.UUID
	if req.InstrutorID != nil && helperAuth.IsAdminEquivalent(role) {
		instrutorID = *req.InstrutorID
	} else {
		instrutorID, err = helperAuth.GetInstrutorIDFromToken(c)
		if err != nil {
			return err
		}
		if instrutorID == uuid.Nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Apenas instrutores podem lançar aulas")
		}
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&instructorModel.InstrutorModel{}).
		Where("instrutor_id = ?", instrutorID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar instrutor")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Instrutor não encontrado")
	}

	aula := req.ToModel(instrutorID)
	if err := ctl.DB.WithContext(c.Context()).Create(&aula).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar aula")
	}
	return helper.JsonCreated(c, "Aula registrada", aula)
}

/* ===============================
   UPDATE
   PUT /aulas/:id (dono ou admin)
=================================*/

func (ctl *AulaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aula inválido")
	}
	var aula sessionModel.AulaColetivaModel
	if err := ctl.DB.WithContext(c.Context()).First(&aula, "aula_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aula não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aula")
	}

	ok, err := ctl.podeMexer(c, &aula)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar permissão")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você só pode alterar as próprias aulas")
	}

	var req dto.UpdateAulaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Data != nil {
		updates["aula_data"] = *req.Data
	}
	if req.Congregacao != nil {
		updates["aula_congregacao"] = strings.TrimSpace(*req.Congregacao)
	}
	if req.FaseID != nil {
		updates["aula_fase_id"] = *req.FaseID
	}
	if req.Observacao != nil {
		updates["aula_observacao"] = req.Observacao
	}
	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.Context()).Model(&aula).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar aula")
		}
	}
	return helper.JsonUpdated(c, "Aula atualizada", aula)
}

/* ===============================
   DELETE
   DELETE /aulas/:id (dono ou admin)
=================================*/

func (ctl *AulaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aula inválido")
	}
	var aula sessionModel.AulaColetivaModel
	if err := ctl.DB.WithContext(c.Context()).First(&aula, "aula_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aula não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aula")
	}

	ok, err := ctl.podeMexer(c, &aula)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar permissão")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você só pode excluir as próprias aulas")
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("presenca_aula_id = ?", aula.AulaID).
			Delete(&sessionModel.PresencaModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&aula).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir aula")
	}
	return helper.JsonDeleted(c, "Aula excluída", fiber.Map{"aula_id": id})
}
