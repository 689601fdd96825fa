package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ggem_backend/internals/features/academy/evaluations/dto"
	evaluationModel "ggem_backend/internals/features/academy/evaluations/model"
	instructorModel "ggem_backend/internals/features/academy/instructors/model"
	studentModel "ggem_backend/internals/features/academy/students/model"
	helper "ggem_backend/internals/helpers"
	helperAuth "ggem_backend/internals/helpers/auth"
)

type AvaliacaoController struct {
	DB *gorm.DB
}

func NewAvaliacaoController(db *gorm.DB) *AvaliacaoController {
	return &AvaliacaoController{DB: db}
}

var validate = validator.New()

func (ctl *AvaliacaoController) podeMexer(c *fiber.Ctx, av *evaluationModel.AvaliacaoModel) (bool, error) {
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
		First(&dono, "instrutor_id = ?", av.AvaliacaoInstrutorID).Error; err != nil {
		return false, err
	}
	return helperAuth.IsOwner(userID, dono.InstrutorUserID), nil
}

/* ===============================
   LIST
   GET /avaliacoes?aluno_id=&instrutor_id=&resultado=
=================================*/

func (ctl *AvaliacaoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&evaluationModel.AvaliacaoModel{})
	if id := strings.TrimSpace(c.Query("aluno_id")); id != "" {
		q = q.Where("avaliacao_aluno_id = ?", id)
	}
	if id := strings.TrimSpace(c.Query("instrutor_id")); id != "" {
		q = q.Where("avaliacao_instrutor_id = ?", id)
	}
	if res := strings.TrimSpace(c.Query("resultado")); res != "" {
		q = q.Where("avaliacao_resultado = ?", strings.ToLower(res))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar avaliações")
	}

	var rows []evaluationModel.AvaliacaoModel
	if err := q.Order("avaliacao_data DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar avaliações")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ===============================
   CREATE
   POST /avaliacoes
=================================*/

func (ctl *AvaliacaoController) Create(c *fiber.Ctx) error {
	var req dto.CreateAvaliacaoRequest
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
			return helper.JsonError(c, fiber.StatusForbidden, "Apenas instrutores podem lançar avaliações")
		}
	}

	var alunos int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&studentModel.AlunoModel{}).
		Where("aluno_id = ?", req.AlunoID).
		Count(&alunos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar aluno")
	}
	if alunos == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Aluno não encontrado")
	}

	av := req.ToModel(instrutorID)
	if err := ctl.DB.WithContext(c.Context()).Create(&av).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar avaliação")
	}
	return helper.JsonCreated(c, "Avaliação registrada", av)
}

/* ===============================
   UPDATE
   PUT /avaliacoes/:id (dono ou admin)
=================================*/

func (ctl *AvaliacaoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de avaliação inválido")
	}
	var av evaluationModel.AvaliacaoModel
	if err := ctl.DB.WithContext(c.Context()).First(&av, "avaliacao_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Avaliação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar avaliação")
	}

	ok, err := ctl.podeMexer(c, &av)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar permissão")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você só pode alterar as próprias avaliações")
	}

	var req dto.UpdateAvaliacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Conteudo != nil {
		updates["avaliacao_conteudo"] = strings.TrimSpace(*req.Conteudo)
	}
	if req.Resultado != nil {
		updates["avaliacao_resultado"] = *req.Resultado
	}
	if req.Data != nil {
		updates["avaliacao_data"] = *req.Data
	}
	if req.FaseID != nil {
		updates["avaliacao_fase_id"] = *req.FaseID
	}
	if req.Observacao != nil {
		updates["avaliacao_observacao"] = req.Observacao
	}
	if len(updates) > 0 {
		if err := ctl.DB.WithContext(c.Context()).Model(&av).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar avaliação")
		}
	}
	return helper.JsonUpdated(c, "Avaliação atualizada", av)
}

/* ===============================
   DELETE
   DELETE /avaliacoes/:id (dono ou admin)
=================================*/

func (ctl *AvaliacaoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de avaliação inválido")
	}
	var av evaluationModel.AvaliacaoModel
	if err := ctl.DB.WithContext(c.Context()).First(&av, "avaliacao_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Avaliação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar avaliação")
	}

	ok, err := ctl.podeMexer(c, &av)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar permissão")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Você só pode excluir as próprias avaliações")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&av).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir avaliação")
	}
	return helper.JsonDeleted(c, "Avaliação excluída", fiber.Map{"avaliacao_id": id})
}
