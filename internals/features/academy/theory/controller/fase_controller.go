package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ggem_backend/internals/features/academy/theory/dto"
	theoryModel "ggem_backend/internals/features/academy/theory/model"
	helper "ggem_backend/internals/helpers"
)

type FaseController struct {
	DB *gorm.DB
}

func NewFaseController(db *gorm.DB) *FaseController {
	return &FaseController{DB: db}
}

var validate = validator.New()

/* ===============================
   LIST
   GET /fases
=================================*/

func (ctl *FaseController) List(c *fiber.Ctx) error {
	var fases []theoryModel.FaseTeoricaModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Conteudos", func(db *gorm.DB) *gorm.DB {
			return db.Order("conteudo_ordem ASC")
		}).
		Order("fase_numero ASC").
		Find(&fases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar fases teóricas")
	}
	return helper.JsonOK(c, "", fases)
}

/* ===============================
   GET BY ID
   GET /fases/:id
=================================*/

func (ctl *FaseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de fase inválido")
	}
	var fase theoryModel.FaseTeoricaModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Conteudos", func(db *gorm.DB) *gorm.DB {
			return db.Order("conteudo_ordem ASC")
		}).
		First(&fase, "fase_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fase não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar fase")
	}
	return helper.JsonOK(c, "", fase)
}

/* ===============================
   CREATE
   POST /fases (admin)
=================================*/

func (ctl *FaseController) Create(c *fiber.Ctx) error {
	var req dto.CreateFaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&theoryModel.FaseTeoricaModel{}).
		Where("fase_numero = ?", req.Numero).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar fase")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Já existe uma fase com esse número")
	}

	fase := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&fase).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar fase")
	}
	return helper.JsonCreated(c, "Fase criada", fase)
}

/* ===============================
   UPDATE
   PUT /fases/:id (admin)
   Conteúdos, quando enviados, substituem a lista inteira.
=================================*/

func (ctl *FaseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de fase inválido")
	}
	var fase theoryModel.FaseTeoricaModel
	if err := ctl.DB.WithContext(c.Context()).First(&fase, "fase_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fase não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar fase")
	}

	var req dto.UpdateFaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Numero != nil && *req.Numero != fase.FaseNumero {
		var count int64
		if err := ctl.DB.WithContext(c.Context()).
			Model(&theoryModel.FaseTeoricaModel{}).
			Where("fase_numero = ? AND fase_id <> ?", *req.Numero, fase.FaseID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar fase")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Já existe uma fase com esse número")
		}
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Numero != nil {
			updates["fase_numero"] = *req.Numero
		}
		if req.Nome != nil {
			updates["fase_nome"] = strings.TrimSpace(*req.Nome)
		}
		if len(updates) > 0 {
			if err := tx.Model(&fase).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Conteudos != nil {
			if err := tx.Where("conteudo_fase_id = ?", fase.FaseID).
				Delete(&theoryModel.ConteudoFaseModel{}).Error; err != nil {
				return err
			}
			for i, conteudo := range *req.Conteudos {
				novo := theoryModel.ConteudoFaseModel{
					ConteudoFaseID:    fase.FaseID,
					ConteudoDescricao: strings.TrimSpace(conteudo.Descricao),
					ConteudoOrdem:     i + 1,
				}
				if err := tx.Create(&novo).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar fase")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Preload("Conteudos", func(db *gorm.DB) *gorm.DB {
			return db.Order("conteudo_ordem ASC")
		}).
		First(&fase, "fase_id = ?", fase.FaseID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar fase")
	}
	return helper.JsonUpdated(c, "Fase atualizada", fase)
}

/* ===============================
   DELETE
   DELETE /fases/:id (admin)
=================================*/

func (ctl *FaseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de fase inválido")
	}
	var fase theoryModel.FaseTeoricaModel
	if err := ctl.DB.WithContext(c.Context()).First(&fase, "fase_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fase não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar fase")
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conteudo_fase_id = ?", fase.FaseID).
			Delete(&theoryModel.ConteudoFaseModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&fase).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir fase")
	}
	return helper.JsonDeleted(c, "Fase excluída", fiber.Map{"fase_id": id})
}
