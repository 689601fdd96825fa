package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculumModel "ggem_backend/internals/features/academy/curriculum/model"
	"ggem_backend/internals/features/academy/curriculum/service"
	helper "ggem_backend/internals/helpers"
)

type ProgramaMinimoController struct {
	DB *gorm.DB
}

func NewProgramaMinimoController(db *gorm.DB) *ProgramaMinimoController {
	return &ProgramaMinimoController{DB: db}
}

/* ===============================
   LIST
   GET /api/u/programas-minimos?instrumento_id=&nivel=
=================================*/

func (ctl *ProgramaMinimoController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).
		Model(&curriculumModel.ProgramaMinimoModel{}).
		Preload("Instrumento").
		Preload("Itens", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_programa_ordem ASC")
		})

	if id := strings.TrimSpace(c.Query("instrumento_id")); id != "" {
		q = q.Where("programa_minimo_instrumento_id = ?", id)
	}
	if nivel := strings.TrimSpace(c.Query("nivel")); nivel != "" {
		q = q.Where("programa_minimo_nivel = ?", nivel)
	}

	var rows []curriculumModel.ProgramaMinimoModel
	if err := q.Order("programa_minimo_nivel ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar programas mínimos")
	}
	return helper.JsonOK(c, "", rows)
}

/* ===============================
   SEED (reconciliação completa)
   POST /api/a/programas-minimos/seed
   Apaga e recria todos os programas a partir do catálogo.
=================================*/

func (ctl *ProgramaMinimoController) Seed(c *fiber.Ctx) error {
	criados, err := service.SeedProgramasMinimosCompleto(c.Context(), ctl.DB)
	if err != nil {
		log.Println("[ERROR] seed programas mínimos:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recriar os programas mínimos")
	}
	return helper.JsonOK(c, "Programas mínimos recriados", fiber.Map{"criados": criados})
}
