package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fichaService "ggem_backend/internals/features/academy/fichas/service"
	helper "ggem_backend/internals/helpers"
)

type FichaController struct {
	DB *gorm.DB
}

func NewFichaController(db *gorm.DB) *FichaController {
	return &FichaController{DB: db}
}

/* ===============================
   GET /fichas/aluno/:id
   ficha agregada (JSON)
=================================*/

func (ctl *FichaController) GetFichaAluno(c *fiber.Ctx) error {
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}

	ficha, err := fichaService.MontarFicha(c.Context(), ctl.DB, alunoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		log.Printf("[ERROR] Falha ao montar ficha do aluno %s: %v", alunoID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar ficha")
	}
	return helper.JsonOK(c, "", ficha)
}

/* ===============================
   GET /fichas/aluno/:id/pdf
   ficha em PDF
=================================*/

func (ctl *FichaController) GetFichaAlunoPDF(c *fiber.Ctx) error {
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}

	ficha, err := fichaService.MontarFicha(c.Context(), ctl.DB, alunoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		log.Printf("[ERROR] Falha ao montar ficha do aluno %s: %v", alunoID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar ficha")
	}

	pdfBytes, err := fichaService.GerarPDF(ficha)
	if err != nil {
		log.Printf("[ERROR] Falha ao gerar PDF da ficha do aluno %s: %v", alunoID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar PDF")
	}

	nome := strings.ReplaceAll(strings.ToLower(ficha.AlunoNome), " ", "_")
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="ficha_%s.pdf"`, nome))
	return c.Send(pdfBytes)
}
