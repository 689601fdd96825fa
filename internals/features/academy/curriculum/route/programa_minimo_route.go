package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	curriculumController "ggem_backend/internals/features/academy/curriculum/controller"
)

// Leitura: qualquer usuário autenticado.
func ProgramaMinimoUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := curriculumController.NewProgramaMinimoController(db)
	programas := r.Group("/programas-minimos")
	programas.Get("/", ctl.List) // GET /api/u/programas-minimos
}

// Admin: reconciliação completa do catálogo.
func ProgramaMinimoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := curriculumController.NewProgramaMinimoController(db)
	programas := r.Group("/programas-minimos")
	programas.Get("/", ctl.List)      // GET  /api/a/programas-minimos
	programas.Post("/seed", ctl.Seed) // POST /api/a/programas-minimos/seed
}
