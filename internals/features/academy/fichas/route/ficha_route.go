package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fichaController "ggem_backend/internals/features/academy/fichas/controller"
)

/*
Rotas de usuário: ficha de acompanhamento (JSON e PDF).
Mount: FichaUserRoutes(app.Group("/api/u"), db)
*/
func FichaUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := fichaController.NewFichaController(db)
	fichas := r.Group("/fichas")
	fichas.Get("/aluno/:id", ctl.GetFichaAluno)        // GET /api/u/fichas/aluno/:id
	fichas.Get("/aluno/:id/pdf", ctl.GetFichaAlunoPDF) // GET /api/u/fichas/aluno/:id/pdf
}
