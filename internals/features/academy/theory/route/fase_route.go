package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	theoryController "ggem_backend/internals/features/academy/theory/controller"
)

/*
Rotas de usuário: leitura das fases teóricas (MTS).
Mount: FaseUserRoutes(app.Group("/api/u"), db)
*/
func FaseUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := theoryController.NewFaseController(db)
	fases := r.Group("/fases")
	fases.Get("/", ctl.List)       // GET /api/u/fases
	fases.Get("/:id", ctl.GetByID) // GET /api/u/fases/:id
}

/*
Rotas admin: gestão das fases e conteúdos.
Mount: FaseAdminRoutes(app.Group("/api/a"), db)
*/
func FaseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := theoryController.NewFaseController(db)
	fases := r.Group("/fases")
	fases.Post("/", ctl.Create)      // POST   /api/a/fases
	fases.Put("/:id", ctl.Update)    // PUT    /api/a/fases/:id
	fases.Delete("/:id", ctl.Delete) // DELETE /api/a/fases/:id
}
