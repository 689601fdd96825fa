package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "ggem_backend/internals/features/academy/sessions/controller"
)

/*
Rotas de usuário: instrutor lança e gerencia as próprias aulas
(dono ou admin nos updates/deletes, checado no controller).
Mount: AulaUserRoutes(app.Group("/api/u"), db)
*/
func AulaUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sessionController.NewAulaController(db)
	aulas := r.Group("/aulas")
	aulas.Get("/", ctl.List)         // GET    /api/u/aulas
	aulas.Get("/:id", ctl.GetByID)   // GET    /api/u/aulas/:id
	aulas.Post("/", ctl.Create)      // POST   /api/u/aulas
	aulas.Put("/:id", ctl.Update)    // PUT    /api/u/aulas/:id
	aulas.Delete("/:id", ctl.Delete) // DELETE /api/u/aulas/:id
}
