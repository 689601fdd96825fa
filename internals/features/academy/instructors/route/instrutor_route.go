package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorController "ggem_backend/internals/features/academy/instructors/controller"
)

/*
Rotas admin: gestão completa de instrutores.
Mount: InstrutorAdminRoutes(app.Group("/api/a"), db)
*/
func InstrutorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := instructorController.NewInstrutorController(db)
	instrutores := r.Group("/instrutores")
	instrutores.Get("/", ctl.List)         // GET    /api/a/instrutores
	instrutores.Get("/:id", ctl.GetByID)   // GET    /api/a/instrutores/:id
	instrutores.Put("/:id", ctl.Update)    // PUT    /api/a/instrutores/:id
	instrutores.Delete("/:id", ctl.Delete) // DELETE /api/a/instrutores/:id
}
