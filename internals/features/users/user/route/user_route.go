package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "ggem_backend/internals/features/users/user/controller"
)

/*
Rotas admin: consulta de usuários.
Mount: UserAdminRoutes(app.Group("/api/a"), db)
*/
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)
	users := r.Group("/users")
	users.Get("/", ctl.List)       // GET /api/a/users
	users.Get("/:id", ctl.GetByID) // GET /api/a/users/:id
}
