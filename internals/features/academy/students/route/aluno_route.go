package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "ggem_backend/internals/features/academy/students/controller"
)

// Leitura para instrutores autenticados.
func AlunoUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewAlunoController(db)
	alunos := r.Group("/alunos")
	alunos.Get("/", ctl.List)
	alunos.Get("/:id", ctl.GetByID)
}

// Gestão completa (admin/encarregado).
func AlunoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewAlunoController(db)
	alunos := r.Group("/alunos")
	alunos.Get("/", ctl.List)
	alunos.Get("/:id", ctl.GetByID)
	alunos.Post("/", ctl.Create)
	alunos.Put("/:id", ctl.Update)
	alunos.Put("/:id/transferir", ctl.Transferir)
	alunos.Delete("/:id", ctl.Delete)
}
