package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instrumentController "ggem_backend/internals/features/academy/instruments/controller"
)

func InstrumentoUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := instrumentController.NewInstrumentoController(db)
	instrumentos := r.Group("/instrumentos")
	instrumentos.Get("/", ctl.List)
}

func InstrumentoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := instrumentController.NewInstrumentoController(db)
	instrumentos := r.Group("/instrumentos")
	instrumentos.Get("/", ctl.List)
	instrumentos.Post("/", ctl.Create)
	instrumentos.Put("/:id", ctl.Update)
	instrumentos.Delete("/:id", ctl.Delete)
}
