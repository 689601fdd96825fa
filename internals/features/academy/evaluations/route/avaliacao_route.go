package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluationController "ggem_backend/internals/features/academy/evaluations/controller"
)

/*
Rotas de usuário: instrutor registra e gerencia as próprias avaliações
(dono ou admin nos updates/deletes, checado no controller).
Mount: AvaliacaoUserRoutes(app.Group("/api/u"), db)
*/
func AvaliacaoUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evaluationController.NewAvaliacaoController(db)
	avaliacoes := r.Group("/avaliacoes")
	avaliacoes.Get("/", ctl.List)         // GET    /api/u/avaliacoes
	avaliacoes.Post("/", ctl.Create)      // POST   /api/u/avaliacoes
	avaliacoes.Put("/:id", ctl.Update)    // PUT    /api/u/avaliacoes/:id
	avaliacoes.Delete("/:id", ctl.Delete) // DELETE /api/u/avaliacoes/:id
}
