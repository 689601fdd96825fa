package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ggem_backend/internals/constants"
	middlewareAuth "ggem_backend/internals/middlewares/auth"

	curriculumRoute "ggem_backend/internals/features/academy/curriculum/route"
	evaluationRoute "ggem_backend/internals/features/academy/evaluations/route"
	fichaRoute "ggem_backend/internals/features/academy/fichas/route"
	instructorRoute "ggem_backend/internals/features/academy/instructors/route"
	instrumentRoute "ggem_backend/internals/features/academy/instruments/route"
	sessionRoute "ggem_backend/internals/features/academy/sessions/route"
	studentRoute "ggem_backend/internals/features/academy/students/route"
	theoryRoute "ggem_backend/internals/features/academy/theory/route"
	authRoute "ggem_backend/internals/features/users/auth/route"
	userRoute "ggem_backend/internals/features/users/user/route"
)

/*
SetupRoutes monta as três camadas de acesso:

	/api    público (login, refresh, health)
	/api/u  autenticado (instrutores e acima)
	/api/a  admin-equivalente (secretários e encarregado)
*/
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRoute.AuthPublicRoutes(api, db)

	// autenticado
	user := app.Group("/api/u", middlewareAuth.AuthMiddleware(db))
	authRoute.AuthUserRoutes(user, db)
	instrumentRoute.InstrumentoUserRoutes(user, db)
	studentRoute.AlunoUserRoutes(user, db)
	sessionRoute.AulaUserRoutes(user, db)
	evaluationRoute.AvaliacaoUserRoutes(user, db)
	theoryRoute.FaseUserRoutes(user, db)
	fichaRoute.FichaUserRoutes(user, db)
	curriculumRoute.ProgramaMinimoUserRoutes(user, db)

	// admin-equivalente (secretário ou encarregado)
	admin := app.Group("/api/a",
		middlewareAuth.AuthMiddleware(db),
		middlewareAuth.OnlyRoles(
			"Acesso restrito à secretaria",
			constants.AdminAndAbove...,
		),
	)
	authRoute.AuthAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	instructorRoute.InstrutorAdminRoutes(admin, db)
	instrumentRoute.InstrumentoAdminRoutes(admin, db)
	studentRoute.AlunoAdminRoutes(admin, db)
	theoryRoute.FaseAdminRoutes(admin, db)
	curriculumRoute.ProgramaMinimoAdminRoutes(admin, db)
}
