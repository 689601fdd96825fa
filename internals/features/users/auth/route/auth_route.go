package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "ggem_backend/internals/features/users/auth/controller"
	"ggem_backend/internals/middlewares"
)

/*
Rotas públicas: login e refresh (com rate limit próprio).
Mount: AuthPublicRoutes(app.Group("/api"), db)
*/
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login) // POST /api/auth/login
	auth.Post("/refresh", ctl.Refresh)                             // POST /api/auth/refresh
}

/*
Rotas de usuário autenticado.
Mount: AuthUserRoutes(app.Group("/api/u"), db)
*/
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	auth := r.Group("/auth")
	auth.Post("/logout", ctl.Logout) // POST /api/u/auth/logout
}

/*
Rotas admin: cadastro de instrutores (user + instrutor).
Mount: AuthAdminRoutes(app.Group("/api/a"), db)
*/
func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register) // POST /api/a/auth/register
}
