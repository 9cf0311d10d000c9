package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/http/handlers"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Submissions *handlers.SubmissionsHandler
	Users       *handlers.UsersHandler
	Partners    *handlers.PartnersHandler
	Categories  *handlers.CategoriesHandler
	Services    *handlers.ServicesHandler
	Admin       *handlers.AdminHandler
	AdminGuard  *auth.AdminGuard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	// Auth.
	users := api.Group("/users")
	users.Post("/register", cfg.Auth.Register)
	users.Post("/login", cfg.Auth.Login)
	users.Post("/admin/login", cfg.Auth.AdminLogin)
	users.Get("/admin/verify", cfg.AdminGuard.Handle, cfg.Auth.Verify)
	users.Post("/admin/logout", cfg.Auth.Logout)

	// Public site.
	api.Get("/partners", cfg.Partners.ListApproved)
	api.Get("/partners/:id", cfg.Partners.GetPublic)
	api.Get("/services", cfg.Services.ListPublic)
	api.Get("/services/category-type/:id", cfg.Services.ListPublicByCategoryType)
	api.Get("/services/category/:category/priority/:priority", cfg.Services.ListPublicByCategoryAndPriority)
	api.Get("/services/category/:category", cfg.Services.ListPublicByCategory)
	api.Get("/services/priority/:priority", cfg.Services.ListPublicByPriority)
	api.Post("/submissions", cfg.Submissions.CreatePublic)

	// Back office. Registration is deliberately outside the guard so the
	// first admin account can be created.
	admin := api.Group("/admin")
	admin.Post("/register", cfg.Auth.RegisterAdmin)

	guarded := admin.Group("", cfg.AdminGuard.Handle)
	guarded.Get("/", cfg.Submissions.Dashboard)
	guarded.Get("/dashboard", cfg.Submissions.Dashboard)

	guarded.Get("/submissions", cfg.Submissions.List)
	guarded.Get("/submissions/demo", cfg.Submissions.ListDemo)
	guarded.Get("/submissions/contact", cfg.Submissions.ListContact)
	guarded.Get("/submissions/get-in-touch", cfg.Submissions.ListGetInTouch)
	guarded.Get("/submission/:id", cfg.Submissions.Get)
	guarded.Put("/submission/:id/status", cfg.Submissions.UpdateStatus)
	guarded.Delete("/submission/:id", cfg.Submissions.Delete)
	guarded.Post("/bulk/delete-submissions", cfg.Submissions.BulkDelete)
	guarded.Post("/bulk/update-status", cfg.Submissions.BulkUpdateStatus)

	guarded.Get("/users", cfg.Users.List)
	guarded.Get("/users/:id", cfg.Users.Get)
	guarded.Put("/users/:id", cfg.Users.Update)
	guarded.Delete("/users/:id", cfg.Users.Delete)

	guarded.Get("/analytics", cfg.Admin.Analytics)
	guarded.Get("/stats", cfg.Admin.Stats)
	guarded.Get("/api/stats", cfg.Admin.Stats)
	guarded.Get("/settings", cfg.Admin.GetSettings)
	guarded.Put("/settings", cfg.Admin.UpdateSettings)

	guarded.Get("/export/submissions", cfg.Submissions.Export)
	guarded.Get("/export/users", cfg.Users.Export)
	guarded.Get("/export/partners", cfg.Partners.Export)

	guarded.Get("/categories", cfg.Categories.List)
	guarded.Post("/categories", cfg.Categories.Create)
	guarded.Put("/categories/:id", cfg.Categories.Update)
	guarded.Delete("/categories/:id", cfg.Categories.Delete)
	guarded.Get("/categories/:categoryId/types", cfg.Categories.ListTypes)
	guarded.Post("/categories/:categoryId/types", cfg.Categories.CreateType)
	guarded.Put("/category-types/:id", cfg.Categories.UpdateType)
	guarded.Delete("/category-types/:id", cfg.Categories.DeleteType)

	guarded.Get("/partners", cfg.Partners.List)
	guarded.Get("/partners/:id", cfg.Partners.Get)
	guarded.Post("/partners", cfg.Partners.Create)
	guarded.Put("/partners/:id", cfg.Partners.Update)
	guarded.Delete("/partners/:id", cfg.Partners.Delete)
	guarded.Put("/partners/:id/status", cfg.Partners.UpdateStatus)
	guarded.Post("/partners/bulk/delete", cfg.Partners.BulkDelete)
	guarded.Post("/partners/bulk/update-status", cfg.Partners.BulkUpdateStatus)

	guarded.Get("/services", cfg.Services.List)
	guarded.Get("/services/category-type/:id", cfg.Services.ListByCategoryType)
	guarded.Get("/services/:id", cfg.Services.Get)
	guarded.Post("/services", cfg.Services.Create)
	guarded.Put("/services/:id", cfg.Services.Update)
	guarded.Delete("/services/:id", cfg.Services.Delete)
	guarded.Put("/services/:id/status", cfg.Services.UpdateStatus)
}
