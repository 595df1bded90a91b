package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/http/handlers"
	"github.com/senbim-immo/admin-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Listings       *handlers.ListingsHandler
	Moderation     *handlers.ModerationHandler
	Messaging      *handlers.MessagingHandler
	Support        *handlers.SupportHandler
	Users          *handlers.UsersHandler
	Monetization   *handlers.MonetizationHandler
	Settings       *handlers.SettingsHandler
	Agents         *handlers.AgentsHandler
	Contacts       *handlers.ContactsHandler
	Stats          *handlers.StatsHandler
	Uploads        *handlers.UploadsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Everything except health probes and
// login sits behind authentication plus the admin role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	admin := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())

	admin.Post("/auth/logout", cfg.Auth.Logout)
	admin.Get("/auth/me", cfg.Auth.Me)
	admin.Put("/profile", cfg.Users.UpdateProfile)

	listings := admin.Group("/listings")
	listings.Get("/", cfg.Listings.List)
	listings.Get("/counts", cfg.Listings.Counts)
	listings.Post("/", cfg.Listings.Create)
	listings.Get("/:id", cfg.Listings.Get)
	listings.Put("/:id", cfg.Listings.Update)
	listings.Delete("/:id", cfg.Listings.Delete)
	listings.Post("/:id/validate", cfg.Listings.Validate)
	listings.Post("/:id/reject", cfg.Listings.Reject)
	listings.Post("/:id/hide", cfg.Listings.Hide)
	listings.Post("/:id/reserve", cfg.Listings.Reserve)
	listings.Post("/:id/sell", cfg.Listings.Sell)
	listings.Post("/:id/expire", cfg.Listings.Expire)

	reports := admin.Group("/reports")
	reports.Get("/", cfg.Moderation.List)
	reports.Get("/counts", cfg.Moderation.Counts)
	reports.Get("/:id", cfg.Moderation.Review)
	reports.Post("/:id/in-progress", cfg.Moderation.MarkInProgress)
	reports.Post("/:id/resolve", cfg.Moderation.Resolve)
	reports.Post("/:id/reject-listing", cfg.Moderation.RejectListing)
	reports.Post("/:id/delete-listing", cfg.Moderation.DeleteListing)
	reports.Post("/:id/suspend-user", cfg.Moderation.SuspendUser)
	reports.Post("/:id/delete-user", cfg.Moderation.DeleteUser)

	conversations := admin.Group("/conversations")
	conversations.Get("/", cfg.Messaging.List)
	conversations.Get("/counts", cfg.Messaging.Counts)
	conversations.Get("/:id/messages", cfg.Messaging.Messages)
	conversations.Post("/:id/block", cfg.Messaging.Block)
	conversations.Post("/:id/suspend-participant", cfg.Messaging.SuspendParticipant)

	tickets := admin.Group("/tickets")
	tickets.Get("/", cfg.Support.List)
	tickets.Get("/:id", cfg.Support.Get)
	tickets.Post("/:id/reply", cfg.Support.Reply)
	tickets.Patch("/:id/status", cfg.Support.UpdateStatus)
	tickets.Post("/:id/close", cfg.Support.Close)

	users := admin.Group("/users")
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Post("/:id/toggle-suspension", cfg.Users.ToggleSuspension)
	users.Delete("/:id", cfg.Users.Delete)

	monetization := admin.Group("/monetization")
	monetization.Get("/price-rules", cfg.Monetization.ListPriceRules)
	monetization.Post("/price-rules", cfg.Monetization.CreatePriceRule)
	monetization.Put("/price-rules/:id", cfg.Monetization.UpdatePriceRule)
	monetization.Post("/price-rules/:id/toggle", cfg.Monetization.TogglePriceRule)
	monetization.Delete("/price-rules/:id", cfg.Monetization.DeletePriceRule)
	monetization.Get("/packages", cfg.Monetization.ListPackages)
	monetization.Post("/packages", cfg.Monetization.CreatePackage)
	monetization.Put("/packages/:id", cfg.Monetization.UpdatePackage)
	monetization.Post("/packages/:id/toggle", cfg.Monetization.TogglePackage)
	monetization.Delete("/packages/:id", cfg.Monetization.DeletePackage)
	monetization.Get("/coupons", cfg.Monetization.ListCoupons)
	monetization.Post("/coupons", cfg.Monetization.CreateCoupon)
	monetization.Put("/coupons/:id", cfg.Monetization.UpdateCoupon)
	monetization.Post("/coupons/:id/toggle", cfg.Monetization.ToggleCoupon)
	monetization.Delete("/coupons/:id", cfg.Monetization.DeleteCoupon)
	monetization.Get("/payments", cfg.Monetization.ListPayments)
	monetization.Get("/revenue", cfg.Monetization.Revenue)

	settings := admin.Group("/settings")
	settings.Get("/categories", cfg.Settings.ListCategories)
	settings.Post("/categories", cfg.Settings.CreateCategory)
	settings.Patch("/categories/:id", cfg.Settings.RenameCategory)
	settings.Delete("/categories/:id", cfg.Settings.DeleteCategory)
	settings.Get("/locations", cfg.Settings.ListLocations)
	settings.Post("/locations", cfg.Settings.CreateLocation)
	settings.Patch("/locations/:id", cfg.Settings.RenameLocation)
	settings.Delete("/locations/:id", cfg.Settings.DeleteLocation)
	settings.Get("/configurations", cfg.Settings.ListConfigurations)
	settings.Put("/configurations", cfg.Settings.SetConfiguration)

	agents := admin.Group("/agents")
	agents.Get("/", cfg.Agents.List)
	agents.Post("/", cfg.Agents.Create)
	agents.Put("/:id", cfg.Agents.Update)
	agents.Delete("/:id", cfg.Agents.Delete)

	contacts := admin.Group("/contact-messages")
	contacts.Get("/", cfg.Contacts.List)
	contacts.Get("/:id", cfg.Contacts.Get)
	contacts.Post("/:id/reply", cfg.Contacts.Reply)
	contacts.Delete("/:id", cfg.Contacts.Delete)

	stats := admin.Group("/stats")
	stats.Get("/dashboard", cfg.Stats.Dashboard)
	stats.Get("/metrics", cfg.Stats.Metrics)

	admin.Post("/uploads", cfg.Uploads.Upload)
}
