package router

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/VinodVen/growthai/internal/controller"
	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/middleware"
	"github.com/VinodVen/growthai/internal/service"
	"github.com/VinodVen/growthai/internal/view"
)

type Dependencies struct {
	Session   *middleware.Session
	Accounts  *service.AccountService
	Campaigns *service.CampaignService
	Billing   *service.BillingService
	Contacts  *service.ContactService
	Admin     *service.AdminService
	// AccessLog turns on the request logger.
	AccessLog bool
}

func New(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        view.NewEngine(),
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}
	app.Use(deps.Session.LoadSession())

	setupRoutes(app, deps)
	return app
}

func setupRoutes(app *fiber.App, deps Dependencies) {
	auth := &controller.AuthController{Accounts: deps.Accounts, Session: deps.Session}
	dashboard := &controller.DashboardController{Campaigns: deps.Campaigns}
	subscriptions := &controller.SubscriptionController{Billing: deps.Billing, Dashboard: dashboard}
	contact := &controller.ContactController{Contacts: deps.Contacts}
	admin := &controller.AdminController{Admin: deps.Admin}

	// Public routes
	app.Get("/", controller.Landing)
	app.Get("/register", auth.ShowRegister)
	app.Post("/register", auth.Register)
	app.Get("/login", auth.ShowLogin)
	app.Post("/login", auth.Login)
	app.Get("/logout", auth.Logout)
	app.Get("/contact", contact.Show)
	app.Post("/contact", contact.Submit)

	// Business routes
	requireBusiness := middleware.RequireBusiness()
	app.Get("/dashboard", requireBusiness, dashboard.Show)
	app.Post("/dashboard", requireBusiness, dashboard.Submit)
	app.Get("/upgrade", requireBusiness, subscriptions.Upgrade)
	app.Get("/success", requireBusiness, subscriptions.Success)

	app.Get("/admin", middleware.RequireAdmin(), admin.Show)
}

// errorHandler answers in plain text.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).SendString(fiberErr.Message)
	}

	status := appErrors.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).SendString(appErrors.UserMessage(err))
}
