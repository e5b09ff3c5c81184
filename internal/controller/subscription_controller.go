package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VinodVen/growthai/internal/middleware"
	"github.com/VinodVen/growthai/internal/service"
)

type SubscriptionController struct {
	Billing   *service.BillingService
	Dashboard *DashboardController
}

// Upgrade sends free businesses to the hosted checkout page.
func (h *SubscriptionController) Upgrade(c *fiber.Ctx) error {
	business := middleware.CurrentBusiness(c)
	if business.IsPro() {
		return c.Redirect("/dashboard")
	}

	url, err := h.Billing.StartUpgrade(c.UserContext(), business)
	if err != nil {
		return h.Dashboard.renderError(c, err, fiber.Map{})
	}
	return c.Redirect(url, fiber.StatusSeeOther)
}

// Success is the checkout return URL.
func (h *SubscriptionController) Success(c *fiber.Ctx) error {
	business := middleware.CurrentBusiness(c)

	if err := h.Billing.CompleteUpgrade(c.UserContext(), business, c.Query("session_id")); err != nil {
		return h.Dashboard.renderError(c, err, fiber.Map{})
	}
	return h.Dashboard.render(c, fiber.StatusOK, fiber.Map{"Success": "Your account is now on the Pro plan."})
}
