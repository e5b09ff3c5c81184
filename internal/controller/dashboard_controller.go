package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/middleware"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/service"
)

type CampaignInput struct {
	FirstName     string `form:"first_name"`
	LastName      string `form:"last_name"`
	CustomerEmail string `form:"customer_email"`
	Phone         string `form:"phone"`
	DateOfBirth   string `form:"date_of_birth"`
	CampaignType  string `form:"campaign_type"`
}

type SendInput struct {
	CampaignID string `form:"campaign_id"`
	Recipient  string `form:"recipient"`
}

type DashboardController struct {
	Campaigns *service.CampaignService
}

func (h *DashboardController) Show(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, fiber.Map{})
}

// Submit dispatches on the button that posted the form.
func (h *DashboardController) Submit(c *fiber.Ctx) error {
	switch {
	case c.FormValue("generate_campaign") != "":
		return h.generate(c)
	case c.FormValue("send_email") != "":
		return h.send(c)
	default:
		return c.Redirect("/dashboard")
	}
}

func (h *DashboardController) generate(c *fiber.Ctx) error {
	business := middleware.CurrentBusiness(c)

	input := new(CampaignInput)
	if err := c.BodyParser(input); err != nil {
		return h.renderError(c, appErrors.Validation("Invalid input"), fiber.Map{})
	}

	campaign, err := h.Campaigns.Generate(c.UserContext(), business, service.GenerateInput{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		CustomerEmail: input.CustomerEmail,
		Phone:         input.Phone,
		DateOfBirth:   input.DateOfBirth,
		CampaignType:  input.CampaignType,
	})
	if err != nil {
		return h.renderError(c, err, fiber.Map{"Form": *input})
	}

	return h.render(c, fiber.StatusOK, fiber.Map{
		"Generated": campaign,
		"Success":   "Campaign generated for " + campaign.CustomerName,
	})
}

func (h *DashboardController) send(c *fiber.Ctx) error {
	business := middleware.CurrentBusiness(c)

	input := new(SendInput)
	if err := c.BodyParser(input); err != nil {
		return h.renderError(c, appErrors.Validation("Invalid input"), fiber.Map{})
	}
	id, err := strconv.ParseUint(input.CampaignID, 10, 64)
	if err != nil || id == 0 {
		return h.renderError(c, appErrors.Validation("Choose a campaign to send"), fiber.Map{})
	}

	campaign, err := h.Campaigns.SendPromotion(c.UserContext(), business, uint(id), input.Recipient)
	if err != nil {
		return h.renderError(c, err, fiber.Map{})
	}

	to := input.Recipient
	if to == "" {
		to = campaign.CustomerEmail
	}
	return h.render(c, fiber.StatusOK, fiber.Map{"Success": "Email sent to " + to})
}

func (h *DashboardController) render(c *fiber.Ctx, status int, data fiber.Map) error {
	business := middleware.CurrentBusiness(c)

	dashboard, err := h.Campaigns.Dashboard(c.UserContext(), business)
	if err != nil {
		return err
	}

	data["Title"] = "Dashboard"
	data["Plan"] = business.PlanDetails()
	data["Campaigns"] = dashboard.Campaigns
	data["Total"] = dashboard.Total
	data["Customers"] = dashboard.Customers
	data["RecentCustomers"] = dashboard.RecentCustomers
	if _, ok := data["Form"]; !ok {
		data["Form"] = CampaignInput{}
	}
	if _, ok := data["Generated"]; !ok {
		data["Generated"] = (*model.Campaign)(nil)
	}
	return render(c, status, "dashboard", data)
}

func (h *DashboardController) renderError(c *fiber.Ctx, err error, data fiber.Map) error {
	if appErrors.KindOf(err) == appErrors.KindInternal {
		return err
	}
	data["Error"] = appErrors.UserMessage(err)
	return h.render(c, appErrors.HTTPStatus(err), data)
}
