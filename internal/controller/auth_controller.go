package controller

import (
	"github.com/gofiber/fiber/v2"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/middleware"
	"github.com/VinodVen/growthai/internal/service"
)

type RegisterInput struct {
	BusinessName string `form:"business_name"`
	OwnerName    string `form:"owner_name"`
	Email        string `form:"email"`
	Password     string `form:"password"`
}

type LoginInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type AuthController struct {
	Accounts *service.AccountService
	Session  *middleware.Session
}

func (h *AuthController) ShowRegister(c *fiber.Ctx) error {
	if middleware.CurrentBusiness(c) != nil {
		return c.Redirect("/dashboard")
	}
	return render(c, fiber.StatusOK, "register", fiber.Map{"Title": "Register", "Form": RegisterInput{}})
}

func (h *AuthController) Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return renderError(c, "register", appErrors.Validation("Invalid input"), fiber.Map{"Form": RegisterInput{}})
	}
	data := fiber.Map{"Title": "Register", "Form": RegisterInput{
		BusinessName: input.BusinessName,
		OwnerName:    input.OwnerName,
		Email:        input.Email,
	}}

	business, err := h.Accounts.Register(c.UserContext(), service.RegisterInput{
		BusinessName: input.BusinessName,
		OwnerName:    input.OwnerName,
		Email:        input.Email,
		Password:     input.Password,
	})
	if err != nil {
		return renderError(c, "register", err, data)
	}

	if err := h.Session.Start(c, business); err != nil {
		return err
	}
	return c.Redirect("/dashboard")
}

func (h *AuthController) ShowLogin(c *fiber.Ctx) error {
	if middleware.CurrentBusiness(c) != nil {
		return c.Redirect("/dashboard")
	}
	return render(c, fiber.StatusOK, "login", fiber.Map{"Title": "Log in", "Email": ""})
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	if middleware.CurrentBusiness(c) != nil {
		return c.Redirect("/dashboard")
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return renderError(c, "login", appErrors.ErrInvalidCredentials, fiber.Map{"Title": "Log in", "Email": ""})
	}

	business, err := h.Accounts.Authenticate(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return renderError(c, "login", err, fiber.Map{"Title": "Log in", "Email": input.Email})
	}

	if err := h.Session.Start(c, business); err != nil {
		return err
	}
	return c.Redirect("/dashboard")
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	h.Session.Clear(c)
	return c.Redirect("/")
}
