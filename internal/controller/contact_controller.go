package controller

import (
	"github.com/gofiber/fiber/v2"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/service"
)

type ContactInput struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

type ContactController struct {
	Contacts *service.ContactService
}

func (h *ContactController) Show(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "contact", fiber.Map{"Title": "Contact", "Form": ContactInput{}})
}

func (h *ContactController) Submit(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return renderError(c, "contact", appErrors.Validation("Invalid input"), fiber.Map{"Form": ContactInput{}})
	}

	_, err := h.Contacts.Submit(c.UserContext(), service.ContactInput{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	})
	if err != nil {
		return renderError(c, "contact", err, fiber.Map{"Title": "Contact", "Form": *input})
	}

	return render(c, fiber.StatusOK, "contact", fiber.Map{
		"Title":   "Contact",
		"Form":    ContactInput{},
		"Success": "Thanks for reaching out, we will get back to you soon.",
	})
}
