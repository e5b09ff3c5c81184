package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VinodVen/growthai/internal/service"
)

type AdminController struct {
	Admin *service.AdminService
}

func (h *AdminController) Show(c *fiber.Ctx) error {
	overview, err := h.Admin.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "admin", fiber.Map{"Title": "Admin", "Overview": overview})
}
