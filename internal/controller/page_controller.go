package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VinodVen/growthai/pkg/subscription"
)

func Landing(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "landing", fiber.Map{
		"Plans": subscription.Plans(),
	})
}
