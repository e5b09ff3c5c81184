package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/middleware"
	"github.com/VinodVen/growthai/internal/view"
)

// render adds the current business to data and wraps the page in the layout.
func render(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if business := middleware.CurrentBusiness(c); business != nil {
		data["Business"] = business
	}
	return c.Status(status).Render(name, data, view.Layout)
}

// renderError re-renders a form page with the user-facing text of err.
// Internal errors go to the fiber error handler instead.
func renderError(c *fiber.Ctx, name string, err error, data fiber.Map) error {
	if appErrors.KindOf(err) == appErrors.KindInternal {
		return err
	}
	if data == nil {
		data = fiber.Map{}
	}
	data["Error"] = appErrors.UserMessage(err)
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return render(c, appErrors.HTTPStatus(err), name, data)
}
