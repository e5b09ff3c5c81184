package middleware

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	appErrors "github.com/VinodVen/growthai/internal/errors"
	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/pkg/utils/jwt"
)

const (
	SessionCookie = "growthai_session"
	businessKey   = "business"
)

type BusinessLoader interface {
	GetBusiness(ctx context.Context, id uint) (*model.Business, error)
}

type Session struct {
	Tokens   *jwt.Manager
	Accounts BusinessLoader
	Secure   bool
}

// LoadSession resolves the session cookie into the current business. Bad or
// stale cookies are cleared and the request continues anonymously.
func (s *Session) LoadSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Next()
		}

		claims, err := s.Tokens.ValidateToken(token)
		if err != nil {
			s.Clear(c)
			return c.Next()
		}

		business, err := s.Accounts.GetBusiness(c.UserContext(), claims.BusinessID)
		if err != nil {
			if !appErrors.Is(err, appErrors.KindNotFound) {
				return err
			}
			log.Printf("Session for missing business %d cleared", claims.BusinessID)
			s.Clear(c)
			return c.Next()
		}

		c.Locals(businessKey, business)
		return c.Next()
	}
}

// RequireBusiness redirects anonymous visitors to the login page.
func RequireBusiness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentBusiness(c) == nil {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// CurrentBusiness returns nil for anonymous requests.
func CurrentBusiness(c *fiber.Ctx) *model.Business {
	b, _ := c.Locals(businessKey).(*model.Business)
	return b
}

func (s *Session) Start(c *fiber.Ctx, business *model.Business) error {
	token, err := s.Tokens.GenerateToken(business.ID, string(business.Role))
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.Tokens.TTL()),
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(businessKey, business)
	return nil
}

func (s *Session) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(businessKey, nil)
}
