package handlers

import (
	"errors"
	"time"

	applog "mndmotors/internal/log"
	"mndmotors/internal/repos"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// adminTokenCookie is the client-held session token for the dashboard. It is
// an opaque value: nothing on the server stores or re-verifies it. Presence of
// an unexpired cookie is what "logged in" means, exactly as the site has
// always behaved. Known gap: a forged cookie passes the gate.
const adminTokenCookie = "admin_token"

const adminTokenTTL = 24 * time.Hour

type AuthHandler struct {
	Admins *repos.AdminRepo
}

type loginPayload struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var p loginPayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	admin, err := h.Admins.ByCredentials(p.Email, p.Password)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			// Unknown email and wrong password are reported identically.
			applog.Security(c, "auth.login.fail", map[string]any{"email": p.Email})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		applog.Error(c, "auth.login.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error during login", "details": err.Error(),
		})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"admin_id": admin.ID})
	return c.JSON(fiber.Map{"id": admin.ID, "username": admin.Username})
}

// GET /admin/login
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if c.Cookies(adminTokenCookie) != "" {
		return c.Redirect("/admin")
	}
	return render(c, "login", fiber.Map{"Err": ""})
}

// POST /admin/login
func (h *AuthHandler) LoginSubmit(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	admin, err := h.Admins.ByCredentials(email, password)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			applog.Security(c, "auth.login.fail", map[string]any{"email": email})
			return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid credentials"})
		}
		applog.Error(c, "auth.login.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("login", fiber.Map{"Err": "Something went wrong. Please try again."})
	}

	c.Cookie(&fiber.Cookie{
		Name:     adminTokenCookie,
		Value:    uuid.NewString(),
		Path:     "/",
		Expires:  time.Now().Add(adminTokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	applog.Audit(c, "auth.login.success", map[string]any{"admin_id": admin.ID})
	return c.Redirect("/admin")
}

// POST /admin/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     adminTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-1 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/admin/login")
}

// RequireToken gates the dashboard on token presence alone.
func RequireToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Cookies(adminTokenCookie) == "" {
			applog.Security(c, "admin.gate.anonymous", nil)
			return c.Redirect("/admin/login")
		}
		return c.Next()
	}
}
