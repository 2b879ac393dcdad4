package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Templates show the admin nav link purely off token presence.
	if _, ok := data["Authed"]; !ok {
		data["Authed"] = c.Cookies(adminTokenCookie) != ""
	}
	return c.Render(tmpl, data)
}
