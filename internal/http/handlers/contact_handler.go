package handlers

import (
	applog "mndmotors/internal/log"
	"mndmotors/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	Contacts *repos.ContactRepo
}

type contactPayload struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// POST /api/contact
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var p contactPayload
	if err := c.BodyParser(&p); err != nil || p.Name == "" || p.Email == "" || p.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}
	id, err := h.Contacts.Insert(p.Name, p.Email, p.Message)
	if err != nil {
		applog.Error(c, "contact.submit.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error submitting contact form", "details": err.Error(),
		})
	}
	applog.Info(c, "contact.submit", map[string]any{"contact_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent successfully", "contactId": id,
	})
}
