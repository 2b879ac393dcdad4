package handlers

import (
	"mndmotors/internal/catalog"
	applog "mndmotors/internal/log"
	"mndmotors/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type PageHandler struct {
	Cars     *repos.CarRepo
	Contacts *repos.ContactRepo
}

// GET /
// The browse page fetches the full listing set once and derives everything
// else in memory: the filtered result, its available/sold split, and the
// selector facets (always from the unfiltered set).
func (h *PageHandler) Home(c *fiber.Ctx) error {
	cars, err := h.Cars.All()
	if err != nil {
		applog.Error(c, "home.cars.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load listings. Please retry."})
	}

	f := catalog.Filter{
		Name:      c.Query("search"),
		Type:      c.Query("type"),
		City:      c.Query("city"),
		PriceBand: c.Query("price"),
	}
	available, sold := catalog.Partition(catalog.Apply(cars, f))

	return render(c, "home", fiber.Map{
		"Available": available,
		"Sold":      sold,
		"Types":     catalog.DistinctTypes(cars),
		"Cities":    catalog.DistinctCities(cars),
		"Filter":    f,
	})
}

// GET /about
func (h *PageHandler) About(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{})
}

// GET /privacy
func (h *PageHandler) Privacy(c *fiber.Ctx) error {
	return render(c, "privacy", fiber.Map{})
}

// GET /terms
func (h *PageHandler) Terms(c *fiber.Ctx) error {
	return render(c, "terms", fiber.Map{})
}

// GET /contact
func (h *PageHandler) ContactForm(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{"Sent": false, "Err": ""})
}

// POST /contact
func (h *PageHandler) ContactSubmit(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	message := c.FormValue("message")
	if name == "" || email == "" || message == "" {
		return c.Status(fiber.StatusBadRequest).Render("contact", fiber.Map{"Sent": false, "Err": "All fields are required"})
	}
	id, err := h.Contacts.Insert(name, email, message)
	if err != nil {
		applog.Error(c, "contact.page.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("contact", fiber.Map{"Sent": false, "Err": "Something went wrong. Please try again."})
	}
	applog.Info(c, "contact.page.sent", map[string]any{"contact_id": id})
	return render(c, "contact", fiber.Map{"Sent": true, "Err": ""})
}
