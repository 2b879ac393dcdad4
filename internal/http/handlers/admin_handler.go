package handlers

import (
	"errors"
	"strconv"

	"mndmotors/internal/catalog"
	"mndmotors/internal/domain"
	applog "mndmotors/internal/log"
	"mndmotors/internal/repos"
	"mndmotors/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Cars *repos.CarRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	cars, err := h.Cars.All()
	if err != nil {
		applog.Error(c, "admin.cars.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load listings"})
	}

	f := catalog.Filter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		City:   c.Query("city"),
	}
	available, sold := catalog.Partition(catalog.Apply(cars, f))

	return render(c, "dashboard", fiber.Map{
		// Headline counts stay unfiltered totals no matter what the table
		// filter says.
		"Summary":   catalog.Summarize(cars),
		"Available": available,
		"Sold":      sold,
		"Types":     catalog.DistinctTypes(cars),
		"Cities":    catalog.DistinctCities(cars),
		"Filter":    f,
	})
}

// carFromForm reads the dashboard car form and applies the form-level checks
// the site has always run before touching the store: all fields filled, year
// in range, name length, and the (effectively non-blocking) image pattern.
func carFromForm(c *fiber.Ctx) (domain.Car, bool) {
	year, yerr := strconv.Atoi(c.FormValue("car_year"))
	price, perr := strconv.ParseInt(c.FormValue("price"), 10, 64)
	car := domain.Car{
		Name:     c.FormValue("car_name"),
		Model:    c.FormValue("car_model"),
		Year:     year,
		Location: c.FormValue("location"),
		Address:  c.FormValue("address"),
		Price:    price,
		Type:     c.FormValue("type"),
		Sold:     c.FormValue("sold") != "",
		Image:    c.FormValue("image"),
	}
	if yerr != nil || perr != nil {
		return car, false
	}
	if car.Model == "" || car.Location == "" || car.Address == "" || car.Type == "" || car.Image == "" {
		return car, false
	}
	if !validate.CarName(car.Name) || !validate.CarYear(car.Year) || !validate.ImageURL(car.Image) {
		return car, false
	}
	return car, true
}

// POST /admin/cars
func (h *AdminHandler) SaveCar(c *fiber.Ctx) error {
	car, ok := carFromForm(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid input")
	}
	id, err := h.Cars.Insert(car)
	if err != nil {
		applog.Error(c, "admin.cars.add.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("could not save car")
	}
	applog.Audit(c, "admin.cars.add", map[string]any{"car_id": id})
	return c.Redirect("/admin")
}

// POST /admin/cars/:id
func (h *AdminHandler) UpdateCar(c *fiber.Ctx) error {
	id, perr := strconv.ParseInt(c.Params("id"), 10, 64)
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	car, ok := carFromForm(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid input")
	}
	if err := h.Cars.Update(id, car); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("car not found")
		}
		applog.Error(c, "admin.cars.update.fail", err, map[string]any{"car_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update car")
	}
	applog.Audit(c, "admin.cars.update", map[string]any{"car_id": id})
	return c.Redirect("/admin")
}

// POST /admin/cars/:id/delete
func (h *AdminHandler) DeleteCar(c *fiber.Ctx) error {
	id, perr := strconv.ParseInt(c.Params("id"), 10, 64)
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	if err := h.Cars.Delete(id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("car not found")
		}
		applog.Error(c, "admin.cars.delete.fail", err, map[string]any{"car_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not delete car")
	}
	applog.Audit(c, "admin.cars.delete", map[string]any{"car_id": id})
	return c.Redirect("/admin")
}
