package handlers

import (
	"errors"
	"strconv"

	"mndmotors/internal/domain"
	applog "mndmotors/internal/log"
	"mndmotors/internal/repos"

	"github.com/gofiber/fiber/v2"
)

type CarHandler struct {
	Cars *repos.CarRepo
}

// carPayload is the request body for add and update. The year, price and sold
// fields decode through pointers so an absent field is distinguishable from a
// zero or false value; sold:false is a valid payload, sold missing is not.
type carPayload struct {
	Name     string `json:"car_name"`
	Model    string `json:"car_model"`
	Year     *int   `json:"car_year"`
	Location string `json:"location"`
	Address  string `json:"address"`
	Price    *int64 `json:"price"`
	Type     string `json:"type"`
	Sold     *bool  `json:"sold"`
	Image    string `json:"image"`
}

func (p *carPayload) complete() bool {
	return p.Name != "" && p.Model != "" && p.Year != nil &&
		p.Location != "" && p.Address != "" && p.Price != nil &&
		p.Type != "" && p.Sold != nil && p.Image != ""
}

func (p *carPayload) car() domain.Car {
	return domain.Car{
		Name:     p.Name,
		Model:    p.Model,
		Year:     *p.Year,
		Location: p.Location,
		Address:  p.Address,
		Price:    *p.Price,
		Type:     p.Type,
		Sold:     *p.Sold,
		Image:    p.Image,
	}
}

// GET /api/cars
func (h *CarHandler) List(c *fiber.Ctx) error {
	cars, err := h.Cars.All()
	if err != nil {
		applog.Error(c, "cars.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching cars", "details": err.Error(),
		})
	}
	if cars == nil {
		cars = []domain.Car{}
	}
	return c.JSON(cars)
}

// POST /api/addcar
func (h *CarHandler) Add(c *fiber.Ctx) error {
	var p carPayload
	if err := c.BodyParser(&p); err != nil || !p.complete() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}
	id, err := h.Cars.Insert(p.car())
	if err != nil {
		applog.Error(c, "cars.add.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error adding car", "details": err.Error(),
		})
	}
	applog.Audit(c, "cars.add", map[string]any{"car_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Car added successfully", "carId": id,
	})
}

// PUT /api/cars/:id
func (h *CarHandler) Update(c *fiber.Ctx) error {
	var p carPayload
	if err := c.BodyParser(&p); err != nil || !p.complete() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}
	// A non-numeric id can't match any row, same outcome as a stale one.
	id, perr := strconv.ParseInt(c.Params("id"), 10, 64)
	if perr != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Car not found"})
	}
	if err := h.Cars.Update(id, p.car()); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Car not found"})
		}
		applog.Error(c, "cars.update.fail", err, map[string]any{"car_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error updating car", "details": err.Error(),
		})
	}
	applog.Audit(c, "cars.update", map[string]any{"car_id": id})
	return c.JSON(fiber.Map{"message": "Car updated successfully"})
}

// DELETE /api/cars/:id
func (h *CarHandler) Delete(c *fiber.Ctx) error {
	id, perr := strconv.ParseInt(c.Params("id"), 10, 64)
	if perr != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Car not found"})
	}
	if err := h.Cars.Delete(id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Car not found"})
		}
		applog.Error(c, "cars.delete.fail", err, map[string]any{"car_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting car", "details": err.Error(),
		})
	}
	applog.Audit(c, "cars.delete", map[string]any{"car_id": id})
	return c.JSON(fiber.Map{"message": "Car deleted successfully"})
}
