package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"mndmotors/internal/config"
	"mndmotors/internal/http/handlers"
	applog "mndmotors/internal/log"
	"mndmotors/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// An unreachable store at startup is fatal; the service never comes up
	// half-connected.
	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("database connected successfully")

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal server error", "details": err.Error(),
				})
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	// The site frontend has always been served cross-origin from the API.
	app.Use(cors.New())

	app.Static("/static", "./web/static")

	deps := handlers.NewDeps(db, cfg)

	// ---------- Resource API ----------
	api := app.Group("/api")
	api.Get("/cars", deps.CarHandler.List)
	api.Post("/addcar", deps.CarHandler.Add)
	api.Put("/cars/:id", deps.CarHandler.Update)
	api.Delete("/cars/:id", deps.CarHandler.Delete)
	api.Post("/login", deps.AuthHandler.Login)
	api.Post("/contact", deps.ContactHandler.Submit)

	// ---------- Public pages ----------
	app.Get("/", deps.PageHandler.Home)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/privacy", deps.PageHandler.Privacy)
	app.Get("/terms", deps.PageHandler.Terms)
	app.Get("/contact", deps.PageHandler.ContactForm)
	app.Post("/contact", deps.PageHandler.ContactSubmit)

	// ---------- Admin ----------
	app.Get("/admin/login", deps.AuthHandler.LoginForm)
	app.Post("/admin/login", deps.AuthHandler.LoginSubmit)
	app.Post("/admin/logout", deps.AuthHandler.Logout)

	admin := app.Group("/admin", handlers.RequireToken())
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Post("/cars", deps.AdminHandler.SaveCar)
	admin.Post("/cars/:id", deps.AdminHandler.UpdateCar)
	admin.Post("/cars/:id/delete", deps.AdminHandler.DeleteCar)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
