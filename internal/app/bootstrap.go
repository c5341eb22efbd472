package app

import (
	"fmt"
	"strings"

	"staffing/internal/config"
	"staffing/internal/delivery/http/middleware"
	"staffing/internal/delivery/http/routes"
	v1 "staffing/internal/delivery/http/routes/v1"
	"staffing/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := routes.NewRegistry(c.DB, v1.Deps{
		Config:   c.Config,
		DB:       c.DB,
		Cache:    c.Cache,
		Notifier: c.Notifier,
		Logger:   c.Logger,
	})
	registry.Register(app)

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	app.Get("/ws/staffing", wsHandler.HandleStaffingWS)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
