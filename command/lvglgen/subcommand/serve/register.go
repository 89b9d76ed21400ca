package serve

import (
	"github.com/gofiber/fiber/v3"
)

func Register(app *fiber.App, handler *Handler) {
	api := app.Group("/api")
	api.Post("/generate", handler.HandleGenerate)
	api.Post("/format", handler.HandleFormat)
	api.Post("/tree", handler.HandleTree)
	api.Get("/widget-types", handler.HandleWidgetTypes)
	api.Get("/layouts", handler.HandleLayouts)
	api.Get("/default", handler.HandleDefault)
}
