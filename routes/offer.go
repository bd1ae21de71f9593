package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/backoffice-api/controllers"
)

func SetupOfferRoutes(api fiber.Router, h *controllers.OfferHandler) {
	offers := api.Group("/offers")
	offers.Post("/", h.CreateOffer)
	offers.Get("/", h.GetOffers)
	offers.Patch("/:id/status", h.UpdateOfferStatus)
	offers.Get("/:id", h.GetOffer)
	offers.Delete("/:id", h.DeleteOffer)
}

func SetupClientRoutes(api fiber.Router, h *controllers.ClientHandler) {
	clients := api.Group("/clients")
	clients.Get("/", h.GetClients)
	clients.Get("/:id", h.GetClient)
	clients.Post("/", h.CreateClient)
	clients.Put("/:id", h.UpdateClient)
	clients.Delete("/:id", h.DeleteClient)
}

func SetupPropertyRoutes(api fiber.Router, h *controllers.PropertyHandler) {
	properties := api.Group("/properties")
	properties.Get("/", h.GetProperties)
	properties.Get("/:id", h.GetProperty)
	properties.Post("/", h.CreateProperty)
	properties.Put("/:id", h.UpdateProperty)
	properties.Delete("/:id", h.DeleteProperty)
}

func SetupTaskRoutes(api fiber.Router, h *controllers.TaskHandler) {
	tasks := api.Group("/tasks")
	tasks.Get("/", h.GetTasks)
	tasks.Get("/:id", h.GetTask)
	tasks.Post("/", h.CreateTask)
	tasks.Put("/:id", h.UpdateTask)
	tasks.Delete("/:id", h.DeleteTask)
}
