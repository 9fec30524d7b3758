package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scms-api/internal/application/logistics"
	"github.com/jhoicas/scms-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	OrderUC     *usecase.OrderUseCase
	UserUC      *usecase.UserUseCase
	ReportUC    *usecase.ReportUseCase
	Resolver    *logistics.RouteResolverUseCase
	Selector    *logistics.SelectorUseCase
	Transfer    *logistics.TransferUseCase
	Gap         *logistics.GapUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/:sku", productHandler.Update)
	products.Delete("/:sku", productHandler.Delete)

	// Inventory + gap
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Gap)
	inventory.Post("/", inventoryHandler.Add)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/low-stock", inventoryHandler.LowStock)
	inventory.Get("/:sku/availability", inventoryHandler.Availability)

	// Logistics (rutas, sugerencia de origen, transferencias)
	logisticsGroup := api.Group("/logistics")
	logisticsHandler := NewLogisticsHandler(deps.Resolver, deps.Selector, deps.Transfer)
	logisticsGroup.Get("/route-cost", logisticsHandler.RouteCost)
	logisticsGroup.Get("/cheapest-route", logisticsHandler.CheapestRoute)
	logisticsGroup.Get("/origins", logisticsHandler.ValidOrigins)
	logisticsGroup.Get("/suggest-origin", logisticsHandler.SuggestOrigin)
	logisticsGroup.Post("/transfers", logisticsHandler.Transfer)
	api.Get("/locations/warehouses", logisticsHandler.Warehouses)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Selector, deps.Transfer)
	orders.Post("/", orderHandler.Place)
	orders.Get("/", orderHandler.List)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/dispatch", orderHandler.Dispatch)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
}
