package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cetustek-einvoice/internal/application/einvoice"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC *einvoice.InvoiceUseCase
	Log       zerolog.Logger
	JWTSecret string // vacío = /api sin autenticación
	JWTIssuer string
}

// Router registra las rutas del gateway.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(AccessLog(deps.Log))

	app.Get("/health", Health)

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:year/:number", invoiceHandler.Get)
	invoices.Post("/:year/:number/cancel", invoiceHandler.Cancel)
}

// Health godoc
// @Summary      Estado del gateway
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
