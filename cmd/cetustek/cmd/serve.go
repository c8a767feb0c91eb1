package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/jhoicas/cetustek-einvoice/docs"
	"github.com/jhoicas/cetustek-einvoice/internal/application/einvoice"
	httpRouter "github.com/jhoicas/cetustek-einvoice/internal/interfaces/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el gateway HTTP sobre el WS Cetustek",
	Long: `Expone emisión, consulta y anulación por HTTP/JSON.

Rutas:
  POST /api/invoices
  GET  /api/invoices/:year/:number
  POST /api/invoices/:year/:number/cancel
  GET  /health
  GET  /docs              (Swagger UI, spec en /docs/swagger.json)

Con JWT_SECRET definido, /api exige "Authorization: Bearer <token>" (ver "cetustek token").`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	zl := log.Component("gateway")
	invoiceUC := einvoice.NewInvoiceUseCase(client, cfg.Cetustek.Timeout, zl)

	app := newGatewayApp(cfg.App.Name, httpRouter.RouterDeps{
		InvoiceUC: invoiceUC,
		Log:       zl,
		JWTSecret: cfg.HTTP.JWTSecret,
		JWTIssuer: cfg.HTTP.JWTIssuer,
	})
	if cfg.HTTP.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET vacío: /api sin autenticación")
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Str("endpoint", client.Endpoint()).Msg("gateway escuchando")
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
		return err
	}
	log.Info().Msg("gateway detenido")
	return nil
}

// newGatewayApp arma la app fiber: recover, Swagger UI en /docs y las rutas del gateway.
func newGatewayApp(name string, deps httpRouter.RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		ReadTimeout:           time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	// El spec va embebido (generado con swag init); FilePath sólo fija la URL.
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       docs.SwaggerInfo.Title,
	}))

	httpRouter.Router(app, deps)
	return app
}
