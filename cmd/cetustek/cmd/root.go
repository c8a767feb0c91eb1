package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cetustek-einvoice/pkg/cetustek"
	"github.com/jhoicas/cetustek-einvoice/pkg/config"
	"github.com/jhoicas/cetustek-einvoice/pkg/logger"
)

var (
	// Global flags (sobrescriben la configuración de entorno)
	verbose     bool
	endpoint    string
	rentID      string
	siteCode    string
	apiPassword string
	timeout     time.Duration

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cetustek",
	Short: "Cliente de factura electrónica Cetustek (Taiwán)",
	Long: `cetustek emite, consulta y anula facturas electrónicas en el WS SOAP de Cetustek.

Credenciales por entorno (CETUSTEK_RENT_ID, CETUSTEK_SITE_CODE, CETUSTEK_API_PASSWORD)
o por flags.

Ejemplos:
  # Emitir una factura desde un archivo JSON
  cetustek create -f invoice.json

  # Consultar una factura
  cetustek query AB20250001 2025

  # Anular una factura
  cetustek cancel AB20250001 2025 --remark "pedido duplicado"

  # Levantar el gateway HTTP
  cetustek serve`,
	Version:       cetustek.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute ejecuta el comando raíz.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Logs en nivel debug")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "URL del WS (env: CETUSTEK_ENDPOINT)")
	rootCmd.PersistentFlags().StringVar(&rentID, "rent-id", "", "Rent ID (env: CETUSTEK_RENT_ID)")
	rootCmd.PersistentFlags().StringVar(&siteCode, "site-code", "", "Site code (env: CETUSTEK_SITE_CODE)")
	rootCmd.PersistentFlags().StringVar(&apiPassword, "api-password", "", "Contraseña de API (env: CETUSTEK_API_PASSWORD)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Plazo por operación, p. ej. 30s (env: CETUSTEK_TIMEOUT_SECONDS)")
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	// Los flags tienen prioridad sobre el entorno
	if endpoint != "" {
		cfg.Cetustek.Endpoint = endpoint
	}
	if rentID != "" {
		cfg.Cetustek.RentID = rentID
	}
	if siteCode != "" {
		cfg.Cetustek.SiteCode = siteCode
	}
	if apiPassword != "" {
		cfg.Cetustek.APIPassword = apiPassword
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Cetustek.Timeout = timeout
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	log = logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
		Out:     cmd.ErrOrStderr(),
	})
	return nil
}

// newClient construye el cliente con las credenciales resueltas.
func newClient() (*cetustek.Client, error) {
	if err := cfg.Cetustek.Validate(); err != nil {
		return nil, err
	}
	return cetustek.New(cfg.Cetustek.ClientConfig(), cetustek.WithLogger(log.Component("cetustek")))
}

// callContext aplica el plazo configurado; sin plazo, la llamada espera lo que tarde el WS.
func callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if cfg.Cetustek.Timeout <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, cfg.Cetustek.Timeout)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}
