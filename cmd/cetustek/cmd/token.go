package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pkgjwt "github.com/jhoicas/cetustek-einvoice/pkg/jwt"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token <client>",
	Short: "Genera un Bearer token para el gateway",
	Long: `Firma un JWT HS256 con JWT_SECRET para el sistema cliente indicado.

Ejemplo:
  JWT_SECRET=... cetustek token erp --ttl 720h`,
	Args: cobra.ExactArgs(1),
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Vigencia del token")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	if cfg.HTTP.JWTSecret == "" {
		return errors.New("JWT_SECRET no definido")
	}
	tok, err := pkgjwt.Generate(cfg.HTTP.JWTSecret, args[0], cfg.HTTP.JWTIssuer, tokenTTL)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
	return err
}
