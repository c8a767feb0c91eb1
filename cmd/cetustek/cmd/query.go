package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cetustek-einvoice/pkg/cetustek"
)

var queryRaw bool

var queryCmd = &cobra.Command{
	Use:   "query <invoice-number> <year>",
	Short: "Consulta una factura (QueryInvoice)",
	Long: `Consulta el detalle de una factura y lo imprime en JSON.

Ejemplos:
  cetustek query AB20250001 2025
  cetustek query AB20250001 2025 --raw`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryRaw, "raw", false, "Imprime el XML del detalle tal como lo devolvió el WS")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := callContext(cmd.Context())
	defer cancel()

	res, err := client.QueryInvoice(ctx, cetustek.QueryInvoiceInput{InvoiceNumber: args[0], InvoiceYear: args[1]})
	if err != nil {
		return err
	}
	if queryRaw {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), res.RawXML)
		return err
	}
	return printJSON(cmd.OutOrStdout(), res)
}
