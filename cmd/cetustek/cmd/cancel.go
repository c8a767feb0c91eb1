package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cetustek-einvoice/pkg/cetustek"
)

var (
	cancelRemark       string
	cancelReturnTaxDoc string
	cancelNoCheck      bool
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <invoice-number> <year>",
	Short: "Anula una factura (CancelInvoice / CancelInvoiceNoCheck)",
	Long: `Anula una factura emitida. Termina con error si el WS no devuelve C0.

Ejemplos:
  cetustek cancel AB20250001 2025 --remark "pedido duplicado"
  cetustek cancel AB20250001 2025 --remark "devolución" --no-check`,
	Args: cobra.ExactArgs(2),
	RunE: runCancel,
}

func init() {
	cancelCmd.Flags().StringVar(&cancelRemark, "remark", "", "Motivo de la anulación")
	cancelCmd.Flags().StringVar(&cancelReturnTaxDoc, "return-tax-doc", "", "Número de documento de devolución de impuesto")
	cancelCmd.Flags().BoolVar(&cancelNoCheck, "no-check", false, "Usa CancelInvoiceNoCheck (sin validaciones remotas)")
	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := callContext(cmd.Context())
	defer cancel()

	res, err := client.CancelInvoice(ctx, cetustek.CancelInvoiceInput{
		InvoiceNumber:           args[0],
		InvoiceYear:             args[1],
		Remark:                  cancelRemark,
		ReturnTaxDocumentNumber: cancelReturnTaxDoc,
	}, cancelNoCheck)
	if err != nil {
		return err
	}
	if err := printJSON(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("anulación rechazada: %s", res.Code)
	}
	return nil
}
