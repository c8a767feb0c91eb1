package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cetustek-einvoice/internal/application/dto"
	"github.com/jhoicas/cetustek-einvoice/pkg/cetustek"
)

var createFile string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Emite una factura (CreateInvoiceV3)",
	Long: `Emite una factura a partir de un JSON con la forma de CreateInvoiceInput.

Ejemplo de archivo:
  {
    "order_id": "98765432",
    "order_date": "2025/01/15",
    "donate_mark": "0",
    "invoice_type": "07",
    "pay_way": "1",
    "tax_type": "1",
    "tax_rate": 0.05,
    "items": [{"production_code": "P1", "description": "Widget", "quantity": 2, "unit_price": 100}]
  }

Ejemplos:
  cetustek create -f invoice.json
  cat invoice.json | cetustek create`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createFile, "file", "f", "-", "Archivo JSON de entrada (- = stdin)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	r, err := openInput(cmd, createFile)
	if err != nil {
		return err
	}
	defer r.Close()

	var in cetustek.CreateInvoiceInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return fmt.Errorf("leer factura: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := callContext(cmd.Context())
	defer cancel()

	res, err := client.CreateInvoice(ctx, in)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), dto.NewCreateInvoiceResult(res))
}
