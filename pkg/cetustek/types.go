// Package cetustek implementa el cliente SOAP del servicio de factura electrónica
// de Cetustek (Taiwán): emisión, consulta y anulación de facturas.
package cetustek

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate tasa aplicada cuando CreateInvoiceInput.TaxRate es nula.
var DefaultTaxRate = decimal.NewFromFloat(0.05)

// ── Entradas ──────────────────────────────────────────────────────────────────

// InvoiceItem línea de producto de la factura (ProductItem).
type InvoiceItem struct {
	ProductionCode string          `json:"production_code"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity" swaggertype:"number"`
	UnitPrice      decimal.Decimal `json:"unit_price" swaggertype:"number"`
	Unit           string          `json:"unit,omitempty"` // opcional; vacío = no se envía <Unit>
}

// CreateInvoiceInput datos para CreateInvoiceV3.
type CreateInvoiceInput struct {
	OrderID   string `json:"order_id"`
	OrderDate string `json:"order_date"` // yyyy/MM/dd

	BuyerIdentifier string `json:"buyer_identifier,omitempty"`
	BuyerName       string `json:"buyer_name,omitempty"`
	BuyerAddress    string `json:"buyer_address,omitempty"`
	BuyerEmail      string `json:"buyer_email,omitempty"`

	DonateMark  string `json:"donate_mark"`  // 0 / 1 / 2
	InvoiceType string `json:"invoice_type"` // 07 / 08
	CarrierType string `json:"carrier_type,omitempty"`
	CarrierID1  string `json:"carrier_id1,omitempty"`
	CarrierID2  string `json:"carrier_id2,omitempty"`
	NPOBAN      string `json:"npoban,omitempty"`
	PayWay      string `json:"pay_way"`
	TaxType     string `json:"tax_type"` // 1 / 2 / 3 / 4 / 5 / 9

	TaxRate decimal.NullDecimal `json:"tax_rate" swaggertype:"number"` // null = 0.05
	Remark  string              `json:"remark,omitempty"`

	Items []InvoiceItem `json:"items"`
}

// CancelInvoiceInput datos para CancelInvoice / CancelInvoiceNoCheck.
type CancelInvoiceInput struct {
	InvoiceNumber           string `json:"invoice_number"` // AA12345678
	InvoiceYear             string `json:"invoice_year"`   // yyyy
	Remark                  string `json:"remark"`         // motivo; vacío se envía como <Remark></Remark>
	ReturnTaxDocumentNumber string `json:"return_tax_document_number,omitempty"`
}

// QueryInvoiceInput datos para QueryInvoice.
type QueryInvoiceInput struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceYear   string `json:"invoice_year"`
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// CreateInvoiceResponse número de factura (2 letras + 8 dígitos) y código aleatorio (4 dígitos).
type CreateInvoiceResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	RandomCode    string `json:"random_code"`
}

// InvoiceYear año derivado del número de factura (posiciones 2..5).
func (r CreateInvoiceResponse) InvoiceYear() string {
	if len(r.InvoiceNumber) < 6 {
		return ""
	}
	return r.InvoiceNumber[2:6]
}

// CancelInvoiceResponse resultado de la anulación. Success sólo con el código "C0".
type CancelInvoiceResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// QueryInvoiceResponse detalle de una factura. Los campos nil no venían en la respuesta.
type QueryInvoiceResponse struct {
	InvoiceNumber    string   `json:"invoice_number"`
	InvoiceDate      *string  `json:"invoice_date,omitempty"`
	InvoiceTime      *string  `json:"invoice_time,omitempty"`
	OrderID          *string  `json:"order_id,omitempty"`
	RandomCode       *string  `json:"random_code,omitempty"`
	BuyerIdentifier  *string  `json:"buyer_identifier,omitempty"`
	BuyerName        *string  `json:"buyer_name,omitempty"`
	SellerIdentifier *string  `json:"seller_identifier,omitempty"`
	SellerName       *string  `json:"seller_name,omitempty"`
	InvoiceStatus    *string  `json:"invoice_status,omitempty"`
	DonateMark       *string  `json:"donate_mark,omitempty"`
	CarrierType      *string  `json:"carrier_type,omitempty"`
	CarrierID        *string  `json:"carrier_id,omitempty"`
	NPOBAN           *string  `json:"npoban,omitempty"`
	TaxType          *string  `json:"tax_type,omitempty"`
	SalesAmount      *float64 `json:"sales_amount,omitempty"`
	TaxAmount        *float64 `json:"tax_amount,omitempty"`
	TotalAmount      *float64 `json:"total_amount,omitempty"`
	RawXML           string   `json:"raw_xml,omitempty"`
}

// ── Validación de presencia ───────────────────────────────────────────────────

// Validate comprueba que los campos obligatorios estén presentes.
// Los códigos (impuesto, donación, etc.) no se validan: el servicio es la fuente de verdad.
func (in CreateInvoiceInput) Validate() error {
	required := []struct{ field, value string }{
		{"order_id", in.OrderID},
		{"order_date", in.OrderDate},
		{"donate_mark", in.DonateMark},
		{"invoice_type", in.InvoiceType},
		{"pay_way", in.PayWay},
		{"tax_type", in.TaxType},
	}
	for _, r := range required {
		if r.value == "" {
			return newRequiredError(r.field)
		}
	}
	return nil
}

// Validate comprueba número y año. El motivo puede ir vacío; lo juzga el WS.
func (in CancelInvoiceInput) Validate() error {
	if in.InvoiceNumber == "" {
		return newRequiredError("invoice_number")
	}
	if in.InvoiceYear == "" {
		return newRequiredError("invoice_year")
	}
	return nil
}

// Validate comprueba número y año.
func (in QueryInvoiceInput) Validate() error {
	if in.InvoiceNumber == "" {
		return newRequiredError("invoice_number")
	}
	if in.InvoiceYear == "" {
		return newRequiredError("invoice_year")
	}
	return nil
}
