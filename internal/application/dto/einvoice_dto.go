package dto

import "github.com/jhoicas/cetustek-einvoice/pkg/cetustek"

// CreateInvoiceResult respuesta de emisión con el año derivado del número.
type CreateInvoiceResult struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceYear   string `json:"invoice_year"`
	RandomCode    string `json:"random_code"`
}

// NewCreateInvoiceResult construye el resultado a partir de la respuesta del WS.
func NewCreateInvoiceResult(r *cetustek.CreateInvoiceResponse) CreateInvoiceResult {
	return CreateInvoiceResult{
		InvoiceNumber: r.InvoiceNumber,
		InvoiceYear:   r.InvoiceYear(),
		RandomCode:    r.RandomCode,
	}
}

// CancelInvoiceRequest cuerpo de POST /api/invoices/:year/:number/cancel.
type CancelInvoiceRequest struct {
	Remark                  string `json:"remark"`
	ReturnTaxDocumentNumber string `json:"return_tax_document_number"`
	NoCheck                 bool   `json:"no_check"`
}
