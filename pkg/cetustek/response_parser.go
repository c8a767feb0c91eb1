package cetustek

import (
	"fmt"
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// CancelSuccessCode código con el que el servicio confirma una anulación.
const CancelSuccessCode = "C0"

var (
	returnTagRe       = regexp.MustCompile(`<return>(.*?)</return>`)
	returnTagDotAllRe = regexp.MustCompile(`(?s)<return>(.*?)</return>`)

	fieldRe = map[string]*regexp.Regexp{}
)

// Campos leídos del detalle de QueryInvoice.
var queryFields = []string{
	"InvoiceDate", "InvoiceTime", "OrderID", "RandomNumber",
	"BuyerIdentifier", "BuyerName", "SellerIdentifier", "SellerName",
	"InvoiceStatus", "DonateMark", "CarrierType", "CarrierId1", "NPOBAN", "TaxType",
	"SalesAmount", "TaxAmount", "TotalAmount",
}

func init() {
	for _, tag := range queryFields {
		fieldRe[tag] = tagRegexp(tag)
	}
}

// tagRegexp búsqueda de <tag>...</tag> insensible a mayúsculas y multilínea.
func tagRegexp(tag string) *regexp.Regexp {
	t := regexp.QuoteMeta(tag)
	return regexp.MustCompile(`(?is)<` + t + `>(.*?)</` + t + `>`)
}

// extractReturnValue devuelve el texto de <return>, sin espacios en los extremos.
func extractReturnValue(body string, dotAll bool) (string, error) {
	re := returnTagRe
	if dotAll {
		re = returnTagDotAllRe
	}
	m := re.FindStringSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("%w: falta la etiqueta <return>", ErrMalformedResponse)
	}
	return strings.TrimSpace(m[1]), nil
}

// parseCreateResponse "<número>;<código aleatorio>"; cualquier otra forma es un error de API.
func parseCreateResponse(body string) (*CreateInvoiceResponse, error) {
	value, err := extractReturnValue(body, false)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(value, ";")
	switch len(parts) {
	case 1:
		return nil, &APIError{Code: value}
	case 2:
		return &CreateInvoiceResponse{InvoiceNumber: parts[0], RandomCode: parts[1]}, nil
	default:
		return nil, &APIError{Code: value, Message: "formato de respuesta inesperado"}
	}
}

// parseCancelResponse compara con CancelSuccessCode; el rechazo no es un error de Go.
func parseCancelResponse(body string) (*CancelInvoiceResponse, error) {
	value, err := extractReturnValue(body, false)
	if err != nil {
		return nil, err
	}
	res := &CancelInvoiceResponse{Success: value == CancelSuccessCode, Code: value}
	if !res.Success {
		res.Message = value
	}
	return res, nil
}

// parseQueryResponse desescapa el detalle embebido y extrae cada campo por separado.
// Un campo ausente, vacío o (en montos) no numérico queda en nil sin afectar al resto.
func parseQueryResponse(body, invoiceNumber string) (*QueryInvoiceResponse, error) {
	value, err := extractReturnValue(body, true)
	if err != nil {
		return nil, err
	}
	invoiceXML := html.UnescapeString(value)
	if !strings.HasPrefix(strings.TrimSpace(invoiceXML), "<") {
		return nil, &APIError{Code: strings.TrimSpace(invoiceXML)}
	}

	return &QueryInvoiceResponse{
		InvoiceNumber:    invoiceNumber,
		InvoiceDate:      extractField(invoiceXML, "InvoiceDate"),
		InvoiceTime:      extractField(invoiceXML, "InvoiceTime"),
		OrderID:          extractField(invoiceXML, "OrderID"),
		RandomCode:       extractField(invoiceXML, "RandomNumber"),
		BuyerIdentifier:  extractField(invoiceXML, "BuyerIdentifier"),
		BuyerName:        extractField(invoiceXML, "BuyerName"),
		SellerIdentifier: extractField(invoiceXML, "SellerIdentifier"),
		SellerName:       extractField(invoiceXML, "SellerName"),
		InvoiceStatus:    extractField(invoiceXML, "InvoiceStatus"),
		DonateMark:       extractField(invoiceXML, "DonateMark"),
		CarrierType:      extractField(invoiceXML, "CarrierType"),
		CarrierID:        extractField(invoiceXML, "CarrierId1"),
		NPOBAN:           extractField(invoiceXML, "NPOBAN"),
		TaxType:          extractField(invoiceXML, "TaxType"),
		SalesAmount:      extractAmount(invoiceXML, "SalesAmount"),
		TaxAmount:        extractAmount(invoiceXML, "TaxAmount"),
		TotalAmount:      extractAmount(invoiceXML, "TotalAmount"),
		RawXML:           invoiceXML,
	}, nil
}

func extractField(doc, tag string) *string {
	re, ok := fieldRe[tag]
	if !ok {
		re = tagRegexp(tag)
	}
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return nil
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return nil
	}
	return &v
}

// extractAmount NaN e Inf cuentan como ausentes: no tienen representación JSON.
func extractAmount(doc, tag string) *float64 {
	v := extractField(doc, tag)
	if v == nil {
		return nil
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
