package cetustek

import (
	"fmt"

	"github.com/beevik/etree"
)

// XSDVersion versión del esquema de factura que espera el servicio.
const XSDVersion = "2.8"

// newDocument documento sin declaración XML, con etiquetas de cierre explícitas
// (<X></X>: el servicio exige el conjunto completo de campos) y escape canónico de texto.
func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true
	doc.WriteSettings.CanonicalText = true
	return doc
}

// writeText crea <tag>value</tag>; el valor vacío deja el elemento vacío pero presente.
func writeText(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement(tag)
	if value != "" {
		el.SetText(value)
	}
	return el
}

// buildInvoiceXML genera el documento <Invoice> de CreateInvoiceV3 con el orden de campos fijo.
func buildInvoiceXML(in CreateInvoiceInput) (string, error) {
	doc := newDocument()
	inv := doc.CreateElement("Invoice")
	inv.CreateAttr("XSDVersion", XSDVersion)

	taxRate := DefaultTaxRate
	if in.TaxRate.Valid {
		taxRate = in.TaxRate.Decimal
	}

	writeText(inv, "OrderId", in.OrderID)
	writeText(inv, "OrderDate", in.OrderDate)
	writeText(inv, "BuyerIdentifier", in.BuyerIdentifier)
	writeText(inv, "BuyerName", in.BuyerName)
	writeText(inv, "BuyerAddress", in.BuyerAddress)
	writeText(inv, "BuyerEmailAddress", in.BuyerEmail)
	writeText(inv, "DonateMark", in.DonateMark)
	writeText(inv, "InvoiceType", in.InvoiceType)
	writeText(inv, "CarrierType", in.CarrierType)
	writeText(inv, "CarrierId1", in.CarrierID1)
	writeText(inv, "CarrierId2", in.CarrierID2)
	writeText(inv, "NPOBAN", in.NPOBAN)
	writeText(inv, "PayWay", in.PayWay)
	writeText(inv, "TaxType", in.TaxType)
	writeText(inv, "TaxRate", taxRate.String())
	writeText(inv, "Remark", in.Remark)

	details := inv.CreateElement("Details")
	for _, item := range in.Items {
		p := details.CreateElement("ProductItem")
		writeText(p, "ProductionCode", item.ProductionCode)
		writeText(p, "Description", item.Description)
		writeText(p, "Quantity", item.Quantity.String())
		if item.Unit != "" {
			writeText(p, "Unit", item.Unit)
		}
		writeText(p, "UnitPrice", item.UnitPrice.String())
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("xml: serializar factura: %w", err)
	}
	return out, nil
}

// buildCancelXML genera el documento <Invoice> de anulación.
func buildCancelXML(in CancelInvoiceInput) (string, error) {
	doc := newDocument()
	inv := doc.CreateElement("Invoice")
	inv.CreateAttr("XSDVersion", XSDVersion)

	writeText(inv, "InvoiceNumber", in.InvoiceNumber)
	writeText(inv, "InvoiceYear", in.InvoiceYear)
	writeText(inv, "ReturnTaxDocumentNumber", in.ReturnTaxDocumentNumber)
	writeText(inv, "Remark", in.Remark)

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("xml: serializar anulación: %w", err)
	}
	return out, nil
}

// credentials rentid + source; source es sitecode||password concatenados tal cual.
type credentials struct {
	RentID string
	Source string
}

// appendTo añade <rentid> y <source> al cuerpo de la operación.
func (c credentials) appendTo(parent *etree.Element) {
	writeText(parent, "rentid", c.RentID)
	writeText(parent, "source", c.Source)
}

// invoiceRequestBody cuerpo común de create/cancel: documento en CDATA + credenciales.
func invoiceRequestBody(parent *etree.Element, invoiceXML string, cred credentials) {
	parent.CreateElement("invoicexml").CreateCData(invoiceXML)
	cred.appendTo(parent)
}

// queryRequestBody cuerpo de QueryInvoice.
func queryRequestBody(parent *etree.Element, in QueryInvoiceInput, cred credentials) {
	writeText(parent, "invoicenumber", in.InvoiceNumber)
	writeText(parent, "invoiceyear", in.InvoiceYear)
	cred.appendTo(parent)
}
