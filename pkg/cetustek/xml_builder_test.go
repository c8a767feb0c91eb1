package cetustek

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCreateInput() CreateInvoiceInput {
	return CreateInvoiceInput{
		OrderID:         "98765432",
		OrderDate:       "2025/01/15",
		BuyerIdentifier: "53118823",
		BuyerName:       "鯨躍科技有限公司",
		BuyerEmail:      "test@cetustek.com.tw",
		DonateMark:      "0",
		InvoiceType:     "07",
		PayWay:          "1",
		TaxType:         "1",
		TaxRate:         decimal.NewNullDecimal(decimal.RequireFromString("0.05")),
		Items: []InvoiceItem{
			{ProductionCode: "P001", Description: "Widget", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), Unit: "個"},
			{ProductionCode: "P002", Description: "Gadget", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("150.5")},
			{ProductionCode: "P003", Description: "Gizmo", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10), Unit: "箱"},
		},
	}
}

func readDoc(t *testing.T, s string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s), "el XML generado debe estar bien formado")
	return doc
}

func TestBuildInvoiceXML_OneProductItemPerItemInOrder(t *testing.T) {
	in := sampleCreateInput()

	out, err := buildInvoiceXML(in)
	require.NoError(t, err)

	doc := readDoc(t, out)
	items := doc.FindElements("//Details/ProductItem")
	require.Len(t, items, len(in.Items))

	for i, el := range items {
		want := in.Items[i]
		assert.Equal(t, want.ProductionCode, el.SelectElement("ProductionCode").Text())
		assert.Equal(t, want.Description, el.SelectElement("Description").Text())
		assert.Equal(t, want.Quantity.String(), el.SelectElement("Quantity").Text())
		assert.Equal(t, want.UnitPrice.String(), el.SelectElement("UnitPrice").Text())

		unit := el.SelectElement("Unit")
		if want.Unit == "" {
			assert.Nil(t, unit, "item %d: <Unit> no debe existir sin unidad", i)
		} else {
			require.NotNil(t, unit, "item %d: <Unit> debe existir", i)
			assert.Equal(t, want.Unit, unit.Text())
		}
	}
}

func TestBuildInvoiceXML_FieldOrder(t *testing.T) {
	out, err := buildInvoiceXML(sampleCreateInput())
	require.NoError(t, err)

	root := readDoc(t, out).Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, XSDVersion, root.SelectAttrValue("XSDVersion", ""))

	var got []string
	for _, el := range root.ChildElements() {
		got = append(got, el.Tag)
	}
	want := []string{
		"OrderId", "OrderDate", "BuyerIdentifier", "BuyerName", "BuyerAddress",
		"BuyerEmailAddress", "DonateMark", "InvoiceType", "CarrierType", "CarrierId1",
		"CarrierId2", "NPOBAN", "PayWay", "TaxType", "TaxRate", "Remark", "Details",
	}
	assert.Equal(t, want, got)
}

func TestBuildInvoiceXML_EmptyOptionalFieldsArePresent(t *testing.T) {
	in := sampleCreateInput()
	in.Items = nil

	out, err := buildInvoiceXML(in)
	require.NoError(t, err)

	for _, tag := range []string{"BuyerAddress", "CarrierType", "CarrierId1", "CarrierId2", "NPOBAN", "Remark", "Details"} {
		assert.Contains(t, out, "<"+tag+"></"+tag+">", "campo %s", tag)
	}
}

func TestBuildInvoiceXML_NoItemsKeepsEmptyDetails(t *testing.T) {
	in := sampleCreateInput()
	in.Items = nil

	out, err := buildInvoiceXML(in)
	require.NoError(t, err)
	assert.Contains(t, out, "<Details></Details>")

	details := readDoc(t, out).FindElement("/Invoice/Details")
	require.NotNil(t, details, "<Details> se emite aunque no haya líneas")
	assert.Empty(t, details.ChildElements())
	assert.Empty(t, strings.TrimSpace(details.Text()))
}

func TestBuildInvoiceXML_EscapesFreeText(t *testing.T) {
	in := sampleCreateInput()
	in.BuyerName = "A&B <Co>"
	in.Remark = "x < y & z"
	in.Items[0].Description = "<b>bold</b>"

	out, err := buildInvoiceXML(in)
	require.NoError(t, err)

	assert.NotContains(t, out, "A&B")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "A&amp;B &lt;Co")

	doc := readDoc(t, out)
	assert.Equal(t, "A&B <Co>", doc.FindElement("//BuyerName").Text())
	assert.Equal(t, "x < y & z", doc.FindElement("//Remark").Text())
	assert.Equal(t, "<b>bold</b>", doc.FindElement("//ProductItem/Description").Text())
}

func TestBuildInvoiceXML_DefaultTaxRate(t *testing.T) {
	in := sampleCreateInput()
	in.TaxRate = decimal.NullDecimal{}

	out, err := buildInvoiceXML(in)
	require.NoError(t, err)
	assert.Contains(t, out, "<TaxRate>0.05</TaxRate>")

	in.TaxRate = decimal.NewNullDecimal(decimal.Zero)
	out, err = buildInvoiceXML(in)
	require.NoError(t, err)
	assert.Contains(t, out, "<TaxRate>0</TaxRate>")
}

func TestBuildCancelXML(t *testing.T) {
	out, err := buildCancelXML(CancelInvoiceInput{
		InvoiceNumber: "AB20250001",
		InvoiceYear:   "2025",
		Remark:        "客戶退貨 & 重開",
	})
	require.NoError(t, err)

	root := readDoc(t, out).Root()
	var got []string
	for _, el := range root.ChildElements() {
		got = append(got, el.Tag)
	}
	assert.Equal(t, []string{"InvoiceNumber", "InvoiceYear", "ReturnTaxDocumentNumber", "Remark"}, got)
	assert.Contains(t, out, "<ReturnTaxDocumentNumber></ReturnTaxDocumentNumber>")
	assert.Equal(t, "客戶退貨 & 重開", root.SelectElement("Remark").Text())
}

// ── Envelope ─────────────────────────────────────────────────────────────────

func TestWrapSOAP_InvoiceBody(t *testing.T) {
	invoiceXML, err := buildInvoiceXML(sampleCreateInput())
	require.NoError(t, err)
	cred := credentials{RentID: "53118823", Source: "SITE" + "secret"}

	out, err := wrapSOAP(ActionCreateInvoice, func(op *etree.Element) {
		invoiceRequestBody(op, invoiceXML, cred)
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, out, `xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"`)
	assert.Contains(t, out, `xmlns:tns="http://webservice.cetustek.com/"`)
	assert.Contains(t, out, "<tns:CreateInvoiceV3>")
	assert.Contains(t, out, "<![CDATA["+invoiceXML+"]]>")

	doc := readDoc(t, out)
	assert.Equal(t, invoiceXML, doc.FindElement("//invoicexml").Text())
	assert.Equal(t, "53118823", doc.FindElement("//rentid").Text())
	assert.Equal(t, "SITEsecret", doc.FindElement("//source").Text())
}

func TestWrapSOAP_QueryBody(t *testing.T) {
	out, err := wrapSOAP(ActionQueryInvoice, func(op *etree.Element) {
		queryRequestBody(op, QueryInvoiceInput{InvoiceNumber: "AB20250001", InvoiceYear: "2025"},
			credentials{RentID: "r", Source: "s"})
	})
	require.NoError(t, err)

	assert.Contains(t, out, "<tns:QueryInvoice>")
	assert.Contains(t, out, "<invoicenumber>AB20250001</invoicenumber><invoiceyear>2025</invoiceyear><rentid>r</rentid><source>s</source>")
}

func TestCancelAction(t *testing.T) {
	assert.Equal(t, "CancelInvoice", cancelAction(false))
	assert.Equal(t, "CancelInvoiceNoCheck", cancelAction(true))
}
