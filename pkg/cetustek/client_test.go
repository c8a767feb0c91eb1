package cetustek_test

import (
	"context"
	"errors"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cetustek-einvoice/pkg/cetustek"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testRentID   = "53118823"
	testSiteCode = "SITE01"
	testPassword = "p@ss"
)

// capturedRequest lo que el fake WS recibió en la última llamada.
type capturedRequest struct {
	Header http.Header
	Body   string
}

// fakeWS levanta un endpoint SOAP que responde status/body fijos y guarda la petición.
func fakeWS(t *testing.T, status int, body string) (*cetustek.Client, *capturedRequest, *int32) {
	t.Helper()
	captured := &capturedRequest{}
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		raw, _ := io.ReadAll(r.Body)
		captured.Header = r.Header.Clone()
		captured.Body = string(raw)
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := cetustek.New(cetustek.Config{
		Endpoint:    srv.URL,
		RentID:      testRentID,
		SiteCode:    testSiteCode,
		APIPassword: testPassword,
	})
	require.NoError(t, err)
	return client, captured, &calls
}

func soapReturn(value string) string {
	return `<?xml version="1.0" ?><S:Envelope xmlns:S="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<S:Body><ns2:Response xmlns:ns2="http://webservice.cetustek.com/"><return>` + value +
		`</return></ns2:Response></S:Body></S:Envelope>`
}

func createInput() cetustek.CreateInvoiceInput {
	return cetustek.CreateInvoiceInput{
		OrderID:     "ORD-1",
		OrderDate:   "2025/01/15",
		BuyerName:   "Buyer & Sons",
		DonateMark:  "0",
		InvoiceType: "07",
		PayWay:      "1",
		TaxType:     "1",
		Items: []cetustek.InvoiceItem{
			{ProductionCode: "P1", Description: "Item", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_Success(t *testing.T) {
	client, req, _ := fakeWS(t, http.StatusOK, soapReturn("AB20250001;1234"))

	res, err := client.CreateInvoice(context.Background(), createInput())
	require.NoError(t, err)
	assert.Equal(t, "AB20250001", res.InvoiceNumber)
	assert.Equal(t, "1234", res.RandomCode)
	assert.Equal(t, "2025", res.InvoiceYear())

	assert.Equal(t, "text/xml; charset=utf-8", req.Header.Get("Content-Type"))
	assert.Equal(t, "text/xml", req.Header.Get("Accept"))
	assert.Equal(t, "cetustek-go/"+cetustek.Version, req.Header.Get("User-Agent"))

	assert.Contains(t, req.Body, "<tns:CreateInvoiceV3>")
	assert.Contains(t, req.Body, "<rentid>"+testRentID+"</rentid>")
	assert.Contains(t, req.Body, "<source>"+testSiteCode+testPassword+"</source>", "source = sitecode + password")
	assert.Contains(t, req.Body, "<OrderId>ORD-1</OrderId>")
	assert.Contains(t, req.Body, "Buyer &amp; Sons")
}

func TestCreateInvoice_APIError(t *testing.T) {
	client, _, _ := fakeWS(t, http.StatusOK, soapReturn("E0001"))

	_, err := client.CreateInvoice(context.Background(), createInput())

	var apiErr *cetustek.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "E0001", apiErr.Code)
}

func TestCreateInvoice_HTTP500IsTransportError(t *testing.T) {
	client, _, _ := fakeWS(t, http.StatusInternalServerError, "boom")

	_, err := client.CreateInvoice(context.Background(), createInput())
	require.Error(t, err)

	var tErr *cetustek.TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, http.StatusInternalServerError, tErr.StatusCode)
	assert.Equal(t, "boom", tErr.Body)

	var apiErr *cetustek.APIError
	assert.False(t, errors.As(err, &apiErr), "un 500 no es un error de API")
}

func TestCreateInvoice_MissingReturnTag(t *testing.T) {
	client, _, _ := fakeWS(t, http.StatusOK, "<html>maintenance</html>")

	_, err := client.CreateInvoice(context.Background(), createInput())
	assert.ErrorIs(t, err, cetustek.ErrMalformedResponse)
}

func TestCreateInvoice_OversizedResponse(t *testing.T) {
	const limit = 4 << 20
	ok := soapReturn("AB20250001;1234")

	// Justo en el límite se procesa normalmente.
	client, _, _ := fakeWS(t, http.StatusOK, ok+strings.Repeat(" ", limit-len(ok)))
	res, err := client.CreateInvoice(context.Background(), createInput())
	require.NoError(t, err)
	assert.Equal(t, "AB20250001", res.InvoiceNumber)

	// Un byte más y el error es específico, no "falta <return>".
	client, _, _ = fakeWS(t, http.StatusOK, ok+strings.Repeat(" ", limit-len(ok)+1))
	_, err = client.CreateInvoice(context.Background(), createInput())
	assert.ErrorIs(t, err, cetustek.ErrResponseTooLarge)
	assert.NotErrorIs(t, err, cetustek.ErrMalformedResponse)
}

func TestCreateInvoice_ValidationDoesNotCallService(t *testing.T) {
	client, _, calls := fakeWS(t, http.StatusOK, soapReturn("AB20250001;1234"))

	in := createInput()
	in.PayWay = ""
	_, err := client.CreateInvoice(context.Background(), in)

	assert.ErrorIs(t, err, cetustek.ErrInvalidInput)
	var vErr *cetustek.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "pay_way", vErr.Field)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestCreateInvoice_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client, err := cetustek.New(cetustek.Config{Endpoint: srv.URL, RentID: testRentID})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.CreateInvoice(ctx, createInput())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ──────────────────────────────────────────────────────────────────────────────
// CancelInvoice
// ──────────────────────────────────────────────────────────────────────────────

func cancelInput() cetustek.CancelInvoiceInput {
	return cetustek.CancelInvoiceInput{InvoiceNumber: "AB20250001", InvoiceYear: "2025", Remark: "duplicada"}
}

func TestCancelInvoice_Success(t *testing.T) {
	client, req, _ := fakeWS(t, http.StatusOK, soapReturn("C0"))

	res, err := client.CancelInvoice(context.Background(), cancelInput(), false)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "C0", res.Code)

	assert.Contains(t, req.Body, "<tns:CancelInvoice>")
	assert.Contains(t, req.Body, "<InvoiceNumber>AB20250001</InvoiceNumber>")
}

func TestCancelInvoice_NoCheckAction(t *testing.T) {
	client, req, _ := fakeWS(t, http.StatusOK, soapReturn("C0"))

	_, err := client.CancelInvoice(context.Background(), cancelInput(), true)
	require.NoError(t, err)
	assert.Contains(t, req.Body, "<tns:CancelInvoiceNoCheck>")
}

func TestCancelInvoice_RejectedIsNotAnError(t *testing.T) {
	client, _, _ := fakeWS(t, http.StatusOK, soapReturn("C1"))

	res, err := client.CancelInvoice(context.Background(), cancelInput(), false)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "C1", res.Code)
}

func TestCancelInvoice_RequiresNumberAndYear(t *testing.T) {
	client, _, calls := fakeWS(t, http.StatusOK, soapReturn("C0"))

	in := cancelInput()
	in.InvoiceYear = ""
	_, err := client.CancelInvoice(context.Background(), in, false)
	assert.ErrorIs(t, err, cetustek.ErrInvalidInput)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

// El motivo vacío no se valida localmente: se envía y decide el WS.
func TestCancelInvoice_EmptyRemarkIsSent(t *testing.T) {
	client, req, calls := fakeWS(t, http.StatusOK, soapReturn("C0"))

	in := cancelInput()
	in.Remark = ""
	res, err := client.CancelInvoice(context.Background(), in, false)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Contains(t, html.UnescapeString(req.Body), "<Remark></Remark>")
}

// ──────────────────────────────────────────────────────────────────────────────
// QueryInvoice
// ──────────────────────────────────────────────────────────────────────────────

func TestQueryInvoice_Success(t *testing.T) {
	detail := `<Invoice><InvoiceDate>2025/01/15</InvoiceDate><InvoiceStatus>1</InvoiceStatus>` +
		`<TotalAmount>105</TotalAmount></Invoice>`
	client, req, _ := fakeWS(t, http.StatusOK, soapReturn(html.EscapeString(detail)))

	res, err := client.QueryInvoice(context.Background(), cetustek.QueryInvoiceInput{
		InvoiceNumber: "AB20250001",
		InvoiceYear:   "2025",
	})
	require.NoError(t, err)

	assert.Equal(t, "AB20250001", res.InvoiceNumber)
	require.NotNil(t, res.InvoiceStatus)
	assert.Equal(t, "1", *res.InvoiceStatus)
	require.NotNil(t, res.TotalAmount)
	assert.Equal(t, 105.0, *res.TotalAmount)
	assert.Nil(t, res.TaxAmount)
	assert.Equal(t, detail, res.RawXML)

	assert.Contains(t, req.Body, "<tns:QueryInvoice>")
	assert.Contains(t, req.Body, "<invoicenumber>AB20250001</invoicenumber>")
	assert.Contains(t, req.Body, "<invoiceyear>2025</invoiceyear>")
	assert.NotContains(t, req.Body, "invoicexml")
}

func TestQueryInvoice_ErrorCode(t *testing.T) {
	client, _, _ := fakeWS(t, http.StatusOK, soapReturn("Q3"))

	_, err := client.QueryInvoice(context.Background(), cetustek.QueryInvoiceInput{
		InvoiceNumber: "AB20250001",
		InvoiceYear:   "2025",
	})
	var apiErr *cetustek.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Q3", apiErr.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción
// ──────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	_, err := cetustek.New(cetustek.Config{})
	assert.Error(t, err, "rent id es obligatorio")

	c, err := cetustek.New(cetustek.Config{RentID: testRentID})
	require.NoError(t, err)
	assert.Equal(t, cetustek.DefaultEndpoint, c.Endpoint())
}

func TestWithUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		_, _ = io.WriteString(w, soapReturn("C0"))
	}))
	t.Cleanup(srv.Close)

	c, err := cetustek.New(cetustek.Config{Endpoint: srv.URL, RentID: testRentID},
		cetustek.WithUserAgent("erp/2.0"), cetustek.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = c.CancelInvoice(context.Background(), cancelInput(), false)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ua, "erp/"))
}
