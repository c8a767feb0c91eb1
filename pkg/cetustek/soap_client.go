package cetustek

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
)

// ── Constantes SOAP ───────────────────────────────────────────────────────────

const (
	soapNS = "http://schemas.xmlsoap.org/soap/envelope/"

	// TargetNamespace namespace de las operaciones del WS Cetustek.
	TargetNamespace = "http://webservice.cetustek.com/"

	ActionCreateInvoice        = "CreateInvoiceV3"
	ActionCancelInvoice        = "CancelInvoice"
	ActionCancelInvoiceNoCheck = "CancelInvoiceNoCheck"
	ActionQueryInvoice         = "QueryInvoice"

	maxResponseBytes = 4 << 20 // 4 MB
	maxErrorBody     = 2048
)

// cancelAction elige la operación de anulación según se omita o no la validación remota.
func cancelAction(noCheck bool) string {
	if noCheck {
		return ActionCancelInvoiceNoCheck
	}
	return ActionCancelInvoice
}

// ── Envelope ──────────────────────────────────────────────────────────────────

// wrapSOAP construye el envelope SOAP 1.1 con <tns:action> dentro de <soap:Body>;
// fill escribe el contenido de la operación.
func wrapSOAP(action string, fill func(op *etree.Element)) (string, error) {
	doc := newDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", soapNS)
	env.CreateAttr("xmlns:tns", TargetNamespace)

	body := env.CreateElement("soap:Body")
	op := body.CreateElement("tns:" + action)
	fill(op)

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("soap: serializar envelope: %w", err)
	}
	return out, nil
}

// ── Transporte ────────────────────────────────────────────────────────────────

// postSOAP envía el envelope al endpoint y devuelve el cuerpo de la respuesta.
// No hay reintentos; el plazo lo define el ctx del llamador.
func (c *Client) postSOAP(ctx context.Context, envelope string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		bytes.NewReader([]byte(envelope)))
	if err != nil {
		return "", fmt.Errorf("soap: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("Accept", "text/xml")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("soap: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("soap: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	// Un byte extra para distinguir "justo en el límite" de "cortado".
	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", fmt.Errorf("soap: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(strings.TrimSpace(string(rawBody)), maxErrorBody),
		}
	}
	if len(rawBody) > maxResponseBytes {
		return "", fmt.Errorf("soap: respuesta de más de %d bytes: %w", maxResponseBytes, ErrResponseTooLarge)
	}
	return string(rawBody), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
