package cetustek

import (
	"context"
	"errors"
	"net/http"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

// Version versión del SDK, enviada en el User-Agent.
const Version = "1.0.0"

// DefaultEndpoint URL del WS de producción de Cetustek.
const DefaultEndpoint = "https://invoice.cetustek.com.tw/InvoiceMultiWeb/InvoiceAPI"

// Config credenciales y endpoint del cliente.
type Config struct {
	Endpoint    string
	RentID      string // identificador de cuenta (rentid)
	SiteCode    string
	APIPassword string
}

// InvoiceService operaciones del WS; *Client la implementa y los tests pueden inyectar un mock.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (*CreateInvoiceResponse, error)
	CancelInvoice(ctx context.Context, in CancelInvoiceInput, noCheck bool) (*CancelInvoiceResponse, error)
	QueryInvoice(ctx context.Context, in QueryInvoiceInput) (*QueryInvoiceResponse, error)
}

// Client cliente SOAP de Cetustek. Inmutable tras New: seguro para uso concurrente.
type Client struct {
	endpoint   string
	cred       credentials
	httpClient *http.Client
	userAgent  string
	log        zerolog.Logger
}

var _ InvoiceService = (*Client)(nil)

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (por defecto sin timeout: el plazo lo pone el ctx).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger logger para trazas de las llamadas. Nunca se registra el source.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithUserAgent reemplaza el User-Agent por defecto.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New construye el cliente. Endpoint vacío usa DefaultEndpoint.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.RentID == "" {
		return nil, errors.New("cetustek: rent id requerido")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		cred: credentials{
			RentID: cfg.RentID,
			Source: cfg.SiteCode + cfg.APIPassword,
		},
		httpClient: &http.Client{},
		userAgent:  "cetustek-go/" + Version,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint URL a la que se envían las peticiones.
func (c *Client) Endpoint() string { return c.endpoint }

// ── Operaciones ───────────────────────────────────────────────────────────────

// CreateInvoice emite una factura (CreateInvoiceV3).
func (c *Client) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (*CreateInvoiceResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	invoiceXML, err := buildInvoiceXML(in)
	if err != nil {
		return nil, err
	}
	envelope, err := wrapSOAP(ActionCreateInvoice, func(op *etree.Element) {
		invoiceRequestBody(op, invoiceXML, c.cred)
	})
	if err != nil {
		return nil, err
	}

	log := c.log.With().Str("action", ActionCreateInvoice).Str("order_id", in.OrderID).Logger()
	log.Debug().Int("items", len(in.Items)).Msg("cetustek: enviando factura")

	body, err := c.postSOAP(ctx, envelope)
	if err != nil {
		log.Warn().Err(err).Msg("cetustek: fallo de transporte")
		return nil, err
	}
	res, err := parseCreateResponse(body)
	if err != nil {
		log.Warn().Err(err).Msg("cetustek: factura rechazada")
		return nil, err
	}
	log.Info().Str("invoice_number", res.InvoiceNumber).Msg("cetustek: factura emitida")
	return res, nil
}

// CancelInvoice anula una factura. noCheck usa CancelInvoiceNoCheck (sin validaciones remotas).
// Un código distinto de "C0" se devuelve como Success=false, no como error.
func (c *Client) CancelInvoice(ctx context.Context, in CancelInvoiceInput, noCheck bool) (*CancelInvoiceResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	cancelXML, err := buildCancelXML(in)
	if err != nil {
		return nil, err
	}
	action := cancelAction(noCheck)
	envelope, err := wrapSOAP(action, func(op *etree.Element) {
		invoiceRequestBody(op, cancelXML, c.cred)
	})
	if err != nil {
		return nil, err
	}

	log := c.log.With().Str("action", action).Str("invoice_number", in.InvoiceNumber).Logger()
	log.Debug().Msg("cetustek: enviando anulación")

	body, err := c.postSOAP(ctx, envelope)
	if err != nil {
		log.Warn().Err(err).Msg("cetustek: fallo de transporte")
		return nil, err
	}
	res, err := parseCancelResponse(body)
	if err != nil {
		log.Warn().Err(err).Msg("cetustek: respuesta inválida")
		return nil, err
	}
	if !res.Success {
		log.Warn().Str("code", res.Code).Msg("cetustek: anulación rechazada")
	}
	return res, nil
}

// QueryInvoice consulta el detalle de una factura.
func (c *Client) QueryInvoice(ctx context.Context, in QueryInvoiceInput) (*QueryInvoiceResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	envelope, err := wrapSOAP(ActionQueryInvoice, func(op *etree.Element) {
		queryRequestBody(op, in, c.cred)
	})
	if err != nil {
		return nil, err
	}

	log := c.log.With().Str("action", ActionQueryInvoice).Str("invoice_number", in.InvoiceNumber).Logger()
	log.Debug().Msg("cetustek: consultando factura")

	body, err := c.postSOAP(ctx, envelope)
	if err != nil {
		log.Warn().Err(err).Msg("cetustek: fallo de transporte")
		return nil, err
	}
	res, err := parseQueryResponse(body, in.InvoiceNumber)
	if err != nil {
		log.Warn().Err(err).Msg("cetustek: consulta rechazada")
		return nil, err
	}
	return res, nil
}
