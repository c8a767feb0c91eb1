package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cetustek-einvoice/internal/application/dto"
	"github.com/jhoicas/cetustek-einvoice/internal/application/einvoice"
	"github.com/jhoicas/cetustek-einvoice/pkg/cetustek"
)

// InvoiceHandler expone emisión, consulta y anulación de facturas.
type InvoiceHandler struct {
	uc *einvoice.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *einvoice.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir factura (CreateInvoiceV3)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      cetustek.CreateInvoiceInput  true  "order_id, order_date, donate_mark, invoice_type, pay_way, tax_type obligatorios; items puede ir vacío"
// @Success      201   {object}  dto.CreateInvoiceResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse  "código de error del WS en remote_code"
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in cetustek.CreateInvoiceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.CreateInvoice(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Get godoc
// @Summary      Consultar factura (QueryInvoice)
// @Description  Los campos que el WS no devuelve se omiten.
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        year    path      string  true  "Año de la factura (yyyy)"
// @Param        number  path      string  true  "Número de factura (AA12345678)"
// @Success      200     {object}  cetustek.QueryInvoiceResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      422     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Failure      504     {object}  dto.ErrorResponse
// @Router       /api/invoices/{year}/{number} [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.QueryInvoice(c.UserContext(), c.Params("number"), c.Params("year"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Cancel godoc
// @Summary      Anular factura (CancelInvoice / CancelInvoiceNoCheck)
// @Description  El rechazo del WS responde 200 con success=false y el código recibido.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        year    path      string                    true  "Año de la factura (yyyy)"
// @Param        number  path      string                    true  "Número de factura (AA12345678)"
// @Param        body    body      dto.CancelInvoiceRequest  true  "remark, return_tax_document_number, no_check"
// @Success      200     {object}  cetustek.CancelInvoiceResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Failure      504     {object}  dto.ErrorResponse
// @Router       /api/invoices/{year}/{number}/cancel [post]
func (h *InvoiceHandler) Cancel(c *fiber.Ctx) error {
	var req dto.CancelInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.CancelInvoice(c.UserContext(), c.Params("number"), c.Params("year"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// writeError traduce la taxonomía de errores del cliente a estados HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var (
		vErr   *cetustek.ValidationError
		apiErr *cetustek.APIError
		tErr   *cetustek.TransportError
	)
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Field + ": " + vErr.Message})
	case errors.As(err, &apiErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "API_ERROR", Message: apiErr.Error(), RemoteCode: apiErr.Code})
	case errors.As(err, &tErr):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_HTTP", Message: tErr.Error()})
	case errors.Is(err, cetustek.ErrResponseTooLarge):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "RESPONSE_TOO_LARGE", Message: err.Error()})
	case errors.Is(err, cetustek.ErrMalformedResponse):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MALFORMED_RESPONSE", Message: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "el WS no respondió a tiempo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
