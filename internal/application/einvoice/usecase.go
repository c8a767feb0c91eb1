// Package einvoice orquesta las operaciones de factura electrónica expuestas por el gateway.
package einvoice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/cetustek-einvoice/internal/application/dto"
	"github.com/jhoicas/cetustek-einvoice/pkg/cetustek"
)

// InvoiceUseCase aplica el plazo configurado y delega en el WS. No reintenta:
// reenviar una emisión podría duplicar la factura.
type InvoiceUseCase struct {
	svc     cetustek.InvoiceService
	timeout time.Duration
	log     zerolog.Logger
}

// NewInvoiceUseCase construye el caso de uso. timeout 0 = sin plazo propio.
func NewInvoiceUseCase(svc cetustek.InvoiceService, timeout time.Duration, log zerolog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{svc: svc, timeout: timeout, log: log}
}

func (uc *InvoiceUseCase) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.timeout)
}

// CreateInvoice emite la factura.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in cetustek.CreateInvoiceInput) (*dto.CreateInvoiceResult, error) {
	ctx, cancel := uc.withDeadline(ctx)
	defer cancel()

	res, err := uc.svc.CreateInvoice(ctx, in)
	if err != nil {
		uc.log.Error().Err(err).Str("order_id", in.OrderID).Msg("emisión fallida")
		return nil, err
	}
	out := dto.NewCreateInvoiceResult(res)
	uc.log.Info().
		Str("order_id", in.OrderID).
		Str("invoice_number", out.InvoiceNumber).
		Msg("factura emitida")
	return &out, nil
}

// QueryInvoice consulta el detalle de una factura.
func (uc *InvoiceUseCase) QueryInvoice(ctx context.Context, number, year string) (*cetustek.QueryInvoiceResponse, error) {
	ctx, cancel := uc.withDeadline(ctx)
	defer cancel()

	res, err := uc.svc.QueryInvoice(ctx, cetustek.QueryInvoiceInput{InvoiceNumber: number, InvoiceYear: year})
	if err != nil {
		uc.log.Warn().Err(err).Str("invoice_number", number).Msg("consulta fallida")
		return nil, err
	}
	return res, nil
}

// CancelInvoice anula la factura. Un rechazo del WS vuelve con Success=false y err nil.
func (uc *InvoiceUseCase) CancelInvoice(ctx context.Context, number, year string, req dto.CancelInvoiceRequest) (*cetustek.CancelInvoiceResponse, error) {
	ctx, cancel := uc.withDeadline(ctx)
	defer cancel()

	res, err := uc.svc.CancelInvoice(ctx, cetustek.CancelInvoiceInput{
		InvoiceNumber:           number,
		InvoiceYear:             year,
		Remark:                  req.Remark,
		ReturnTaxDocumentNumber: req.ReturnTaxDocumentNumber,
	}, req.NoCheck)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_number", number).Msg("anulación fallida")
		return nil, err
	}
	uc.log.Info().
		Str("invoice_number", number).
		Bool("success", res.Success).
		Str("code", res.Code).
		Msg("anulación procesada")
	return res, nil
}
