package sale

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ordico-pos/internal/application/dto"
	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/domain/repository"
	"github.com/jhoicas/ordico-pos/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// TaxRate alícuota de impuestos aplicada sobre el subtotal (21%).
var TaxRate = decimal.New(21, -2)

var ticketSeq atomic.Int64

// nextTicketNumber arma el número de ticket: epoch + secuencia de proceso.
// La secuencia evita colisiones (y PDFs pisados) cuando dos cajas cierran
// venta en el mismo segundo.
func nextTicketNumber(now time.Time) string {
	return fmt.Sprintf("TCK-%d-%04d", now.Unix(), ticketSeq.Add(1))
}

// BuildReceipt calcula el ticket a partir de las líneas del carrito:
// subtotal exacto, impuestos (subtotal * 0.21) y total. Carrito vacío ->
// ErrEmptyCart. Función pura, no toca persistencia.
func BuildReceipt(company entity.Company, lines []Line) (*entity.Receipt, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	now := time.Now()
	receiptLines := make([]entity.ReceiptLine, 0, len(lines))
	subtotal := decimal.Zero
	for _, l := range lines {
		lineTotal := l.Total()
		subtotal = subtotal.Add(lineTotal)
		receiptLines = append(receiptLines, entity.ReceiptLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: lineTotal,
		})
	}
	tax := subtotal.Mul(TaxRate)
	return &entity.Receipt{
		ID:       uuid.New().String(),
		Number:   nextTicketNumber(now),
		Date:     now,
		Company:  company,
		Lines:    receiptLines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

// CheckoutUseCase cierra la venta activa: calcula el ticket, re-valida y
// descuenta stock en una transacción, emite el PDF y vacía el carrito.
type CheckoutUseCase struct {
	carts   *Manager
	tx      TxRunner
	emitter *ReceiptEmitter
	company entity.Company
}

// NewCheckoutUseCase construye el caso de uso de checkout.
func NewCheckoutUseCase(carts *Manager, tx TxRunner, emitter *ReceiptEmitter, company entity.Company) *CheckoutUseCase {
	return &CheckoutUseCase{carts: carts, tx: tx, emitter: emitter, company: company}
}

// Checkout finaliza la venta del usuario. El stock se vuelve a validar
// dentro de la transacción (el catálogo pudo cambiar desde que se armó el
// carrito); cualquier línea sin stock aborta la venta completa sin descontar
// nada. El carrito se vacía solo si la transacción confirma.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string) (*dto.ReceiptResponse, error) {
	cart := uc.carts.Cart(userID)
	lines := cart.Lines()
	receipt, err := BuildReceipt(uc.company, lines)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		for _, l := range lines {
			p, err := products.GetByIDForUpdate(l.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%s: %w", l.Name, domain.ErrNotFound)
			}
			if d := stock.Validate(p.Quantity, l.Quantity); d.Rejected() {
				return fmt.Errorf("%s: %w", p.Name, domain.ErrInsufficientStock)
			}
			if err := products.DecrementStock(l.ProductID, l.Quantity); err != nil {
				return fmt.Errorf("%s: %w", l.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// La venta ya es definitiva: el carrito se vacía aunque falle el PDF.
	cart.Clear()
	path, err := uc.emitter.Emit(receipt)
	if err != nil {
		return nil, fmt.Errorf("emitir ticket %s: %w", receipt.Number, err)
	}
	return toReceiptResponse(receipt, path), nil
}

func toReceiptResponse(r *entity.Receipt, path string) *dto.ReceiptResponse {
	lines := make([]dto.ReceiptLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, dto.ReceiptLineResponse{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			LineTotal: l.LineTotal.StringFixed(2),
		})
	}
	return &dto.ReceiptResponse{
		ID:           r.ID,
		Number:       r.Number,
		Date:         r.Date.Format(time.RFC3339),
		Company:      r.Company.Name,
		Lines:        lines,
		Subtotal:     r.Subtotal.StringFixed(2),
		Tax:          r.Tax.StringFixed(2),
		Total:        r.Total.StringFixed(2),
		ArtifactPath: path,
	}
}
