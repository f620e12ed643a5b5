package http

import (
	"errors"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ordico-pos/internal/application/dto"
	"github.com/jhoicas/ordico-pos/internal/application/sale"
	"github.com/jhoicas/ordico-pos/internal/domain"
)

// Los tickets se archivan como <numero>.pdf; el patrón evita que un :number
// arbitrario escape del directorio.
var ticketNumberRe = regexp.MustCompile(`^TCK-\d+-\d+$`)

// SaleHandler maneja el flujo de venta: carrito, checkout y descarga de tickets.
type SaleHandler struct {
	cartUC      *sale.CartUseCase
	checkoutUC  *sale.CheckoutUseCase
	receiptsDir string
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(cartUC *sale.CartUseCase, checkoutUC *sale.CheckoutUseCase, receiptsDir string) *SaleHandler {
	return &SaleHandler{cartUC: cartUC, checkoutUC: checkoutUC, receiptsDir: receiptsDir}
}

// ViewCart godoc
// @Summary      Ver carrito activo
// @Tags         sale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *SaleHandler) ViewCart(c *fiber.Ctx) error {
	return c.JSON(h.cartUC.View(GetUserID(c)))
}

// AddLine godoc
// @Summary      Agregar línea al carrito
// @Tags         sale
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddLineRequest  true  "product_id, cantidad"
// @Success      200   {object}  dto.AddLineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/lines [post]
func (h *SaleHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y cantidad >= 1 son requeridos"})
	}
	out, err := h.cartUC.AddLine(GetUserID(c), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar línea del carrito por posición
// @Tags         sale
// @Security     Bearer
// @Produce      json
// @Param        index  path  int  true  "Posición de la línea (desde 0)"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/lines/{index} [delete]
func (h *SaleHandler) RemoveLine(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index debe ser numérico"})
	}
	out, err := h.cartUC.RemoveLine(GetUserID(c), index)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// ClearCart godoc
// @Summary      Vaciar el carrito (venta abandonada)
// @Tags         sale
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *SaleHandler) ClearCart(c *fiber.Ctx) error {
	h.cartUC.Clear(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Finalizar la venta: descuenta stock y emite el ticket PDF
// @Tags         sale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.checkoutUC.Checkout(c.Context(), GetUserID(c))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// DownloadReceipt godoc
// @Summary      Descargar el PDF de un ticket emitido
// @Tags         sale
// @Security     Bearer
// @Produce      application/pdf
// @Param        number  path  string  true  "Número de ticket (TCK-...)"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{number} [get]
func (h *SaleHandler) DownloadReceipt(c *fiber.Ctx) error {
	number := c.Params("number")
	if !ticketNumberRe.MatchString(number) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de ticket inválido"})
	}
	path := filepath.Join(h.receiptsDir, number+".pdf")
	if err := c.SendFile(path); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ticket no encontrado"})
	}
	return nil
}

// saleError mapea errores del flujo de venta a respuestas HTTP.
func saleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	case errors.Is(err, domain.ErrOutOfRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OUT_OF_RANGE", Message: "no existe una línea en esa posición"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
