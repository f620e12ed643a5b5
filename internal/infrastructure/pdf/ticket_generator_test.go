package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/infrastructure/pdf"
)

func sampleReceipt() *entity.Receipt {
	subtotal := decimal.RequireFromString("420.00")
	tax := subtotal.Mul(decimal.New(21, -2))
	return &entity.Receipt{
		ID:     "11111111-1111-1111-1111-111111111111",
		Number: "TCK-1700000000-0001",
		Date:   time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC),
		Company: entity.Company{
			Name:    "ORDICO",
			TaxID:   "30-12345678-9",
			Address: "Calle Falsa 123",
		},
		Lines: []entity.ReceiptLine{
			{ProductID: "p1", Name: "Arroz Largo Fino 1kg", Quantity: 2,
				UnitPrice: decimal.RequireFromString("150.00"),
				LineTotal: decimal.RequireFromString("300.00")},
			{ProductID: "p2", Name: "Fideos Spaghetti 500g", Quantity: 1,
				UnitPrice: decimal.RequireFromString("120.00"),
				LineTotal: decimal.RequireFromString("120.00")},
		},
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

func TestGenerate_ProduceUnPDF(t *testing.T) {
	raw, err := pdf.NewTicketGenerator().Generate(sampleReceipt())
	require.NoError(t, err)

	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]), "el documento debe empezar con la firma PDF")
}

func TestGenerate_TicketSinLineasTambienRenderiza(t *testing.T) {
	// El emisor nunca recibe un ticket vacío (ErrEmptyCart corta antes), pero
	// el generador no debe romperse si pasa.
	r := sampleReceipt()
	r.Lines = nil

	raw, err := pdf.NewTicketGenerator().Generate(r)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
