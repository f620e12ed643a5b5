package excel_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/infrastructure/excel"
)

// buildWorkbook arma una planilla en memoria con las filas dadas (la primera
// es la cabecera).
func buildWorkbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var header = []interface{}{"Nombre", "Marca", "Cantidad", "Precio", "Categoría"}

func TestParseProducts_PlanillaValida(t *testing.T) {
	buf := buildWorkbook(t,
		header,
		[]interface{}{"Arroz Largo Fino 1kg", "Gallo", 50, 150.00, "Almacén"},
		[]interface{}{"Leche Entera 1L", "La Serenísima", 30, "95.50", "Lácteos"},
	)

	rows, err := excel.ParseProducts(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Arroz Largo Fino 1kg", rows[0].Name)
	assert.Equal(t, "Gallo", rows[0].Brand)
	assert.Equal(t, 50, rows[0].Quantity)
	assert.Equal(t, "150", rows[0].Price.String())
	assert.Equal(t, "Almacén", rows[0].Category)
	assert.Equal(t, "95.5", rows[1].Price.String())
}

// La cabecera se acepta sin acentos ni mayúsculas exactas.
func TestParseProducts_CabeceraSinAcentos(t *testing.T) {
	buf := buildWorkbook(t,
		[]interface{}{"nombre", "MARCA", "cantidad", "precio", "categoria"},
		[]interface{}{"Arroz", "", 10, "99.00", ""},
	)

	rows, err := excel.ParseProducts(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Category, "la categoría vacía se resuelve después, al importar")
}

func TestParseProducts_CabeceraInvalida(t *testing.T) {
	buf := buildWorkbook(t,
		[]interface{}{"Producto", "Marca", "Cantidad", "Precio", "Categoría"},
		[]interface{}{"Arroz", "", 10, "99.00", ""},
	)

	_, err := excel.ParseProducts(buf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "cabecera")
}

func TestParseProducts_IgnoraFilasVacias(t *testing.T) {
	buf := buildWorkbook(t,
		header,
		[]interface{}{"Arroz", "Gallo", 50, "150.00", "Almacén"},
		[]interface{}{"", "", "", "", ""},
		[]interface{}{"Fideos", "Matarazzo", 40, "120.00", "Almacén"},
	)

	rows, err := excel.ParseProducts(buf)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

// El error de una celda ilegible nombra la fila de la planilla (contando la
// cabecera como fila 1).
func TestParseProducts_CeldaInvalidaNombraLaFila(t *testing.T) {
	buf := buildWorkbook(t,
		header,
		[]interface{}{"Arroz", "Gallo", 50, "150.00", "Almacén"},
		[]interface{}{"Fideos", "", "muchos", "120.00", ""},
	)

	_, err := excel.ParseProducts(buf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "fila 3")
	assert.Contains(t, err.Error(), "cantidad")
}

func TestParseProducts_ArchivoNoEsXlsx(t *testing.T) {
	_, err := excel.ParseProducts(bytes.NewBufferString("esto no es un zip"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
