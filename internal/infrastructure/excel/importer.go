// Package excel parsea planillas de productos para la importación masiva.
// Se espera la primera hoja con cabecera:
//
//	Nombre | Marca | Cantidad | Precio | Categoría
//
// La cabecera se compara sin acentos ni mayúsculas ("Categoria" también vale).
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/ordico-pos/internal/application/dto"
	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/pkg/textutil"
)

var expectedHeader = []string{"nombre", "marca", "cantidad", "precio", "categoria"}

// ParseProducts lee la planilla y devuelve las filas de producto listas para
// importar. Cabecera ausente o inválida, y cualquier celda numérica ilegible,
// devuelven ErrInvalidInput con el número de fila.
func ParseProducts(r io.Reader) ([]dto.ProductImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir planilla: %w", domain.ErrInvalidInput)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilla sin hojas: %w", domain.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("planilla vacía: %w", domain.ErrInvalidInput)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	out := make([]dto.ProductImportRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		num := i + 2 // numeración de la planilla, cabecera incluida
		if emptyRow(cells) {
			continue
		}
		row, err := parseRow(cells)
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", num, err)
		}
		out = append(out, row)
	}
	return out, nil
}

func checkHeader(cells []string) error {
	if len(cells) < len(expectedHeader) {
		return fmt.Errorf("cabecera incompleta: %w", domain.ErrInvalidInput)
	}
	for i, want := range expectedHeader {
		if textutil.Fold(strings.TrimSpace(cells[i])) != want {
			return fmt.Errorf("cabecera inválida en columna %d: %w", i+1, domain.ErrInvalidInput)
		}
	}
	return nil
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(cells []string) (dto.ProductImportRow, error) {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	name := cell(0)
	if name == "" {
		return dto.ProductImportRow{}, fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	}
	qty, err := strconv.Atoi(cell(2))
	if err != nil || qty < 0 {
		return dto.ProductImportRow{}, fmt.Errorf("cantidad inválida %q: %w", cell(2), domain.ErrInvalidInput)
	}
	price, err := decimal.NewFromString(cell(3))
	if err != nil || price.IsNegative() {
		return dto.ProductImportRow{}, fmt.Errorf("precio inválido %q: %w", cell(3), domain.ErrInvalidInput)
	}
	return dto.ProductImportRow{
		Name:     name,
		Brand:    cell(1),
		Quantity: qty,
		Price:    price,
		Category: cell(4),
	}, nil
}
