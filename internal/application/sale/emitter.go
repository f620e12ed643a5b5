package sale

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/ordico-pos/internal/domain/entity"
)

// ReceiptEmitter renderiza el ticket y lo guarda como <numero>.pdf en el
// directorio configurado.
type ReceiptEmitter struct {
	gen ReceiptGenerator
	dir string
}

// NewReceiptEmitter construye el emisor de tickets.
func NewReceiptEmitter(gen ReceiptGenerator, dir string) *ReceiptEmitter {
	return &ReceiptEmitter{gen: gen, dir: dir}
}

// Emit genera el PDF y lo escribe en disco. Devuelve la ruta del archivo.
func (e *ReceiptEmitter) Emit(receipt *entity.Receipt) (string, error) {
	raw, err := e.gen.Generate(receipt)
	if err != nil {
		return "", fmt.Errorf("generar pdf: %w", err)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de tickets: %w", err)
	}
	path := filepath.Join(e.dir, receipt.Number+".pdf")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("guardar ticket: %w", err)
	}
	return path, nil
}
