// Package textutil ofrece normalización de texto para búsquedas y matching
// de cabeceras insensibles a acentos ("Categoría" == "categoria").
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold elimina diacríticos y pasa a minúsculas. Si la transformación falla
// (entrada no UTF-8), devuelve la cadena original en minúsculas.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold informa si s contiene substr, ignorando acentos y mayúsculas.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
