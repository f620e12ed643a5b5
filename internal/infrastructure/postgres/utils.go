package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/ordico-pos/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// duplicateKeyError traduce una violación de unicidad a
// domain.DuplicateKeyError con la columna que colisionó, extraída del nombre
// del constraint (convención PostgreSQL: <tabla>_<columna>_key).
func duplicateKeyError(err, fallback error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fallback
	}
	name := strings.TrimSuffix(pgErr.ConstraintName, "_key")
	if i := strings.IndexByte(name, '_'); i >= 0 && i+1 < len(name) {
		return &domain.DuplicateKeyError{Field: name[i+1:]}
	}
	return fallback
}
