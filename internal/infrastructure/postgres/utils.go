package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// noRowsAffected cero filas en un DELETE por clave primaria significa que la clave no existe.
func noRowsAffected(tag pgconn.CommandTag) bool { return tag.RowsAffected() == 0 }
