package postgres

import (
	"context"
	"fmt"
)

// schema tablas del journal: log ordenado por secuencia y catálogo de códigos de barras.
const schema = `
CREATE TABLE IF NOT EXISTS ledger_transactions (
	id            TEXT PRIMARY KEY,
	seq           BIGINT NOT NULL UNIQUE,
	date          DATE NOT NULL,
	kind          TEXT NOT NULL,
	item          TEXT NOT NULL DEFAULT '',
	barcode       TEXT NOT NULL DEFAULT '',
	quantity      NUMERIC NOT NULL DEFAULT 0,
	unit_price    NUMERIC NOT NULL DEFAULT 0,
	amount_in     NUMERIC NOT NULL DEFAULT 0,
	amount_out    NUMERIC NOT NULL DEFAULT 0,
	description   TEXT NOT NULL DEFAULT '',
	counterparty  TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS ledger_items (
	barcode     TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	unit_price  NUMERIC NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
