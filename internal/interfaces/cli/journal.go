package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/journal"
)

// ─── add ──────────────────────────────────────────────────────────────────────

type addCmd struct {
	app          *App
	date         string
	kind         string
	item         string
	quantity     string
	unitPrice    string
	amount       string
	description  string
	counterparty string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "registra una transacción en el journal" }
func (*addCmd) Usage() string {
	return `ledgerctl add -kind <tipo> -item <ítem o código> -qty <n> -price <p> -cp <contraparte> [-date YYYY-MM-DD]
ledgerctl add -kind expense -amount <monto> -desc <descripción> [-date YYYY-MM-DD]

  Las ventas se rechazan si dejarían el stock del ítem en negativo.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "fecha de la transacción (hoy por defecto)")
	f.StringVar(&p.kind, "kind", "", "incoming, sale_piece, sale_rep o expense")
	f.StringVar(&p.item, "item", "", "nombre del ítem o código de barras")
	f.StringVar(&p.quantity, "qty", "0", "cantidad")
	f.StringVar(&p.unitPrice, "price", "0", "precio unitario")
	f.StringVar(&p.amount, "amount", "0", "monto del gasto")
	f.StringVar(&p.description, "desc", "", "descripción")
	f.StringVar(&p.counterparty, "cp", "", "proveedor, cliente o representante")
}

func (p *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c := journal.Candidate{
		Kind:         entity.Kind(p.kind),
		ItemRef:      p.item,
		Description:  p.description,
		Counterparty: p.counterparty,
	}
	var err error
	if c.Date = entity.Today(); p.date != "" {
		if c.Date, err = entity.ParseDate(p.date); err != nil {
			fmt.Fprintln(p.app.Err, "-date:", err)
			return subcommands.ExitUsageError
		}
	}
	for _, v := range []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{{"qty", p.quantity, &c.Quantity}, {"price", p.unitPrice, &c.UnitPrice}, {"amount", p.amount, &c.Amount}} {
		if *v.dst, err = decimal.NewFromString(strings.TrimSpace(v.raw)); err != nil {
			fmt.Fprintf(p.app.Err, "-%s: %v\n", v.name, err)
			return subcommands.ExitUsageError
		}
	}

	return p.app.run(ctx, func(e *bookkeeping.Engine) error {
		tx, err := e.SubmitTransaction(ctx, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.app.Out, "registrada %s #%d %s %s saldo %s\n",
			tx.ID, tx.Seq, tx.Kind, tx.Date, p.app.Currency.Format(e.Balance()))
		return nil
	})
}

// ─── register ─────────────────────────────────────────────────────────────────

type registerCmd struct {
	app       *App
	barcode   string
	name      string
	category  string
	unitPrice string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "registra un ítem en el catálogo" }
func (*registerCmd) Usage() string {
	return `ledgerctl register -name <nombre> -price <precio> [-barcode <código>] [-category <categoría>]

  Sin -barcode se genera un código numérico libre.
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.barcode, "barcode", "", "código de barras numérico")
	f.StringVar(&p.name, "name", "", "nombre del ítem")
	f.StringVar(&p.category, "category", "", "categoría")
	f.StringVar(&p.unitPrice, "price", "0", "precio de venta")
}

func (p *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := decimal.NewFromString(strings.TrimSpace(p.unitPrice))
	if err != nil {
		fmt.Fprintln(p.app.Err, "-price:", err)
		return subcommands.ExitUsageError
	}
	return p.app.run(ctx, func(e *bookkeeping.Engine) error {
		item, err := e.RegisterBarcode(ctx, entity.Item{Name: p.name, Category: p.category, UnitPrice: price}, p.barcode)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.app.Out, "%s\t%s\t%s\n", item.Barcode, item.Name, p.app.Currency.Format(item.UnitPrice))
		return nil
	})
}
