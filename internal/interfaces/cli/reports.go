package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/report"
)

// ─── statement ────────────────────────────────────────────────────────────────

type statementCmd struct {
	app  *App
	kind string
	from string
	to   string
	q    string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "estado de cuenta con saldo corrido" }
func (*statementCmd) Usage() string {
	return `ledgerctl statement [-kind <tipo>] [-from YYYY-MM-DD] [-to YYYY-MM-DD] [-q <texto>]

  Lista las transacciones en orden cronológico con el saldo tras cada una.
  El saldo se calcula sobre el log completo aunque se filtre.
`
}

func (p *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "kind", "", "incoming, sale_piece, sale_rep o expense")
	f.StringVar(&p.from, "from", "", "fecha inicial inclusive")
	f.StringVar(&p.to, "to", "", "fecha final inclusive")
	f.StringVar(&p.q, "q", "", "texto en la descripción")
}

func (p *statementCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	f := report.Filter{Kind: entity.Kind(p.kind), SearchText: p.q}
	var err error
	if p.from != "" {
		if f.DateFrom, err = entity.ParseDate(p.from); err != nil {
			fmt.Fprintln(p.app.Err, "-from:", err)
			return subcommands.ExitUsageError
		}
	}
	if p.to != "" {
		if f.DateTo, err = entity.ParseDate(p.to); err != nil {
			fmt.Fprintln(p.app.Err, "-to:", err)
			return subcommands.ExitUsageError
		}
	}

	return p.app.run(ctx, func(e *bookkeeping.Engine) error {
		entries, err := e.QueryStatement(f)
		if err != nil {
			return err
		}
		cur := p.app.Currency
		w := p.app.table()
		fmt.Fprintln(w, "FECHA\tTIPO\tÍTEM\tCONTRAPARTE\tENTRADA\tSALIDA\tSALDO")
		for _, en := range entries {
			tx := en.Transaction
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				tx.Date, tx.Kind, orDash(tx.Item), orDash(tx.Counterparty),
				cur.Format(tx.AmountIn), cur.Format(tx.AmountOut), cur.Format(en.Balance))
		}
		t := report.Summarize(entries)
		fmt.Fprintf(w, "\t\t\tTOTAL (%d)\t%s\t%s\t%s\n", t.Count, cur.Format(t.TotalIn), cur.Format(t.TotalOut), cur.Format(t.Balance))
		return w.Flush()
	})
}

// ─── stock ────────────────────────────────────────────────────────────────────

type stockCmd struct {
	app *App
	q   string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "balance de almacén o stock de un ítem" }
func (*stockCmd) Usage() string {
	return `ledgerctl stock [-q <texto>] [<ítem o código>]

  Sin argumentos imprime el balance de almacén. Con un ítem imprime su stock y estado.
`
}

func (p *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.q, "q", "", "texto en ítem, categoría o código")
}

func (p *stockCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.app.run(ctx, func(e *bookkeeping.Engine) error {
		if f.NArg() > 0 {
			item, stock := e.StockOf(f.Arg(0))
			fmt.Fprintf(p.app.Out, "%s: %s (%s)\n", item, stock.String(), e.StatusOf(stock))
			return nil
		}
		inv := e.Inventory(p.q)
		cur := p.app.Currency
		w := p.app.table()
		fmt.Fprintln(w, "ÍTEM\tCÓDIGO\tENTRADAS\tSALIDAS\tSTOCK\tCOSTO PROM.\tVALOR\tESTADO")
		for _, r := range inv.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.Item, orDash(r.Barcode), r.TotalIncoming, r.TotalOutgoing, r.CurrentStock,
				cur.Format(r.AverageCost), cur.Format(r.TotalValue), r.Status)
		}
		fmt.Fprintf(w, "\t\t\t\t\t\t%s\t\n", cur.Format(inv.TotalValue))
		return w.Flush()
	})
}

// ─── reps ─────────────────────────────────────────────────────────────────────

type repsCmd struct {
	app *App
}

func (*repsCmd) Name() string             { return "reps" }
func (*repsCmd) Synopsis() string         { return "resumen de ventas por representante" }
func (*repsCmd) Usage() string            { return "ledgerctl reps\n" }
func (*repsCmd) SetFlags(_ *flag.FlagSet) {}

func (p *repsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.app.run(ctx, func(e *bookkeeping.Engine) error {
		rows, total := e.RepresentativeSummary()
		cur := p.app.Currency
		w := p.app.table()
		fmt.Fprintln(w, "REPRESENTANTE\tVENTAS\tCANTIDAD\tINGRESO\tPROMEDIO")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.RepName, r.TotalSales, r.TotalQuantity,
				cur.Format(r.TotalRevenue), cur.Format(r.AverageSale))
		}
		fmt.Fprintf(w, "TOTAL\t\t\t%s\t\n", cur.Format(total))
		return w.Flush()
	})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
